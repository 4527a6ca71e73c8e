// Package model defines domain entities for the application.
package model

import "time"

// JobStatus represents the state of a job application.
type JobStatus string

const (
	StatusApplied       JobStatus = "applied"
	StatusInterviewing  JobStatus = "interviewing"
	StatusOfferReceived JobStatus = "offer received"
	StatusRejected      JobStatus = "rejected"
)

// IsValid checks if the status is one of the allowed values.
func (s JobStatus) IsValid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOfferReceived, StatusRejected:
		return true
	}
	return false
}

// Field limits for job records.
const (
	MaxCompanyLength  = 50
	MaxPositionLength = 100
)

// Job represents a tracked job application.
// CreatedBy is the owning user; every read and write is scoped to it.
type Job struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    JobStatus `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
