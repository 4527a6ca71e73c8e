package dto

import (
	"time"

	"github.com/applytrack/applytrack/internal/model"
)

// JobRequest represents the request body for creating or updating a job.
// Any createdBy value a client sends is ignored; ownership comes from
// the verified token.
type JobRequest struct {
	Company  string `json:"company"`
	Position string `json:"position"`
	Status   string `json:"status,omitempty"`
}

// JobResponse represents a job in API responses.
type JobResponse struct {
	ID        string    `json:"id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
	Status    string    `json:"status"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobEnvelope wraps a single job.
type JobEnvelope struct {
	Job JobResponse `json:"job"`
}

// JobListResponse represents the job list with its count.
type JobListResponse struct {
	JobsCount int           `json:"jobsCount"`
	Jobs      []JobResponse `json:"jobs"`
}

// MessageResponse is the uniform {msg} envelope, also used for
// delete confirmations.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// ToJobResponse converts a Job model to JobResponse DTO.
func ToJobResponse(job *model.Job) JobResponse {
	return JobResponse{
		ID:        job.ID,
		Company:   job.Company,
		Position:  job.Position,
		Status:    string(job.Status),
		CreatedBy: job.CreatedBy,
		CreatedAt: job.CreatedAt,
		UpdatedAt: job.UpdatedAt,
	}
}

// ToJobListResponse converts a slice of Job models to JobListResponse.
func ToJobListResponse(jobs []*model.Job) JobListResponse {
	responses := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = ToJobResponse(job)
	}
	return JobListResponse{
		JobsCount: len(responses),
		Jobs:      responses,
	}
}
