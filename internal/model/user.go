// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account.
// PasswordHash is never serialized; it only travels between the
// repository and the auth service.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthContext carries the identity decoded from a verified token.
// It is the sole source of caller identity on job routes.
type AuthContext struct {
	UserID string
	Name   string
}
