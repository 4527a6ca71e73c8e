// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// RegisterRequest represents the request body for registration.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful register or login:
// the display name plus the bearer token for subsequent requests.
type AuthResponse struct {
	User  AuthUser `json:"user"`
	Token string   `json:"token"`
}

// AuthUser is the public slice of the user record.
type AuthUser struct {
	Name string `json:"name"`
}
