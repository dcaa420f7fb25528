package api

import (
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// Common request/response structures.
// JSON field names are part of the wire contract and must not change.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Name     string `json:"name"     validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// UserResponse carries the public user fields. The password hash is never
// part of any response.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse defines the successful response for the register and login
// endpoints: the public user fields plus a fresh token pair.
type AuthResponse struct {
	Message      string       `json:"message"`
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

// RefreshTokenResponse defines the successful response for the token refresh
// endpoint. Only a new access token is issued; the refresh token is neither
// rotated nor invalidated.
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// CreateTaskRequest defines the payload for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
}

// UpdateTaskRequest defines the payload for partially updating a task.
//
// Pointer fields distinguish "absent" from "present but empty": an omitted
// field leaves the task unchanged, an explicit empty description clears it.
// An explicit empty title is treated as absent and silently ignored;
// clients depend on this.
type UpdateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// TaskListResponse defines the response for the task list endpoint.
type TaskListResponse struct {
	Data       []*domain.Task `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// userToResponse converts a domain user to its public response form.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID.String(),
		Email: user.Email,
		Name:  user.Name,
	}
}
