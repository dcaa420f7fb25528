package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// Default pagination values applied when a caller supplies nothing usable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListParams carries pagination and filter parameters for listing tasks.
type ListParams struct {
	// Page is the 1-based page number.
	Page int

	// Limit is the maximum number of tasks per page.
	Limit int

	// Status, when non-empty, restricts the result to tasks with exactly
	// this status.
	Status domain.TaskStatus

	// Search, when non-empty, restricts the result to tasks whose title or
	// description contains this text, case-insensitively.
	Search string
}

// Normalize coerces page and limit to positive values, falling back to the
// defaults instead of erroring on invalid input.
func (p ListParams) Normalize() ListParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

// Offset returns the number of rows to skip for the current page.
// Callers must Normalize first.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages returns the total page count for the given total row count,
// computed as ceil(total/limit).
func (p ListParams) Pages(total int) int {
	if total == 0 {
		return 0
	}
	return (total + p.Limit - 1) / p.Limit
}

// TaskStore defines the interface for task data persistence.
//
// Every method is scoped to an owning user: no call ever reads or mutates a
// task owned by someone else. Looking up another user's task by ID fails
// with ErrTaskNotFound, exactly as if the task did not exist.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owning user does not exist.
	// Returns validation errors from the domain Task if data is invalid.
	Create(ctx context.Context, task *domain.Task) error

	// GetForUser retrieves a task by ID, restricted to the given owner.
	// Returns ErrTaskNotFound if the task is absent or owned by another user.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error)

	// Update persists the task's title, description, status, and update
	// timestamp, restricted to the given owner.
	// Returns ErrTaskNotFound if the task is absent or owned by another user.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by ID, restricted to the given owner.
	// Returns ErrTaskNotFound if the task is absent or owned by another
	// user; deleting the same task twice fails the second time.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// List returns one page of the user's tasks, most recently created
	// first, along with the total count matching the filters (across all
	// pages).
	List(ctx context.Context, userID uuid.UUID, params ListParams) ([]*domain.Task, int, error)
}
