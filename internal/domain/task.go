package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common task validation errors
var (
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")
	ErrEmptyTaskOwner = errors.New("task owner cannot be empty")
	ErrInvalidStatus  = errors.New("invalid task status")
)

// TaskStatus represents the lifecycle state of a task.
type TaskStatus string

// Valid task statuses
const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the defined values.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Next returns the status one toggle step ahead:
// COMPLETED goes back to PENDING, PENDING advances to IN_PROGRESS, and
// anything else (IN_PROGRESS) advances to COMPLETED. Applying Next three
// times always returns to the starting status.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusCompleted:
		return TaskStatusPending
	case TaskStatusPending:
		return TaskStatusInProgress
	default:
		return TaskStatusCompleted
	}
}

// Task represents a single to-do item owned by exactly one user.
// Only the owner may read, modify, delete, or toggle it.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewTask creates a new Task owned by the given user.
// Status defaults to PENDING and description may be nil (absent).
// Returns an error if validation fails.
func NewTask(userID uuid.UUID, title string, description *string) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      TaskStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}
	if t.UserID == uuid.Nil {
		return ErrEmptyTaskOwner
	}
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}
	if !t.Status.IsValid() {
		return ErrInvalidStatus
	}
	return nil
}

// Toggle advances the task status one step along the toggle cycle and
// refreshes the update timestamp.
func (t *Task) Toggle() {
	t.Status = t.Status.Next()
	t.UpdatedAt = time.Now().UTC()
}
