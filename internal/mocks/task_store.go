package mocks

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore for tests.
// It mirrors the real store's semantics: ownership scoping on every call,
// newest-first ordering, exact status filtering, and ILIKE-style search
// (case-insensitive, % and _ as wildcards) over title and description.
type TaskStore struct {
	mu    sync.Mutex
	tasks map[uuid.UUID]*domain.Task

	// Err, when set, is returned by every method to simulate failures.
	Err error
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// Create implements store.TaskStore.Create.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

// GetForUser implements store.TaskStore.GetForUser.
func (s *TaskStore) GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Task, error) {
	if s.Err != nil {
		return nil, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

// Update implements store.TaskStore.Update.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

// Delete implements store.TaskStore.Delete.
func (s *TaskStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if s.Err != nil {
		return s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// List implements store.TaskStore.List.
func (s *TaskStore) List(
	ctx context.Context,
	userID uuid.UUID,
	params store.ListParams,
) ([]*domain.Task, int, error) {
	if s.Err != nil {
		return nil, 0, s.Err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	params = params.Normalize()
	pattern := ilikePattern(params.Search)

	matched := []*domain.Task{}
	for _, task := range s.tasks {
		if task.UserID != userID {
			continue
		}
		if params.Status != "" && task.Status != params.Status {
			continue
		}
		if params.Search != "" && !pattern.MatchString(task.Title) &&
			(task.Description == nil || !pattern.MatchString(*task.Description)) {
			continue
		}
		copied := *task
		matched = append(matched, &copied)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := len(matched)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

// ilikePattern compiles the search text into a regexp with the same
// semantics as the SQL store's ILIKE filter: case-insensitive containment
// where % matches any run of characters, _ matches any single character,
// and a backslash escapes the following character.
func ilikePattern(search string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("(?is)")

	escaped := false
	for _, r := range search {
		if escaped {
			b.WriteString(regexp.QuoteMeta(string(r)))
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '%':
			b.WriteString(".*")
		case '_':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	if escaped {
		b.WriteString(regexp.QuoteMeta(`\`))
	}

	return regexp.MustCompile(b.String())
}
