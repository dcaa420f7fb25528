package mocks

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

func seed(t *testing.T, s *TaskStore, userID uuid.UUID, title string, description *string) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(userID, title, description)
	require.NoError(t, err)
	require.NoError(t, s.Create(context.Background(), task))
	return task
}

// The search filter matches the SQL store's ILIKE semantics, including
// wildcard handling, so handler tests built on the mock see the same
// behavior the real store gives.
func TestTaskStoreSearchSemantics(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	taskStore := NewTaskStore()

	desc := "monthly 100% tax review"
	seed(t, taskStore, userID, "Prepare Report", &desc)
	seed(t, taskStore, userID, "prepare dinner", nil)
	seed(t, taskStore, userID, "Send invoice", nil)

	search := func(t *testing.T, text string) []string {
		t.Helper()

		tasks, _, err := taskStore.List(context.Background(), userID,
			store.ListParams{Search: text})
		require.NoError(t, err)

		titles := make([]string, len(tasks))
		for i, task := range tasks {
			titles[i] = task.Title
		}
		return titles
	}

	t.Run("case-insensitive containment", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]string{"Prepare Report", "prepare dinner"},
			search(t, "PREPARE"))
	})

	t.Run("matches description", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Prepare Report"}, search(t, "review"))
	})

	t.Run("percent matches any run", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Prepare Report"}, search(t, "prepare%report"))
	})

	t.Run("underscore matches one character", func(t *testing.T) {
		assert.ElementsMatch(t,
			[]string{"Prepare Report", "prepare dinner"},
			search(t, "prepare_"))
		assert.Empty(t, search(t, "invoice_"))
	})

	t.Run("percent is a wildcard not a literal", func(t *testing.T) {
		// "100%tax" matches "100" followed by anything and then "tax",
		// not only a literal percent sign.
		assert.ElementsMatch(t, []string{"Prepare Report"}, search(t, "100%tax"))
	})

	t.Run("backslash escapes a wildcard", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Prepare Report"}, search(t, `100\%`))
		assert.Empty(t, search(t, `101\%`))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, search(t, "groceries"))
	})
}
