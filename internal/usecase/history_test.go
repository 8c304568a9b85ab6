package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/runoshun/aicli/internal/domain"
	"github.com/runoshun/aicli/internal/testutil"
	"github.com/runoshun/aicli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errListFailed = errors.New("history file unreadable")

func seedHistory(t *testing.T, n int) *testutil.MockHistoryRepository {
	t.Helper()
	repo := testutil.NewMockHistoryRepository()
	for i := 0; i < n; i++ {
		_, err := repo.Add(domain.HistoryEntry{Command: "cmd", Outcome: domain.OutcomeSuccess})
		require.NoError(t, err)
	}
	return repo
}

func TestListHistory_Execute(t *testing.T) {
	t.Run("uses configured limit by default", func(t *testing.T) {
		repo := seedHistory(t, 5)
		loader := testutil.NewMockConfigLoader()
		loader.Config.History.Limit = 2

		uc := usecase.NewListHistory(repo, loader)
		out, err := uc.Execute(context.Background(), usecase.ListHistoryInput{})

		require.NoError(t, err)
		require.Len(t, out.Entries, 2)
		assert.Equal(t, 5, out.Entries[0].ID, "newest first")
		assert.Equal(t, 4, out.Entries[1].ID)
	})

	t.Run("explicit limit overrides config", func(t *testing.T) {
		repo := seedHistory(t, 5)

		uc := usecase.NewListHistory(repo, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ListHistoryInput{Limit: 3})

		require.NoError(t, err)
		assert.Len(t, out.Entries, 3)
	})

	t.Run("negative limit lists everything", func(t *testing.T) {
		repo := seedHistory(t, 25)

		uc := usecase.NewListHistory(repo, testutil.NewMockConfigLoader())
		out, err := uc.Execute(context.Background(), usecase.ListHistoryInput{Limit: -1})

		require.NoError(t, err)
		assert.Len(t, out.Entries, 25)
	})

	t.Run("returns repository error", func(t *testing.T) {
		repo := testutil.NewMockHistoryRepository()
		repo.ListErr = errListFailed

		uc := usecase.NewListHistory(repo, testutil.NewMockConfigLoader())
		_, err := uc.Execute(context.Background(), usecase.ListHistoryInput{Limit: 1})

		assert.ErrorIs(t, err, errListFailed)
	})
}

func TestClearHistory_Execute(t *testing.T) {
	t.Run("clears entries", func(t *testing.T) {
		repo := seedHistory(t, 3)

		err := usecase.NewClearHistory(repo).Execute(context.Background(), usecase.ClearHistoryInput{})

		require.NoError(t, err)
		assert.True(t, repo.Cleared)
		assert.Empty(t, repo.Entries)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		repo := testutil.NewMockHistoryRepository()
		repo.ClearErr = errors.New("locked")

		err := usecase.NewClearHistory(repo).Execute(context.Background(), usecase.ClearHistoryInput{})

		assert.EqualError(t, err, "clear history: locked")
	})
}
