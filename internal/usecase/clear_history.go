package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/aicli/internal/domain"
)

// ClearHistoryInput contains the parameters for clearing history.
type ClearHistoryInput struct{}

// ClearHistory is the use case for removing all history entries.
type ClearHistory struct {
	history domain.HistoryRepository
}

// NewClearHistory creates a new ClearHistory use case.
func NewClearHistory(history domain.HistoryRepository) *ClearHistory {
	return &ClearHistory{history: history}
}

// Execute removes all history entries.
func (uc *ClearHistory) Execute(_ context.Context, _ ClearHistoryInput) error {
	if err := uc.history.Clear(); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
