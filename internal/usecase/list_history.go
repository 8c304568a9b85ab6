package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/aicli/internal/domain"
)

// ListHistoryInput contains the parameters for listing history entries.
type ListHistoryInput struct {
	Limit int // Maximum number of entries; 0 uses history.limit from config, negative lists all
}

// ListHistoryOutput contains the listed entries, newest first.
type ListHistoryOutput struct {
	Entries []domain.HistoryEntry
}

// ListHistory is the use case for listing executed commands.
type ListHistory struct {
	history      domain.HistoryRepository
	configLoader domain.ConfigLoader
}

// NewListHistory creates a new ListHistory use case.
func NewListHistory(history domain.HistoryRepository, configLoader domain.ConfigLoader) *ListHistory {
	return &ListHistory{
		history:      history,
		configLoader: configLoader,
	}
}

// Execute returns the most recent history entries.
func (uc *ListHistory) Execute(_ context.Context, in ListHistoryInput) (*ListHistoryOutput, error) {
	limit := in.Limit
	if limit == 0 {
		cfg, err := uc.configLoader.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		limit = cfg.History.Limit
	}

	entries, err := uc.history.List(limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	return &ListHistoryOutput{Entries: entries}, nil
}
