package jsonstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/runoshun/aicli/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "state", "history.json"))
}

func TestStore_AddAndList(t *testing.T) {
	store := newTestStore(t)

	started := time.Now().Truncate(time.Second) // JSON loses monotonic clock
	for i, line := range []string{"ls", "pwd", "make test"} {
		id, err := store.Add(domain.HistoryEntry{
			Command:   line,
			StartedAt: started,
			Outcome:   domain.OutcomeSuccess,
			Duration:  time.Duration(i) * time.Second,
		})
		if err != nil {
			t.Fatalf("Add(%q) error = %v", line, err)
		}
		if id != i+1 {
			t.Errorf("Add(%q) id = %d, want %d", line, id, i+1)
		}
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	if entries[0].Command != "make test" || entries[2].Command != "ls" {
		t.Errorf("List() order = [%s ... %s], want newest first", entries[0].Command, entries[2].Command)
	}
	if !entries[0].StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", entries[0].StartedAt, started)
	}
	if entries[0].Duration != 2*time.Second {
		t.Errorf("Duration = %v, want 2s", entries[0].Duration)
	}
}

func TestStore_ListLimit(t *testing.T) {
	store := newTestStore(t)
	for i := 0; i < 5; i++ {
		if _, err := store.Add(domain.HistoryEntry{Command: "echo"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	entries, err := store.List(2)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("List(2) returned %d entries", len(entries))
	}
	if entries[0].ID != 5 || entries[1].ID != 4 {
		t.Errorf("List(2) IDs = %d, %d; want 5, 4", entries[0].ID, entries[1].ID)
	}
}

func TestStore_ListMissingFile(t *testing.T) {
	store := newTestStore(t)

	entries, err := store.List(10)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if entries == nil || len(entries) != 0 {
		t.Errorf("List() = %v, want empty slice", entries)
	}
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Add(domain.HistoryEntry{Command: "ls"}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("List() after Clear returned %d entries", len(entries))
	}

	// IDs are not reused after clear
	id, err := store.Add(domain.HistoryEntry{Command: "pwd"})
	if err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if id != 2 {
		t.Errorf("Add() after Clear id = %d, want 2", id)
	}
}

func TestStore_MaxEntries(t *testing.T) {
	store := newTestStore(t).WithMaxEntries(3)
	for i := 0; i < 5; i++ {
		if _, err := store.Add(domain.HistoryEntry{Command: "echo"}); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("List() returned %d entries, want 3", len(entries))
	}
	if entries[2].ID != 3 {
		t.Errorf("oldest kept ID = %d, want 3", entries[2].ID)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.path), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.List(0); err == nil {
		t.Error("List() on corrupt file should fail")
	}
	if _, err := store.Add(domain.HistoryEntry{Command: "ls"}); err == nil {
		t.Error("Add() on corrupt file should fail")
	}
}

func TestStore_ConcurrentAdd(t *testing.T) {
	store := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Add(domain.HistoryEntry{Command: "echo"}); err != nil {
				t.Errorf("Add() error = %v", err)
			}
		}()
	}
	wg.Wait()

	entries, err := store.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 10 {
		t.Errorf("List() returned %d entries, want 10", len(entries))
	}
	seen := make(map[int]bool)
	for _, e := range entries {
		if seen[e.ID] {
			t.Errorf("duplicate ID %d", e.ID)
		}
		seen[e.ID] = true
	}
}
