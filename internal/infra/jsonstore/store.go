// Package jsonstore provides a JSON file-based implementation of HistoryRepository.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/aicli/internal/domain"
)

// DefaultMaxEntries is the number of entries kept before the oldest are dropped.
const DefaultMaxEntries = 1000

// storeData represents the JSON file structure.
// Entries are kept oldest first.
type storeData struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Meta    meta                  `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	NextID int `json:"nextID"`
}

// Store implements domain.HistoryRepository using a JSON file.
type Store struct {
	path       string
	lockPath   string
	maxEntries int
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:       path,
		lockPath:   path + ".lock",
		maxEntries: DefaultMaxEntries,
	}
}

// WithMaxEntries sets how many entries are retained.
func (s *Store) WithMaxEntries(n int) *Store {
	s.maxEntries = n
	return s
}

// Ensure Store implements HistoryRepository.
var _ domain.HistoryRepository = (*Store)(nil)

// Add appends an entry and returns its assigned ID.
func (s *Store) Add(entry domain.HistoryEntry) (int, error) {
	var id int
	err := s.withLockWrite(func(data *storeData) error {
		id = data.Meta.NextID
		data.Meta.NextID++
		entry.ID = id
		data.Entries = append(data.Entries, entry)
		if s.maxEntries > 0 && len(data.Entries) > s.maxEntries {
			data.Entries = data.Entries[len(data.Entries)-s.maxEntries:]
		}
		return nil
	})
	return id, err
}

// List returns up to limit entries, newest first.
func (s *Store) List(limit int) ([]domain.HistoryEntry, error) {
	entries := []domain.HistoryEntry{} // Return empty slice, not nil
	err := s.withLock(func(data *storeData) error {
		for i := len(data.Entries) - 1; i >= 0; i-- {
			entries = append(entries, data.Entries[i])
			if limit > 0 && len(entries) == limit {
				break
			}
		}
		return nil
	})
	return entries, err
}

// Clear removes all entries. IDs keep increasing after a clear.
func (s *Store) Clear() error {
	return s.withLockWrite(func(data *storeData) error {
		data.Entries = nil
		return nil
	})
}

func newStoreData() *storeData {
	return &storeData{
		Entries: []domain.HistoryEntry{},
		Meta:    meta{NextID: 1},
	}
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the store file. A missing file reads as an empty store.
func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return newStoreData(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if data.Meta.NextID < 1 {
		data.Meta.NextID = 1
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
