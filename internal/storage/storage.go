// Package storage persists the ordered task list between runs. Only the
// tasks and their order are stored; selection and mode never are.
package storage

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"ticklist/internal/task"
	"ticklist/internal/tasklist"
)

// ErrCorrupt marks stored state that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt task state")

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Store reads and writes the ordered tasks.
type Store interface {
	Load() ([]task.Task, error)
	Save(items []task.Task) error
	Close() error
}

// Options selects and locates a backend.
type Options struct {
	Backend   string
	StatePath string
	DBPath    string
}

// Open returns the store for opts.Backend, defaulting to the JSON file.
func Open(opts Options) (Store, error) {
	switch opts.Backend {
	case "", BackendJSON:
		s, err := NewFileStore(opts.StatePath)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendSQLite:
		s, err := OpenSQLite(opts.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", opts.Backend)
	}
}

// LoadOrEmpty loads the list from s. A missing, unreadable or corrupt store
// yields an empty list; the failure is logged, not returned. The first task
// is selected when the list is non-empty.
func LoadOrEmpty(s Store, logger *log.Logger) *tasklist.List {
	items, err := s.Load()
	if err != nil {
		logger.Warn("starting with an empty list", "err", err)
		return tasklist.New(nil)
	}
	return tasklist.New(items)
}

// SaveList writes the list's tasks in order.
func SaveList(s Store, l *tasklist.List) error {
	if err := s.Save(l.Items()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
