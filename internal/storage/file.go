package storage

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"ticklist/internal/task"
)

//go:embed state.schema.json
var stateSchemaJSON string

var stateSchema = jsonschema.MustCompileString("state.schema.json", stateSchemaJSON)

// stateFile is the on-disk layout. Older files nest the items under
// "tasks"; both are read, only the flat form is written.
type stateFile struct {
	Items  []task.Task  `json:"items"`
	Legacy *legacyTasks `json:"tasks,omitempty"`
}

type legacyTasks struct {
	Items []task.Task `json:"items"`
}

// FileStore keeps the tasks in one JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store for path. The file is not touched until
// Load or Save.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.New("state path is empty")
	}
	return &FileStore{path: path}, nil
}

// Path returns the state file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored tasks. A missing file is an empty list, not an
// error. Malformed content wraps ErrCorrupt.
func (s *FileStore) Load() ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return decodeState(data)
}

func decodeState(data []byte) ([]task.Task, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := stateSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var f stateFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if f.Items == nil && f.Legacy != nil {
		return f.Legacy.Items, nil
	}
	return f.Items, nil
}

// Save writes the tasks through a temporary file and a rename, so a failed
// write leaves the previous state in place.
func (s *FileStore) Save(items []task.Task) error {
	if items == nil {
		items = []task.Task{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(stateFile{Items: items}); err != nil {
		return fmt.Errorf("marshal state file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *FileStore) Close() error {
	return nil
}
