package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"todo/internal/domain"
	apperrors "todo/internal/errors"
)

const (
	defaultDirPerm  os.FileMode = 0755
	defaultFilePerm os.FileMode = 0644
)

// Store keeps one task collection as a JSON array in a single file.
// The whole collection is the unit of serialization.
type Store struct {
	path     string
	dirPerm  os.FileMode
	filePerm os.FileMode
}

// Option configures a Store
type Option func(*Store)

// WithDirPermissions sets the mode used when creating the parent directory.
func WithDirPermissions(perm os.FileMode) Option {
	return func(s *Store) { s.dirPerm = perm }
}

// WithFilePermissions sets the mode of the written document.
func WithFilePermissions(perm os.FileMode) Option {
	return func(s *Store) { s.filePerm = perm }
}

// New creates a store backed by path, creating its directory if needed.
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:     path,
		dirPerm:  defaultDirPerm,
		filePerm: defaultFilePerm,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.ensureDir(); err != nil {
		return nil, err
	}
	return s, nil
}

// Location returns the path of the backing file
func (s *Store) Location() string {
	return s.path
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, s.dirPerm); err != nil {
		return apperrors.NewPersistenceError("create directory for", s.path, err)
	}
	return nil
}

// Load reads the collection. A missing file, an empty file and a JSON null
// all yield an empty collection.
func (s *Store) Load(ctx context.Context) ([]*domain.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewPersistenceError("load", s.path, err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []*domain.Task{}, nil
		}
		return nil, apperrors.NewPersistenceError("load", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []*domain.Task{}, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, apperrors.NewPersistenceError("decode", s.path, err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for i, r := range records {
		t, err := fromRecord(r)
		if err != nil {
			return nil, apperrors.NewPersistenceError("decode", s.path, fmt.Errorf("record %d: %w", i, err)).
				WithContext("record", i)
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Save replaces the file's content with tasks. The document is written to a
// temporary file next to the target and renamed over it, so a failed save
// leaves the previous content in place.
func (s *Store) Save(ctx context.Context, tasks []*domain.Task) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewPersistenceError("save", s.path, err)
	}

	data, err := json.MarshalIndent(toRecords(tasks), "", "  ")
	if err != nil {
		return apperrors.NewPersistenceError("encode", s.path, err)
	}
	data = append(data, '\n')

	if err := s.ensureDir(); err != nil {
		return err
	}

	if err := s.writeAtomic(data); err != nil {
		return apperrors.NewPersistenceError("save", s.path, err)
	}
	return nil
}

func (s *Store) writeAtomic(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, s.filePerm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
