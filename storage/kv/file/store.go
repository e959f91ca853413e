package filestore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/trezcool/isko/core/academic"
)

// Store is a file-backed Gateway: the whole session Snapshot is serialized as
// one JSON value, the durable equivalent of the browser's local storage.
type Store struct {
	path string
}

var _ academic.Gateway = (*Store)(nil)

func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "creating storage dir")
	}
	return &Store{path: path}, nil
}

// Load reads the saved snapshot. A missing file or malformed JSON is "no
// prior state", not an error.
func (s *Store) Load(context.Context) (*academic.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading snapshot")
	}
	snap := new(academic.Snapshot)
	if err := json.Unmarshal(data, snap); err != nil {
		return nil, nil
	}
	return snap, nil
}

func (s *Store) Save(_ context.Context, snap academic.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errors.Wrap(err, "serializing snapshot")
	}
	// write-then-rename keeps the snapshot atomic on disk
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "writing snapshot")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "replacing snapshot")
	}
	return nil
}

func (s *Store) Clear(context.Context) error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing snapshot")
	}
	return nil
}
