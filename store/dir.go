package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Dir is a Store keeping one file per key in a directory, so that the data
// stays readable and can be versioned.
type Dir struct {
	root string
	log  logrus.FieldLogger
}

// OpenDir returns the Store for directory root. The directory is created on
// the first Put.
func OpenDir(root string, log logrus.FieldLogger) (*Dir, error) {
	if root == "" {
		return nil, errors.New("store directory is required")
	}
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("store %q is not a directory", root)
	}
	return &Dir{root: root, log: log}, nil
}

func (d *Dir) path(key string) string { return filepath.Join(d.root, key) }

func (d *Dir) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(d.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return data, nil
}

// Put writes the value to a temporary file first, then renames it over the
// previous one.
func (d *Dir) Put(_ context.Context, key string, value []byte) error {
	if err := os.MkdirAll(d.root, 0o755); err != nil {
		return fmt.Errorf("cannot create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(d.root, "."+key+"-*")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	d.log.WithField("name", d.path(key)).Debug("write-store-file")
	return nil
}

func (d *Dir) Close() error { return nil }
