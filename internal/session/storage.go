package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Storage is one persistence tier for the session. The CLI wires a durable
// tier (config dir) and an ephemeral tier (temp dir, gone with the machine
// session), mirroring the durable/session-scoped split of a browser.
type Storage interface {
	// Read returns the stored payload, or ok=false when nothing is stored.
	Read() (data []byte, ok bool, err error)
	Write(data []byte) error
	Clear() error
}

// FileStorage stores the session payload in a single file.
type FileStorage struct {
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (f *FileStorage) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Write is atomic: the payload lands in a temp file first and is renamed
// into place, so a crash never leaves a half-written session.
func (f *FileStorage) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path)
}

func (f *FileStorage) Clear() error {
	err := os.Remove(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

var _ Storage = (*FileStorage)(nil)
