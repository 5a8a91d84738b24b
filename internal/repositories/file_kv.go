package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sbilibin2017/gw-batch-withdrawal/internal/logger"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// FileKVRepository stores string values in a single JSON object on disk.
// Writes replace the file atomically.
type FileKVRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileKVRepository creates a repository backed by the file at path.
// The file and its directory are created on first write.
func NewFileKVRepository(path string) *FileKVRepository {
	return &FileKVRepository{path: path}
}

// Get returns the value stored under key.
func (r *FileKVRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.read()
	if err != nil {
		return "", err
	}
	val, ok := data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

// Set stores value under key.
func (r *FileKVRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.read()
	if err != nil {
		return err
	}
	data[key] = value

	err = r.write(data)
	logger.Log.Debugw("file kv set", "path", r.path, "key", key, "error", err)
	return err
}

// Delete removes key. Deleting a missing key is not an error.
func (r *FileKVRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)

	err = r.write(data)
	logger.Log.Debugw("file kv delete", "path", r.path, "key", key, "error", err)
	return err
}

// Exists reports whether key holds a value.
func (r *FileKVRepository) Exists(ctx context.Context, key string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.read()
	if err != nil {
		return false, err
	}
	_, ok := data[key]
	return ok, nil
}

func (r *FileKVRepository) read() (map[string]string, error) {
	raw, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}
	data := map[string]string{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return data, nil
}

func (r *FileKVRepository) write(data map[string]string) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("replace %s: %w", r.path, err)
	}
	return nil
}
