package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileStorage is a Storage backed by a TOML file on disk.
//
// Reads and writes go to an in-memory map; Flush persists the map on a
// background goroutine so a frame is never blocked on disk I/O. Call
// Close before exiting to wait for the last write.
//
// FileStorage is not safe for concurrent use; like the rest of quill it
// is owned by one frame pipeline.
type FileStorage struct {
	filepath string
	kv       map[string]string
	dirty    bool

	// lastSave is closed when the most recent background write finished.
	lastSave chan struct{}
}

// NewFileStorage loads (or creates) the store backed by the given file.
// A missing file is not an error: the store simply starts empty.
func NewFileStorage(path string) *FileStorage {
	Logger().Debug("loading app state", "path", path)
	return &FileStorage{
		filepath: path,
		kv:       readTOML(path),
	}
}

// FromAppID creates a FileStorage in the platform's data directory for
// the given application id (see StorageDir). Returns an error if no
// suitable directory exists or it cannot be created.
func FromAppID(appID string) (*FileStorage, error) {
	dir, err := StorageDir(appID)
	if err != nil {
		return nil, fmt.Errorf("storage disabled: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage disabled: creating %q: %w", dir, err)
	}
	return NewFileStorage(filepath.Join(dir, "app.toml")), nil
}

// GetString implements Storage.
func (s *FileStorage) GetString(key string) (string, bool) {
	v, ok := s.kv[key]
	return v, ok
}

// SetString implements Storage.
func (s *FileStorage) SetString(key, value string) {
	if old, ok := s.kv[key]; ok && old == value {
		return
	}
	s.kv[key] = value
	s.dirty = true
}

// Flush implements Storage. If anything changed since the last flush, a
// snapshot of the store is written to disk on a background goroutine,
// after waiting for any previous write to finish.
func (s *FileStorage) Flush() {
	if !s.dirty {
		return
	}
	s.dirty = false

	snapshot := make(map[string]string, len(s.kv))
	for k, v := range s.kv {
		snapshot[k] = v
	}

	s.join()
	done := make(chan struct{})
	s.lastSave = done
	go func() {
		defer close(done)
		saveToDisk(s.filepath, snapshot)
	}()
}

// Close flushes pending changes and waits for the last write to finish.
func (s *FileStorage) Close() {
	s.Flush()
	s.join()
}

// Path returns the file backing this store.
func (s *FileStorage) Path() string {
	return s.filepath
}

func (s *FileStorage) join() {
	if s.lastSave != nil {
		<-s.lastSave
		s.lastSave = nil
	}
}

// fileFormat is the on-disk TOML document.
type fileFormat struct {
	KV map[string]string `toml:"kv"`
}

func readTOML(path string) map[string]string {
	var doc fileFormat
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			// File exists but is unreadable or malformed: start empty
			// rather than failing the application.
			Logger().Warn("failed to parse app state", "path", path, "err", err)
		}
	}
	if doc.KV == nil {
		doc.KV = map[string]string{}
	}
	return doc.KV
}

func saveToDisk(path string, kv map[string]string) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			Logger().Warn("failed to create storage directory", "dir", dir, "err", err)
			return
		}
	}

	f, err := os.Create(path)
	if err != nil {
		Logger().Warn("failed to create app state file", "path", path, "err", err)
		return
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(fileFormat{KV: kv}); err != nil {
		Logger().Warn("failed to serialize app state", "path", path, "err", err)
		return
	}
	Logger().Debug("persisted app state", "path", path)
}
