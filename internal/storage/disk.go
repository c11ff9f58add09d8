package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// DiskStore stages uploaded files in a local directory. Embedded kinds read
// the staged file back and remove it; reference-only kinds keep the file and
// store its URL.
type DiskStore struct {
	dir       string
	urlPrefix string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir, urlPrefix: "/uploads"}, nil
}

// Save writes the full upload to "<field>-<unixmilli><ext>" under the store
// directory and returns the generated filename. The timestamp suffix keeps
// concurrent uploads apart; same-millisecond uploads of the same field can
// still collide.
func (s *DiskStore) Save(field string, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := fmt.Sprintf("%s-%d%s", field, time.Now().UnixMilli(), filepath.Ext(fh.Filename))
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// ReadAndRemove loads a staged file into memory and deletes it from disk.
func (s *DiskStore) ReadAndRemove(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if err := os.Remove(path); err != nil {
		return nil, fmt.Errorf("remove %s: %w", name, err)
	}
	return data, nil
}

// URL returns the public path a staged file is served from.
func (s *DiskStore) URL(name string) string {
	return s.urlPrefix + "/" + name
}

// Dir returns the staging directory, for mounting as a static route.
func (s *DiskStore) Dir() string {
	return s.dir
}
