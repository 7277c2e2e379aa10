package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
)

// Local stores objects as files in a single content directory.
type Local struct {
	dir string
}

// NewLocal creates the content directory if it is missing. Calling it for an
// existing directory is not an error.
func NewLocal(dir string) (*Local, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Local{dir: dir}, nil
}

// Dir is the directory served under /uploads.
func (l *Local) Dir() string {
	return l.dir
}

func (l *Local) path(key string) string {
	return filepath.Join(l.dir, filepath.Base(key))
}

// Put creates or truncates the file for key. A failed copy leaves the partial
// file in place.
func (l *Local) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	f, err := os.Create(l.path(key))
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return ObjectInfo{}, fmt.Errorf("close file: %w", err)
	}

	return ObjectInfo{
		Key:         filepath.Base(key),
		Size:        n,
		ContentType: opt.ContentType,
	}, nil
}

// Get opens the file for key.
func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	f, err := os.Open(l.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, ObjectInfo{}, err
	}
	if st.IsDir() {
		f.Close()
		return nil, ObjectInfo{}, ErrNotFound
	}
	return f, ObjectInfo{
		Key:          st.Name(),
		Size:         st.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(st.Name())),
		LastModified: st.ModTime(),
	}, nil
}
