package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurantapi/internal/config"
)

func TestNewLocal_CreatesDirIdempotently(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")

	_, err := NewLocal(dir)
	require.NoError(t, err)
	st, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	_, err = NewLocal(dir)
	assert.NoError(t, err)
}

func TestLocal_PutGet(t *testing.T) {
	ctx := context.Background()
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	info, err := l.Put(ctx, "1700000000000.png", strings.NewReader("png-bytes"), PutObjectOptions{Size: 9, ContentType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "1700000000000.png", info.Key)
	assert.Equal(t, int64(9), info.Size)

	rc, got, err := l.Get(ctx, "1700000000000.png")
	require.NoError(t, err)
	defer rc.Close()
	b, _ := io.ReadAll(rc)
	assert.Equal(t, "png-bytes", string(b))
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, int64(9), got.Size)
}

func TestLocal_PutOverwritesSameKey(t *testing.T) {
	ctx := context.Background()
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.Put(ctx, "1.jpg", strings.NewReader("first upload"), PutObjectOptions{})
	require.NoError(t, err)
	_, err = l.Put(ctx, "1.jpg", strings.NewReader("second"), PutObjectOptions{})
	require.NoError(t, err)

	b, err := os.ReadFile(filepath.Join(l.Dir(), "1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))
}

func TestLocal_KeyCannotEscapeDir(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	l, err := NewLocal(filepath.Join(root, "uploads"))
	require.NoError(t, err)

	info, err := l.Put(ctx, "../escape.txt", strings.NewReader("x"), PutObjectOptions{})
	require.NoError(t, err)
	assert.Equal(t, "escape.txt", info.Key)
	assert.FileExists(t, filepath.Join(root, "uploads", "escape.txt"))
	assert.NoFileExists(t, filepath.Join(root, "escape.txt"))
}

func TestLocal_GetMissing(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, _, err = l.Get(context.Background(), "nope.jpg")
	assert.True(t, errors.Is(err, ErrNotFound))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLocal_PutWriteError(t *testing.T) {
	l, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, err = l.Put(context.Background(), "2.jpg", failingReader{}, PutObjectOptions{})
	assert.EqualError(t, err, "write file: disk full")
}

func TestNew(t *testing.T) {
	s, err := New(config.StorageConfig{Driver: "local", UploadDir: t.TempDir()}, config.MinIOConfig{})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, s)

	_, err = New(config.StorageConfig{Driver: "minio"}, config.MinIOConfig{})
	assert.EqualError(t, err, "minio endpoint is required")

	_, err = New(config.StorageConfig{Driver: "ftp"}, config.MinIOConfig{})
	assert.EqualError(t, err, "unsupported storage driver: ftp")
}
