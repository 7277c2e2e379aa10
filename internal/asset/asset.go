package asset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	"restaurantapi/internal/storage"
)

// URLPrefix is the path under which stored assets are served.
const URLPrefix = "/uploads"

// Upload is one inbound file. Filename is only used for its extension.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Reference describes a stored asset. URL carries StoredName path-escaped.
type Reference struct {
	Extension  string
	StoredName string
	URL        string
}

// Store turns an upload into a uniquely named object and a public URL.
type Store struct {
	backend storage.Storage
	baseURL string
	now     func() time.Time
	token   func(now time.Time) string
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for naming.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithUUIDNames names assets with a random UUID instead of the upload time.
func WithUUIDNames() Option {
	return func(s *Store) {
		s.token = func(time.Time) string { return uuid.NewString() }
	}
}

// NewStore returns a Store writing to backend. baseURL is the public origin
// (scheme, host and port) prepended to URLPrefix in returned URLs.
func NewStore(backend storage.Storage, baseURL string, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		baseURL: baseURL,
		now:     time.Now,
		token:   millisToken,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// millisToken is unique only per millisecond. Two uploads with the same
// extension in the same millisecond get the same name and the later write wins.
func millisToken(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

// Save writes u and returns its reference. A nil upload yields a nil
// reference and no write.
func (s *Store) Save(ctx context.Context, u *Upload) (*Reference, error) {
	if u == nil {
		return nil, nil
	}

	ext := filepath.Ext(u.Filename)
	name := s.token(s.now()) + ext

	if _, err := s.backend.Put(ctx, name, u.Body, storage.PutObjectOptions{
		Size:        u.Size,
		ContentType: u.ContentType,
		Metadata: map[string]string{
			"original-filename": u.Filename,
		},
	}); err != nil {
		return nil, fmt.Errorf("store asset: %w", err)
	}

	return &Reference{
		Extension:  ext,
		StoredName: name,
		URL:        s.baseURL + URLPrefix + "/" + url.PathEscape(name),
	}, nil
}

// Open streams a stored asset by its stored name.
func (s *Store) Open(ctx context.Context, name string) (io.ReadCloser, storage.ObjectInfo, error) {
	return s.backend.Get(ctx, filepath.Base(name))
}
