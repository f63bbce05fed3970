package storage

import (
	"context"
	"crypto/md5" //nolint:gosec
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
	"github.com/gabriel-vasile/mimetype"
)

// Local stores objects as files below a root directory.
type Local struct {
	root string
}

// NewLocal creates the root directory when missing.
func NewLocal(root string) (*Local, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Local{root: abs}, nil
}

func (l *Local) path(key string) (string, error) {
	clean := filepath.Clean("/" + strings.TrimSpace(key))
	if clean == "/" {
		return "", storage.ErrInvalidKey
	}
	p := filepath.Join(l.root, clean)
	if !strings.HasPrefix(p, l.root+string(filepath.Separator)) {
		return "", storage.ErrInvalidKey
	}
	return p, nil
}

func (l *Local) Put(
	ctx context.Context,
	key string,
	r io.Reader,
	_ int64,
	_ string,
) (*storage.PutResult, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(filepath.Dir(p), ".upload-*")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	h := md5.New() //nolint:gosec
	n, err := io.Copy(io.MultiWriter(tmp, h), readerWithContext(ctx, r))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, err
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return nil, err
	}
	return &storage.PutResult{Key: key, Size: n, Checksum: hex.EncodeToString(h.Sum(nil))}, nil
}

func (l *Local) Get(_ context.Context, key string) (io.ReadCloser, *storage.ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, nil, err
	}
	info, err := l.stat(key, p)
	if err != nil {
		return nil, nil, err
	}
	f, err := os.Open(p) //nolint:gosec
	if err != nil {
		return nil, nil, mapFSError(err)
	}
	return f, info, nil
}

func (l *Local) Delete(_ context.Context, key string) error {
	p, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *Local) Exists(_ context.Context, key string) (bool, error) {
	p, err := l.path(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(p)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	}
	return false, err
}

func (l *Local) Stat(_ context.Context, key string) (*storage.ObjectInfo, error) {
	p, err := l.path(key)
	if err != nil {
		return nil, err
	}
	return l.stat(key, p)
}

func (l *Local) stat(key, p string) (*storage.ObjectInfo, error) {
	fi, err := os.Stat(p)
	if err != nil {
		return nil, mapFSError(err)
	}
	if fi.IsDir() {
		return nil, storage.ErrObjectNotFound
	}
	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(p); err == nil {
		contentType = mt.String()
	}
	return &storage.ObjectInfo{
		Key:          key,
		Size:         fi.Size(),
		ContentType:  contentType,
		LastModified: fi.ModTime(),
	}, nil
}

func mapFSError(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return storage.ErrObjectNotFound
	}
	return err
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return ctxReader{ctx: ctx, r: r}
}

var _ storage.FileStore = (*Local)(nil)
