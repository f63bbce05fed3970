package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocal_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	body := "solid cube\nendsolid cube\n"
	res, err := store.Put(ctx, "1700000000000-cube.stl", strings.NewReader(body), int64(len(body)), "")
	require.NoError(t, err)
	assert.Equal(t, int64(len(body)), res.Size)
	assert.Len(t, res.Checksum, 32)

	ok, err := store.Exists(ctx, "1700000000000-cube.stl")
	require.NoError(t, err)
	assert.True(t, ok)

	rc, info, err := store.Get(ctx, "1700000000000-cube.stl")
	require.NoError(t, err)
	defer rc.Close() //nolint:errcheck
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, body, string(data))
	assert.Equal(t, int64(len(body)), info.Size)
	assert.True(t, strings.HasPrefix(info.ContentType, "text/plain"))

	require.NoError(t, store.Delete(ctx, "1700000000000-cube.stl"))
	ok, err = store.Exists(ctx, "1700000000000-cube.stl")
	require.NoError(t, err)
	assert.False(t, ok)

	// deleting twice is harmless
	assert.NoError(t, store.Delete(ctx, "1700000000000-cube.stl"))
}

func TestLocal_MissingObject(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Get(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	_, err = store.Stat(context.Background(), "nope.pdf")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestLocal_KeysStayInsideRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocal(root)
	require.NoError(t, err)

	_, err = store.Put(context.Background(), "../../escape.txt", strings.NewReader("x"), 1, "")
	require.NoError(t, err)
	ok, err := store.Exists(context.Background(), "escape.txt")
	require.NoError(t, err)
	assert.True(t, ok, "traversal segments are resolved against the root")

	_, err = store.Put(context.Background(), "", strings.NewReader("x"), 1, "")
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}

func TestNew_SelectsDriver(t *testing.T) {
	store, err := New(context.Background(), &config.Storage{
		Driver: DriverLocal,
		Local:  &config.LocalStorage{Path: t.TempDir()},
	})
	require.NoError(t, err)
	assert.IsType(t, &Local{}, store)

	_, err = New(context.Background(), &config.Storage{Driver: "ftp"})
	assert.Error(t, err)

	_, err = New(context.Background(), &config.Storage{Driver: DriverS3, S3: &config.S3Storage{}})
	assert.Error(t, err)
}
