package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("definitely-missing.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "./uploads", cfg.Storage.Local.Path)
	assert.Equal(t, time.Hour, cfg.Storage.S3.PresignTTL)
	assert.False(t, cfg.DB.Migrations)
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte(
		"AUTH_JWT_SECRET=from-file\nSTORAGE_DRIVER=s3\nSTORAGE_S3_BUCKET=molds\n",
	), 0o600))
	chdir(t, dir)
	t.Cleanup(func() {
		os.Unsetenv("AUTH_JWT_SECRET")   //nolint:errcheck
		os.Unsetenv("STORAGE_DRIVER")    //nolint:errcheck
		os.Unsetenv("STORAGE_S3_BUCKET") //nolint:errcheck
	})

	cfg, err := Load("test.env")
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Auth.Jwt.Secret)
	assert.Equal(t, "s3", cfg.Storage.Driver)
	assert.Equal(t, "molds", cfg.Storage.S3.Bucket)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")
	os.Unsetenv("AUTH_JWT_SECRET") //nolint:errcheck

	_, err := Load("definitely-missing.env")
	assert.Error(t, err)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue("short"))
	assert.Equal(t, "re****cdef", maskValue("re_1234567890abcdef"))
}

func TestFindEnvFile_WalksUp(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "cmd", "server")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), nil, 0o600))
	chdir(t, nested)

	found, err := findEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, ".env", filepath.Base(found))

	_, err = findEnvFile("missing.env")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}
