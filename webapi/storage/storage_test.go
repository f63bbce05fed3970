package storage_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/dto"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	storageapi "github.com/benaja-bendo/Le-creuset-backend/webapi/storage"
	e2e "github.com/benaja-bendo/Le-creuset-backend/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestObjectName(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "1700000000123-my_report__1_.txt", storageapi.ObjectName("my report (1).txt", now))
	assert.Equal(t, "1700000000123-bague_or.stl", storageapi.ObjectName("bague-or.stl", now))
	assert.Equal(t, "1700000000123-.._.._etc_passwd", storageapi.ObjectName("../../etc/passwd", now))
}

type StorageTestSuite struct {
	e2e.E2ETestSuite
	client *model.User
}

func (s *StorageTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.client = s.CreateUser("client@example.com")
}

func (s *StorageTestSuite) TestUploadAndDownload() {
	content := []byte("hello casting world\n")
	resp := s.Upload("/api/storage/upload", "notes de coulée.txt", content, "")
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	var up storageapi.UploadResult
	s.Decode(resp, &up)
	s.Equal("notes de coulée.txt", up.OriginalName)
	s.True(strings.HasSuffix(up.StoragePath, "-notes_de_coul_e.txt"), up.StoragePath)
	s.Equal(storageapi.FilePrefix+up.StoragePath, up.URL)
	s.EqualValues(len(content), up.Size)
	s.True(strings.HasPrefix(up.MimeType, "text/plain"), up.MimeType)

	resp = s.MakeRequest(http.MethodGet, up.URL, "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.True(strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/plain"))
	body, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Equal(content, body)
}

func (s *StorageTestSuite) TestUpload_MissingFile() {
	resp := s.MakeRequest(http.MethodPost, "/api/storage/upload", `{"file":"x"}`, "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *StorageTestSuite) TestDownload_Missing() {
	resp := s.MakeRequest(http.MethodGet, "/api/storage/file/nope.pdf", "", "")
	defer resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *StorageTestSuite) TestURL_FallsBackToPublicPath() {
	_, err := s.Store.Put(context.Background(), "kbis.pdf", strings.NewReader("%PDF-1.4"), 8, "application/pdf")
	s.Require().NoError(err)

	resp := s.MakeRequest(http.MethodGet, "/api/storage/url/kbis.pdf", "", "")
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	token := s.LoginUser(s.client)
	resp = s.MakeRequest(http.MethodGet, "/api/storage/url/kbis.pdf", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)
	var out map[string]string
	s.Decode(resp, &out)
	s.Equal("/api/storage/file/kbis.pdf", out["url"])

	resp = s.MakeRequest(http.MethodGet, "/api/storage/url/missing.pdf", "", token)
	resp.Body.Close() //nolint:errcheck
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func TestStorageTestSuite(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

// presigningStore answers every key with a signed link.
type presigningStore struct {
	storage.FileStore
	ttl time.Duration
}

func (p *presigningStore) Exists(context.Context, string) (bool, error) { return true, nil }

func (p *presigningStore) PresignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	p.ttl = ttl
	return "https://bucket.example.com/" + key + "?X-Amz-Signature=abc", nil
}

func TestURL_UsesPresigner(t *testing.T) {
	cfg := &config.App{
		Auth:    &config.Auth{Jwt: &config.Jwt{Secret: "s3cret", Expiry: time.Minute}},
		Storage: &config.Storage{S3: &config.S3Storage{PresignTTL: 15 * time.Minute}},
	}
	auth := authsvc.New(nil, cfg.Auth.Jwt, slog.Default())
	store := &presigningStore{}

	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	storageapi.Routes(app, store, auth, cfg)

	token, err := auth.GenerateToken(context.Background(), &dto.UserRead{
		ID: uuid.New(), Email: "c@example.com", Role: user.RoleClient,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/storage/url/model.stl", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close() //nolint:errcheck
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "https://bucket.example.com/model.stl?X-Amz-Signature=abc")
	assert.Equal(t, 15*time.Minute, store.ttl)
}
