// Package testutils runs the HTTP surface against an in-memory database for
// handler tests.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/infra/mail"
	infrarepo "github.com/benaja-bendo/Le-creuset-backend/infra/repository"
	"github.com/benaja-bendo/Le-creuset-backend/infra/repository/model"
	infrastorage "github.com/benaja-bendo/Le-creuset-backend/infra/storage"
	"github.com/benaja-bendo/Le-creuset-backend/internal/testutils"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/app"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
	"github.com/benaja-bendo/Le-creuset-backend/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// Envelope mirrors common.Response with a raw payload.
type Envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// E2ETestSuite serves the full route table over a fresh SQLite database for
// every test.
type E2ETestSuite struct {
	suite.Suite
	DB    *gorm.DB
	Store storage.FileStore
	App   *app.App
	Cfg   *config.App
	fiber *fiber.App
}

// TestConfig returns a configuration suitable for handler tests.
func TestConfig(storagePath string) *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{BodyLimit: 4 * 1024 * 1024, CorsOrigin: "*"},
		Log:       &config.Log{},
		DB:        &config.DB{Url: "sqlite::memory:"},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Minute},
		Storage:   &config.Storage{Driver: "local", Local: &config.LocalStorage{Path: storagePath}},
		Mail:      &config.Mail{AdminEmail: "admin@le-creuset.test", AppURL: "https://app.example.com"},
		Seed:      &config.Seed{},
	}
}

func (s *E2ETestSuite) SetupTest() {
	t := s.T()
	s.DB = testutils.NewTestDB(t)
	s.Cfg = TestConfig(t.TempDir())

	store, err := infrastorage.NewLocal(s.Cfg.Storage.Local.Path)
	s.Require().NoError(err)
	s.Store = store

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.App = app.New(&app.Deps{
		Uow:      infrarepo.NewUoW(s.DB),
		Store:    store,
		Notifier: mail.NewLog(logger),
		Logger:   logger,
	}, s.Cfg)
	s.fiber = webapi.SetupApp(s.App)
}

// MakeRequest sends a JSON request and returns the raw response.
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	return s.Do(req, token)
}

// Upload posts content as the multipart field "file".
func (s *E2ETestSuite) Upload(path, filename string, content []byte, token string) *http.Response {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	s.Require().NoError(err)
	_, err = part.Write(content)
	s.Require().NoError(err)
	s.Require().NoError(w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return s.Do(req, token)
}

// Do runs req through the app, adding a bearer token when given.
func (s *E2ETestSuite) Do(req *http.Request, token string) *http.Response {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.fiber.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// Decode reads the success envelope and unmarshals its data into out.
func (s *E2ETestSuite) Decode(resp *http.Response, out any) Envelope {
	defer resp.Body.Close() //nolint:errcheck
	var env Envelope
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&env))
	if out != nil {
		s.Require().NoError(json.Unmarshal(env.Data, out))
	}
	return env
}

// CreateUser seeds an ACTIVE user whose password is testutils.TestPassword.
func (s *E2ETestSuite) CreateUser(email string, opts ...testutils.UserOption) *model.User {
	return testutils.CreateUser(s.T(), s.DB, email, opts...)
}

// CreateAdmin seeds an ACTIVE administrator.
func (s *E2ETestSuite) CreateAdmin() *model.User {
	email := fmt.Sprintf("admin_%s@example.com", uuid.NewString()[:8])
	return s.CreateUser(email, testutils.WithRole(user.RoleAdmin))
}

// LoginUser logs u in over HTTP and returns the bearer token.
func (s *E2ETestSuite) LoginUser(u *model.User) string {
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, u.Email, testutils.TestPassword)
	resp := s.MakeRequest(http.MethodPost, "/api/auth/login", body, "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var out struct {
		Token string `json:"token"`
	}
	s.Decode(resp, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}
