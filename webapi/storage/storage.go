// Package storage serves uploads and downloads backed by the file store.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"regexp"
	"time"

	"github.com/benaja-bendo/Le-creuset-backend/pkg/config"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/domain/user"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/middleware"
	authsvc "github.com/benaja-bendo/Le-creuset-backend/pkg/service/auth"
	"github.com/benaja-bendo/Le-creuset-backend/pkg/storage"
	"github.com/benaja-bendo/Le-creuset-backend/webapi/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
)

// FilePrefix is the public path under which stored objects are served.
const FilePrefix = "/api/storage/file/"

const defaultPresignTTL = time.Hour

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// UploadResult describes a stored upload.
type UploadResult struct {
	URL          string `json:"url"`
	OriginalName string `json:"originalName"`
	StoragePath  string `json:"storagePath"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimeType"`
}

func Routes(
	r fiber.Router,
	store storage.FileStore,
	authSvc *authsvc.Service,
	cfg *config.App,
) {
	ttl := defaultPresignTTL
	if cfg.Storage != nil && cfg.Storage.S3 != nil && cfg.Storage.S3.PresignTTL > 0 {
		ttl = cfg.Storage.S3.PresignTTL
	}
	r.Post("/storage/upload", Upload(store))
	r.Get("/storage/file/:name", Download(store))
	r.Get("/storage/url/:name",
		append(middleware.Protected(cfg.Auth.Jwt, authSvc, user.RoleAdmin, user.RoleClient), URL(store, ttl))...)
}

// ObjectName builds the storage key of an upload: the upload time in unix
// milliseconds followed by the file name restricted to [a-zA-Z0-9.].
func ObjectName(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), unsafeChars.ReplaceAllString(original, "_"))
}

// Upload stores the multipart field "file".
// @Summary Upload a file
// @Tags storage
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to store"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 413 {object} common.ProblemDetails
// @Router /storage/upload [post]
func Upload(store storage.FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid upload", err, "A file is required in the \"file\" field", fiber.StatusBadRequest)
		}
		f, err := fh.Open()
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid upload", err, fiber.StatusBadRequest)
		}
		defer f.Close() //nolint:errcheck

		contentType, err := sniff(f)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't read upload", err)
		}
		name := ObjectName(fh.Filename, time.Now())
		res, err := store.Put(c.Context(), name, f, fh.Size, contentType)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't store file", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "File uploaded", UploadResult{
			URL:          FilePrefix + name,
			OriginalName: fh.Filename,
			StoragePath:  res.Key,
			Size:         res.Size,
			MimeType:     contentType,
		})
	}
}

// sniff detects the content type and rewinds f.
func sniff(f multipart.File) (string, error) {
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return "", err
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}

// Download streams a stored object with its content type and size.
// @Summary Download a file
// @Tags storage
// @Produce octet-stream
// @Param name path string true "Object name"
// @Success 200 {file} file
// @Failure 404 {object} common.ProblemDetails
// @Router /storage/file/{name} [get]
func Download(store storage.FileStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		body, info, err := store.Get(c.Context(), c.Params("name"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't read file", err)
		}
		c.Set(fiber.HeaderContentType, info.ContentType)
		return c.SendStream(body, int(info.Size))
	}
}

// URL returns a time-limited download link when the backend can sign one,
// and the public file path otherwise.
// @Summary Download link
// @Tags storage
// @Produce json
// @Param name path string true "Object name"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /storage/url/{name} [get]
// @Security Bearer
func URL(store storage.FileStore, ttl time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Params("name")
		ok, err := store.Exists(c.Context(), name)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't read file", err)
		}
		if !ok {
			return common.ProblemDetailsJSON(c, "Couldn't read file", storage.ErrObjectNotFound)
		}
		url := FilePrefix + name
		if p, isPresigner := store.(storage.Presigner); isPresigner {
			if url, err = p.PresignedURL(c.Context(), name, ttl); err != nil {
				return common.ProblemDetailsJSON(c, "Couldn't sign URL", err)
			}
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "File URL", fiber.Map{"url": url})
	}
}
