// Package upload stores product images on the local disk and exposes them
// under a fixed public path.
package upload

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"luxe/config"
	domainerrors "luxe/internal/domain/errors"
)

const (
	defaultMaxSizeByte = 5 * 1024 * 1024
	defaultPublicPath  = "/uploads"
	maxBasenameLength  = 30
)

// allowedMimeTypes maps accepted image content types to a canonical extension.
var allowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// LocalStore writes uploaded images under a directory on the local filesystem.
type LocalStore struct {
	dir         string
	publicPath  string
	maxSizeByte int64
}

// NewLocalStore builds the store from configuration and ensures the
// destination directory exists.
func NewLocalStore(cfg *config.Config) (*LocalStore, error) {
	dir := "uploads"
	publicPath := defaultPublicPath
	maxSize := int64(defaultMaxSizeByte)
	if cfg != nil && cfg.Upload != nil {
		if cfg.Upload.Dir != "" {
			dir = cfg.Upload.Dir
		}
		if cfg.Upload.PublicPath != "" {
			publicPath = cfg.Upload.PublicPath
		}
		if cfg.Upload.MaxSizeByte > 0 {
			maxSize = cfg.Upload.MaxSizeByte
		}
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload directory")
	}

	return &LocalStore{
		dir:         dir,
		publicPath:  publicPath,
		maxSizeByte: maxSize,
	}, nil
}

// Dir returns the directory files are written to, for static serving.
func (s *LocalStore) Dir() string {
	return s.dir
}

// PublicPath returns the URL prefix under which stored files are served.
func (s *LocalStore) PublicPath() string {
	return s.publicPath
}

// Save validates and persists one uploaded image, returning its public URL.
// contentType is the declared mime type of the multipart part and size its
// declared length.
func (s *LocalStore) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	ext, ok := allowedMimeTypes[strings.ToLower(contentType)]
	if !ok {
		return "", domainerrors.ErrFileTypeNotAllowed
	}
	if size > s.maxSizeByte {
		return "", domainerrors.ErrFileTooLarge
	}

	name := buildFilename(filename, ext)

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", errors.Wrap(err, "failed to create upload file")
	}
	defer dst.Close()

	// Cap the copy as well, in case the declared size lied.
	written, err := io.Copy(dst, io.LimitReader(r, s.maxSizeByte+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to write upload file")
	}
	if written > s.maxSizeByte {
		os.Remove(filepath.Join(s.dir, name))

		return "", domainerrors.ErrFileTooLarge
	}

	return path.Join(s.publicPath, name), nil
}

// buildFilename slugifies the original basename, trims it and appends a
// unique suffix so concurrent uploads never collide.
func buildFilename(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))

	var slug strings.Builder
	for _, r := range strings.ToLower(base) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			slug.WriteRune(r)
		} else {
			slug.WriteRune('-')
		}
	}

	cleaned := slug.String()
	if len(cleaned) > maxBasenameLength {
		cleaned = cleaned[:maxBasenameLength]
	}
	if cleaned == "" {
		cleaned = "image"
	}

	suffix := strconv.FormatInt(time.Now().UnixMilli(), 10) + "-" + uuid.New().String()[:8]

	return cleaned + "-" + suffix + ext
}
