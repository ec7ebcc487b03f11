// Package storage keeps project images in a blob store addressed by flat keys.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yukikurage/portfolio-dashboard-api/internal/constants"
)

var (
	ErrInvalidKey       = errors.New("invalid object key")
	ErrFileTooLarge     = errors.New("file exceeds the maximum image size")
	ErrInvalidExtension = errors.New("file type is not allowed")
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// BlobStore stores project images and hands out their public URLs.
type BlobStore interface {
	Upload(ctx context.Context, key string, r io.Reader) (string, error)
	PublicURL(key string) string
	Remove(ctx context.Context, keys []string) error
}

// CheckImage validates an upload's file name and size before it is stored.
func CheckImage(filename string, size int64) error {
	if size > constants.MaxImageSize {
		return fmt.Errorf("%w: %s", ErrFileTooLarge, filename)
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, filename)
	}
	return nil
}

// KeyFromURL returns the object key of a public URL, its last path segment.
func KeyFromURL(rawURL string) string {
	p := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		p = u.Path
	}
	key := path.Base(p)
	if key == "." || key == "/" {
		return ""
	}
	return key
}

// LocalStore keeps objects as files in one directory.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Upload writes the object and returns its public URL. The upload is limited to MaxImageSize bytes.
func (s *LocalStore) Upload(ctx context.Context, key string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	target, err := s.path(key)
	if err != nil {
		return "", err
	}

	dst, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create object: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, io.LimitReader(r, constants.MaxImageSize+1))
	if err != nil {
		os.Remove(target)
		return "", fmt.Errorf("failed to write object: %w", err)
	}
	if written > constants.MaxImageSize {
		os.Remove(target)
		return "", fmt.Errorf("%w: %s", ErrFileTooLarge, key)
	}

	return s.PublicURL(key), nil
}

func (s *LocalStore) PublicURL(key string) string {
	return s.baseURL + "/" + key
}

// Remove deletes each object. Missing objects are not an error; other failures are joined.
func (s *LocalStore) Remove(ctx context.Context, keys []string) error {
	var errs []error
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := s.path(key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to remove %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}

func (s *LocalStore) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || key == "." || key == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(s.dir, key), nil
}
