// Package upload persists booking images sent as multipart form files.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Field is the multipart form field the client sends the image under.
const Field = "image"

// PublicPrefix is the URL prefix the content directory is served from.
const PublicPrefix = "/uploads"

// Save writes one uploaded file into dir under a timestamp-based name that
// keeps the original extension, creating dir if needed, and returns the
// public reference path. Nothing is validated about size or content type;
// the legacy deployments never did either.
func Save(fh *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(fh.Filename)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return PublicPrefix + "/" + name, nil
}
