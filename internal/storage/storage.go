package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"
)

// ImageStore persists uploaded artwork images and reads them back for
// subsequent model calls. path is the stable reference kept on the
// conversation record; url is what the front end loads.
type ImageStore interface {
	Save(ctx context.Context, name string, contentType string, r io.Reader) (path string, url string, err error)
	Open(ctx context.Context, path string) (data []byte, format string, err error)
}

// FormatFromPath maps a file extension to the image format label the model
// API expects.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".gif":
		return "gif"
	case ".webp":
		return "webp"
	default:
		return "jpeg"
	}
}
