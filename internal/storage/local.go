package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStore saves uploads to disk under a base directory and serves them
// from a static URL prefix.
type LocalStore struct {
	baseDir   string
	urlPrefix string
}

// NewLocalStore creates the base directory if missing.
func NewLocalStore(baseDir, urlPrefix string) (*LocalStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("upload dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, _ string, r io.Reader) (string, string, error) {
	name = filepath.Base(name)
	target := filepath.Join(s.baseDir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", "", fmt.Errorf("create file: %w", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, r); err != nil {
		return "", "", fmt.Errorf("write file: %w", err)
	}
	return target, s.urlPrefix + "/" + name, nil
}

func (s *LocalStore) Open(_ context.Context, path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read image: %w", err)
	}
	return data, FormatFromPath(path), nil
}
