package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/visionbridge/visionbridge/internal/models"
	"github.com/visionbridge/visionbridge/internal/utils"
)

// FileStore keeps one <id>.json per conversation under a base directory.
type FileStore struct {
	baseDir string
}

// NewFileStore creates the base directory if missing.
func NewFileStore(baseDir string) (*FileStore, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("conversation dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create conversation dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) path(id string) string {
	// Conversation ids are server-minted UUIDs; Base guards against a
	// client-restored id escaping the directory.
	return filepath.Join(s.baseDir, filepath.Base(id)+".json")
}

func (s *FileStore) Save(_ context.Context, rec *models.ConversationRecord) error {
	if rec == nil || rec.ID == "" {
		return fmt.Errorf("record id is required")
	}
	b, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := os.WriteFile(s.path(rec.ID), b, 0o644); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

func (s *FileStore) Load(_ context.Context, id string) (*models.ConversationRecord, error) {
	if id == "" {
		return nil, utils.ErrNotFound
	}
	b, err := os.ReadFile(s.path(id))
	if err != nil {
		return nil, utils.ErrNotFound
	}
	var rec models.ConversationRecord
	if err := json.Unmarshal(b, &rec); err != nil {
		// Malformed on-disk record degrades to not-found.
		return nil, utils.ErrNotFound
	}
	return &rec, nil
}
