// Package store persists conversation records: one human-readable JSON
// document per conversation, with an in-memory (or Redis) cache layered on
// top of the file-backed copy.
package store

import (
	"context"

	"github.com/visionbridge/visionbridge/internal/models"
)

// RecordStore is the durable keyed storage for conversation records.
//
// Save overwrites any prior version of the record. Load returns
// utils.ErrNotFound for unknown ids; a corrupt on-disk record is treated
// identically to "not found" and never propagates a decode error. Records
// are never deleted.
type RecordStore interface {
	Save(ctx context.Context, rec *models.ConversationRecord) error
	Load(ctx context.Context, id string) (*models.ConversationRecord, error)
}
