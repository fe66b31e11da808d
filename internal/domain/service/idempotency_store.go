package service

import (
	"context"
	"errors"
	"time"
)

// ErrIdempotencyRecordNotFound is returned when no response is stored for a key.
var ErrIdempotencyRecordNotFound = errors.New("idempotency record not found")

// IdempotencyRecord is a stored unlock outcome replayed for retried requests.
type IdempotencyRecord struct {
	Key           string    `json:"key"`
	ProfileID     string    `json:"profile_id"`
	NovelID       string    `json:"novel_id"`
	ChapterNumber int       `json:"chapter_number"`
	UnlockID      string    `json:"unlock_id"`
	Cost          int64     `json:"cost"`
	Balance       int64     `json:"balance"`
	AlreadyOwned  bool      `json:"already_owned"`
	Free          bool      `json:"free"`
	CreatedAt     time.Time `json:"created_at"`
}

// IdempotencyStore caches unlock outcomes by client-provided key.
type IdempotencyStore interface {
	// Load returns the record for key or ErrIdempotencyRecordNotFound.
	Load(ctx context.Context, key string) (*IdempotencyRecord, error)

	// Save stores a record under its key.
	Save(ctx context.Context, record *IdempotencyRecord) error

	// Close releases the underlying storage.
	Close() error
}
