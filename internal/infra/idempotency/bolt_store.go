// Package idempotency stores unlock outcomes by client idempotency key so that
// retried requests replay the first response instead of running again.
package idempotency

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"novelhub/config"
	"novelhub/internal/domain/service"
	"novelhub/internal/errors"

	"github.com/boltdb/bolt"
	"go.uber.org/fx"
)

const (
	bucketName  = "unlock_responses"
	openTimeout = time.Second
)

// boltStore keeps records in a single bolt file.
type boltStore struct {
	db  *bolt.DB
	ttl time.Duration
	now func() time.Time
}

// Params defines the dependencies of the store provider.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore returns the bolt-backed store when a path is configured and a no-op
// store otherwise.
func NewStore(params Params) (service.IdempotencyStore, error) {
	cfg := params.Config.Idempotency
	if cfg == nil || cfg.Path == "" {
		params.Logger.Info("Idempotency store not configured, retries are deduplicated by the unlock receipt only")

		return noopStore{}, nil
	}

	store, err := Open(cfg.Path, cfg.TTL)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	params.Logger.Info("Idempotency store opened", slog.String("path", cfg.Path), slog.Duration("ttl", cfg.TTL))

	return store, nil
}

// Open opens (or creates) the bolt file at path. A non-positive ttl keeps records forever.
func Open(path string, ttl time.Duration) (service.IdempotencyStore, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open idempotency store %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))

		return err
	})
	if err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create idempotency bucket")
	}

	return &boltStore{
		db:  db,
		ttl: ttl,
		now: func() time.Time { return time.Now().UTC() },
	}, nil
}

// Load returns the stored record; expired records are reported as missing.
func (s *boltStore) Load(_ context.Context, key string) (*service.IdempotencyRecord, error) {
	var record service.IdempotencyRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v == nil {
			return service.ErrIdempotencyRecordNotFound
		}

		return json.Unmarshal(v, &record)
	})
	if err != nil {
		if errors.Is(err, service.ErrIdempotencyRecordNotFound) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to load idempotency record")
	}

	if s.expired(&record) {
		return nil, service.ErrIdempotencyRecordNotFound
	}

	return &record, nil
}

// Save stores record unless a live record already holds the key; the first
// outcome stays authoritative.
func (s *boltStore) Save(_ context.Context, record *service.IdempotencyRecord) error {
	if record == nil || record.Key == "" {
		return errors.New("idempotency record requires a key")
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now()
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))

		if existing := b.Get([]byte(record.Key)); existing != nil {
			var stored service.IdempotencyRecord
			if err := json.Unmarshal(existing, &stored); err == nil && !s.expired(&stored) {
				return nil
			}
		}

		data, err := json.Marshal(record)
		if err != nil {
			return err
		}

		return b.Put([]byte(record.Key), data)
	})
	if err != nil {
		return errors.Wrap(err, "failed to save idempotency record")
	}

	return nil
}

// Close releases the database file lock.
func (s *boltStore) Close() error {
	return s.db.Close()
}

func (s *boltStore) expired(record *service.IdempotencyRecord) bool {
	return s.ttl > 0 && s.now().Sub(record.CreatedAt) > s.ttl
}

// noopStore never remembers anything.
type noopStore struct{}

func (noopStore) Load(context.Context, string) (*service.IdempotencyRecord, error) {
	return nil, service.ErrIdempotencyRecordNotFound
}

func (noopStore) Save(context.Context, *service.IdempotencyRecord) error {
	return nil
}

func (noopStore) Close() error {
	return nil
}
