// Package constants holds configuration values shared across layers.
package constants

const (
	// PubSubProviderLocal publishes events over HTTP to a local push endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

const (
	// UnlockStrategyTransaction runs every unlock write in one database transaction.
	UnlockStrategyTransaction = "transaction"
	// UnlockStrategySaga commits each unlock step on its own and compensates on failure.
	UnlockStrategySaga = "saga"
)

const (
	// DefaultChapterCost is charged when a chapter has no explicit price.
	DefaultChapterCost int64 = 5
)

const (
	// HeaderIdempotencyKey carries the client-chosen key for retry-safe unlocks.
	HeaderIdempotencyKey = "Idempotency-Key"
)

const (
	// DatabaseDriverPostgres stores data in PostgreSQL.
	DatabaseDriverPostgres = "postgres"
	// DatabaseDriverSQLite stores data in a local SQLite file.
	DatabaseDriverSQLite = "sqlite"
)
