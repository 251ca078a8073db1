package storage

import "github.com/julianstephens/praxis/internal/models"

// Provider persists the journal document under a single key.
type Provider interface {
	// Lifecycle
	Init() error
	Open() error
	Close() error

	// Load returns the stored entries. A missing document yields an empty
	// list; an unreadable one yields a *StorageError.
	Load() ([]models.Entry, error)
	// Save overwrites the stored document with entries.
	Save(entries []models.Entry) error

	// Utils
	GetConfigPath() string
}

// Migrator is implemented by SQL-backed providers.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current int, latest int, err error)
}
