package storage

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/storage/postgres"
	"github.com/julianstephens/praxis/internal/storage/sqlite"
)

// kvBackend is a SQL table of string keys and values.
type kvBackend interface {
	Init() error
	Open() error
	Close() error
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (int, int, error)
	GetConfigPath() string
	GetDB() *sql.DB
}

// KVStore adapts a SQL key-value backend to Provider. The whole document
// lives under constants.StorageKey.
type KVStore struct {
	backend kvBackend
	driver  string
}

// NewSQLiteStore creates a store backed by a SQLite file.
func NewSQLiteStore(path string) *KVStore {
	return &KVStore{backend: sqlite.NewStore(path), driver: "sqlite"}
}

// NewPostgresStore creates a store backed by PostgreSQL.
func NewPostgresStore(connStr string) *KVStore {
	return &KVStore{backend: postgres.New(connStr), driver: "postgres"}
}

func (s *KVStore) Init() error  { return s.backend.Init() }
func (s *KVStore) Open() error  { return s.backend.Open() }
func (s *KVStore) Close() error { return s.backend.Close() }

func (s *KVStore) Load() ([]models.Entry, error) {
	value, ok, err := s.backend.GetValue(constants.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}
	if !ok {
		return []models.Entry{}, nil
	}
	return decodeStored([]byte(value))
}

func (s *KVStore) Save(entries []models.Entry) error {
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	if err := s.backend.SetValue(constants.StorageKey, string(data)); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *KVStore) Migrate(logFn func(string)) (int, error) { return s.backend.Migrate(logFn) }
func (s *KVStore) SchemaVersion() (int, int, error)        { return s.backend.SchemaVersion() }
func (s *KVStore) GetConfigPath() string                   { return s.backend.GetConfigPath() }
func (s *KVStore) GetDB() *sql.DB                          { return s.backend.GetDB() }

// Driver names the SQL driver in use.
func (s *KVStore) Driver() string {
	return s.driver
}

// RawValue returns the stored document text exactly as persisted.
func (s *KVStore) RawValue() (string, bool, error) {
	return s.backend.GetValue(constants.StorageKey)
}
