package storage

import (
	"strings"

	"github.com/julianstephens/praxis/internal/storage/postgres"
)

// New picks a backend for config: a PostgreSQL URL or DSN, a .json file, or a
// SQLite database path.
func New(config string) Provider {
	switch {
	case postgres.IsConnString(config), postgres.IsDSN(config):
		return NewPostgresStore(config)
	case strings.HasSuffix(strings.ToLower(config), ".json"):
		return NewJSONStore(config)
	default:
		return NewSQLiteStore(config)
	}
}

// IsLocalFile reports whether p stores its data in a local file that can be
// copied for backups.
func IsLocalFile(p Provider) bool {
	switch s := p.(type) {
	case *JSONStore:
		return true
	case *KVStore:
		return s.Driver() == "sqlite"
	default:
		return false
	}
}
