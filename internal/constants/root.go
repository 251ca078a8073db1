package constants

import "time"

const (
	AppName             = "praxis"
	DefaultKeyringUser  = "database-connection"
	DefaultConfigPath   = "~/.config/praxis/praxis.db"
	DefaultSettingsFile = "settings.yaml"
	Version             = "v1.0.0"

	// StorageKey is the single key-value slot that holds the serialized journal.
	StorageKey = "praxis_v1_data"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// CreatedAtFormat matches the browser's Date.toISOString output so that
	// timestamps from both implementations sort together as strings.
	CreatedAtFormat = "2006-01-02T15:04:05.000Z"

	// DisplayTimeFormat is used for history cards.
	DisplayTimeFormat = "Jan 02, 2006, 03:04 PM"

	// History
	DefaultHistoryLimit = 100

	// Status messages
	DefaultStatusClearDelay = 2500 * time.Millisecond

	// Export
	ExportFilePrefix = "praxis-v1-export-"
	ExportFileSuffix = ".json"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "praxis-"

	// Session lock
	LockfileName = "praxis.lock"

	// Environment
	EnvDBConnection = "PRAXIS_DB_CONNECTION"
	EnvDebug        = "PRAXIS_DEBUG"
)
