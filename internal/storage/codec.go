package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/models"
)

var (
	// ErrNotJSON means the stored bytes do not parse as JSON.
	ErrNotJSON = errors.New("document is not valid JSON")
	// ErrNoEntries means the document parsed but has no entries array.
	ErrNoEntries = errors.New("document has no entries array")
)

// StorageError reports a stored document that exists but cannot be read.
type StorageError struct {
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("stored data under %q is unreadable: %v", e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Encode serializes entries as the persisted document.
func Encode(entries []models.Entry) ([]byte, error) {
	if entries == nil {
		entries = []models.Entry{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(models.Document{Entries: entries}); err != nil {
		return nil, fmt.Errorf("failed to serialize entries: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses a persisted or exported document. Array elements that are
// not entry objects are skipped. Errors wrap ErrNotJSON or ErrNoEntries.
func Decode(data []byte) ([]models.Entry, error) {
	if !json.Valid(data) {
		return nil, ErrNotJSON
	}

	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil || top == nil {
		return nil, ErrNoEntries
	}

	rawEntries := bytes.TrimSpace(top["entries"])
	if len(rawEntries) == 0 || rawEntries[0] != '[' {
		return nil, ErrNoEntries
	}

	var items []json.RawMessage
	if err := json.Unmarshal(rawEntries, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEntries, err)
	}

	entries := make([]models.Entry, 0, len(items))
	for i, item := range items {
		item = bytes.TrimSpace(item)
		if len(item) == 0 || item[0] != '{' {
			logger.Warn("Skipping non-object entry", "index", i)
			continue
		}
		var e models.Entry
		if err := json.Unmarshal(item, &e); err != nil {
			logger.Warn("Skipping malformed entry", "index", i, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// decodeStored wraps Decode failures for the storage key.
func decodeStored(data []byte) ([]models.Entry, error) {
	entries, err := Decode(data)
	if err != nil {
		return nil, &StorageError{Key: constants.StorageKey, Err: err}
	}
	return entries, nil
}
