// Package transfer moves journal documents in and out of files.
package transfer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/storage"
)

// ImportErrorKind separates files that are not JSON from JSON of the wrong shape.
type ImportErrorKind int

const (
	ImportParse ImportErrorKind = iota
	ImportShape
)

// ImportError is returned for a file that cannot be imported. Error gives the
// user-facing message.
type ImportError struct {
	Kind ImportErrorKind
	Err  error
}

func (e *ImportError) Error() string {
	if e.Kind == ImportShape {
		return constants.MsgImportBadShape
	}
	return constants.MsgImportBadJSON
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// ExportFilename returns the default export file name for t's UTC date.
func ExportFilename(t time.Time) string {
	return constants.ExportFilePrefix + t.UTC().Format(constants.DateFormat) + constants.ExportFileSuffix
}

// Export writes entries as an indented export document.
func Export(w io.Writer, entries []models.Entry) error {
	if entries == nil {
		entries = []models.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(models.Document{Entries: entries}); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFile writes entries to dir under the default name for now and
// returns the path written.
func ExportFile(dir string, entries []models.Entry, now time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	var buf bytes.Buffer
	if err := Export(&buf, entries); err != nil {
		return "", err
	}

	path := filepath.Join(dir, ExportFilename(now))
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	logger.Info("Exported entries", "path", path, "entries", len(entries))
	return path, nil
}

// Parse reads an export document. Array elements that are not entries are
// skipped; the caller decides which ids to keep.
func Parse(r io.Reader) ([]models.Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}

	entries, err := storage.Decode(data)
	switch {
	case err == nil:
		return entries, nil
	case errors.Is(err, storage.ErrNoEntries):
		return nil, &ImportError{Kind: ImportShape, Err: err}
	default:
		return nil, &ImportError{Kind: ImportParse, Err: err}
	}
}

// ImportFile parses the export document at path.
func ImportFile(path string) ([]models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		logger.Warn("Import rejected", "path", path, "error", err)
		return nil, err
	}
	logger.Debug("Parsed import", "path", path, "entries", len(entries))
	return entries, nil
}
