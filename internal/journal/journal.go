// Package journal holds the in-memory entry list and every mutation on it.
//
// A Journal is the single writer for its storage.Provider: it is created
// once per session with Open, every mutation is flushed to the provider
// before returning, and it is not safe for concurrent use.
package journal

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/logger"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/storage"
	"github.com/julianstephens/praxis/internal/validation"
)

// ConfirmFunc asks the user a yes/no question.
type ConfirmFunc func(prompt string) (bool, error)

type Journal struct {
	store   storage.Provider
	entries []models.Entry

	now   func() time.Time
	newID func() string
}

// Open loads the journal from store. Unreadable stored data is logged and
// replaced by an empty journal; only I/O failures are returned.
func Open(store storage.Provider) (*Journal, error) {
	j := &Journal{
		store:   store,
		entries: []models.Entry{},
		now:     time.Now,
		newID:   NewID,
	}

	entries, err := store.Load()
	if err != nil {
		var sErr *storage.StorageError
		if !errors.As(err, &sErr) {
			return nil, err
		}
		logger.Warn("Stored journal is unreadable, starting empty", "error", err)
		return j, nil
	}

	j.entries = entries
	logger.Debug("Journal loaded", "entries", len(entries))
	return j, nil
}

// NewID returns a random UUID, or a timestamp plus random fraction when the
// system random source fails.
func NewID() string {
	id, err := uuid.NewRandom()
	if err == nil {
		return id.String()
	}
	logger.Warn("Secure random source unavailable, using fallback id", "error", err)
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + strconv.FormatFloat(rand.Float64(), 'f', -1, 64)
}

// Entries returns a copy of all entries, newest first.
func (j *Journal) Entries() []models.Entry {
	out := make([]models.Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Recent returns at most n entries from the front of the list.
func (j *Journal) Recent(n int) []models.Entry {
	if n < 0 || n > len(j.entries) {
		n = len(j.entries)
	}
	out := make([]models.Entry, n)
	copy(out, j.entries[:n])
	return out
}

func (j *Journal) Len() int {
	return len(j.entries)
}

// AddEntry stamps a new entry and prepends it. If saving fails the entry is
// dropped again and the error returned.
func (j *Journal) AddEntry(kind models.Kind, payload any) (models.Entry, error) {
	entry, err := models.NewEntry(j.newID(), kind, j.now(), payload)
	if err != nil {
		return models.Entry{}, err
	}

	next := make([]models.Entry, 0, len(j.entries)+1)
	next = append(next, entry)
	next = append(next, j.entries...)

	if err := j.commit(next); err != nil {
		return models.Entry{}, err
	}

	logger.Info("Entry added", "id", entry.ID, "type", entry.Kind)
	return entry, nil
}

// AddCheckIn validates the form and adds a check-in.
func (j *Journal) AddCheckIn(form models.CheckInForm) (models.Entry, error) {
	payload, err := validation.CheckIn(form)
	if err != nil {
		return models.Entry{}, err
	}
	return j.AddEntry(models.KindCheckIn, payload)
}

// AddPlan validates the form and adds a plan.
func (j *Journal) AddPlan(form models.PlanForm) (models.Entry, error) {
	payload, err := validation.Plan(form)
	if err != nil {
		return models.Entry{}, err
	}
	return j.AddEntry(models.KindPlan, payload)
}

// WipeAll deletes every entry once confirm agrees. It reports whether the
// wipe happened.
func (j *Journal) WipeAll(confirm ConfirmFunc) (bool, error) {
	if confirm == nil {
		return false, errors.New("wipe requires a confirmation")
	}

	ok, err := confirm(constants.MsgWipePrompt)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	removed := len(j.entries)
	if err := j.commit([]models.Entry{}); err != nil {
		return false, err
	}

	logger.Info("Journal wiped", "removed", removed)
	return true, nil
}

// MergeImport combines imported entries with the current ones, saves the
// result and returns it. See Merge for the rules.
func (j *Journal) MergeImport(imported []models.Entry) ([]models.Entry, error) {
	merged := Merge(imported, j.entries)
	if err := j.commit(merged); err != nil {
		return nil, err
	}

	logger.Info("Import merged", "imported", len(imported), "total", len(merged))
	return j.Entries(), nil
}

// commit persists next and only then makes it the current list.
func (j *Journal) commit(next []models.Entry) error {
	if err := j.store.Save(next); err != nil {
		logger.Error("Failed to save journal", "error", err)
		return fmt.Errorf("failed to save journal: %w", err)
	}
	j.entries = next
	return nil
}
