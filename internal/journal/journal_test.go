package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/praxis/internal/constants"
	"github.com/julianstephens/praxis/internal/models"
	"github.com/julianstephens/praxis/internal/storage"
	"github.com/julianstephens/praxis/internal/validation"
)

func newTestJournal(t *testing.T) (*Journal, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	j, err := Open(store)
	require.NoError(t, err)

	clock := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	seq := 0
	j.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	j.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return j, store
}

func entry(id, createdAt string) models.Entry {
	return models.Entry{
		ID:        id,
		Kind:      models.KindCheckIn,
		CreatedAt: createdAt,
		Payload:   json.RawMessage(`{"mood":5,"notes":"` + id + `"}`),
	}
}

func ids(entries []models.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestOpen_EmptyStore(t *testing.T) {
	j, err := Open(storage.NewMemoryStore())
	require.NoError(t, err)
	assert.Equal(t, 0, j.Len())
	assert.NotNil(t, j.Entries())
}

func TestOpen_CorruptDataStartsEmpty(t *testing.T) {
	for _, raw := range []string{`not json`, `[1,2]`, `{"entries":"nope"}`, `null`} {
		store := storage.NewMemoryStore()
		store.SetRaw([]byte(raw))

		j, err := Open(store)
		require.NoError(t, err, raw)
		assert.Equal(t, 0, j.Len(), raw)
	}
}

type failingStore struct {
	storage.MemoryStore
}

func (f *failingStore) Load() ([]models.Entry, error) {
	return nil, errors.New("disk on fire")
}

func TestOpen_LoadFailure(t *testing.T) {
	_, err := Open(&failingStore{})
	assert.Error(t, err)
}

func TestAddCheckIn(t *testing.T) {
	j, store := newTestJournal(t)

	e, err := j.AddCheckIn(models.CheckInForm{Mood: "7", Notes: "  good day  "})
	require.NoError(t, err)

	assert.Equal(t, "id-1", e.ID)
	assert.Equal(t, models.KindCheckIn, e.Kind)
	assert.Equal(t, "2025-03-01T09:01:00.000Z", e.CreatedAt)

	c, err := e.CheckIn()
	require.NoError(t, err)
	assert.Equal(t, 7.0, c.Mood)
	assert.Equal(t, "good day", c.Notes)

	assert.Equal(t, 1, j.Len())
	assert.Equal(t, 1, store.Saves)
}

func TestAddCheckIn_Invalid(t *testing.T) {
	tests := []struct {
		name string
		form models.CheckInForm
		msg  string
	}{
		{"mood too high", models.CheckInForm{Mood: "11", Notes: "x"}, constants.MsgMoodInvalid},
		{"mood text", models.CheckInForm{Mood: "abc", Notes: "x"}, constants.MsgMoodInvalid},
		{"blank notes", models.CheckInForm{Mood: "5", Notes: "   "}, constants.MsgNotesRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, store := newTestJournal(t)
			_, err := j.AddCheckIn(tt.form)

			var vErr *validation.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.msg, vErr.Message)
			assert.Equal(t, 0, j.Len())
			assert.Equal(t, 0, store.Saves)
		})
	}
}

func TestAddPlan(t *testing.T) {
	j, _ := newTestJournal(t)

	e, err := j.AddPlan(models.PlanForm{
		Theme:      "Momentum",
		Priorities: [3]string{"a", " b ", "c"},
		Step:       "start",
		Timebox:    "25",
	})
	require.NoError(t, err)

	p, err := e.Plan()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, p.Priorities)
	assert.Equal(t, 25.0, p.Timebox)
	assert.Equal(t, models.KindPlan, j.Entries()[0].Kind)
}

func TestAddPlan_Invalid(t *testing.T) {
	j, _ := newTestJournal(t)

	_, err := j.AddPlan(models.PlanForm{Priorities: [3]string{"a", "", "c"}, Step: "s", Timebox: "25"})
	assert.EqualError(t, err, constants.MsgPlanIncomplete)

	_, err = j.AddPlan(models.PlanForm{Priorities: [3]string{"a", "b", "c"}, Step: "s", Timebox: "4"})
	assert.EqualError(t, err, constants.MsgTimeboxInvalid)

	assert.Equal(t, 0, j.Len())
}

func TestAddEntry_NewestFirst(t *testing.T) {
	j, _ := newTestJournal(t)

	for i := 0; i < 3; i++ {
		_, err := j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "n"})
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"id-3", "id-2", "id-1"}, ids(j.Entries()))
	assert.Equal(t, []string{"id-3", "id-2"}, ids(j.Recent(2)))
	assert.Len(t, j.Recent(10), 3)
}

func TestAddEntry_SaveFailureRollsBack(t *testing.T) {
	j, store := newTestJournal(t)
	_, err := j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "kept"})
	require.NoError(t, err)

	store.SaveErr = errors.New("quota exceeded")
	_, err = j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "lost"})
	require.Error(t, err)

	assert.Equal(t, []string{"id-1"}, ids(j.Entries()))
}

func TestPersistRoundTrip(t *testing.T) {
	j, store := newTestJournal(t)
	_, err := j.AddCheckIn(models.CheckInForm{Mood: "3", Notes: "tired"})
	require.NoError(t, err)
	_, err = j.AddPlan(models.PlanForm{Theme: "Stability", Priorities: [3]string{"a", "b", "c"}, Step: "s", Timebox: "30"})
	require.NoError(t, err)

	reopened, err := Open(store)
	require.NoError(t, err)
	assert.Equal(t, j.Entries(), reopened.Entries())
}

func TestWipeAll(t *testing.T) {
	j, store := newTestJournal(t)
	_, err := j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "n"})
	require.NoError(t, err)

	var asked string
	ok, err := j.WipeAll(func(prompt string) (bool, error) {
		asked = prompt
		return false, nil
	})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, constants.MsgWipePrompt, asked)
	assert.Equal(t, 1, j.Len())

	ok, err = j.WipeAll(func(string) (bool, error) { return true, nil })
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, j.Len())

	reopened, err := Open(store)
	require.NoError(t, err)
	assert.Equal(t, 0, reopened.Len())
}

func TestWipeAll_ConfirmError(t *testing.T) {
	j, _ := newTestJournal(t)
	_, err := j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "n"})
	require.NoError(t, err)

	_, err = j.WipeAll(func(string) (bool, error) { return false, errors.New("no tty") })
	assert.Error(t, err)
	assert.Equal(t, 1, j.Len())

	_, err = j.WipeAll(nil)
	assert.Error(t, err)
}

func TestMergeImport(t *testing.T) {
	j, store := newTestJournal(t)
	require.NoError(t, j.commit([]models.Entry{
		entry("b", "2025-01-02T00:00:00.000Z"),
		entry("a", "2025-01-01T00:00:00.000Z"),
	}))

	importedB := entry("b", "2025-01-02T00:00:00.000Z")
	importedB.Payload = json.RawMessage(`{"mood":9,"notes":"from import"}`)

	merged, err := j.MergeImport([]models.Entry{
		entry("c", "2025-01-03T00:00:00.000Z"),
		importedB,
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "b", "a"}, ids(merged))
	c, err := merged[1].CheckIn()
	require.NoError(t, err)
	assert.Equal(t, "from import", c.Notes)

	reopened, err := Open(store)
	require.NoError(t, err)
	assert.Equal(t, merged, reopened.Entries())
}

func TestMergeImport_Idempotent(t *testing.T) {
	j, _ := newTestJournal(t)
	for i := 0; i < 3; i++ {
		_, err := j.AddCheckIn(models.CheckInForm{Mood: "5", Notes: "n"})
		require.NoError(t, err)
	}
	before := j.Entries()

	merged, err := j.MergeImport(before)
	require.NoError(t, err)
	assert.Equal(t, before, merged)
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		imported []models.Entry
		existing []models.Entry
		want     []string
	}{
		{
			name:     "both empty",
			imported: nil,
			existing: nil,
			want:     []string{},
		},
		{
			name:     "drops empty ids",
			imported: []models.Entry{entry("", "2025-01-05T00:00:00.000Z")},
			existing: []models.Entry{entry("a", "2025-01-01T00:00:00.000Z")},
			want:     []string{"a"},
		},
		{
			name: "duplicate ids inside the import",
			imported: []models.Entry{
				entry("a", "2025-01-01T00:00:00.000Z"),
				entry("a", "2025-01-09T00:00:00.000Z"),
			},
			want: []string{"a"},
		},
		{
			name: "equal timestamps keep input order",
			imported: []models.Entry{
				entry("x", "2025-01-01T00:00:00.000Z"),
			},
			existing: []models.Entry{
				entry("y", "2025-01-01T00:00:00.000Z"),
			},
			want: []string{"x", "y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Merge(tt.imported, tt.existing)))
		})
	}
}

func TestMerge_ImportedCopyWins(t *testing.T) {
	existing := entry("a", "2025-01-01T00:00:00.000Z")
	imported := entry("a", "2025-01-01T00:00:00.000Z")
	imported.Payload = json.RawMessage(`{"mood":1,"notes":"imported"}`)

	merged := Merge([]models.Entry{imported}, []models.Entry{existing})
	require.Len(t, merged, 1)
	assert.JSONEq(t, `{"mood":1,"notes":"imported"}`, string(merged[0].Payload))
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
