package storage

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/praxis/internal/models"
)

func sampleEntries() []models.Entry {
	return []models.Entry{
		{ID: "b", Kind: models.KindPlan, CreatedAt: "2026-05-02T08:00:00.000Z",
			Payload: json.RawMessage(`{"theme":"Momentum","priorities":["x","y","z"],"step":"go","timebox":25}`)},
		{ID: "a", Kind: models.KindCheckIn, CreatedAt: "2026-05-01T08:00:00.000Z",
			Payload: json.RawMessage(`{"mood":3,"notes":"<b>rough</b> & tired"}`)},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	entries := sampleEntries()

	data, err := Encode(entries)
	require.NoError(t, err)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestEncodeKeepsMarkupReadable(t *testing.T) {
	data, err := Encode(sampleEntries())
	require.NoError(t, err)
	assert.Contains(t, string(data), "<b>rough</b> & tired")
}

func TestEncodeNilIsEmptyArray(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"entries":[]}`, string(data))
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"not json", `{"entries": [`, ErrNotJSON},
		{"empty", ``, ErrNotJSON},
		{"null document", `null`, ErrNoEntries},
		{"array document", `[{"id":"a"}]`, ErrNoEntries},
		{"missing entries", `{"items":[]}`, ErrNoEntries},
		{"entries is null", `{"entries":null}`, ErrNoEntries},
		{"entries is object", `{"entries":{"id":"a"}}`, ErrNoEntries},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)
		})
	}
}

func TestDecodeSkipsNonObjectElements(t *testing.T) {
	got, err := Decode([]byte(`{"entries":[null, 5, "x", {"id":{"a":1}}, {"id":"ok","type":"checkin"}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].ID)
}

func TestDecodeKeepsEntriesWithNonStringFields(t *testing.T) {
	got, err := Decode([]byte(`{"entries":[
		{"id":7,"type":"plan","createdAt":1700000000000,"payload":{"step":"go"}},
		{"id":"b","type":"checkin","createdAt":null}
	]}`))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "7", got[0].ID)
	assert.Equal(t, "1700000000000", got[0].CreatedAt)
	assert.JSONEq(t, `{"step":"go"}`, string(got[0].Payload))
	assert.Equal(t, "b", got[1].ID)
	assert.Empty(t, got[1].CreatedAt)
}

func TestDecodeStoredWrapsStorageError(t *testing.T) {
	_, err := decodeStored([]byte("garbage"))

	var sErr *StorageError
	require.True(t, errors.As(err, &sErr))
	assert.Equal(t, "praxis_v1_data", sErr.Key)
	assert.ErrorIs(t, err, ErrNotJSON)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.Save(sampleEntries()))
	got, err = s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleEntries(), got)
	assert.Equal(t, 1, s.Saves)

	s.SetRaw([]byte("{"))
	_, err = s.Load()
	var sErr *StorageError
	assert.ErrorAs(t, err, &sErr)
}
