package storage

import "github.com/julianstephens/praxis/internal/models"

// MemoryStore holds the encoded document in memory. Raw bytes are kept, not
// entries, so tests can plant corrupt data.
type MemoryStore struct {
	raw     []byte
	SaveErr error
	Saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Init() error  { return nil }
func (s *MemoryStore) Open() error  { return nil }
func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) Load() ([]models.Entry, error) {
	if s.raw == nil {
		return []models.Entry{}, nil
	}
	return decodeStored(s.raw)
}

func (s *MemoryStore) Save(entries []models.Entry) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	data, err := Encode(entries)
	if err != nil {
		return err
	}
	s.raw = data
	s.Saves++
	return nil
}

// Raw returns the stored bytes, nil when nothing has been saved.
func (s *MemoryStore) Raw() []byte {
	return s.raw
}

// SetRaw replaces the stored bytes.
func (s *MemoryStore) SetRaw(data []byte) {
	s.raw = data
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
