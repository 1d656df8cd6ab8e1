package records

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type memoryKey struct {
	table Table
	id    uuid.UUID
}

// MemoryStore is an in-memory Store used by tests and embedded setups.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[memoryKey]Record
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[memoryKey]Record)}
}

// Put seeds a record, inferring the table from its concrete type.
func (s *MemoryStore) Put(record Record) error {
	table, err := tableOf(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[memoryKey{table: table, id: record.RecordID()}] = record
	return nil
}

func (s *MemoryStore) Load(_ context.Context, table Table, id uuid.UUID) (Record, error) {
	if _, err := ParseTable(string(table)); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[memoryKey{table: table, id: id}]
	if !ok {
		return nil, &NotFoundError{Table: table, Key: id.String()}
	}
	return record, nil
}

func (s *MemoryStore) Save(_ context.Context, table Table, record Record) error {
	if _, err := ParseTable(string(table)); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := memoryKey{table: table, id: record.RecordID()}
	if _, ok := s.records[key]; !ok {
		return &NotFoundError{Table: table, Key: record.RecordID().String()}
	}
	s.records[key] = record
	return nil
}

func tableOf(record Record) (Table, error) {
	switch record.(type) {
	case *InfoPage:
		return TableInfoPages, nil
	case *DeckPage:
		return TableDeckPages, nil
	case *Tournament:
		return TableTournaments, nil
	}
	return "", fmt.Errorf("%w: %T", ErrTableNotAllowed, record)
}

var _ Store = (*MemoryStore)(nil)
