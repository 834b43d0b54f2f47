package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemStore holds every collection in memory as an ordered list of JSON
// objects, the same shape the portal originally persisted. All operations
// take the store lock, so the versioned update is a real compare-and-swap.
// Used by tests and local runs without a database.
type MemStore struct {
	mu   sync.Mutex
	data map[string][]map[string]interface{}
}

func NewMemStore() *MemStore {
	return &MemStore{data: make(map[string][]map[string]interface{})}
}

func encodeRecord(record interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]interface{})
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *MemStore) GetAll(_ context.Context, key string, out interface{}) error {
	s.mu.Lock()
	records := s.data[key]
	if records == nil {
		records = []map[string]interface{}{}
	}
	raw, err := json.Marshal(records)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (s *MemStore) Append(_ context.Context, key string, record interface{}) error {
	doc, err := encodeRecord(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.data[key] = append(s.data[key], doc)
	s.mu.Unlock()
	return nil
}

func (s *MemStore) ReplaceAll(_ context.Context, key string, records []interface{}) error {
	docs := make([]map[string]interface{}, 0, len(records))
	for _, record := range records {
		doc, err := encodeRecord(record)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	s.mu.Lock()
	s.data[key] = docs
	s.mu.Unlock()
	return nil
}

func (s *MemStore) UpdateByID(_ context.Context, key, id string, record interface{}) error {
	doc, err := encodeRecord(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[key] {
		if existing["id"] == id {
			s.data[key][i] = doc
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) UpdateVersioned(_ context.Context, key, id string, expected int64, record interface{}) error {
	doc, err := encodeRecord(record)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[key] {
		if existing["id"] != id {
			continue
		}
		version, _ := existing["version"].(float64)
		if int64(version) != expected {
			return ErrVersionConflict
		}
		s.data[key][i] = doc
		return nil
	}
	return ErrNotFound
}

func (s *MemStore) DeleteVersioned(_ context.Context, key, id string, expected int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[key] {
		if existing["id"] != id {
			continue
		}
		version, _ := existing["version"].(float64)
		if int64(version) != expected {
			return ErrVersionConflict
		}
		s.data[key] = append(s.data[key][:i], s.data[key][i+1:]...)
		return nil
	}
	return ErrNotFound
}

func (s *MemStore) DeleteByID(_ context.Context, key, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.data[key] {
		if existing["id"] == id {
			s.data[key] = append(s.data[key][:i], s.data[key][i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}
