package store

import (
	"context"
	"sync"
	"time"

	"auction-backend/utils"
)

// MemoryStore is a concurrency-safe in-memory implementation of
// DocumentStore, used by tests and local development. Documents are kept in
// insertion order per collection and copied on the way in and out so callers
// cannot mutate stored state.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]map[string]any // key: collection -> value: documents in insertion order
}

// NewMemoryStore creates an empty in-memory document store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]map[string]any),
	}
}

// Create inserts fields with a generated id and fresh timestamps
func (s *MemoryStore) Create(_ context.Context, collection string, fields map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	doc := cloneDoc(fields)
	doc["id"] = utils.GenerateID()
	doc["created_at"] = now
	doc["updated_at"] = now

	s.collections[collection] = append(s.collections[collection], doc)
	return cloneDoc(doc), nil
}

// List returns up to limit documents matching the filter by exact equality
func (s *MemoryStore) List(_ context.Context, collection string, filter map[string]any, limit int64) ([]map[string]any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := []map[string]any{}
	for _, doc := range s.collections[collection] {
		if int64(len(docs)) >= limit {
			break
		}
		if matchesFilter(doc, filter) {
			docs = append(docs, cloneDoc(doc))
		}
	}
	return docs, nil
}

// Update merges fields into the identified document, re-stamping updated_at
func (s *MemoryStore) Update(_ context.Context, collection string, id string, fields map[string]any) (map[string]any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range s.collections[collection] {
		if doc["id"] == id {
			for k, v := range cloneDoc(fields) {
				doc[k] = v
			}
			doc["updated_at"] = time.Now().UTC()
			return cloneDoc(doc), nil
		}
	}
	return nil, nil
}

// Delete removes the one document with the given id
func (s *MemoryStore) Delete(_ context.Context, collection string, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc["id"] == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Ping always succeeds for the in-memory store
func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func matchesFilter(doc, filter map[string]any) bool {
	for k, want := range filter {
		if doc[k] != want {
			return false
		}
	}
	return true
}

// cloneDoc copies a document one container level deep, enough to isolate the
// maps and slices the auction service reads and appends to.
func cloneDoc(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		nested := make(map[string]any, len(t))
		for k, item := range t {
			nested[k] = cloneValue(item)
		}
		return nested
	case []map[string]any:
		list := make([]map[string]any, 0, len(t))
		for _, item := range t {
			list = append(list, cloneValue(item).(map[string]any))
		}
		return list
	case []any:
		list := make([]any, 0, len(t))
		for _, item := range t {
			list = append(list, cloneValue(item))
		}
		return list
	default:
		return v
	}
}
