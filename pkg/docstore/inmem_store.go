package docstore

import (
	"context"
	"sync"
)

// InMemoryStore implements Store using in-memory storage
type InMemoryStore struct {
	mu    sync.RWMutex
	docs  map[string]map[string]Document // collection -> id -> document
	order map[string][]string            // collection -> ids in insertion order
}

// NewInMemoryStore creates a new in-memory document store
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		docs:  make(map[string]map[string]Document),
		order: make(map[string][]string),
	}
}

// Get returns the document and whether it exists
func (s *InMemoryStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.docs[collection]
	if !ok {
		return nil, false, nil
	}
	doc, ok := coll[id]
	if !ok {
		return nil, false, nil
	}
	return clone(doc), true, nil
}

// Set replaces the document's fields
func (s *InMemoryStore) Set(ctx context.Context, collection, id string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.docs[collection]
	if !ok {
		coll = make(map[string]Document)
		s.docs[collection] = coll
	}
	if _, exists := coll[id]; !exists {
		s.order[collection] = append(s.order[collection], id)
	}
	coll[id] = clone(fields)
	return nil
}

// Merge merges fields into the document, creating it when absent
func (s *InMemoryStore) Merge(ctx context.Context, collection, id string, fields Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.docs[collection]
	if !ok {
		coll = make(map[string]Document)
		s.docs[collection] = coll
	}
	doc, exists := coll[id]
	if !exists {
		s.order[collection] = append(s.order[collection], id)
		doc = make(Document)
	}
	merged := clone(doc)
	for k, v := range fields {
		merged[k] = v
	}
	coll[id] = merged
	return nil
}

// List returns all documents in the collection in insertion order
func (s *InMemoryStore) List(ctx context.Context, collection string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.order[collection]
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		if doc, ok := s.docs[collection][id]; ok {
			entries = append(entries, Entry{ID: id, Doc: clone(doc)})
		}
	}
	return entries, nil
}
