package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// fileCollection is the on-disk shape of one collection
type fileCollection struct {
	Order []string            `json:"order"`
	Docs  map[string]Document `json:"docs"`
}

// FileStore implements Store using file-based storage, one JSON file
// per collection under the data directory
type FileStore struct {
	dataDir     string
	mutex       sync.RWMutex
	collections map[string]*fileCollection
}

// NewFileStore creates a new file-based document store
func NewFileStore(dataDir string) (*FileStore, error) {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	store := &FileStore{
		dataDir:     dataDir,
		collections: make(map[string]*fileCollection),
	}

	if err := store.load(); err != nil {
		return nil, fmt.Errorf("failed to load data: %w", err)
	}

	return store, nil
}

// Get returns the document and whether it exists
func (s *FileStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return nil, false, nil
	}
	doc, ok := coll.Docs[id]
	if !ok {
		return nil, false, nil
	}
	return clone(doc), true, nil
}

// Set replaces the document's fields
func (s *FileStore) Set(ctx context.Context, collection, id string, fields Document) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	coll := s.collection(collection)
	_, existed := coll.Docs[id]
	prev := coll.Docs[id]
	if !existed {
		coll.Order = append(coll.Order, id)
	}
	coll.Docs[id] = clone(fields)

	if err := s.save(collection); err != nil {
		// Rollback
		if existed {
			coll.Docs[id] = prev
		} else {
			delete(coll.Docs, id)
			coll.Order = coll.Order[:len(coll.Order)-1]
		}
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

// Merge merges fields into the document, creating it when absent
func (s *FileStore) Merge(ctx context.Context, collection, id string, fields Document) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	coll := s.collection(collection)
	prev, existed := coll.Docs[id]
	if !existed {
		coll.Order = append(coll.Order, id)
		prev = make(Document)
	}
	merged := clone(prev)
	for k, v := range fields {
		merged[k] = v
	}
	coll.Docs[id] = merged

	if err := s.save(collection); err != nil {
		if existed {
			coll.Docs[id] = prev
		} else {
			delete(coll.Docs, id)
			coll.Order = coll.Order[:len(coll.Order)-1]
		}
		return fmt.Errorf("failed to save: %w", err)
	}
	return nil
}

// List returns all documents in the collection in insertion order
func (s *FileStore) List(ctx context.Context, collection string) ([]Entry, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return []Entry{}, nil
	}
	entries := make([]Entry, 0, len(coll.Order))
	for _, id := range coll.Order {
		if doc, ok := coll.Docs[id]; ok {
			entries = append(entries, Entry{ID: id, Doc: clone(doc)})
		}
	}
	return entries, nil
}

func (s *FileStore) collection(name string) *fileCollection {
	coll, ok := s.collections[name]
	if !ok {
		coll = &fileCollection{Docs: make(map[string]Document)}
		s.collections[name] = coll
	}
	return coll
}

func (s *FileStore) collectionPath(name string) string {
	return filepath.Join(s.dataDir, name+".json")
}

// load reads every collection file found under the data directory
func (s *FileStore) load() error {
	pattern := filepath.Join(s.dataDir, "*.json")
	files, err := filepath.Glob(pattern)
	if err != nil {
		return err
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		var coll fileCollection
		if err := json.Unmarshal(data, &coll); err != nil {
			return fmt.Errorf("failed to parse %s: %w", file, err)
		}
		if coll.Docs == nil {
			coll.Docs = make(map[string]Document)
		}
		name := filepath.Base(file)
		name = name[:len(name)-len(".json")]
		s.collections[name] = &coll
	}
	return nil
}

// save writes one collection back to its file
func (s *FileStore) save(name string) error {
	coll, ok := s.collections[name]
	if !ok {
		return nil
	}
	data, err := json.MarshalIndent(coll, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.collectionPath(name), data, 0644)
}
