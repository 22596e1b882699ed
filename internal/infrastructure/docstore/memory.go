package docstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory Store used by tests and local demo runs. It
// mirrors the semantics of the real store, including last-writer-wins
// replaces, and can be forced to fail to exercise ErrUnavailable paths.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
	// fail, when set, makes every operation return ErrUnavailable
	fail bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]Document)}
}

// SetUnavailable toggles simulated store failure
func (s *MemoryStore) SetUnavailable(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *MemoryStore) failing() bool {
	return s.fail
}

// GetByKey returns the document with the given id
func (s *MemoryStore) GetByKey(ctx context.Context, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing() {
		return Document{}, ErrUnavailable
	}
	doc, ok := s.docs[id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return copyDocument(doc), nil
}

// Insert stores a new document
func (s *MemoryStore) Insert(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing() {
		return ErrUnavailable
	}
	if _, ok := s.docs[doc.ID]; ok {
		return ErrConflict
	}
	s.docs[doc.ID] = copyDocument(doc)
	return nil
}

// Replace overwrites an existing document's payload. The stored type tag is
// kept; it never mutates post-creation.
func (s *MemoryStore) Replace(ctx context.Context, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing() {
		return ErrUnavailable
	}
	existing, ok := s.docs[doc.ID]
	if !ok {
		return ErrNotFound
	}
	stored := copyDocument(doc)
	stored.Type = existing.Type
	s.docs[doc.ID] = stored
	return nil
}

// Remove deletes the document with the given id, if present
func (s *MemoryStore) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failing() {
		return ErrUnavailable
	}
	delete(s.docs, id)
	return nil
}

// Query returns all documents carrying the type tag that match the predicate
func (s *MemoryStore) Query(ctx context.Context, typeTag string, pred Predicate) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.failing() {
		return nil, ErrUnavailable
	}
	docs := make([]Document, 0)
	for _, doc := range s.docs {
		if doc.Type != typeTag {
			continue
		}
		if pred == nil || pred(doc) {
			docs = append(docs, copyDocument(doc))
		}
	}
	return docs, nil
}

func copyDocument(doc Document) Document {
	payload := make([]byte, len(doc.Payload))
	copy(payload, doc.Payload)
	return Document{ID: doc.ID, Type: doc.Type, Payload: payload}
}
