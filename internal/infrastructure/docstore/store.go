// Package docstore provides the client for the shared schemaless document
// keyspace. All entity kinds live in a single namespace; documents are
// distinguished only by their type tag, and every query is constrained on it.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Document is the tagged-union storage contract. ID is globally unique across
// all entity kinds; Type identifies the entity kind and must never change
// after creation.
type Document struct {
	ID      string
	Type    string
	Payload json.RawMessage
}

// Predicate filters documents during a Query scan
type Predicate func(Document) bool

// Store errors. ErrUnavailable wraps transient I/O failures; callers must not
// assume retries happen automatically.
var (
	ErrNotFound    = errors.New("docstore: document not found")
	ErrConflict    = errors.New("docstore: document already exists")
	ErrUnavailable = errors.New("docstore: store unavailable")
)

// Store is the document store client.
//
// Replace is a full-document overwrite with no concurrency token: two
// concurrent replaces of the same id apply last-writer-wins. Query re-executes
// the scan on every call; results are a finite snapshot, not a live cursor.
type Store interface {
	// GetByKey returns the document with the given id, or ErrNotFound
	GetByKey(ctx context.Context, id string) (Document, error)
	// Insert stores a new document, failing with ErrConflict if the id exists
	Insert(ctx context.Context, doc Document) error
	// Replace overwrites an existing document, failing with ErrNotFound if absent
	Replace(ctx context.Context, doc Document) error
	// Remove deletes the document with the given id, if present
	Remove(ctx context.Context, id string) error
	// Query returns all documents carrying the type tag that match the
	// predicate. A nil predicate matches everything with the tag.
	Query(ctx context.Context, typeTag string, pred Predicate) ([]Document, error)
}
