// Package persistence implements the typed repositories over the shared
// document keyspace. Every repository constrains reads on its entity's type
// tag at this boundary; the store itself enforces nothing.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// docRepository is the shared document mapping core behind every typed
// repository: marshal/unmarshal of payloads, type tag enforcement on reads,
// id generation on create, and store error translation.
type docRepository[T any] struct {
	store   docstore.Store
	typeTag string
	// id returns a pointer to the entity's ID field
	id func(*T) *string
}

func newDocRepository[T any](store docstore.Store, typeTag string, id func(*T) *string) docRepository[T] {
	return docRepository[T]{store: store, typeTag: typeTag, id: id}
}

func (r *docRepository[T]) findByID(ctx context.Context, id string) (*T, error) {
	doc, err := r.store.GetByKey(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	// A document of another kind under this id is a miss, not a hit
	if doc.Type != r.typeTag {
		return nil, shared.ErrNotFound
	}
	return r.decode(doc)
}

// query scans the keyspace for this repository's tag and applies the typed
// predicate. A nil predicate returns every entity of the kind.
func (r *docRepository[T]) query(ctx context.Context, pred func(*T) bool) ([]T, error) {
	docs, err := r.store.Query(ctx, r.typeTag, nil)
	if err != nil {
		return nil, mapStoreError(err)
	}
	out := make([]T, 0, len(docs))
	for _, doc := range docs {
		entity, err := r.decode(doc)
		if err != nil {
			return nil, err
		}
		if pred == nil || pred(entity) {
			out = append(out, *entity)
		}
	}
	return out, nil
}

// create assigns a fresh globally unique id and inserts the entity. Any
// caller-supplied id is ignored; ids are never trusted from outside.
func (r *docRepository[T]) create(ctx context.Context, entity *T) error {
	*r.id(entity) = uuid.NewString()
	doc, err := r.encode(entity)
	if err != nil {
		return err
	}
	if err := r.store.Insert(ctx, doc); err != nil {
		return mapStoreError(err)
	}
	return nil
}

// update performs a full-document replace. There is no concurrency token:
// concurrent updates of the same id apply last-writer-wins.
func (r *docRepository[T]) update(ctx context.Context, id string, entity *T) error {
	*r.id(entity) = id
	doc, err := r.encode(entity)
	if err != nil {
		return err
	}
	if err := r.store.Replace(ctx, doc); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *docRepository[T]) delete(ctx context.Context, id string) error {
	if err := r.store.Remove(ctx, id); err != nil {
		return mapStoreError(err)
	}
	return nil
}

func (r *docRepository[T]) decode(doc docstore.Document) (*T, error) {
	entity := new(T)
	if err := json.Unmarshal(doc.Payload, entity); err != nil {
		return nil, fmt.Errorf("failed to decode %s document %s: %w", r.typeTag, doc.ID, err)
	}
	*r.id(entity) = doc.ID
	return entity, nil
}

func (r *docRepository[T]) encode(entity *T) (docstore.Document, error) {
	payload, err := json.Marshal(entity)
	if err != nil {
		return docstore.Document{}, fmt.Errorf("failed to encode %s document: %w", r.typeTag, err)
	}
	return docstore.Document{ID: *r.id(entity), Type: r.typeTag, Payload: payload}, nil
}

// mapStoreError translates store errors into domain errors
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		return shared.ErrNotFound
	case errors.Is(err, docstore.ErrConflict):
		return shared.ErrConflict
	case errors.Is(err, docstore.ErrUnavailable):
		return shared.ErrStoreUnavailable
	default:
		return err
	}
}
