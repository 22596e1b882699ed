package persistence

import (
	"context"
	"strings"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/shared"
	"github.com/optivista/backend/internal/infrastructure/docstore"
)

// UserRepository implements clinic.UserRepository over the document store
type UserRepository struct {
	docRepository[clinic.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(store docstore.Store) *UserRepository {
	return &UserRepository{
		docRepository: newDocRepository(store, clinic.TypeTagUser, func(u *clinic.User) *string { return &u.ID }),
	}
}

// FindByID finds a user by id
func (r *UserRepository) FindByID(ctx context.Context, id string) (*clinic.User, error) {
	return r.findByID(ctx, id)
}

// FindByUsername finds a user by exact username
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*clinic.User, error) {
	username = strings.TrimSpace(username)
	users, err := r.query(ctx, func(u *clinic.User) bool { return u.Username == username })
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, shared.ErrNotFound
	}
	return &users[0], nil
}

// FindAll returns all users
func (r *UserRepository) FindAll(ctx context.Context) ([]clinic.User, error) {
	return r.query(ctx, nil)
}

// Create persists a new user, assigning its id. Usernames are kept unique at
// this level since the store cannot enforce it.
func (r *UserRepository) Create(ctx context.Context, user *clinic.User) error {
	if _, err := r.FindByUsername(ctx, user.Username); err == nil {
		return shared.ErrConflict
	}
	return r.create(ctx, user)
}

// Update replaces the stored user document
func (r *UserRepository) Update(ctx context.Context, id string, user *clinic.User) error {
	return r.update(ctx, id, user)
}

// Delete removes the user document
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}
