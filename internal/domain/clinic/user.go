package clinic

import (
	"strings"
	"time"

	"github.com/optivista/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// TypeTagUser is the document type tag for back-office users
const TypeTagUser = "user"

// UserRole represents the role of a back-office user
type UserRole string

const (
	UserRoleAdmin       UserRole = "admin"
	UserRoleReception   UserRole = "reception"
	UserRoleOptometrist UserRole = "optometrist"
)

// IsValid checks if the role is a known UserRole
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin, UserRoleReception, UserRoleOptometrist:
		return true
	}
	return false
}

// Password cost for bcrypt
const bcryptCost = 12

// User represents a back-office user account
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"passwordHash"`
	Role         UserRole  `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewUser creates a new user with a hashed password.
// The ID is assigned by the repository on create.
func NewUser(username, password string, role UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown user role")
	}

	now := time.Now()
	u := &User{
		Username:  username,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.SetPassword(password); err != nil {
		return nil, err
	}
	return u, nil
}

// SetPassword hashes and stores the given password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifies the given password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
