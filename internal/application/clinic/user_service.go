package clinic

import (
	"context"

	"github.com/optivista/backend/internal/domain/clinic"
	"github.com/optivista/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// UserService handles back-office user accounts. Token issuance and session
// mechanics live outside this service.
type UserService struct {
	repo clinic.UserRepository
	log  *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(repo clinic.UserRepository, log *zap.Logger) *UserService {
	return &UserService{repo: repo, log: log.Named("user-service")}
}

// Create registers a new user with a hashed password
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*UserResponse, error) {
	user, err := clinic.NewUser(req.Username, req.Password, clinic.UserRole(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user created", zap.String("id", user.ID), zap.String("username", user.Username))
	resp := ToUserResponse(user)
	return &resp, nil
}

// GetByID returns a single user
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out, nil
}

// Authenticate verifies a username/password pair and returns the matching
// user. It deliberately reports the same error for unknown users and wrong
// passwords.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (*UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}
	if !user.CheckPassword(password) {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid username or password")
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// ChangePassword sets a new password for the user
func (s *UserService) ChangePassword(ctx context.Context, id, password string) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := user.SetPassword(password); err != nil {
		return err
	}
	return s.repo.Update(ctx, id, user)
}

// Delete removes a user account
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
