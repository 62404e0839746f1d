package user

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrProfileNotFound   = errors.New("profile not found")
	ErrEmailAlreadyInUse = errors.New("email already in use")
	ErrNotOwner          = errors.New("only the profile owner can update it")
)

// Service handles profile business logic
type Service struct {
	repo *Repository
}

// NewService creates a new profile service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create registers a new profile
func (s *Service) Create(ctx context.Context, req *CreateProfileRequest) (*Profile, error) {
	existing, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyInUse
	}

	return s.repo.Create(ctx, req)
}

// GetByID retrieves a profile by its ID
func (s *Service) GetByID(ctx context.Context, id string) (*Profile, error) {
	profile, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// List retrieves profiles with pagination
func (s *Service) List(ctx context.Context, page, perPage int) ([]*Profile, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.List(ctx, perPage, offset)
}

// Update modifies the acting user's own profile. Identity is immutable;
// only display fields can change.
func (s *Service) Update(ctx context.Context, actingUserID, id string, req *UpdateProfileRequest) (*Profile, error) {
	if actingUserID != id {
		return nil, ErrNotOwner
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrProfileNotFound
	}

	return s.repo.Update(ctx, id, req)
}
