package friendship

import (
	"context"
	"errors"

	"github.com/Shresth1822/split-expense/internal/user"
)

// Common errors
var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	ErrAlreadyFriends     = errors.New("friendship already exists")
	ErrCannotFriendSelf   = errors.New("cannot send a friend request to yourself")
	ErrNoPendingRequest   = errors.New("no pending request from this user")
)

// Service handles friendship business logic
type Service struct {
	repo     *Repository
	userRepo *user.Repository
}

// NewService creates a new friendship service
func NewService(repo *Repository, userRepo *user.Repository) *Service {
	return &Service{repo: repo, userRepo: userRepo}
}

// SendRequest creates a pending friendship from the acting user to the
// profile registered under the given email
func (s *Service) SendRequest(ctx context.Context, actingUserID, email string) (*Friendship, error) {
	target, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, user.ErrProfileNotFound
	}
	if target.ID == actingUserID {
		return nil, ErrCannotFriendSelf
	}

	existing, err := s.repo.GetBetween(ctx, actingUserID, target.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyFriends
	}

	return s.repo.Create(ctx, actingUserID, target.ID)
}

// Accept lets the recipient accept a pending request from initiatorID
func (s *Service) Accept(ctx context.Context, actingUserID, initiatorID string) error {
	accepted, err := s.repo.Accept(ctx, initiatorID, actingUserID)
	if err != nil {
		return err
	}
	if !accepted {
		return ErrNoPendingRequest
	}
	return nil
}

// Remove deletes the edge with the other user. Either party can remove a
// friendship unilaterally; the recipient rejecting a pending request takes
// the same path.
func (s *Service) Remove(ctx context.Context, actingUserID, otherID string) error {
	deleted, err := s.repo.Delete(ctx, actingUserID, otherID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrFriendshipNotFound
	}
	return nil
}

// List retrieves all of the acting user's edges, accepted and pending
func (s *Service) List(ctx context.Context, actingUserID string) ([]*Friend, error) {
	return s.repo.ListByUserID(ctx, actingUserID)
}
