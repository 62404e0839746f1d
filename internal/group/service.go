package group

import (
	"context"
	"errors"
)

// Common errors
var (
	ErrGroupNotFound       = errors.New("group not found")
	ErrMemberNotFound      = errors.New("member not found")
	ErrMemberAlreadyExists = errors.New("user is already a member of this group")
	ErrNotCreator          = errors.New("only the group creator can do this")
	ErrNotMember           = errors.New("not a member of this group")
)

// Service handles group business logic
type Service struct {
	repo *Repository
}

// NewService creates a new group service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create creates a new group with the creator as its first member
func (s *Service) Create(ctx context.Context, creatorID string, req *CreateGroupRequest) (*Group, error) {
	return s.repo.Create(ctx, creatorID, req.Name)
}

// GetByIDWithMembers retrieves a group with all its members. Only members
// can see a group.
func (s *Service) GetByIDWithMembers(ctx context.Context, actingUserID, id string) (*Group, []*Member, error) {
	group, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	member, err := s.repo.GetMember(ctx, id, actingUserID)
	if err != nil {
		return nil, nil, err
	}
	if member == nil {
		return nil, nil, ErrNotMember
	}

	members, err := s.repo.GetMembers(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return group, members, nil
}

// ListByUserID retrieves the acting user's groups
func (s *Service) ListByUserID(ctx context.Context, userID string, page, perPage int) ([]*Group, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByUserID(ctx, userID, perPage, offset)
}

// Update renames a group. Creator only.
func (s *Service) Update(ctx context.Context, actingUserID, id string, req *UpdateGroupRequest) (*Group, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrGroupNotFound
	}
	if existing.CreatedBy != actingUserID {
		return nil, ErrNotCreator
	}

	return s.repo.Update(ctx, id, req.Name)
}

// Delete removes a group and everything it owns. Creator only.
func (s *Service) Delete(ctx context.Context, actingUserID, id string) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupNotFound
	}
	if existing.CreatedBy != actingUserID {
		return ErrNotCreator
	}

	return s.repo.Delete(ctx, id)
}

// AddMember adds a user to a group. Any member can add others.
func (s *Service) AddMember(ctx context.Context, actingUserID, groupID string, req *AddMemberRequest) (*Member, error) {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	acting, err := s.repo.GetMember(ctx, groupID, actingUserID)
	if err != nil {
		return nil, err
	}
	if acting == nil {
		return nil, ErrNotMember
	}

	existing, err := s.repo.GetMember(ctx, groupID, req.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrMemberAlreadyExists
	}

	return s.repo.AddMember(ctx, groupID, req.UserID)
}

// RemoveMember removes a user from a group. Members can remove themselves;
// the creator can remove anyone.
func (s *Service) RemoveMember(ctx context.Context, actingUserID, groupID, userID string) error {
	group, err := s.repo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	if actingUserID != userID && group.CreatedBy != actingUserID {
		return ErrNotCreator
	}

	member, err := s.repo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return ErrMemberNotFound
	}

	return s.repo.RemoveMember(ctx, groupID, userID)
}
