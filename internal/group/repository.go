package group

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles group data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new group repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new group and its creator's membership in one transaction
func (r *Repository) Create(ctx context.Context, creatorID, name string) (*Group, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO groups (id, name, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, name, created_by, created_at
	`

	group := &Group{}
	err = tx.QueryRowContext(ctx, query, uuid.New().String(), name, creatorID).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO group_members (group_id, user_id) VALUES ($1, $2)`,
		group.ID, creatorID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add creator membership: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit group creation: %w", err)
	}

	return group, nil
}

// GetByID retrieves a group by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Group, error) {
	query := `
		SELECT id, name, created_by, created_at
		FROM groups
		WHERE id = $1
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return group, nil
}

// ListByUserID retrieves all groups the user is a member of
func (r *Repository) ListByUserID(ctx context.Context, userID string, limit, offset int) ([]*Group, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM group_members WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count groups: %w", err)
	}

	query := `
		SELECT g.id, g.name, g.created_by, g.created_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY g.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list groups: %w", err)
	}
	defer rows.Close()

	var groups []*Group
	for rows.Next() {
		group := &Group{}
		if err := rows.Scan(
			&group.ID,
			&group.Name,
			&group.CreatedBy,
			&group.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, group)
	}

	return groups, total, nil
}

// Update renames a group
func (r *Repository) Update(ctx context.Context, id, name string) (*Group, error) {
	query := `
		UPDATE groups
		SET name = $2
		WHERE id = $1
		RETURNING id, name, created_by, created_at
	`

	group := &Group{}
	err := r.db.QueryRowContext(ctx, query, id, name).Scan(
		&group.ID,
		&group.Name,
		&group.CreatedBy,
		&group.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return group, nil
}

// Delete removes a group. Memberships, expenses and their splits go with it
// through the schema's ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM groups WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("group not found")
	}

	return nil
}

// AddMember inserts a membership pair
func (r *Repository) AddMember(ctx context.Context, groupID, userID string) (*Member, error) {
	query := `
		INSERT INTO group_members (group_id, user_id)
		VALUES ($1, $2)
		RETURNING group_id, user_id, joined_at
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, userID).Scan(
		&member.GroupID,
		&member.UserID,
		&member.JoinedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	return member, nil
}

// GetMember retrieves a single membership pair
func (r *Repository) GetMember(ctx context.Context, groupID, userID string) (*Member, error) {
	query := `
		SELECT group_id, user_id, joined_at
		FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`

	member := &Member{}
	err := r.db.QueryRowContext(ctx, query, groupID, userID).Scan(
		&member.GroupID,
		&member.UserID,
		&member.JoinedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return member, nil
}

// GetMembers retrieves all members of a group with profile fields joined
func (r *Repository) GetMembers(ctx context.Context, groupID string) ([]*Member, error) {
	query := `
		SELECT gm.group_id, gm.user_id, gm.joined_at, p.full_name, p.email, p.avatar_url
		FROM group_members gm
		JOIN profiles p ON p.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []*Member
	for rows.Next() {
		member := &Member{}
		if err := rows.Scan(
			&member.GroupID,
			&member.UserID,
			&member.JoinedAt,
			&member.FullName,
			&member.Email,
			&member.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, nil
}

// RemoveMember deletes a membership pair
func (r *Repository) RemoveMember(ctx context.Context, groupID, userID string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM group_members WHERE group_id = $1 AND user_id = $2`,
		groupID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}
	return nil
}
