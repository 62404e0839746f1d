package friendship

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles friendship data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new friendship repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new pending friendship edge
func (r *Repository) Create(ctx context.Context, userID, friendID string) (*Friendship, error) {
	query := `
		INSERT INTO friendships (user_id, friend_id, status)
		VALUES ($1, $2, $3)
		RETURNING user_id, friend_id, status, created_at
	`

	f := &Friendship{}
	err := r.db.QueryRowContext(ctx, query, userID, friendID, StatusPending).Scan(
		&f.UserID,
		&f.FriendID,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create friendship: %w", err)
	}

	return f, nil
}

// GetBetween retrieves the edge between two users in either direction
func (r *Repository) GetBetween(ctx context.Context, userID, otherID string) (*Friendship, error) {
	query := `
		SELECT user_id, friend_id, status, created_at
		FROM friendships
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
	`

	f := &Friendship{}
	err := r.db.QueryRowContext(ctx, query, userID, otherID).Scan(
		&f.UserID,
		&f.FriendID,
		&f.Status,
		&f.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get friendship: %w", err)
	}

	return f, nil
}

// Accept marks a pending edge as accepted. Only the recipient side matches.
func (r *Repository) Accept(ctx context.Context, initiatorID, recipientID string) (bool, error) {
	query := `
		UPDATE friendships
		SET status = $3
		WHERE user_id = $1 AND friend_id = $2 AND status = $4
	`

	result, err := r.db.ExecContext(ctx, query, initiatorID, recipientID, StatusAccepted, StatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to accept friendship: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Delete removes the edge between two users in either direction
func (r *Repository) Delete(ctx context.Context, userID, otherID string) (bool, error) {
	query := `
		DELETE FROM friendships
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
	`

	result, err := r.db.ExecContext(ctx, query, userID, otherID)
	if err != nil {
		return false, fmt.Errorf("failed to delete friendship: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// ListByUserID retrieves all edges touching a user, with the other side's
// profile joined in
func (r *Repository) ListByUserID(ctx context.Context, userID string) ([]*Friend, error) {
	query := `
		SELECT p.id, p.full_name, p.email, p.avatar_url, f.status, f.friend_id = $1 AS incoming
		FROM friendships f
		JOIN profiles p ON p.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		WHERE f.user_id = $1 OR f.friend_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list friendships: %w", err)
	}
	defer rows.Close()

	var friends []*Friend
	for rows.Next() {
		friend := &Friend{}
		if err := rows.Scan(
			&friend.ID,
			&friend.FullName,
			&friend.Email,
			&friend.AvatarURL,
			&friend.Status,
			&friend.Incoming,
		); err != nil {
			return nil, fmt.Errorf("failed to scan friendship: %w", err)
		}
		friends = append(friends, friend)
	}

	return friends, nil
}
