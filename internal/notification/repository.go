package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Repository handles notification data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new notification repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new notification
func (r *Repository) Create(ctx context.Context, recipientID, message string, entityType, entityID *string) (*Notification, error) {
	query := `
		INSERT INTO notifications (id, recipient_id, message, related_entity_type, related_entity_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, recipient_id, message, is_read, related_entity_type, related_entity_id, created_at
	`

	n := &Notification{}
	err := r.db.QueryRowContext(ctx, query, uuid.New().String(), recipientID, message, entityType, entityID).Scan(
		&n.ID,
		&n.RecipientID,
		&n.Message,
		&n.IsRead,
		&n.RelatedEntityType,
		&n.RelatedEntityID,
		&n.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return n, nil
}

// ListByRecipientID retrieves notifications for a user, newest first
func (r *Repository) ListByRecipientID(ctx context.Context, recipientID string, limit, offset int, unreadOnly bool) ([]*Notification, int, error) {
	countQuery := `SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND ($2 = FALSE OR is_read = FALSE)`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, recipientID, unreadOnly).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query := `
		SELECT id, recipient_id, message, is_read, related_entity_type, related_entity_id, created_at
		FROM notifications
		WHERE recipient_id = $1 AND ($2 = FALSE OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3 OFFSET $4
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID, unreadOnly, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*Notification
	for rows.Next() {
		n := &Notification{}
		if err := rows.Scan(
			&n.ID,
			&n.RecipientID,
			&n.Message,
			&n.IsRead,
			&n.RelatedEntityType,
			&n.RelatedEntityID,
			&n.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, n)
	}

	return notifications, total, nil
}

// MarkAsRead marks one notification as read, scoped to its recipient
func (r *Repository) MarkAsRead(ctx context.Context, id, recipientID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND recipient_id = $2`,
		id, recipientID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification as read: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// MarkAllAsRead marks all of a user's notifications as read
func (r *Repository) MarkAllAsRead(ctx context.Context, recipientID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE recipient_id = $1`,
		recipientID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread notifications for a user
func (r *Repository) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM notifications WHERE recipient_id = $1 AND is_read = FALSE`,
		recipientID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
