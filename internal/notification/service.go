package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Common errors
var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// Service handles notification business logic
type Service struct {
	repo *Repository
}

// NewService creates a new notification service
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// ListByRecipient retrieves the acting user's notifications
func (s *Service) ListByRecipient(ctx context.Context, recipientID string, page, perPage int, unreadOnly bool) ([]*Notification, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.repo.ListByRecipientID(ctx, recipientID, perPage, offset, unreadOnly)
}

// MarkAsRead marks one of the acting user's notifications as read
func (s *Service) MarkAsRead(ctx context.Context, id, recipientID string) error {
	updated, err := s.repo.MarkAsRead(ctx, id, recipientID)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead marks all of the acting user's notifications as read
func (s *Service) MarkAllAsRead(ctx context.Context, recipientID string) error {
	return s.repo.MarkAllAsRead(ctx, recipientID)
}

// UnreadCount returns the acting user's unread notification count
func (s *Service) UnreadCount(ctx context.Context, recipientID string) (int, error) {
	return s.repo.UnreadCount(ctx, recipientID)
}

// ExpenseAdded records an in-app notification when an expense lands on a
// participant. Fire-and-forget: a failed insert is logged, never surfaced
// to the write path that triggered it.
func (s *Service) ExpenseAdded(ctx context.Context, recipientID, payerID string, amount float64, expenseID string) {
	message := fmt.Sprintf("A new expense was added and you owe %.2f", amount)
	entityType := "EXPENSE"

	if _, err := s.repo.Create(ctx, recipientID, message, &entityType, &expenseID); err != nil {
		slog.Error("failed to record expense notification",
			"recipient", recipientID,
			"expense", expenseID,
			"error", err,
		)
	}
}
