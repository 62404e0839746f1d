package balance

import (
	"context"
	"database/sql"
	"fmt"
)

// Store is the read-side persistence boundary for balance queries
type Store interface {
	ListInvolving(ctx context.Context, userID string) ([]SplitRow, error)
	ListByGroup(ctx context.Context, groupID string) ([]GroupSplitRow, error)
	MemberNames(ctx context.Context, groupID string) (map[string]*string, error)
}

// Repository implements Store on Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new balance repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ Store = (*Repository)(nil)

// ListInvolving fetches every split touching the user, joined with the
// parent expense and the other side's profile
func (r *Repository) ListInvolving(ctx context.Context, userID string) ([]SplitRow, error) {
	query := `
		SELECT s.user_id, s.owed_to, s.amount,
		       e.id, e.description, e.date, e.group_id,
		       p.id, p.full_name, p.email, p.avatar_url
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		JOIN profiles p ON p.id = CASE WHEN s.user_id = $1 THEN s.owed_to ELSE s.user_id END
		WHERE s.user_id = $1 OR s.owed_to = $1
		ORDER BY e.date, e.created_at
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}
	defer rows.Close()

	var result []SplitRow
	for rows.Next() {
		var row SplitRow
		if err := rows.Scan(
			&row.UserID,
			&row.OwedTo,
			&row.Amount,
			&row.ExpenseID,
			&row.Description,
			&row.Date,
			&row.GroupID,
			&row.Counterparty.ID,
			&row.Counterparty.FullName,
			&row.Counterparty.Email,
			&row.Counterparty.AvatarURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// ListByGroup fetches every split belonging to the group's expenses
func (r *Repository) ListByGroup(ctx context.Context, groupID string) ([]GroupSplitRow, error) {
	query := `
		SELECT s.user_id, s.owed_to, s.amount
		FROM expense_splits s
		JOIN expenses e ON e.id = s.expense_id
		WHERE e.group_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list group splits: %w", err)
	}
	defer rows.Close()

	var result []GroupSplitRow
	for rows.Next() {
		var row GroupSplitRow
		if err := rows.Scan(&row.UserID, &row.OwedTo, &row.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan group split: %w", err)
		}
		result = append(result, row)
	}

	return result, nil
}

// MemberNames maps the group's member IDs to display names
func (r *Repository) MemberNames(ctx context.Context, groupID string) (map[string]*string, error) {
	query := `
		SELECT p.id, p.full_name
		FROM group_members gm
		JOIN profiles p ON p.id = gm.user_id
		WHERE gm.group_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member names: %w", err)
	}
	defer rows.Close()

	names := make(map[string]*string)
	for rows.Next() {
		var id string
		var name *string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan member name: %w", err)
		}
		names[id] = name
	}

	return names, nil
}
