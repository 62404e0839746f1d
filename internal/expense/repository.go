package expense

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository implements Store on Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

var _ Store = (*Repository)(nil)

// CreateWithSplits inserts an expense and all of its splits in one
// transaction. A crash can never leave an expense without its splits.
func (r *Repository) CreateWithSplits(ctx context.Context, e *Expense, splits []*Split) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO expenses (id, group_id, description, amount, date, paid_by, created_by, kind)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, query,
		e.ID, e.GroupID, e.Description, e.Amount, e.Date, e.PaidBy, e.CreatedBy, e.Kind,
	).Scan(&e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	if err := insertSplits(ctx, tx, splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense creation: %w", err)
	}

	return nil
}

// ReplaceWithSplits updates the expense row and swaps its split set
// (delete-all-then-insert) in one transaction.
func (r *Repository) ReplaceWithSplits(ctx context.Context, e *Expense, splits []*Split) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE expenses
		SET description = $2, amount = $3, date = $4, paid_by = $5
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, query, e.ID, e.Description, e.Amount, e.Date, e.PaidBy); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_splits WHERE expense_id = $1`, e.ID); err != nil {
		return fmt.Errorf("failed to delete old splits: %w", err)
	}

	if err := insertSplits(ctx, tx, splits); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit expense update: %w", err)
	}

	return nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, splits []*Split) error {
	query := `
		INSERT INTO expense_splits (id, expense_id, user_id, amount, owed_to)
		VALUES ($1, $2, $3, $4, $5)
	`
	for _, s := range splits {
		if _, err := tx.ExecContext(ctx, query, s.ID, s.ExpenseID, s.UserID, s.Amount, s.OwedTo); err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}
	}
	return nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id string) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.description, e.amount, e.date, e.paid_by, e.created_by, e.kind, e.created_at, p.full_name
		FROM expenses e
		JOIN profiles p ON p.id = e.paid_by
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.Description,
		&expense.Amount,
		&expense.Date,
		&expense.PaidBy,
		&expense.CreatedBy,
		&expense.Kind,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSplits retrieves all splits for an expense
func (r *Repository) GetSplits(ctx context.Context, expenseID string) ([]*Split, error) {
	query := `
		SELECT id, expense_id, user_id, amount, owed_to
		FROM expense_splits
		WHERE expense_id = $1
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get splits: %w", err)
	}
	defer rows.Close()

	var splits []*Split
	for rows.Next() {
		s := &Split{}
		if err := rows.Scan(&s.ID, &s.ExpenseID, &s.UserID, &s.Amount, &s.OwedTo); err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, s)
	}

	return splits, nil
}

// ListByGroup retrieves a group's expenses, newest first
func (r *Repository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.group_id, e.description, e.amount, e.date, e.paid_by, e.created_by, e.kind, e.created_at, p.full_name
		FROM expenses e
		JOIN profiles p ON p.id = e.paid_by
		WHERE e.group_id = $1
		ORDER BY e.date DESC, e.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses, err := scanExpenses(rows)
	if err != nil {
		return nil, 0, err
	}

	return expenses, total, nil
}

// ListRecentByUser retrieves the latest expenses the user took part in,
// either as payer, creator or split participant
func (r *Repository) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*Expense, error) {
	query := `
		SELECT DISTINCT e.id, e.group_id, e.description, e.amount, e.date, e.paid_by, e.created_by, e.kind, e.created_at, p.full_name
		FROM expenses e
		JOIN profiles p ON p.id = e.paid_by
		LEFT JOIN expense_splits s ON s.expense_id = e.id
		WHERE e.paid_by = $1 OR e.created_by = $1 OR s.user_id = $1 OR s.owed_to = $1
		ORDER BY e.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent expenses: %w", err)
	}
	defer rows.Close()

	return scanExpenses(rows)
}

func scanExpenses(rows *sql.Rows) ([]*Expense, error) {
	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.Description,
			&expense.Amount,
			&expense.Date,
			&expense.PaidBy,
			&expense.CreatedBy,
			&expense.Kind,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	return expenses, nil
}

// Delete removes an expense; the schema cascades to its splits
func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("expense not found")
	}

	return nil
}
