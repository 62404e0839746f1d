package expense

import "context"

// Store is the persistence boundary for expenses and their splits. An
// expense and its splits move together: creation and replacement are single
// committed units, deletion cascades to the splits.
type Store interface {
	CreateWithSplits(ctx context.Context, e *Expense, splits []*Split) error
	GetByID(ctx context.Context, id string) (*Expense, error)
	GetSplits(ctx context.Context, expenseID string) ([]*Split, error)
	ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*Expense, int, error)
	ListRecentByUser(ctx context.Context, userID string, limit int) ([]*Expense, error)
	ReplaceWithSplits(ctx context.Context, e *Expense, splits []*Split) error
	Delete(ctx context.Context, id string) error
}
