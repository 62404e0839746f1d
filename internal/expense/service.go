package expense

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Shresth1822/split-expense/internal/expense/split"
)

// Common errors
var (
	ErrExpenseNotFound    = errors.New("expense not found")
	ErrInvalidAmount      = errors.New("amount must be greater than zero")
	ErrEmptyDescription   = errors.New("description is required")
	ErrNoParticipants     = errors.New("at least one participant is required")
	ErrInvalidDate        = errors.New("date must be YYYY-MM-DD")
	ErrNotAuthorized      = errors.New("not authorized to modify this expense")
	ErrSettlementReadOnly = errors.New("settlements cannot be edited")
)

// Notifier fans out an out-of-band side effect when an expense lands. The
// core never reads anything back from it.
type Notifier interface {
	ExpenseAdded(ctx context.Context, recipientID, payerID string, amount float64, expenseID string)
}

// Service handles expense business logic
type Service struct {
	store        Store
	splitFactory *split.Factory
	notifier     Notifier
}

// NewService creates a new expense service with dependencies injected
func NewService(store Store, splitFactory *split.Factory, notifier Notifier) *Service {
	return &Service{
		store:        store,
		splitFactory: splitFactory,
		notifier:     notifier,
	}
}

// Create validates the request, calculates the splits with the requested
// strategy and persists expense plus splits as a single unit.
func (s *Service) Create(ctx context.Context, actingUserID string, req *CreateExpenseRequest) (*ExpenseWithSplits, error) {
	if err := validateCommon(req.Description, req.Amount, req.Participants); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	paidBy := req.PaidBy
	if paidBy == "" {
		paidBy = actingUserID
	}

	expense := &Expense{
		ID:          uuid.New().String(),
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        date,
		PaidBy:      paidBy,
		CreatedBy:   actingUserID,
		Kind:        KindExpense,
	}

	splits := s.buildSplits(expense, req.SplitType, req.Participants)

	if err := s.store.CreateWithSplits(ctx, expense, splits); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		for _, sp := range splits {
			if sp.UserID != paidBy {
				s.notifier.ExpenseAdded(ctx, sp.UserID, paidBy, sp.Amount, expense.ID)
			}
		}
	}

	return &ExpenseWithSplits{Expense: expense, Splits: splits}, nil
}

// CreateSettlement records a real-world payment as a synthetic expense: the
// payer fronts the settled amount and the counterparty owes it all back,
// which nets out the prior debt in aggregation. The split set is exactly one
// row {user: counterparty, owed_to: payer}.
func (s *Service) CreateSettlement(ctx context.Context, payerID, counterpartyID string, amount float64, groupID *string) (*ExpenseWithSplits, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	expense := &Expense{
		ID:          uuid.New().String(),
		GroupID:     groupID,
		Description: SettlementDescription,
		Amount:      amount,
		Date:        time.Now().UTC().Truncate(24 * time.Hour),
		PaidBy:      payerID,
		CreatedBy:   payerID,
		Kind:        KindSettlement,
	}

	splits := []*Split{{
		ID:        uuid.New().String(),
		ExpenseID: expense.ID,
		UserID:    counterpartyID,
		Amount:    amount,
		OwedTo:    payerID,
	}}

	if err := s.store.CreateWithSplits(ctx, expense, splits); err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: expense, Splits: splits}, nil
}

// GetByID retrieves an expense with its splits
func (s *Service) GetByID(ctx context.Context, id string) (*ExpenseWithSplits, error) {
	expense, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	splits, err := s.store.GetSplits(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: expense, Splits: splits}, nil
}

// ListByGroup retrieves expenses for a group
func (s *Service) ListByGroup(ctx context.Context, groupID string, page, perPage int) ([]*Expense, int, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	offset := (page - 1) * perPage
	return s.store.ListByGroup(ctx, groupID, perPage, offset)
}

// ListRecent retrieves the acting user's latest activity
func (s *Service) ListRecent(ctx context.Context, actingUserID string, limit int) ([]*Expense, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	return s.store.ListRecentByUser(ctx, actingUserID, limit)
}

// Update replaces an expense's mutable fields and recomputes its splits.
// The old split set is discarded wholesale; expense row and new splits
// commit together.
func (s *Service) Update(ctx context.Context, actingUserID, id string, req *UpdateExpenseRequest) (*ExpenseWithSplits, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}
	if existing.Kind == KindSettlement {
		return nil, ErrSettlementReadOnly
	}
	if existing.CreatedBy != actingUserID && existing.PaidBy != actingUserID {
		return nil, ErrNotAuthorized
	}

	if err := validateCommon(req.Description, req.Amount, req.Participants); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	existing.Description = req.Description
	existing.Amount = req.Amount
	existing.Date = date
	existing.PaidBy = req.PaidBy

	splits := s.buildSplits(existing, req.SplitType, req.Participants)

	if err := s.store.ReplaceWithSplits(ctx, existing, splits); err != nil {
		return nil, err
	}

	return &ExpenseWithSplits{Expense: existing, Splits: splits}, nil
}

// Delete removes an expense and its splits
func (s *Service) Delete(ctx context.Context, actingUserID, id string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrExpenseNotFound
	}
	if existing.CreatedBy != actingUserID && existing.PaidBy != actingUserID {
		return ErrNotAuthorized
	}

	return s.store.Delete(ctx, id)
}

// buildSplits runs the strategy and maps shares onto split rows. Everyone,
// payer included, owes the payer; the payer's own row is the self-loop that
// balance aggregation skips.
func (s *Service) buildSplits(e *Expense, splitType string, participants []split.Participant) []*Split {
	strategy := s.splitFactory.CreateFromString(splitType)
	shares := strategy.Calculate(e.Amount, e.PaidBy, participants)

	splits := make([]*Split, len(shares))
	for i, share := range shares {
		splits[i] = &Split{
			ID:        uuid.New().String(),
			ExpenseID: e.ID,
			UserID:    share.UserID,
			Amount:    share.Amount,
			OwedTo:    e.PaidBy,
		}
	}
	return splits
}

func validateCommon(description string, amount float64, participants []split.Participant) error {
	if description == "" {
		return ErrEmptyDescription
	}
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	return nil
}
