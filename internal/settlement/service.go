// Package settlement records real-world payments that cancel debts. A
// settlement is not its own entity: it is written as a synthetic expense
// with a single split pointing back at the payer, and the balance math
// nets it against the prior debt with no special casing.
package settlement

import (
	"context"
	"errors"
	"math"

	"github.com/Shresth1822/split-expense/internal/balance"
	"github.com/Shresth1822/split-expense/internal/expense"
)

// Common errors
var (
	ErrCannotSettleSelf = errors.New("cannot settle up with yourself")
	ErrNothingToSettle  = errors.New("nothing to settle with this user")
	ErrInvalidAmount    = errors.New("settlement amount must be greater than zero")
)

// Service handles settlement business logic
type Service struct {
	balances *balance.Service
	expenses *expense.Service
}

// NewService creates a new settlement service
func NewService(balances *balance.Service, expenses *expense.Service) *Service {
	return &Service{balances: balances, expenses: expenses}
}

// Settle records that the acting user paid the counterparty. The amount
// defaults to the full outstanding debt; a partial amount leaves the
// remainder open. The acting user must currently owe the counterparty.
func (s *Service) Settle(ctx context.Context, actingUserID string, req *SettleRequest) (*SettleResponse, error) {
	if req.CounterpartyID == actingUserID {
		return nil, ErrCannotSettleSelf
	}

	position, err := s.balances.BreakdownWith(ctx, actingUserID, req.CounterpartyID)
	if err != nil {
		return nil, err
	}

	// Positive total means the acting user owes. Zero or negative means
	// there is no debt in this direction to settle.
	debt := position.TotalAmount
	if debt <= 0.01 {
		return nil, ErrNothingToSettle
	}

	amount := debt
	if req.Amount != nil {
		amount = *req.Amount
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	groupID := req.GroupID
	if groupID == nil {
		groupID = position.CommonGroupID
	}

	result, err := s.expenses.CreateSettlement(ctx, actingUserID, req.CounterpartyID, amount, groupID)
	if err != nil {
		return nil, err
	}

	return &SettleResponse{
		ExpenseID:      result.Expense.ID,
		CounterpartyID: req.CounterpartyID,
		Amount:         amount,
		RemainingDebt:  math.Round((debt-amount)*100) / 100,
	}, nil
}
