package settlement

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shresth1822/split-expense/internal/balance"
	"github.com/Shresth1822/split-expense/internal/expense"
	"github.com/Shresth1822/split-expense/internal/expense/split"
)

// memStore backs both the expense write side and the balance read side with
// the same in-memory rows, so a settlement written through the expense
// service is visible to the next balance query, like it would be against
// Postgres.
type memStore struct {
	expenses map[string]*expense.Expense
	splits   map[string][]*expense.Split
	order    []string
}

func newMemStore() *memStore {
	return &memStore{
		expenses: make(map[string]*expense.Expense),
		splits:   make(map[string][]*expense.Split),
	}
}

func (m *memStore) CreateWithSplits(ctx context.Context, e *expense.Expense, splits []*expense.Split) error {
	m.expenses[e.ID] = e
	m.splits[e.ID] = splits
	m.order = append(m.order, e.ID)
	return nil
}

func (m *memStore) GetByID(ctx context.Context, id string) (*expense.Expense, error) {
	return m.expenses[id], nil
}

func (m *memStore) GetSplits(ctx context.Context, expenseID string) ([]*expense.Split, error) {
	return m.splits[expenseID], nil
}

func (m *memStore) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*expense.Expense, int, error) {
	return nil, 0, nil
}

func (m *memStore) ListRecentByUser(ctx context.Context, userID string, limit int) ([]*expense.Expense, error) {
	return nil, nil
}

func (m *memStore) ReplaceWithSplits(ctx context.Context, e *expense.Expense, splits []*expense.Split) error {
	m.expenses[e.ID] = e
	m.splits[e.ID] = splits
	return nil
}

func (m *memStore) Delete(ctx context.Context, id string) error {
	delete(m.expenses, id)
	delete(m.splits, id)
	return nil
}

func (m *memStore) ListInvolving(ctx context.Context, userID string) ([]balance.SplitRow, error) {
	var rows []balance.SplitRow
	for _, id := range m.order {
		e, ok := m.expenses[id]
		if !ok {
			continue
		}
		for _, sp := range m.splits[id] {
			if sp.UserID != userID && sp.OwedTo != userID {
				continue
			}
			other := sp.OwedTo
			if other == userID {
				other = sp.UserID
			}
			rows = append(rows, balance.SplitRow{
				UserID:       sp.UserID,
				OwedTo:       sp.OwedTo,
				Amount:       sp.Amount,
				ExpenseID:    e.ID,
				Description:  e.Description,
				Date:         e.Date,
				GroupID:      e.GroupID,
				Counterparty: balance.Counterparty{ID: other},
			})
		}
	}
	return rows, nil
}

func (m *memStore) MemberNames(ctx context.Context, groupID string) (map[string]*string, error) {
	return nil, nil
}

// balanceSide adapts memStore to balance.Store; expense.Store and
// balance.Store both declare ListByGroup with different signatures, so the
// two interfaces cannot hang off one type.
type balanceSide struct{ *memStore }

func (b balanceSide) ListByGroup(ctx context.Context, groupID string) ([]balance.GroupSplitRow, error) {
	return nil, nil
}

func newTestService() (*Service, *expense.Service, *balance.Service, *memStore) {
	store := newMemStore()
	expenses := expense.NewService(store, split.NewFactory(), nil)
	balances := balance.NewService(balanceSide{store})
	return NewService(balances, expenses), expenses, balances, store
}

func addDebt(t *testing.T, expenses *expense.Service, payer string, amount float64, participants ...string) {
	t.Helper()
	ps := make([]split.Participant, len(participants))
	for i, id := range participants {
		ps[i] = split.Participant{UserID: id}
	}
	_, err := expenses.Create(context.Background(), payer, &expense.CreateExpenseRequest{
		Description:  "Dinner",
		Amount:       amount,
		Date:         "2026-01-05",
		SplitType:    "equal",
		Participants: ps,
	})
	require.NoError(t, err)
}

func TestSettleFullDebt(t *testing.T) {
	svc, expenses, balances, _ := newTestService()
	ctx := context.Background()

	// bob pays 200 split between bob and alice: alice owes bob 100
	addDebt(t, expenses, "bob", 200.00, "bob", "alice")

	resp, err := svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "bob"})
	require.NoError(t, err)

	assert.Equal(t, 100.00, resp.Amount, "amount defaults to the full debt")
	assert.Equal(t, 0.0, resp.RemainingDebt)
	assert.Equal(t, "bob", resp.CounterpartyID)

	// The settlement nets the debt out of the next balance read.
	position, err := balances.BreakdownWith(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, 0.0, position.TotalAmount)

	summary, err := balances.Summary(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 0.0, summary.NetBalance)
}

func TestSettlePartial(t *testing.T) {
	svc, expenses, balances, _ := newTestService()
	ctx := context.Background()

	addDebt(t, expenses, "bob", 200.00, "bob", "alice")

	amount := 40.00
	resp, err := svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "bob", Amount: &amount})
	require.NoError(t, err)

	assert.Equal(t, 40.00, resp.Amount)
	assert.Equal(t, 60.00, resp.RemainingDebt)

	position, err := balances.BreakdownWith(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, 60.00, position.TotalAmount)
}

func TestSettleWritesSyntheticExpense(t *testing.T) {
	svc, expenses, _, store := newTestService()
	ctx := context.Background()

	addDebt(t, expenses, "bob", 200.00, "bob", "alice")

	resp, err := svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "bob"})
	require.NoError(t, err)

	e, err := store.GetByID(ctx, resp.ExpenseID)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, expense.KindSettlement, e.Kind)
	assert.Equal(t, expense.SettlementDescription, e.Description)
	assert.Equal(t, "alice", e.PaidBy)

	splits, err := store.GetSplits(ctx, resp.ExpenseID)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Equal(t, "bob", splits[0].UserID)
	assert.Equal(t, "alice", splits[0].OwedTo)
	assert.Equal(t, 100.00, splits[0].Amount)
}

func TestSettleInheritsGroupFromDebt(t *testing.T) {
	svc, expenses, _, store := newTestService()
	ctx := context.Background()

	groupID := "g1"
	_, err := expenses.Create(ctx, "bob", &expense.CreateExpenseRequest{
		GroupID:      &groupID,
		Description:  "Trip hotel",
		Amount:       200.00,
		Date:         "2026-01-05",
		SplitType:    "equal",
		Participants: []split.Participant{{UserID: "bob"}, {UserID: "alice"}},
	})
	require.NoError(t, err)

	resp, err := svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "bob"})
	require.NoError(t, err)

	e, err := store.GetByID(ctx, resp.ExpenseID)
	require.NoError(t, err)
	require.NotNil(t, e.GroupID)
	assert.Equal(t, "g1", *e.GroupID)
}

func TestSettleErrors(t *testing.T) {
	svc, expenses, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "alice"})
	assert.ErrorIs(t, err, ErrCannotSettleSelf)

	// No history with carol at all.
	_, err = svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "carol"})
	assert.ErrorIs(t, err, ErrNothingToSettle)

	// alice is the creditor here, not the debtor.
	addDebt(t, expenses, "alice", 200.00, "alice", "bob")
	_, err = svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "bob"})
	assert.ErrorIs(t, err, ErrNothingToSettle)

	// Explicit non-positive amounts are rejected even when debt exists.
	addDebt(t, expenses, "carol", 100.00, "carol", "alice")
	bad := -5.00
	_, err = svc.Settle(ctx, "alice", &SettleRequest{CounterpartyID: "carol", Amount: &bad})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
