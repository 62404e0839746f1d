package balance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func str(s string) *string { return &s }

func day(d int) time.Time {
	return time.Date(2026, time.January, d, 0, 0, 0, 0, time.UTC)
}

// row builds a SplitRow as the subject user would see it: the counterparty
// profile is whichever side of the split is not the subject.
func row(subject, userID, owedTo string, amount float64, expenseID, description string, date time.Time, groupID *string) SplitRow {
	other := owedTo
	if owedTo == subject {
		other = userID
	}
	return SplitRow{
		UserID:       userID,
		OwedTo:       owedTo,
		Amount:       amount,
		ExpenseID:    expenseID,
		Description:  description,
		Date:         date,
		GroupID:      groupID,
		Counterparty: Counterparty{ID: other, FullName: str("User " + other)},
	}
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		rows   []SplitRow
		want   Summary
	}{
		{
			name:   "no rows",
			userID: "alice",
			want:   Summary{},
		},
		{
			name:   "owes and is owed",
			userID: "alice",
			rows: []SplitRow{
				row("alice", "alice", "bob", 50.00, "e1", "Dinner", day(1), nil),
				row("alice", "carol", "alice", 30.00, "e2", "Taxi", day(2), nil),
			},
			want: Summary{TotalOwedByUser: 50.00, TotalOwedToUser: 30.00, NetBalance: -20.00},
		},
		{
			name:   "self loops contribute nothing",
			userID: "alice",
			rows: []SplitRow{
				row("alice", "alice", "alice", 100.00, "e1", "Dinner", day(1), nil),
				row("alice", "bob", "alice", 100.00, "e1", "Dinner", day(1), nil),
			},
			want: Summary{TotalOwedToUser: 100.00, NetBalance: 100.00},
		},
		{
			name:   "rows between other users are ignored",
			userID: "alice",
			rows: []SplitRow{
				row("alice", "bob", "carol", 75.00, "e1", "Hotel", day(1), nil),
			},
			want: Summary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeSummary(tt.userID, tt.rows))
		})
	}
}

// Two users looking at the same rows see mirrored positions.
func TestComputeSummarySignSymmetry(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "bob", 80.00, "e1", "Groceries", day(1), nil),
		row("alice", "bob", "alice", 25.00, "e2", "Coffee", day(2), nil),
	}

	alice := ComputeSummary("alice", rows)
	bob := ComputeSummary("bob", rows)

	assert.Equal(t, alice.TotalOwedByUser, bob.TotalOwedToUser)
	assert.Equal(t, alice.TotalOwedToUser, bob.TotalOwedByUser)
	assert.Equal(t, alice.NetBalance, -bob.NetBalance)
}

// The canonical dinner scenario: alice pays 300 split equally between
// alice, bob and carol. Alice sees bob and carol each owing her 100; bob
// sees a 100 debt to alice.
func TestBreakdownDebtsDinner(t *testing.T) {
	dinner := func(subject string) []SplitRow {
		return []SplitRow{
			row(subject, "alice", "alice", 100.00, "e1", "Dinner", day(5), nil),
			row(subject, "bob", "alice", 100.00, "e1", "Dinner", day(5), nil),
			row(subject, "carol", "alice", 100.00, "e1", "Dinner", day(5), nil),
		}
	}

	aliceItems := BreakdownDebts("alice", dinner("alice"), false)
	require.Len(t, aliceItems, 2)
	assert.Equal(t, "bob", aliceItems[0].Counterparty.ID)
	assert.Equal(t, -100.00, aliceItems[0].TotalAmount)
	assert.Equal(t, "carol", aliceItems[1].Counterparty.ID)
	assert.Equal(t, -100.00, aliceItems[1].TotalAmount)

	require.Len(t, aliceItems[0].Expenses, 1)
	assert.Equal(t, "Paid by me: Dinner", aliceItems[0].Expenses[0].Description)
	assert.Equal(t, -100.00, aliceItems[0].Expenses[0].Amount)

	bobItems := BreakdownDebts("bob", dinner("bob"), false)
	require.Len(t, bobItems, 1)
	assert.Equal(t, "alice", bobItems[0].Counterparty.ID)
	assert.Equal(t, 100.00, bobItems[0].TotalAmount)
	require.Len(t, bobItems[0].Expenses, 1)
	assert.Equal(t, "Dinner", bobItems[0].Expenses[0].Description)
	assert.Equal(t, 100.00, bobItems[0].Expenses[0].Amount)
}

// A settlement is paid by the debtor with one split naming the creditor,
// which flows through the creditor-side subtraction and zeroes the debt.
func TestBreakdownDebtsSettlementCancels(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "bob", 100.00, "e1", "Rent", day(1), nil),
		row("alice", "bob", "alice", 100.00, "e2", "Settlement", day(3), nil),
	}

	items := BreakdownDebts("alice", rows, false)
	assert.Empty(t, items, "a fully settled counterparty is dropped")

	items = BreakdownDebts("alice", rows, true)
	require.Len(t, items, 1)
	assert.Equal(t, 0.0, items[0].TotalAmount)
	require.Len(t, items[0].Expenses, 2)
	assert.Equal(t, "Rent", items[0].Expenses[0].Description)
	assert.Equal(t, "Paid by me: Settlement", items[0].Expenses[1].Description)
}

func TestBreakdownDebtsPartialSettlement(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "bob", 100.00, "e1", "Rent", day(1), nil),
		row("alice", "bob", "alice", 40.00, "e2", "Settlement", day(2), nil),
	}

	items := BreakdownDebts("alice", rows, false)
	require.Len(t, items, 1)
	assert.Equal(t, 60.00, items[0].TotalAmount)
}

func TestBreakdownDebtsNearZeroIsSettled(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "bob", 33.34, "e1", "Lunch", day(1), nil),
		row("alice", "bob", "alice", 33.33, "e2", "Settlement", day(2), nil),
	}

	assert.Empty(t, BreakdownDebts("alice", rows, false))

	items := BreakdownDebts("alice", rows, true)
	require.Len(t, items, 1)
	assert.Equal(t, 0.01, items[0].TotalAmount)
}

func TestBreakdownDebtsSelfLoopExcluded(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "alice", 100.00, "e1", "Dinner", day(1), nil),
	}

	assert.Empty(t, BreakdownDebts("alice", rows, true))
}

func TestBreakdownDebtsDetailsSortedByDate(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "bob", 10.00, "e2", "Second", day(9), nil),
		row("alice", "alice", "bob", 10.00, "e1", "First", day(3), nil),
		row("alice", "alice", "bob", 10.00, "e3", "Third", day(12), nil),
	}

	items := BreakdownDebts("alice", rows, false)
	require.Len(t, items, 1)
	require.Len(t, items[0].Expenses, 3)
	assert.Equal(t, "First", items[0].Expenses[0].Description)
	assert.Equal(t, "Second", items[0].Expenses[1].Description)
	assert.Equal(t, "Third", items[0].Expenses[2].Description)
}

func TestBreakdownDebtsCommonGroupID(t *testing.T) {
	trip := str("g1")
	rows := []SplitRow{
		row("alice", "alice", "bob", 20.00, "e1", "Personal", day(1), nil),
		row("alice", "alice", "bob", 30.00, "e2", "Hotel", day(2), trip),
		row("alice", "alice", "bob", 40.00, "e3", "Flights", day(3), str("g2")),
	}

	items := BreakdownDebts("alice", rows, false)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].CommonGroupID)
	assert.Equal(t, "g1", *items[0].CommonGroupID, "first grouped row wins")
}

func TestBreakdownDebtsItemsSortedByCounterpartyID(t *testing.T) {
	rows := []SplitRow{
		row("alice", "alice", "dave", 10.00, "e1", "A", day(1), nil),
		row("alice", "alice", "bob", 10.00, "e2", "B", day(1), nil),
		row("alice", "alice", "carol", 10.00, "e3", "C", day(1), nil),
	}

	items := BreakdownDebts("alice", rows, false)
	require.Len(t, items, 3)
	assert.Equal(t, "bob", items[0].Counterparty.ID)
	assert.Equal(t, "carol", items[1].Counterparty.ID)
	assert.Equal(t, "dave", items[2].Counterparty.ID)
}

func TestComputeGroupBalances(t *testing.T) {
	// alice paid 300, split 100 each among alice, bob, carol
	rows := []GroupSplitRow{
		{UserID: "alice", OwedTo: "alice", Amount: 100.00},
		{UserID: "bob", OwedTo: "alice", Amount: 100.00},
		{UserID: "carol", OwedTo: "alice", Amount: 100.00},
	}
	names := map[string]*string{
		"alice": str("Alice"),
		"bob":   str("Bob"),
		"carol": str("Carol"),
	}

	members, transfers := ComputeGroupBalances(rows, names)

	require.Len(t, members, 3)
	assert.Equal(t, MemberBalance{UserID: "alice", FullName: str("Alice"), Net: 200.00}, members[0])
	assert.Equal(t, MemberBalance{UserID: "bob", FullName: str("Bob"), Net: -100.00}, members[1])
	assert.Equal(t, MemberBalance{UserID: "carol", FullName: str("Carol"), Net: -100.00}, members[2])

	require.Len(t, transfers, 2)
	for _, tr := range transfers {
		assert.Equal(t, "alice", tr.ToUserID)
		assert.Equal(t, 100.00, tr.Amount)
	}
}

// Every split credits one member exactly what it debits another, so nets
// must sum to zero regardless of the expense mix.
func TestComputeGroupBalancesConservation(t *testing.T) {
	rows := []GroupSplitRow{
		{UserID: "alice", OwedTo: "alice", Amount: 33.34},
		{UserID: "bob", OwedTo: "alice", Amount: 33.33},
		{UserID: "carol", OwedTo: "alice", Amount: 33.33},
		{UserID: "alice", OwedTo: "bob", Amount: 12.50},
		{UserID: "bob", OwedTo: "bob", Amount: 12.50},
		{UserID: "carol", OwedTo: "dave", Amount: 7.77},
	}

	members, _ := ComputeGroupBalances(rows, nil)

	var total float64
	for _, m := range members {
		total += m.Net
	}
	assert.InDelta(t, 0.0, total, 0.001)
}

func TestComputeGroupBalancesTransfersCoverDebts(t *testing.T) {
	rows := []GroupSplitRow{
		{UserID: "bob", OwedTo: "alice", Amount: 90.00},
		{UserID: "carol", OwedTo: "alice", Amount: 30.00},
		{UserID: "carol", OwedTo: "bob", Amount: 50.00},
	}

	members, transfers := ComputeGroupBalances(rows, nil)

	// Applying the suggested transfers must settle every member.
	nets := make(map[string]float64)
	for _, m := range members {
		nets[m.UserID] = m.Net
	}
	for _, tr := range transfers {
		nets[tr.FromUserID] += tr.Amount
		nets[tr.ToUserID] -= tr.Amount
	}
	for userID, net := range nets {
		assert.InDelta(t, 0.0, net, epsilon+0.001, "member %s not settled", userID)
	}

	// Greedy pairing needs at most members-1 transfers.
	assert.LessOrEqual(t, len(transfers), len(members)-1)
}

func TestComputeGroupBalancesAllSettled(t *testing.T) {
	rows := []GroupSplitRow{
		{UserID: "bob", OwedTo: "alice", Amount: 40.00},
		{UserID: "alice", OwedTo: "bob", Amount: 40.00},
	}

	members, transfers := ComputeGroupBalances(rows, nil)

	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, 0.0, m.Net)
	}
	assert.Empty(t, transfers)
}
