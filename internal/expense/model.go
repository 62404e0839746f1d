package expense

import "time"

// Kind discriminates ordinary expenses from settlement transactions. The
// description "Settlement" is still written for display, but nothing
// branches on that string.
type Kind string

const (
	KindExpense    Kind = "expense"
	KindSettlement Kind = "settlement"
)

// SettlementDescription is the conventional description written on
// settlement expenses.
const SettlementDescription = "Settlement"

// Expense represents a monetary event
type Expense struct {
	ID          string    `json:"id"`
	GroupID     *string   `json:"group_id"` // nil for group-less settlements
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	PaidBy      string    `json:"paid_by"`
	CreatedBy   string    `json:"created_by"`
	Kind        Kind      `json:"kind"`
	CreatedAt   time.Time `json:"created_at"`

	// Populated via JOIN
	PayerName *string `json:"payer_name,omitempty"`
}

// Split is one participant's obligation arising from an expense. OwedTo is
// the creditor, normally the expense's payer. A row with UserID == OwedTo
// is a self-loop and contributes nothing to balances.
type Split struct {
	ID        string  `json:"id"`
	ExpenseID string  `json:"expense_id"`
	UserID    string  `json:"user_id"`
	Amount    float64 `json:"amount"`
	OwedTo    string  `json:"owed_to"`
}

// ExpenseWithSplits combines an expense with its splits
type ExpenseWithSplits struct {
	Expense *Expense
	Splits  []*Split
}
