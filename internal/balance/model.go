package balance

import "time"

// Summary is a user's aggregate position across all counterparties
type Summary struct {
	TotalOwedByUser float64 `json:"total_owed_by_user"` // what the user owes others
	TotalOwedToUser float64 `json:"total_owed_to_user"` // what others owe the user
	NetBalance      float64 `json:"net_balance"`        // owed_to_user - owed_by_user
}

// Counterparty is the other user in a two-party obligation
type Counterparty struct {
	ID        string  `json:"id"`
	FullName  *string `json:"full_name"`
	Email     *string `json:"email"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// DebtDetail is one expense's signed contribution to a counterparty total
type DebtDetail struct {
	ExpenseID   string    `json:"expense_id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"` // negative when the user is the creditor
}

// DebtItem is the user's net position against one counterparty. A positive
// TotalAmount means the user owes the counterparty; negative means the
// counterparty owes the user.
type DebtItem struct {
	Counterparty  Counterparty `json:"counterparty"`
	TotalAmount   float64      `json:"total_amount"`
	Expenses      []DebtDetail `json:"expenses"`
	CommonGroupID *string      `json:"common_group_id,omitempty"`
}

// SplitRow is one split involving the subject user, joined with its parent
// expense and the other side's profile. This is the read-side shape the
// aggregation math runs over.
type SplitRow struct {
	UserID      string
	OwedTo      string
	Amount      float64
	ExpenseID   string
	Description string
	Date        time.Time
	GroupID     *string

	// Profile of whichever side is not the subject user
	Counterparty Counterparty
}

// GroupSplitRow is the minimal split shape for group-level netting
type GroupSplitRow struct {
	UserID string
	OwedTo string
	Amount float64
}

// MemberBalance is one group member's net position within the group
type MemberBalance struct {
	UserID   string  `json:"user_id"`
	FullName *string `json:"full_name,omitempty"`
	Net      float64 `json:"net"` // positive = is owed money, negative = owes money
}

// Transfer is a suggested payment that moves the group toward zero
type Transfer struct {
	FromUserID string  `json:"from_user_id"`
	ToUserID   string  `json:"to_user_id"`
	Amount     float64 `json:"amount"`
}
