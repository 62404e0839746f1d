package settlement

// SettleRequest represents the request to settle up with a counterparty.
// Amount defaults to the full outstanding debt when omitted.
type SettleRequest struct {
	CounterpartyID string   `json:"counterparty_id" validate:"required"`
	Amount         *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	GroupID        *string  `json:"group_id,omitempty"`
}

// SettleResponse reports the recorded settlement and the remaining debt
type SettleResponse struct {
	ExpenseID      string  `json:"expense_id"`
	CounterpartyID string  `json:"counterparty_id"`
	Amount         float64 `json:"amount"`
	RemainingDebt  float64 `json:"remaining_debt"`
}
