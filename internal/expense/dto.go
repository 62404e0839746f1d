package expense

import "github.com/Shresth1822/split-expense/internal/expense/split"

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID      *string             `json:"group_id,omitempty"`
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	Date         string              `json:"date" validate:"required"` // YYYY-MM-DD
	PaidBy       string              `json:"paid_by,omitempty"`        // defaults to the acting user
	SplitType    string              `json:"split_type" validate:"required,oneof=equal exact percentage"`
	Participants []split.Participant `json:"participants" validate:"required,min=1"`
}

// UpdateExpenseRequest replaces an expense's mutable fields. Splits are
// recomputed and replaced wholesale, never patched row by row.
type UpdateExpenseRequest struct {
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	Date         string              `json:"date" validate:"required"`
	PaidBy       string              `json:"paid_by" validate:"required"`
	SplitType    string              `json:"split_type" validate:"required,oneof=equal exact percentage"`
	Participants []split.Participant `json:"participants" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          string   `json:"id"`
	GroupID     *string  `json:"group_id,omitempty"`
	Description string   `json:"description"`
	Amount      float64  `json:"amount"`
	Date        string   `json:"date"`
	PaidBy      string   `json:"paid_by"`
	PayerName   *string  `json:"payer_name,omitempty"`
	CreatedBy   string   `json:"created_by"`
	Kind        Kind     `json:"kind"`
	CreatedAt   string   `json:"created_at"`
	Splits      []*Split `json:"splits,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		Description: e.Description,
		Amount:      e.Amount,
		Date:        e.Date.Format("2006-01-02"),
		PaidBy:      e.PaidBy,
		PayerName:   e.PayerName,
		CreatedBy:   e.CreatedBy,
		Kind:        e.Kind,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
