package split

import "math"

// Type identifies a split strategy
type Type string

const (
	TypeEqual      Type = "equal"
	TypePercentage Type = "percentage"
	TypeExact      Type = "exact"
)

// Participant is one member of the expense with optional per-strategy values
type Participant struct {
	UserID     string   `json:"user_id"`
	Percentage *float64 `json:"percentage,omitempty"` // for percentage splits
	Amount     *float64 `json:"amount,omitempty"`     // for exact splits
}

// Share is the calculated amount one participant owes
type Share struct {
	UserID string  `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Strategy computes per-participant shares for an expense total.
//
// Strategies are total functions: they always produce exactly one Share per
// input participant, in input order, with a non-negative amount rounded to
// two decimals. They do not enforce that exact amounts sum to the total or
// that percentages sum to 100; surfacing such discrepancies is the caller's
// job. Missing or negative parameter values count as zero.
type Strategy interface {
	// Calculate computes the shares. The payer is included in the output
	// like any other participant; the payer's own share is what balance
	// aggregation later discards as a self-loop.
	Calculate(totalAmount float64, payerID string, participants []Participant) []Share

	// Type returns the identifier for this strategy
	Type() Type
}

// Factory creates split strategies based on the requested type
type Factory struct{}

// NewFactory creates a new strategy factory
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy for the given type. An unrecognized type maps
// to the zero strategy (every participant owes 0) rather than an error.
func (f *Factory) Create(splitType Type) Strategy {
	switch splitType {
	case TypeEqual:
		return &EqualStrategy{}
	case TypePercentage:
		return &PercentageStrategy{}
	case TypeExact:
		return &ExactStrategy{}
	default:
		return &zeroStrategy{}
	}
}

// CreateFromString creates a strategy from a raw string type
func (f *Factory) CreateFromString(splitType string) Strategy {
	return f.Create(Type(splitType))
}

// zeroStrategy is the fallback for unrecognized split types
type zeroStrategy struct{}

func (s *zeroStrategy) Type() Type {
	return Type("")
}

func (s *zeroStrategy) Calculate(totalAmount float64, payerID string, participants []Participant) []Share {
	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{UserID: p.UserID, Amount: 0}
	}
	return shares
}

// round2 rounds a float to 2 decimal places
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// nonNegative treats an absent or negative parameter value as zero
func nonNegative(value *float64) float64 {
	if value == nil || *value < 0 {
		return 0
	}
	return *value
}
