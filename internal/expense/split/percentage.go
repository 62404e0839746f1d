package split

// PercentageStrategy divides the expense by per-participant percentages
type PercentageStrategy struct{}

// Type returns the split type identifier
func (s *PercentageStrategy) Type() Type {
	return TypePercentage
}

// Calculate gives each participant round2(total * percentage / 100).
// Participants without a percentage owe 0. Percentages are not required to
// sum to 100 here; the form layer surfaces that discrepancy to the user.
func (s *PercentageStrategy) Calculate(totalAmount float64, payerID string, participants []Participant) []Share {
	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{
			UserID: p.UserID,
			Amount: round2(totalAmount * nonNegative(p.Percentage) / 100),
		}
	}
	return shares
}
