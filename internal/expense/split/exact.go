package split

// ExactStrategy assigns each participant the amount the caller specified
type ExactStrategy struct{}

// Type returns the split type identifier
func (s *ExactStrategy) Type() Type {
	return TypeExact
}

// Calculate takes each participant's amount verbatim. Participants without
// an amount owe 0. Whether the amounts add up to the expense total is not
// checked here; the form layer surfaces that discrepancy to the user.
func (s *ExactStrategy) Calculate(totalAmount float64, payerID string, participants []Participant) []Share {
	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{
			UserID: p.UserID,
			Amount: round2(nonNegative(p.Amount)),
		}
	}
	return shares
}
