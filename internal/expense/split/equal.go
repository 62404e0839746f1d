package split

// EqualStrategy divides the expense evenly among all participants
type EqualStrategy struct{}

// Type returns the split type identifier
func (s *EqualStrategy) Type() Type {
	return TypeEqual
}

// Calculate gives every participant round2(total/N). Per-share rounding can
// leave the sum a few cents off the total, so the residual is assigned to
// the payer's share (or the first share when the payer is not a
// participant), making the shares sum to the total exactly.
func (s *EqualStrategy) Calculate(totalAmount float64, payerID string, participants []Participant) []Share {
	if len(participants) == 0 {
		return []Share{}
	}

	perPerson := round2(totalAmount / float64(len(participants)))

	shares := make([]Share, len(participants))
	adjustIdx := 0
	var distributed float64
	for i, p := range participants {
		shares[i] = Share{UserID: p.UserID, Amount: perPerson}
		distributed += perPerson
		if p.UserID == payerID {
			adjustIdx = i
		}
	}

	residual := round2(totalAmount - distributed)
	if residual != 0 {
		adjusted := round2(shares[adjustIdx].Amount + residual)
		if adjusted < 0 {
			adjusted = 0
		}
		shares[adjustIdx].Amount = adjusted
	}

	return shares
}
