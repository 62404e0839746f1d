package balance

import "context"

// Service answers read-side balance queries. Every call re-derives its
// result from the current split rows; there is no materialized balance
// anywhere to go stale.
type Service struct {
	store Store
}

// NewService creates a new balance service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Summary computes the acting user's aggregate position. No data yields the
// all-zero summary, not an error.
func (s *Service) Summary(ctx context.Context, userID string) (Summary, error) {
	rows, err := s.store.ListInvolving(ctx, userID)
	if err != nil {
		return Summary{}, err
	}
	return ComputeSummary(userID, rows), nil
}

// Breakdown computes the acting user's per-counterparty positions
func (s *Service) Breakdown(ctx context.Context, userID string, includeSettled bool) ([]DebtItem, error) {
	rows, err := s.store.ListInvolving(ctx, userID)
	if err != nil {
		return nil, err
	}
	return BreakdownDebts(userID, rows, includeSettled), nil
}

// BreakdownWith computes the acting user's position against one
// counterparty, settled or not. An empty DebtItem means no shared history.
func (s *Service) BreakdownWith(ctx context.Context, userID, counterpartyID string) (DebtItem, error) {
	items, err := s.Breakdown(ctx, userID, true)
	if err != nil {
		return DebtItem{}, err
	}
	for _, item := range items {
		if item.Counterparty.ID == counterpartyID {
			return item, nil
		}
	}
	return DebtItem{Counterparty: Counterparty{ID: counterpartyID}}, nil
}

// Group computes per-member nets and settlement suggestions for a group
func (s *Service) Group(ctx context.Context, groupID string) ([]MemberBalance, []Transfer, error) {
	rows, err := s.store.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	names, err := s.store.MemberNames(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	members, transfers := ComputeGroupBalances(rows, names)
	return members, transfers, nil
}
