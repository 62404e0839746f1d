package split

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func sum(shares []Share) float64 {
	var total float64
	for _, s := range shares {
		total += s.Amount
	}
	return total
}

func TestEqualStrategy(t *testing.T) {
	tests := []struct {
		name         string
		total        float64
		payerID      string
		participants []Participant
		want         []Share
	}{
		{
			name:    "three way even",
			total:   300.00,
			payerID: "alice",
			participants: []Participant{
				{UserID: "alice"}, {UserID: "bob"}, {UserID: "carol"},
			},
			want: []Share{
				{UserID: "alice", Amount: 100.00},
				{UserID: "bob", Amount: 100.00},
				{UserID: "carol", Amount: 100.00},
			},
		},
		{
			name:    "remainder lands on payer",
			total:   100.00,
			payerID: "bob",
			participants: []Participant{
				{UserID: "alice"}, {UserID: "bob"}, {UserID: "carol"},
			},
			// 100/3 rounds to 33.33; the missing cent goes to bob
			want: []Share{
				{UserID: "alice", Amount: 33.33},
				{UserID: "bob", Amount: 33.34},
				{UserID: "carol", Amount: 33.33},
			},
		},
		{
			name:         "single participant",
			total:        42.50,
			payerID:      "alice",
			participants: []Participant{{UserID: "alice"}},
			want:         []Share{{UserID: "alice", Amount: 42.50}},
		},
		{
			name:    "payer not participating, remainder to first",
			total:   100.00,
			payerID: "dave",
			participants: []Participant{
				{UserID: "alice"}, {UserID: "bob"}, {UserID: "carol"},
			},
			want: []Share{
				{UserID: "alice", Amount: 33.34},
				{UserID: "bob", Amount: 33.33},
				{UserID: "carol", Amount: 33.33},
			},
		},
	}

	strategy := &EqualStrategy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := strategy.Calculate(tt.total, tt.payerID, tt.participants)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.total, sum(got), 0.001, "shares must conserve the total")
		})
	}
}

func TestEqualStrategyConservation(t *testing.T) {
	strategy := &EqualStrategy{}

	totals := []float64{0.01, 0.10, 1.00, 7.77, 99.99, 100.00, 1234.56}
	for n := 1; n <= 9; n++ {
		participants := make([]Participant, n)
		for i := range participants {
			participants[i] = Participant{UserID: string(rune('a' + i))}
		}
		for _, total := range totals {
			shares := strategy.Calculate(total, "a", participants)
			require.Len(t, shares, n)
			assert.InDelta(t, total, sum(shares), 0.001)
			for _, s := range shares {
				assert.GreaterOrEqual(t, s.Amount, 0.0)
			}
		}
	}
}

func TestEqualStrategyDeterminism(t *testing.T) {
	strategy := &EqualStrategy{}
	participants := []Participant{{UserID: "a"}, {UserID: "b"}, {UserID: "c"}}

	first := strategy.Calculate(100.00, "a", participants)
	second := strategy.Calculate(100.00, "a", participants)

	assert.Equal(t, first, second)
}

func TestExactStrategy(t *testing.T) {
	strategy := &ExactStrategy{}

	shares := strategy.Calculate(100.00, "alice", []Participant{
		{UserID: "alice", Amount: f(60)},
		{UserID: "bob", Amount: f(40)},
		{UserID: "carol"}, // no amount -> owes 0
	})

	assert.Equal(t, []Share{
		{UserID: "alice", Amount: 60.00},
		{UserID: "bob", Amount: 40.00},
		{UserID: "carol", Amount: 0},
	}, shares)
}

func TestExactStrategyDoesNotEnforceTotal(t *testing.T) {
	strategy := &ExactStrategy{}

	// Amounts that do not sum to the total are passed through; surfacing
	// the mismatch is the caller's job.
	shares := strategy.Calculate(100.00, "alice", []Participant{
		{UserID: "alice", Amount: f(10)},
		{UserID: "bob", Amount: f(10)},
	})

	assert.Equal(t, 20.00, sum(shares))
}

func TestExactStrategyNegativeAmountTreatedAsZero(t *testing.T) {
	strategy := &ExactStrategy{}

	shares := strategy.Calculate(50.00, "alice", []Participant{
		{UserID: "alice", Amount: f(-10)},
		{UserID: "bob", Amount: f(50)},
	})

	assert.Equal(t, 0.0, shares[0].Amount)
	assert.Equal(t, 50.00, shares[1].Amount)
}

func TestPercentageStrategy(t *testing.T) {
	strategy := &PercentageStrategy{}

	shares := strategy.Calculate(500.00, "alice", []Participant{
		{UserID: "alice", Percentage: f(20)},
		{UserID: "bob", Percentage: f(30)},
		{UserID: "carol", Percentage: f(50)},
	})

	assert.Equal(t, []Share{
		{UserID: "alice", Amount: 100.00},
		{UserID: "bob", Amount: 150.00},
		{UserID: "carol", Amount: 250.00},
	}, shares)
	assert.Equal(t, 500.00, sum(shares))
}

func TestPercentageStrategyMissingPercentage(t *testing.T) {
	strategy := &PercentageStrategy{}

	shares := strategy.Calculate(200.00, "alice", []Participant{
		{UserID: "alice", Percentage: f(100)},
		{UserID: "bob"},
	})

	assert.Equal(t, 200.00, shares[0].Amount)
	assert.Equal(t, 0.0, shares[1].Amount)
}

func TestFactory(t *testing.T) {
	factory := NewFactory()

	assert.IsType(t, &EqualStrategy{}, factory.Create(TypeEqual))
	assert.IsType(t, &PercentageStrategy{}, factory.Create(TypePercentage))
	assert.IsType(t, &ExactStrategy{}, factory.Create(TypeExact))
}

func TestFactoryUnknownTypeFallsBackToZero(t *testing.T) {
	factory := NewFactory()

	strategy := factory.CreateFromString("shares")
	shares := strategy.Calculate(100.00, "alice", []Participant{
		{UserID: "alice"}, {UserID: "bob"},
	})

	require.Len(t, shares, 2)
	for _, s := range shares {
		assert.Equal(t, 0.0, s.Amount)
	}
}

func TestStrategiesPreserveParticipantOrder(t *testing.T) {
	participants := []Participant{
		{UserID: "carol", Amount: f(10), Percentage: f(10)},
		{UserID: "alice", Amount: f(10), Percentage: f(10)},
		{UserID: "bob", Amount: f(10), Percentage: f(10)},
	}

	factory := NewFactory()
	for _, st := range []Type{TypeEqual, TypeExact, TypePercentage} {
		shares := factory.Create(st).Calculate(30.00, "alice", participants)
		require.Len(t, shares, 3)
		assert.Equal(t, "carol", shares[0].UserID)
		assert.Equal(t, "alice", shares[1].UserID)
		assert.Equal(t, "bob", shares[2].UserID)
	}
}
