package calculator

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/money"
)

func TestSuggestSettlements(t *testing.T) {
	tests := []struct {
		name string
		nets map[string]money.Amount
		want []Transfer
	}{
		{
			name: "one payer two debtors",
			nets: map[string]money.Amount{"X": 6000, "Y": -3000, "Z": -3000},
			want: []Transfer{
				{From: "Y", To: "X", Amount: 3000},
				{From: "Z", To: "X", Amount: 3000},
			},
		},
		{
			name: "largest debtor pays largest creditor first",
			nets: map[string]money.Amount{"A": 5000, "B": 1000, "C": -4000, "D": -2000},
			want: []Transfer{
				{From: "C", To: "A", Amount: 4000},
				{From: "D", To: "A", Amount: 1000},
				{From: "D", To: "B", Amount: 1000},
			},
		},
		{
			name: "all settled",
			nets: map[string]money.Amount{"A": 0, "B": 0},
			want: nil,
		},
		{
			name: "empty",
			nets: map[string]money.Amount{},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SuggestSettlements(tt.nets)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSuggestSettlements_RejectsNonZeroSum(t *testing.T) {
	_, err := SuggestSettlements(map[string]money.Amount{"A": 100, "B": -50})
	assert.Error(t, err)
}

func TestSuggestSettlements_Deterministic(t *testing.T) {
	nets := map[string]money.Amount{"a": 100, "b": 100, "c": -100, "d": -100}

	first, err := SuggestSettlements(nets)
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := SuggestSettlements(nets)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, []Transfer{
		{From: "c", To: "a", Amount: 100},
		{From: "d", To: "b", Amount: 100},
	}, first)
}

func TestSuggestSettlements_ZeroesBalancesWithinBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 200; round++ {
		n := 2 + rng.Intn(9)
		nets := make(map[string]money.Amount, n)
		var sum money.Amount
		for i := 0; i < n-1; i++ {
			v := money.Amount(rng.Int63n(20001) - 10000)
			nets[fmt.Sprintf("m%d", i)] = v
			sum += v
		}
		nets[fmt.Sprintf("m%d", n-1)] = -sum

		nonZero := 0
		for _, v := range nets {
			if v != 0 {
				nonZero++
			}
		}

		transfers, err := SuggestSettlements(nets)
		require.NoError(t, err)

		if nonZero > 0 {
			assert.LessOrEqual(t, len(transfers), nonZero-1, "round %d", round)
		}

		remaining := make(map[string]money.Amount, n)
		for id, v := range nets {
			remaining[id] = v
		}
		for _, tr := range transfers {
			assert.Positive(t, int64(tr.Amount))
			remaining[tr.From] += tr.Amount
			remaining[tr.To] -= tr.Amount
		}
		for id, v := range remaining {
			assert.Zero(t, v, "round %d member %s", round, id)
		}
	}
}
