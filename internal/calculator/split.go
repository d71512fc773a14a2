package calculator

import (
	"fmt"

	"github.com/mmynk/splitledger/internal/money"
)

// Share is one member's portion of an expense.
type Share struct {
	MemberID string
	Amount   money.Amount
}

// EqualShares divides total among participants in the order given. The
// rounding remainder goes to the first participant.
func EqualShares(total money.Amount, participants []string) ([]Share, error) {
	if err := checkParticipants(participants); err != nil {
		return nil, err
	}

	parts, err := money.Split(total, len(participants))
	if err != nil {
		return nil, err
	}

	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{MemberID: p, Amount: parts[i]}
	}
	return shares, nil
}

// CustomShares validates explicit per-participant amounts against total and
// returns them in participant order.
func CustomShares(total money.Amount, participants []string, custom map[string]money.Amount) ([]Share, error) {
	if err := checkParticipants(participants); err != nil {
		return nil, err
	}
	if len(custom) != len(participants) {
		return nil, fmt.Errorf("custom shares must name every participant exactly once")
	}

	shares := make([]Share, len(participants))
	var sum money.Amount
	for i, p := range participants {
		amount, ok := custom[p]
		if !ok {
			return nil, fmt.Errorf("missing custom share for participant %s", p)
		}
		if amount < 0 {
			return nil, fmt.Errorf("custom share for %s cannot be negative", p)
		}
		if amount > total-sum {
			return nil, fmt.Errorf("custom shares exceed the total %d", total)
		}
		shares[i] = Share{MemberID: p, Amount: amount}
		sum += amount
	}

	if sum != total {
		return nil, fmt.Errorf("custom shares sum to %d, expected %d", sum, total)
	}
	return shares, nil
}

func checkParticipants(participants []string) error {
	if len(participants) == 0 {
		return fmt.Errorf("must have at least one participant")
	}
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if seen[p] {
			return fmt.Errorf("participant %s listed twice", p)
		}
		seen[p] = true
	}
	return nil
}
