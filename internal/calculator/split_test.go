package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/splitledger/internal/money"
)

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []string
		wantErr      bool
		want         []money.Amount
	}{
		{
			name:         "even split",
			total:        9000,
			participants: []string{"X", "Y", "Z"},
			want:         []money.Amount{3000, 3000, 3000},
		},
		{
			name:         "remainder goes to first participant",
			total:        1000,
			participants: []string{"Alice", "Bob", "Charlie"},
			want:         []money.Amount{334, 333, 333},
		},
		{
			name:         "single participant takes everything",
			total:        1234,
			participants: []string{"Alice"},
			want:         []money.Amount{1234},
		},
		{
			name:         "no participants should error",
			total:        1000,
			participants: []string{},
			wantErr:      true,
		},
		{
			name:         "duplicate participant should error",
			total:        1000,
			participants: []string{"Alice", "Alice"},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := EqualShares(tt.total, tt.participants)
			if (err != nil) != tt.wantErr {
				t.Errorf("EqualShares() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(shares) != len(tt.want) {
				t.Fatalf("EqualShares() returned %d shares, want %d", len(shares), len(tt.want))
			}
			var sum money.Amount
			for i, s := range shares {
				if s.MemberID != tt.participants[i] {
					t.Errorf("share %d member = %s, want %s", i, s.MemberID, tt.participants[i])
				}
				if s.Amount != tt.want[i] {
					t.Errorf("%s share = %d, want %d", s.MemberID, s.Amount, tt.want[i])
				}
				sum += s.Amount
			}
			if sum != tt.total {
				t.Errorf("shares sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestCustomShares(t *testing.T) {
	tests := []struct {
		name         string
		total        money.Amount
		participants []string
		custom       map[string]money.Amount
		wantErr      bool
	}{
		{
			name:         "matching total",
			total:        5000,
			participants: []string{"Alice", "Bob"},
			custom:       map[string]money.Amount{"Alice": 3500, "Bob": 1500},
		},
		{
			name:         "zero share is allowed",
			total:        5000,
			participants: []string{"Alice", "Bob"},
			custom:       map[string]money.Amount{"Alice": 5000, "Bob": 0},
		},
		{
			name:         "sum mismatch should error",
			total:        5000,
			participants: []string{"Alice", "Bob"},
			custom:       map[string]money.Amount{"Alice": 3000, "Bob": 1500},
			wantErr:      true,
		},
		{
			name:         "missing participant should error",
			total:        5000,
			participants: []string{"Alice", "Bob"},
			custom:       map[string]money.Amount{"Alice": 5000, "Charlie": 0},
			wantErr:      true,
		},
		{
			name:         "shares that would wrap int64 should error",
			total:        1,
			participants: []string{"Alice", "Bob", "Carol"},
			custom:       map[string]money.Amount{"Alice": math.MaxInt64, "Bob": math.MaxInt64, "Carol": 3},
			wantErr:      true,
		},
		{
			name:         "negative share should error",
			total:        1000,
			participants: []string{"Alice", "Bob"},
			custom:       map[string]money.Amount{"Alice": 1500, "Bob": -500},
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shares, err := CustomShares(tt.total, tt.participants, tt.custom)
			if (err != nil) != tt.wantErr {
				t.Errorf("CustomShares() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			for i, s := range shares {
				if s.MemberID != tt.participants[i] {
					t.Errorf("share %d member = %s, want %s", i, s.MemberID, tt.participants[i])
				}
				if s.Amount != tt.custom[s.MemberID] {
					t.Errorf("%s share = %d, want %d", s.MemberID, s.Amount, tt.custom[s.MemberID])
				}
			}
		})
	}
}
