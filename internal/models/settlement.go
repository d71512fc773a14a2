package models

import "github.com/mmynk/splitledger/internal/money"

// Settlement represents a payment between group members to clear debts.
// Settlements are append-only.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// FromMemberID is the member who paid (debtor settling up).
	FromMemberID string

	// ToMemberID is the member who received payment (creditor being paid).
	ToMemberID string

	// Amount is the payment amount in Currency.
	Amount money.Amount

	// Currency is always the group's currency.
	Currency string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded this settlement.
	CreatedBy string

	// Note is an optional description for the settlement.
	Note string
}
