package models

import (
	"time"

	"github.com/mmynk/splitledger/internal/money"
)

// DebtStatus is the lifecycle state of a debt.
type DebtStatus string

const (
	DebtPending  DebtStatus = "pending"
	DebtAccepted DebtStatus = "accepted"
	DebtRejected DebtStatus = "rejected"
	DebtPaid     DebtStatus = "paid"
)

// DebtRole is the side a party is on for a given debt.
type DebtRole string

const (
	RoleDebtor   DebtRole = "debtor"
	RoleCreditor DebtRole = "creditor"
	// RoleAny is used by queries that want both sides.
	RoleAny DebtRole = ""
)

// Debt is a directional obligation: DebtorID owes CreditorID.
type Debt struct {
	// ID is the unique identifier for the debt (UUID format).
	ID string

	// CreatedBy is the real user who created the debt. Only the other side
	// may accept or reject it.
	CreatedBy string

	DebtorID   string
	CreditorID string

	// TotalAmount is the full obligation.
	TotalAmount money.Amount

	// InstallmentAmount is TotalAmount / InstallmentCount rounded down.
	// The first installment carries the remainder.
	InstallmentAmount money.Amount

	Currency    string
	Description string
	Category    string

	// InstallmentCount is at least 1. Installment rows exist only when it is
	// greater than 1.
	InstallmentCount int

	// PaidInstallmentsCount is derived from the installment rows on every
	// payment change.
	PaidInstallmentsCount int

	Cadence money.Cadence

	PurchaseDate *time.Time
	DueDate      *time.Time

	Status DebtStatus

	// LinkedAccountID is an optional personal account the debtor pays from.
	LinkedAccountID string

	// PaidByCreditor is the creditor's own "I consider this settled" marker.
	PaidByCreditor bool

	// DebtorConfirmedPaid is the debtor's "I have paid" signal. It never
	// settles a debt on its own.
	DebtorConfirmedPaid bool

	// Version is bumped by every write and checked by the store.
	Version int64

	CreatedAt int64
	UpdatedAt int64

	// Installments are ordered by Sequence.
	Installments []Installment
}

// Installment is one scheduled slice of a debt.
type Installment struct {
	ID       string
	DebtID   string
	Sequence int
	Amount   money.Amount
	DueDate  time.Time
	Paid     bool
	PaidAt   *time.Time
}

// RoleOf returns which side partyID is on, or RoleAny if it is on neither.
func (d *Debt) RoleOf(partyID string) DebtRole {
	switch partyID {
	case d.DebtorID:
		return RoleDebtor
	case d.CreditorID:
		return RoleCreditor
	default:
		return RoleAny
	}
}

// Counterparty returns the party on the other side from partyID.
func (d *Debt) Counterparty(partyID string) string {
	if partyID == d.DebtorID {
		return d.CreditorID
	}
	return d.DebtorID
}

// HasSchedule reports whether the debt owns installment rows.
func (d *Debt) HasSchedule() bool {
	return d.InstallmentCount > 1
}

// FullyReconciled reports whether both sides have marked the debt paid.
func (d *Debt) FullyReconciled() bool {
	return d.PaidByCreditor && d.DebtorConfirmedPaid
}

// Installment returns the installment with the given ID.
func (d *Debt) Installment(id string) (*Installment, bool) {
	for i := range d.Installments {
		if d.Installments[i].ID == id {
			return &d.Installments[i], true
		}
	}
	return nil, false
}

// CountPaidInstallments recomputes PaidInstallmentsCount from the rows.
func (d *Debt) CountPaidInstallments() int {
	paid := 0
	for _, inst := range d.Installments {
		if inst.Paid {
			paid++
		}
	}
	d.PaidInstallmentsCount = paid
	return paid
}

// UnpaidAmount sums the installments that are not yet paid.
func (d *Debt) UnpaidAmount() money.Amount {
	var total money.Amount
	for _, inst := range d.Installments {
		if !inst.Paid {
			total += inst.Amount
		}
	}
	return total
}

// Clone returns a deep copy of the debt.
func (d *Debt) Clone() *Debt {
	c := *d
	c.Installments = append([]Installment(nil), d.Installments...)
	return &c
}

// DebtDraft is the input for creating a debt. It is also the payload of a
// create change request.
type DebtDraft struct {
	DebtorID         string        `json:"debtor_id"`
	CreditorID       string        `json:"creditor_id"`
	Amount           money.Amount  `json:"amount"`
	Currency         string        `json:"currency"`
	Description      string        `json:"description"`
	Category         string        `json:"category,omitempty"`
	InstallmentCount int           `json:"installment_count"`
	Cadence          money.Cadence `json:"cadence,omitempty"`
	PurchaseDate     *time.Time    `json:"purchase_date,omitempty"`
	DueDate          *time.Time    `json:"due_date,omitempty"`
	LinkedAccountID  string        `json:"linked_account_id,omitempty"`
}
