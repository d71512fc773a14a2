// Package lifecycle holds the debt state machine: which status changes are
// legal and which party may trigger them.
package lifecycle

import (
	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
)

// Transition names a status change.
type Transition string

const (
	Accept     Transition = "accept"
	Reject     Transition = "reject"
	Settle     Transition = "settle"
	Reopen     Transition = "reopen"
	Reconsider Transition = "reconsider"
)

type edge struct {
	from models.DebtStatus
	to   models.DebtStatus
}

var table = map[Transition]edge{
	Accept:     {from: models.DebtPending, to: models.DebtAccepted},
	Reject:     {from: models.DebtPending, to: models.DebtRejected},
	Settle:     {from: models.DebtAccepted, to: models.DebtPaid},
	Reopen:     {from: models.DebtPaid, to: models.DebtAccepted},
	Reconsider: {from: models.DebtRejected, to: models.DebtPending},
}

// Next returns the status reached by applying t to current. A transition
// fired from the wrong state is a conflict: the caller raced another writer
// or acted on a stale read.
func Next(current models.DebtStatus, t Transition) (models.DebtStatus, error) {
	e, ok := table[t]
	if !ok {
		return "", apperr.Invariant("unknown transition %q", t)
	}
	if current != e.from {
		return "", apperr.Conflict("cannot %s a %s debt", t, current)
	}
	return e.to, nil
}

// Allowed reports whether t may fire from current.
func Allowed(current models.DebtStatus, t Transition) bool {
	e, ok := table[t]
	return ok && e.from == current
}

// Settled reports whether the payment flags and installments say the debt is
// paid off.
func Settled(d *models.Debt) bool {
	if d.PaidByCreditor {
		return true
	}
	return d.HasSchedule() && d.CountPaidInstallments() == d.InstallmentCount
}

// Derive applies Settle or Reopen so d.Status agrees with Settled(d). It
// returns the transition it fired, or "" when none was needed. Pending and
// rejected debts are left alone.
func Derive(d *models.Debt) Transition {
	settled := Settled(d)
	switch {
	case d.Status == models.DebtAccepted && settled:
		d.Status = models.DebtPaid
		return Settle
	case d.Status == models.DebtPaid && !settled:
		d.Status = models.DebtAccepted
		return Reopen
	}
	return ""
}

// CheckResponder verifies that actorID may accept or reject d: only the party
// that did not create it.
func CheckResponder(d *models.Debt, actorID string) error {
	if d.RoleOf(actorID) == models.RoleAny {
		return apperr.Unauthorized("%s is not a party to debt %s", actorID, d.ID)
	}
	if actorID == d.CreatedBy {
		return apperr.Unauthorized("the creator of debt %s cannot respond to it", d.ID)
	}
	return nil
}

// CheckParty verifies that actorID is the debtor or creditor of d.
func CheckParty(d *models.Debt, actorID string) (models.DebtRole, error) {
	role := d.RoleOf(actorID)
	if role == models.RoleAny {
		return role, apperr.Unauthorized("%s is not a party to debt %s", actorID, d.ID)
	}
	return role, nil
}

// CheckPaymentActive verifies that payments can be recorded against d.
func CheckPaymentActive(d *models.Debt) error {
	if d.Status != models.DebtAccepted && d.Status != models.DebtPaid {
		return apperr.Conflict("debt %s is %s; payments need an accepted debt", d.ID, d.Status)
	}
	return nil
}
