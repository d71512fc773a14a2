package ledger

import (
	"context"
	"time"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/approval"
	"github.com/mmynk/splitledger/internal/lifecycle"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/notify"
	"github.com/mmynk/splitledger/internal/storage"
)

var _ approval.Applier = (*unit)(nil)

// Apply writes a mutation. It is called directly for changes that need no
// approval and by the approval workflow when a change request is approved.
func (u *unit) Apply(ctx context.Context, tx storage.Ledger, app approval.Application) (*models.Debt, error) {
	switch m := app.Mutation.(type) {
	case models.CreateDebtMutation:
		return u.applyCreate(ctx, tx, app.Actor, m.Draft, app.Approved)
	case models.UpdateDebtMutation:
		return u.applyUpdate(ctx, tx, app.Debt, m)
	case models.DeleteDebtMutation:
		return nil, u.applyDelete(ctx, tx, app.Debt)
	case models.MarkPaidMutation:
		return u.applyMarkPaid(ctx, tx, app.Actor, app.Debt, m, app.Approved)
	case models.RevertPaymentMutation:
		return u.applyRevert(ctx, tx, app.Actor, app.Debt, m, app.Approved)
	default:
		return nil, apperr.Invariant("unknown mutation %T", app.Mutation)
	}
}

func (u *unit) applyCreate(ctx context.Context, tx storage.Ledger, actor string, draft models.DebtDraft, approved bool) (*models.Debt, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}
	counterparty, err := u.debtCounterparty(ctx, actor, draft.DebtorID, draft.CreditorID)
	if err != nil {
		return nil, err
	}

	debt, err := u.e.buildDebt(actor, draft)
	if err != nil {
		return nil, err
	}
	// With a real counterparty that has not agreed yet, the debt waits for
	// their answer.
	if approved || !counterparty.IsReal() {
		debt.Status = models.DebtAccepted
	} else {
		debt.Status = models.DebtPending
	}

	if err := checkDebtInvariants(debt); err != nil {
		return nil, err
	}
	if err := tx.CreateDebt(ctx, debt); err != nil {
		return nil, err
	}

	u.touchDebt(debt)
	u.transition("debt", "create")
	if debt.Status == models.DebtPending {
		u.notify(counterparty, notify.DebtProposed, debtPayload(debt))
	}
	return debt, nil
}

func (u *unit) applyUpdate(ctx context.Context, tx storage.Ledger, d *models.Debt, m models.UpdateDebtMutation) (*models.Debt, error) {
	if err := validateUpdate(&m); err != nil {
		return nil, err
	}

	nd := d.Clone()
	if m.Description != nil {
		nd.Description = *m.Description
	}
	if m.Category != nil {
		nd.Category = *m.Category
	}
	if m.LinkedAccountID != nil {
		nd.LinkedAccountID = *m.LinkedAccountID
	}

	reschedule := false
	if m.Amount != nil && *m.Amount != nd.TotalAmount {
		nd.TotalAmount = *m.Amount
		reschedule = true
	}
	if m.InstallmentCount != nil && *m.InstallmentCount != nd.InstallmentCount {
		nd.InstallmentCount = *m.InstallmentCount
		reschedule = true
	}
	if m.DueDate != nil && (nd.DueDate == nil || !nd.DueDate.Equal(*m.DueDate)) {
		due := *m.DueDate
		nd.DueDate = &due
		reschedule = true
	}

	if reschedule {
		if nd.CountPaidInstallments() > 0 || nd.PaidByCreditor || nd.DebtorConfirmedPaid {
			return nil, apperr.Validation("cannot change amount, installments or due date of debt %s after payments were recorded", d.ID)
		}
		if err := u.e.schedule(nd); err != nil {
			return nil, err
		}
	}

	if err := checkDebtInvariants(nd); err != nil {
		return nil, err
	}
	if err := tx.UpdateDebt(ctx, nd); err != nil {
		return nil, err
	}

	u.touchDebt(nd)
	u.transition("debt", "update")
	return nd, nil
}

func (u *unit) applyDelete(ctx context.Context, tx storage.Ledger, d *models.Debt) error {
	if err := tx.DeleteDebt(ctx, d.ID, d.Version); err != nil {
		return err
	}
	u.touchDebt(d)
	u.transition("debt", "delete")
	return nil
}

func (u *unit) applyMarkPaid(ctx context.Context, tx storage.Ledger, actor string, d *models.Debt, m models.MarkPaidMutation, approved bool) (*models.Debt, error) {
	if err := lifecycle.CheckPaymentActive(d); err != nil {
		return nil, err
	}

	nd := d.Clone()
	now := u.e.now().UTC()
	var (
		paid money.Amount
		kind notify.Kind
	)

	if m.InstallmentID != "" {
		inst, ok := nd.Installment(m.InstallmentID)
		if !ok {
			return nil, apperr.NotFound("installment", m.InstallmentID)
		}
		if inst.Paid {
			return nil, apperr.Conflict("installment %d of debt %s is already paid", inst.Sequence, d.ID)
		}
		inst.Paid = true
		inst.PaidAt = &now
		paid = inst.Amount
		kind = notify.InstallmentPaid
		u.transition("installment", "pay")
	} else {
		// Whole-debt payment: both sides agree it is settled.
		paid = Outstanding(nd)
		nd.PaidByCreditor = true
		nd.DebtorConfirmedPaid = true
		for i := range nd.Installments {
			if !nd.Installments[i].Paid {
				nd.Installments[i].Paid = true
				nd.Installments[i].PaidAt = &now
			}
		}
		kind = notify.DebtPaidMarked
		u.transition("debt", "mark_paid")
	}

	nd.CountPaidInstallments()
	if t := lifecycle.Derive(nd); t != "" {
		u.transition("debt", string(t))
	}

	if err := checkDebtInvariants(nd); err != nil {
		return nil, err
	}
	if err := tx.UpdateDebt(ctx, nd); err != nil {
		return nil, err
	}

	u.touchDebt(nd)
	u.linkedPayment(nd, paid)
	if !approved {
		if err := u.notifyID(ctx, nd.Counterparty(actor), kind, debtPayload(nd)); err != nil {
			return nil, err
		}
	}
	return nd, nil
}

func (u *unit) applyRevert(ctx context.Context, tx storage.Ledger, actor string, d *models.Debt, m models.RevertPaymentMutation, approved bool) (*models.Debt, error) {
	if err := lifecycle.CheckPaymentActive(d); err != nil {
		return nil, err
	}

	nd := d.Clone()
	if m.InstallmentID != "" {
		inst, ok := nd.Installment(m.InstallmentID)
		if !ok {
			return nil, apperr.NotFound("installment", m.InstallmentID)
		}
		if !inst.Paid {
			return nil, apperr.Conflict("installment %d of debt %s is not paid", inst.Sequence, d.ID)
		}
		inst.Paid = false
		inst.PaidAt = nil
		u.transition("installment", "revert")
	} else {
		// Whole-debt revert: every payment marker goes.
		if !d.PaidByCreditor && !d.DebtorConfirmedPaid && d.CountPaidInstallments() == 0 {
			return nil, apperr.Conflict("debt %s has no payment to revert", d.ID)
		}
		for i := range nd.Installments {
			nd.Installments[i].Paid = false
			nd.Installments[i].PaidAt = nil
		}
		u.transition("debt", "revert_paid")
	}

	// A reverted payment means the debt is no longer settled in either
	// side's view.
	nd.PaidByCreditor = false
	nd.DebtorConfirmedPaid = false

	nd.CountPaidInstallments()
	if t := lifecycle.Derive(nd); t != "" {
		u.transition("debt", string(t))
	}

	if err := checkDebtInvariants(nd); err != nil {
		return nil, err
	}
	if err := tx.UpdateDebt(ctx, nd); err != nil {
		return nil, err
	}

	u.touchDebt(nd)
	if !approved {
		payload := debtPayload(nd)
		if m.Reason != "" {
			payload["reason"] = m.Reason
		}
		if err := u.notifyID(ctx, nd.Counterparty(actor), notify.InstallmentReverted, payload); err != nil {
			return nil, err
		}
	}
	return nd, nil
}

// buildDebt turns a validated draft into a debt with its schedule.
func (e *Engine) buildDebt(actor string, draft models.DebtDraft) (*models.Debt, error) {
	now := e.now()
	d := &models.Debt{
		CreatedBy:        actor,
		DebtorID:         draft.DebtorID,
		CreditorID:       draft.CreditorID,
		TotalAmount:      draft.Amount,
		Currency:         draft.Currency,
		Description:      draft.Description,
		Category:         draft.Category,
		InstallmentCount: draft.InstallmentCount,
		Cadence:          draft.Cadence,
		PurchaseDate:     draft.PurchaseDate,
		DueDate:          draft.DueDate,
		LinkedAccountID:  draft.LinkedAccountID,
		CreatedAt:        now.Unix(),
	}
	if err := e.schedule(d); err != nil {
		return nil, err
	}
	return d, nil
}

// schedule recomputes InstallmentAmount and, for more than one installment,
// regenerates the installment rows. The first installment carries the
// rounding remainder.
func (e *Engine) schedule(d *models.Debt) error {
	if d.TotalAmount < money.Amount(d.InstallmentCount) {
		return apperr.Validation("amount is too small for %d installments", d.InstallmentCount)
	}
	parts, err := money.Split(d.TotalAmount, d.InstallmentCount)
	if err != nil {
		return apperr.Validation("%v", err)
	}
	d.InstallmentAmount = parts[len(parts)-1]
	d.Installments = nil
	d.PaidInstallmentsCount = 0

	if !d.HasSchedule() {
		return nil
	}

	anchor := e.today()
	switch {
	case d.DueDate != nil:
		anchor = *d.DueDate
	case d.PurchaseDate != nil:
		anchor = *d.PurchaseDate
	}

	dates := money.ScheduleDueDates(anchor, d.InstallmentCount, d.Cadence)
	d.Installments = make([]models.Installment, d.InstallmentCount)
	for i := range d.Installments {
		d.Installments[i] = models.Installment{
			Sequence: i + 1,
			Amount:   parts[i],
			DueDate:  dates[i],
		}
	}
	return nil
}

// checkDebtInvariants verifies the structural rules every stored debt obeys.
// A failure is a bug, not bad input.
func checkDebtInvariants(d *models.Debt) error {
	if d.TotalAmount <= 0 {
		return apperr.Invariant("debt %s has non-positive amount %d", d.ID, d.TotalAmount)
	}
	if d.InstallmentCount < 1 {
		return apperr.Invariant("debt %s has %d installments", d.ID, d.InstallmentCount)
	}
	if d.DebtorID == d.CreditorID {
		return apperr.Invariant("debt %s has the same debtor and creditor", d.ID)
	}

	if !d.HasSchedule() {
		if len(d.Installments) != 0 {
			return apperr.Invariant("single-payment debt %s has %d installment rows", d.ID, len(d.Installments))
		}
		return nil
	}

	if len(d.Installments) != d.InstallmentCount {
		return apperr.Invariant("debt %s has %d installment rows, expected %d", d.ID, len(d.Installments), d.InstallmentCount)
	}
	var sum money.Amount
	paid := 0
	for i, inst := range d.Installments {
		if inst.Sequence != i+1 {
			return apperr.Invariant("debt %s installment %d has sequence %d", d.ID, i+1, inst.Sequence)
		}
		sum += inst.Amount
		if inst.Paid {
			paid++
		}
	}
	if sum != d.TotalAmount {
		return apperr.Invariant("installments of debt %s sum to %d, expected %d", d.ID, sum, d.TotalAmount)
	}
	if paid != d.PaidInstallmentsCount {
		return apperr.Invariant("debt %s records %d paid installments, rows say %d", d.ID, d.PaidInstallmentsCount, paid)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
