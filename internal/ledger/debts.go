package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/approval"
	"github.com/mmynk/splitledger/internal/lifecycle"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/notify"
)

const maxInstallments = 600

// MutationResult is what a gated debt operation produced: the debt after an
// immediate change, or the change request waiting for the counterparty.
// Both are nil for an immediate delete.
type MutationResult struct {
	Debt    *models.Debt
	Request *models.ChangeRequest
}

// CreateContact adds a virtual contact owned by actor.
func (e *Engine) CreateContact(ctx context.Context, actor, name string) (*models.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("contact name is required")
	}

	contact := &models.Contact{OwnerID: actor, Name: name, CreatedAt: e.now().Unix()}
	if err := e.store.CreateContact(ctx, contact); err != nil {
		return nil, err
	}
	e.logger.InfoContext(ctx, "Created contact", "contact_id", contact.ID, "owner", actor)
	return contact, nil
}

// ListContacts returns the virtual contacts owned by actor.
func (e *Engine) ListContacts(ctx context.Context, actor string) ([]*models.Contact, error) {
	return e.store.ListContacts(ctx, actor)
}

// CreateDebt records a debt between actor and a counterparty.
//
// When actor is the debtor, or the counterparty is virtual, the debt is
// written at once (pending for a real creditor, accepted otherwise). When
// actor is the creditor of a real user, a create change request is filed
// instead and no debt exists until the debtor approves it.
func (e *Engine) CreateDebt(ctx context.Context, actor string, draft models.DebtDraft, reason string) (*MutationResult, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	var out MutationResult
	err := e.run(ctx, "create_debt", func(u *unit) error {
		counterparty, err := u.debtCounterparty(ctx, actor, draft.DebtorID, draft.CreditorID)
		if err != nil {
			return err
		}
		res, err := u.workflow().Propose(ctx, u.tx, approval.Proposal{
			Actor:        actor,
			Counterparty: counterparty,
			Mutation:     models.CreateDebtMutation{Draft: draft},
			Reason:       reason,
		})
		if err != nil {
			return err
		}
		return u.proposed(ctx, res, &out)
	})
	if err != nil {
		return nil, err
	}

	if out.Debt != nil {
		e.logger.InfoContext(ctx, "Created debt", "debt_id", out.Debt.ID, "actor", actor, "status", out.Debt.Status)
	}
	return &out, nil
}

// GetDebt returns a debt actor is a party to.
func (e *Engine) GetDebt(ctx context.Context, actor, debtID string) (*models.Debt, error) {
	d, err := e.store.GetDebt(ctx, debtID)
	if err != nil {
		return nil, err
	}
	if _, err := lifecycle.CheckParty(d, actor); err != nil {
		return nil, err
	}
	return d, nil
}

// ListDebts lists actor's debts on the given side, optionally filtered by
// status (empty for all).
func (e *Engine) ListDebts(ctx context.Context, actor string, role models.DebtRole, status models.DebtStatus) ([]*models.Debt, error) {
	switch role {
	case models.RoleAny, models.RoleDebtor, models.RoleCreditor:
	default:
		return nil, apperr.Validation("unknown role %q", role)
	}
	switch status {
	case "", models.DebtPending, models.DebtAccepted, models.DebtRejected, models.DebtPaid:
	default:
		return nil, apperr.Validation("unknown debt status %q", status)
	}

	debts, err := e.store.ListDebtsForParty(ctx, actor, role)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return debts, nil
	}
	filtered := debts[:0]
	for _, d := range debts {
		if d.Status == status {
			filtered = append(filtered, d)
		}
	}
	return filtered, nil
}

// UpdateDebt changes a debt's fields, directly or through a change request.
func (e *Engine) UpdateDebt(ctx context.Context, actor, debtID string, m models.UpdateDebtMutation, reason string) (*MutationResult, error) {
	if err := validateUpdate(&m); err != nil {
		return nil, err
	}
	return e.propose(ctx, "update_debt", actor, debtID, m, reason)
}

// DeleteDebt removes a debt, directly or through a change request.
func (e *Engine) DeleteDebt(ctx context.Context, actor, debtID, reason string) (*MutationResult, error) {
	return e.propose(ctx, "delete_debt", actor, debtID, models.DeleteDebtMutation{}, reason)
}

// propose runs a mutation against an existing debt through the approval
// workflow.
func (e *Engine) propose(ctx context.Context, op, actor, debtID string, m models.Mutation, reason string) (*MutationResult, error) {
	var out MutationResult
	err := e.run(ctx, op, func(u *unit) error {
		d, err := u.tx.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		return u.proposeFor(ctx, actor, d, m, reason, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RespondToDebt accepts or rejects a pending debt. Only the party that did not
// create the debt may respond.
func (e *Engine) RespondToDebt(ctx context.Context, actor, debtID string, accept bool) (*models.Debt, error) {
	t, kind := lifecycle.Reject, notify.DebtRejected
	if accept {
		t, kind = lifecycle.Accept, notify.DebtAccepted
	}

	var out *models.Debt
	err := e.run(ctx, "respond_to_debt", func(u *unit) error {
		d, err := u.tx.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if err := lifecycle.CheckResponder(d, actor); err != nil {
			return err
		}
		out, err = u.fire(ctx, d, t)
		if err != nil {
			return err
		}
		return u.notifyID(ctx, d.CreatedBy, kind, debtPayload(out))
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Responded to debt", "debt_id", debtID, "actor", actor, "status", out.Status)
	return out, nil
}

// ReconsiderDebt moves a rejected debt back to pending. Only the party who
// rejected it may do so.
func (e *Engine) ReconsiderDebt(ctx context.Context, actor, debtID string) (*models.Debt, error) {
	var out *models.Debt
	err := e.run(ctx, "reconsider_debt", func(u *unit) error {
		d, err := u.tx.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if err := lifecycle.CheckResponder(d, actor); err != nil {
			return err
		}
		out, err = u.fire(ctx, d, lifecycle.Reconsider)
		if err != nil {
			return err
		}
		return u.notifyID(ctx, d.CreatedBy, notify.DebtReconsidered, debtPayload(out))
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MarkInstallmentPaid marks one installment paid. The creditor's mark applies
// at once; the debtor's needs the creditor's approval.
func (e *Engine) MarkInstallmentPaid(ctx context.Context, actor, installmentID, reason string) (*MutationResult, error) {
	return e.proposeOnInstallment(ctx, "mark_installment_paid", actor, installmentID,
		models.MarkPaidMutation{InstallmentID: installmentID}, reason)
}

// RevertInstallmentPayment clears an installment's paid flag. The debtor's
// revert applies at once; the creditor's needs the debtor's approval.
func (e *Engine) RevertInstallmentPayment(ctx context.Context, actor, installmentID, reason string) (*MutationResult, error) {
	return e.proposeOnInstallment(ctx, "revert_installment_payment", actor, installmentID,
		models.RevertPaymentMutation{InstallmentID: installmentID, Reason: strings.TrimSpace(reason)}, reason)
}

// RevertDebtPayment undoes every payment marker on a debt: the creditor's
// paid flag, the debtor's confirmation and all paid installments. Like an
// installment revert, the debtor's applies at once and the creditor's needs
// the debtor's approval.
func (e *Engine) RevertDebtPayment(ctx context.Context, actor, debtID, reason string) (*MutationResult, error) {
	return e.propose(ctx, "revert_debt_payment", actor, debtID,
		models.RevertPaymentMutation{Reason: strings.TrimSpace(reason)}, reason)
}

func (e *Engine) proposeOnInstallment(ctx context.Context, op, actor, installmentID string, m models.Mutation, reason string) (*MutationResult, error) {
	var out MutationResult
	err := e.run(ctx, op, func(u *unit) error {
		d, err := u.tx.GetDebtByInstallment(ctx, installmentID)
		if err != nil {
			return err
		}
		return u.proposeFor(ctx, actor, d, m, reason, &out)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkDebtPaidByCreditor toggles the creditor's own settled marker. It needs
// nobody's approval; the debtor is told.
func (e *Engine) MarkDebtPaidByCreditor(ctx context.Context, actor, debtID string) (*models.Debt, error) {
	var out *models.Debt
	err := e.run(ctx, "mark_debt_paid_by_creditor", func(u *unit) error {
		d, err := u.tx.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.RoleOf(actor) != models.RoleCreditor {
			return apperr.Unauthorized("only the creditor of debt %s can mark it paid", debtID)
		}
		if err := lifecycle.CheckPaymentActive(d); err != nil {
			return err
		}

		nd := d.Clone()
		nd.PaidByCreditor = !d.PaidByCreditor
		kind, label := notify.DebtPaidUnmarked, "creditor_unmark_paid"
		if nd.PaidByCreditor {
			kind, label = notify.DebtPaidMarked, "creditor_mark_paid"
			u.linkedPayment(nd, Outstanding(d))
		}
		u.transition("debt", label)
		if t := lifecycle.Derive(nd); t != "" {
			u.transition("debt", string(t))
		}

		if err := checkDebtInvariants(nd); err != nil {
			return err
		}
		if err := u.tx.UpdateDebt(ctx, nd); err != nil {
			return err
		}
		u.touchDebt(nd)
		out = nd
		return u.notifyID(ctx, nd.DebtorID, kind, debtPayload(nd))
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Toggled creditor paid flag",
		"debt_id", debtID, "paid_by_creditor", out.PaidByCreditor, "status", out.Status)
	return out, nil
}

// RequestPaymentConfirmation asks the creditor to confirm the debtor's "I
// have paid". The debtor's flag is only written once the creditor agrees. If
// the creditor already marked the debt paid the two signals agree and the
// flag is set without a request.
func (e *Engine) RequestPaymentConfirmation(ctx context.Context, actor, debtID, reason string) (*MutationResult, error) {
	var out MutationResult
	err := e.run(ctx, "request_payment_confirmation", func(u *unit) error {
		d, err := u.tx.GetDebt(ctx, debtID)
		if err != nil {
			return err
		}
		if d.RoleOf(actor) != models.RoleDebtor {
			return apperr.Unauthorized("only the debtor of debt %s can request payment confirmation", debtID)
		}
		if err := lifecycle.CheckPaymentActive(d); err != nil {
			return err
		}

		if d.DebtorConfirmedPaid {
			return apperr.Conflict("debt %s is already confirmed paid by the debtor", debtID)
		}
		if !d.PaidByCreditor {
			return u.proposeFor(ctx, actor, d, models.MarkPaidMutation{}, reason, &out)
		}

		nd := d.Clone()
		nd.DebtorConfirmedPaid = true
		if err := u.tx.UpdateDebt(ctx, nd); err != nil {
			return err
		}
		u.touchDebt(nd)
		u.transition("debt", "debtor_confirmed")
		out.Debt = nd
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListActiveInstallments returns actor's accepted debts that still have
// unpaid installments, each carrying only those installments.
func (e *Engine) ListActiveInstallments(ctx context.Context, actor string) ([]*models.Debt, error) {
	return e.store.ListActiveInstallments(ctx, actor)
}

// proposeFor runs m against d through the approval workflow on behalf of actor.
func (u *unit) proposeFor(ctx context.Context, actor string, d *models.Debt, m models.Mutation, reason string, out *MutationResult) error {
	counterparty, err := u.debtCounterparty(ctx, actor, d.DebtorID, d.CreditorID)
	if err != nil {
		return err
	}
	res, err := u.workflow().Propose(ctx, u.tx, approval.Proposal{
		Actor:        actor,
		Debt:         d,
		Counterparty: counterparty,
		Mutation:     m,
		Reason:       strings.TrimSpace(reason),
	})
	if err != nil {
		return err
	}
	return u.proposed(ctx, res, out)
}

// proposed copies a workflow result into out and announces new requests.
func (u *unit) proposed(ctx context.Context, res *approval.Result, out *MutationResult) error {
	out.Debt = res.Applied
	out.Request = res.Request
	if res.Request == nil {
		return nil
	}
	u.requestOutcome(res.Request.Kind(), "created")
	return u.notifyID(ctx, res.Request.TargetApprover, notify.ChangeRequestCreated, requestPayload(res.Request))
}

// fire applies a status transition to d and stores it.
func (u *unit) fire(ctx context.Context, d *models.Debt, t lifecycle.Transition) (*models.Debt, error) {
	next, err := lifecycle.Next(d.Status, t)
	if err != nil {
		return nil, err
	}
	nd := d.Clone()
	nd.Status = next
	if err := u.tx.UpdateDebt(ctx, nd); err != nil {
		return nil, err
	}
	u.touchDebt(nd)
	u.transition("debt", string(t))
	return nd, nil
}

// debtCounterparty checks that actor is the debtor or the creditor and
// returns the party on the other side. A virtual counterparty must belong to
// actor.
func (u *unit) debtCounterparty(ctx context.Context, actor, debtorID, creditorID string) (*models.Party, error) {
	var otherID string
	switch actor {
	case debtorID:
		otherID = creditorID
	case creditorID:
		otherID = debtorID
	default:
		return nil, apperr.Unauthorized("%s is neither the debtor nor the creditor", actor)
	}

	other, err := u.tx.ResolveParty(ctx, otherID)
	if err != nil {
		return nil, err
	}
	if !other.IsReal() && other.OwnerID != actor {
		return nil, apperr.Unauthorized("contact %s belongs to another user", otherID)
	}
	return other, nil
}

// validateDraft normalizes and checks a new debt before anything is written.
func validateDraft(d *models.DebtDraft) error {
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)

	if d.Amount <= 0 {
		return apperr.Validation("amount must be positive")
	}
	if err := money.CheckRange(d.Amount); err != nil {
		return apperr.Validation("%v", err)
	}
	if err := money.ValidateCurrency(d.Currency); err != nil {
		return apperr.Validation("%v", err)
	}
	if d.Description == "" {
		return apperr.Validation("description is required")
	}

	if d.InstallmentCount == 0 {
		d.InstallmentCount = 1
	}
	if d.InstallmentCount < 1 || d.InstallmentCount > maxInstallments {
		return apperr.Validation("installment count must be between 1 and %d", maxInstallments)
	}
	if d.Amount < money.Amount(d.InstallmentCount) {
		return apperr.Validation("amount is too small for %d installments", d.InstallmentCount)
	}

	if d.PurchaseDate != nil {
		p := dateOnly(*d.PurchaseDate)
		d.PurchaseDate = &p
	}
	if d.DueDate != nil {
		due := dateOnly(*d.DueDate)
		d.DueDate = &due
	}

	cadence, err := money.ParseCadence(string(d.Cadence))
	if err != nil {
		return apperr.Validation("%v", err)
	}
	d.Cadence = cadence

	if d.DebtorID == "" || d.CreditorID == "" {
		return apperr.Validation("debtor and creditor are required")
	}
	if d.DebtorID == d.CreditorID {
		return apperr.Validation("debtor and creditor must differ")
	}
	return nil
}

func validateUpdate(m *models.UpdateDebtMutation) error {
	if m.IsEmpty() {
		return apperr.Validation("update changes nothing")
	}
	if m.Amount != nil {
		if *m.Amount <= 0 {
			return apperr.Validation("amount must be positive")
		}
		if err := money.CheckRange(*m.Amount); err != nil {
			return apperr.Validation("%v", err)
		}
	}
	if m.Description != nil {
		desc := strings.TrimSpace(*m.Description)
		if desc == "" {
			return apperr.Validation("description is required")
		}
		m.Description = &desc
	}
	if m.InstallmentCount != nil && (*m.InstallmentCount < 1 || *m.InstallmentCount > maxInstallments) {
		return apperr.Validation("installment count must be between 1 and %d", maxInstallments)
	}
	if m.DueDate != nil {
		due := dateOnly(*m.DueDate)
		m.DueDate = &due
	}
	return nil
}
