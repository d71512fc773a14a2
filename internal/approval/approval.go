// Package approval gates debt mutations that affect a real counterparty
// behind a change request the counterparty must approve.
package approval

import (
	"context"
	"time"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Application is one mutation ready to be written.
type Application struct {
	// Actor is the user the mutation is attributed to: the proposer, even
	// when the change is being replayed after approval.
	Actor    string
	Debt     *models.Debt // nil for create
	Mutation models.Mutation
	// Approved is set when the mutation is the replay of an approved change
	// request.
	Approved bool
}

// Applier writes a mutation through tx. It returns the debt after the change,
// or nil when the debt was deleted.
type Applier interface {
	Apply(ctx context.Context, tx storage.Ledger, app Application) (*models.Debt, error)
}

// Proposal is a mutation an actor wants to make.
type Proposal struct {
	Actor string
	// Debt is the current state of the target; nil for create.
	Debt *models.Debt
	// Counterparty is the party on the other side of the debt from Actor.
	Counterparty *models.Party
	Mutation     models.Mutation
	Reason       string
}

// Result reports what Propose did. Exactly one of Request or Applied is set,
// except that Applied is nil for an immediate delete.
type Result struct {
	Request *models.ChangeRequest
	Applied *models.Debt
	// Immediate is true when the mutation was written without a request.
	Immediate bool
}

// Workflow decides and records.
type Workflow struct {
	applier Applier
	now     func() time.Time
}

// New creates a workflow that writes through applier.
func New(applier Applier, now func() time.Time) *Workflow {
	if now == nil {
		now = time.Now
	}
	return &Workflow{applier: applier, now: now}
}

// NeedsApproval reports whether p must go through a change request. A
// virtual counterparty never needs one.
func NeedsApproval(p Proposal) (bool, error) {
	if p.Counterparty == nil || !p.Counterparty.IsReal() {
		return false, nil
	}

	switch m := p.Mutation.(type) {
	case models.CreateDebtMutation:
		// A debtor declaring their own obligation creates a pending debt that
		// the creditor accepts or rejects. Claiming someone owes you needs
		// their consent first.
		return m.Draft.DebtorID != p.Actor, nil

	case models.UpdateDebtMutation:
		d := p.Debt
		return !(d.CreatedBy == p.Actor && d.Status == models.DebtPending), nil

	case models.DeleteDebtMutation:
		d := p.Debt
		withdrawable := d.Status == models.DebtPending || d.Status == models.DebtRejected
		return !(d.CreatedBy == p.Actor && withdrawable), nil

	case models.MarkPaidMutation:
		// The creditor acknowledging money received needs nobody's consent.
		return p.Debt.RoleOf(p.Actor) != models.RoleCreditor, nil

	case models.RevertPaymentMutation:
		// The debtor taking back their own payment claim is unilateral.
		return p.Debt.RoleOf(p.Actor) != models.RoleDebtor, nil

	default:
		return false, apperr.Invariant("unknown mutation %T", p.Mutation)
	}
}

// Propose applies p immediately or files a change request addressed to the
// counterparty, inside tx.
func (w *Workflow) Propose(ctx context.Context, tx storage.Ledger, p Proposal) (*Result, error) {
	needs, err := NeedsApproval(p)
	if err != nil {
		return nil, err
	}

	if !needs {
		applied, err := w.applier.Apply(ctx, tx, Application{Actor: p.Actor, Debt: p.Debt, Mutation: p.Mutation})
		if err != nil {
			return nil, err
		}
		return &Result{Applied: applied, Immediate: true}, nil
	}

	req := &models.ChangeRequest{
		RequestedBy:    p.Actor,
		TargetApprover: p.Counterparty.ID,
		Mutation:       p.Mutation,
		Reason:         p.Reason,
		Status:         models.RequestPending,
		CreatedAt:      w.now().Unix(),
	}
	if p.Debt != nil {
		req.DebtID = p.Debt.ID
		if err := checkDuplicate(ctx, tx, p.Debt.ID, p.Mutation); err != nil {
			return nil, err
		}
	}

	if err := tx.CreateChangeRequest(ctx, req); err != nil {
		return nil, err
	}
	return &Result{Request: req}, nil
}

// checkDuplicate refuses a second pending request for the same change.
func checkDuplicate(ctx context.Context, tx storage.Ledger, debtID string, m models.Mutation) error {
	pending, err := tx.ListPendingChangeRequestsForDebt(ctx, debtID)
	if err != nil {
		return err
	}
	for _, req := range pending {
		if req.Kind() != m.Kind() {
			continue
		}
		switch existing := req.Mutation.(type) {
		case models.MarkPaidMutation:
			if existing.InstallmentID == m.(models.MarkPaidMutation).InstallmentID {
				return apperr.Conflict("a payment request for this debt is already pending (%s)", req.ID)
			}
		case models.RevertPaymentMutation:
			if existing.InstallmentID == m.(models.RevertPaymentMutation).InstallmentID {
				return apperr.Conflict("a revert request for this payment is already pending (%s)", req.ID)
			}
		case models.DeleteDebtMutation:
			return apperr.Conflict("a delete request for this debt is already pending (%s)", req.ID)
		}
	}
	return nil
}

// Resolution is the outcome of resolving a change request.
type Resolution struct {
	Request *models.ChangeRequest
	// Debt is the debt after an approved mutation; nil when rejected or deleted.
	Debt *models.Debt
}

// Resolve approves or rejects a pending request. Only the target approver may
// resolve it, and only once: the status check and the update happen in tx.
// On approval the mutation is replayed through the applier.
func (w *Workflow) Resolve(ctx context.Context, tx storage.Ledger, requestID, approverID string, approve bool, message string) (*Resolution, error) {
	req, err := tx.GetChangeRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.TargetApprover != approverID {
		return nil, apperr.Unauthorized("change request %s is addressed to another user", requestID)
	}
	if req.Status != models.RequestPending {
		return nil, apperr.Conflict("change request %s is already %s", requestID, req.Status)
	}

	res := &Resolution{Request: req}
	req.ResponseMessage = message
	req.ResolvedAt = w.now().Unix()

	if !approve {
		req.Status = models.RequestRejected
		if err := tx.ResolveChangeRequest(ctx, req); err != nil {
			return nil, err
		}
		return res, nil
	}

	var debt *models.Debt
	if req.DebtID != "" {
		debt, err = tx.GetDebt(ctx, req.DebtID)
		if err != nil {
			if apperr.Kind(err) == apperr.ErrNotFound {
				return nil, apperr.Conflict("debt %s no longer exists", req.DebtID)
			}
			return nil, err
		}
	}

	applied, err := w.applier.Apply(ctx, tx, Application{
		Actor:    req.RequestedBy,
		Debt:     debt,
		Mutation: req.Mutation,
		Approved: true,
	})
	if err != nil {
		return nil, err
	}
	if applied != nil && req.DebtID == "" {
		req.DebtID = applied.ID
	}

	req.Status = models.RequestApproved
	if err := tx.ResolveChangeRequest(ctx, req); err != nil {
		return nil, err
	}
	res.Debt = applied
	return res, nil
}

// Cancel withdraws a pending request. Only its requester may cancel it.
func (w *Workflow) Cancel(ctx context.Context, tx storage.Ledger, requestID, actorID string) (*models.ChangeRequest, error) {
	req, err := tx.GetChangeRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.RequestedBy != actorID {
		return nil, apperr.Unauthorized("only the requester can cancel change request %s", requestID)
	}
	if req.Status != models.RequestPending {
		return nil, apperr.Conflict("change request %s is already %s", requestID, req.Status)
	}

	req.Status = models.RequestCancelled
	req.ResolvedAt = w.now().Unix()
	if err := tx.ResolveChangeRequest(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}
