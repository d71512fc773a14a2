package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/approval"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/notify"
)

// ListChangeRequests lists requests actor sent or must answer, optionally
// filtered by status.
func (e *Engine) ListChangeRequests(ctx context.Context, actor string, status models.ChangeRequestStatus) ([]*models.ChangeRequest, error) {
	switch status {
	case "", models.RequestPending, models.RequestApproved, models.RequestRejected, models.RequestCancelled:
	default:
		return nil, apperr.Validation("unknown change request status %q", status)
	}
	return e.store.ListChangeRequests(ctx, actor, status)
}

// ResolveChangeRequest approves or rejects a pending request addressed to
// actor. Approval replays the mutation in the same transaction; rejection
// leaves the debt untouched. The requester is notified either way.
func (e *Engine) ResolveChangeRequest(ctx context.Context, actor, requestID string, approve bool, message string) (*approval.Resolution, error) {
	var out *approval.Resolution
	err := e.run(ctx, "resolve_change_request", func(u *unit) error {
		res, err := u.workflow().Resolve(ctx, u.tx, requestID, actor, approve, strings.TrimSpace(message))
		if err != nil {
			return err
		}
		out = res

		kind, outcome := notify.ChangeRequestRejected, "rejected"
		if approve {
			kind, outcome = notify.ChangeRequestApproved, "approved"
		}
		u.requestOutcome(res.Request.Kind(), outcome)
		return u.notifyID(ctx, res.Request.RequestedBy, kind, requestPayload(res.Request))
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Resolved change request",
		"request_id", requestID, "actor", actor, "status", out.Request.Status)
	return out, nil
}

// CancelChangeRequest withdraws a pending request actor sent.
func (e *Engine) CancelChangeRequest(ctx context.Context, actor, requestID string) (*models.ChangeRequest, error) {
	var out *models.ChangeRequest
	err := e.run(ctx, "cancel_change_request", func(u *unit) error {
		req, err := u.workflow().Cancel(ctx, u.tx, requestID, actor)
		if err != nil {
			return err
		}
		out = req
		u.requestOutcome(req.Kind(), "cancelled")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
