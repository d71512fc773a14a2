// Package notify delivers ledger events to real users. Delivery is
// best-effort: the ledger never waits on it and never rolls back because of it.
package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Kind names a ledger event.
type Kind string

const (
	DebtProposed          Kind = "debt.proposed"
	DebtAccepted          Kind = "debt.accepted"
	DebtRejected          Kind = "debt.rejected"
	DebtReconsidered      Kind = "debt.reconsidered"
	DebtPaidMarked        Kind = "debt.paid_marked"
	DebtPaidUnmarked      Kind = "debt.paid_unmarked"
	InstallmentPaid       Kind = "installment.paid"
	InstallmentReverted   Kind = "installment.reverted"
	ChangeRequestCreated  Kind = "change_request.created"
	ChangeRequestApproved Kind = "change_request.approved"
	ChangeRequestRejected Kind = "change_request.rejected"
	SplitApprovalRequest  Kind = "split.approval_requested"
	SplitApproved         Kind = "split.approved"
	SplitRejected         Kind = "split.rejected"
	SettlementRecorded    Kind = "settlement.recorded"
)

// Notification is one event addressed to one real user.
type Notification struct {
	PartyID   string
	Kind      Kind
	Payload   map[string]string
	CreatedAt time.Time
}

// Dispatcher accepts notifications without blocking the caller.
type Dispatcher interface {
	Notify(ctx context.Context, n Notification)
}

// Sender performs the actual delivery of one notification.
type Sender interface {
	Send(ctx context.Context, n Notification) error
}

// LogSender delivers notifications to the structured log. It stands in for
// push or email delivery.
type LogSender struct {
	Logger *slog.Logger
}

// Send implements Sender.
func (s LogSender) Send(ctx context.Context, n Notification) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	attrs := []any{"party_id", n.PartyID, "kind", string(n.Kind)}
	for k, v := range n.Payload {
		attrs = append(attrs, k, v)
	}
	logger.InfoContext(ctx, "Notification", attrs...)
	return nil
}

// Direct is a Dispatcher that sends inline on the caller's goroutine.
// Delivery errors are logged.
type Direct struct {
	Sender Sender
	Logger *slog.Logger
}

// Notify implements Dispatcher.
func (d Direct) Notify(ctx context.Context, n Notification) {
	if err := d.Sender.Send(ctx, n); err != nil {
		logger := d.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.WarnContext(ctx, "Failed to deliver notification",
			"party_id", n.PartyID, "kind", string(n.Kind), "error", err)
	}
}

// Recorder is a Dispatcher that keeps every notification in memory.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

// Notify implements Dispatcher.
func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// All returns a copy of everything recorded so far.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}

// For returns the notifications addressed to partyID.
func (r *Recorder) For(partyID string) []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Notification
	for _, n := range r.sent {
		if n.PartyID == partyID {
			out = append(out, n)
		}
	}
	return out
}

// Kinds returns the kinds addressed to partyID in order.
func (r *Recorder) Kinds(partyID string) []Kind {
	var kinds []Kind
	for _, n := range r.For(partyID) {
		kinds = append(kinds, n.Kind)
	}
	return kinds
}

// Reset forgets everything recorded.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = nil
}
