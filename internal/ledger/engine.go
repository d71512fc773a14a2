// Package ledger is the debt and shared-expense engine. Every exported
// operation runs in one store transaction; notifications, account linkage and
// metrics happen only after that transaction commits.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/approval"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/notify"
	"github.com/mmynk/splitledger/internal/storage"
)

// AccountRecorder receives payments made on debts linked to a personal
// account. Failures are logged and never undo the payment.
type AccountRecorder interface {
	RecordDebtPayment(ctx context.Context, accountID, debtID string, amount money.Amount, currency string) error
}

// LogAccountRecorder writes linked payments to the log.
type LogAccountRecorder struct {
	Logger *slog.Logger
}

// RecordDebtPayment implements AccountRecorder.
func (r LogAccountRecorder) RecordDebtPayment(ctx context.Context, accountID, debtID string, amount money.Amount, currency string) error {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "Recorded debt payment against account",
		"account_id", accountID, "debt_id", debtID, "amount", amount.Format(currency), "currency", currency)
	return nil
}

// Engine implements the ledger operations on top of a storage.Store.
type Engine struct {
	store    storage.Store
	notifier notify.Dispatcher
	accounts AccountRecorder
	logger   *slog.Logger
	now      func() time.Time
	balances singleflight.Group
}

// Option configures an Engine.
type Option func(*Engine)

// WithNotifier sets the notification dispatcher.
func WithNotifier(d notify.Dispatcher) Option {
	return func(e *Engine) { e.notifier = d }
}

// WithAccountRecorder sets where linked debt payments are reported.
func WithAccountRecorder(r AccountRecorder) Option {
	return func(e *Engine) { e.accounts = r }
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock sets the time source used for timestamps and default schedules.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an engine over store.
func New(store storage.Store, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.notifier == nil {
		e.notifier = notify.Direct{Sender: notify.LogSender{Logger: e.logger}, Logger: e.logger}
	}
	if e.accounts == nil {
		e.accounts = LogAccountRecorder{Logger: e.logger}
	}
	return e
}

// unit collects the side effects of one transaction so they can be released
// after commit.
type unit struct {
	e           *Engine
	tx          storage.Ledger
	notes       []notify.Notification
	staleKeys   []string
	transitions [][2]string
	requests    [][2]string
	payments    []linkedPayment
}

type linkedPayment struct {
	accountID string
	debtID    string
	amount    money.Amount
	currency  string
}

// run executes fn in a transaction and releases its side effects on success.
func (e *Engine) run(ctx context.Context, op string, fn func(u *unit) error) error {
	u := &unit{e: e}
	err := e.store.WithTx(ctx, func(tx storage.Ledger) error {
		u.tx = tx
		return fn(u)
	})
	if err != nil {
		switch apperr.Kind(err) {
		case apperr.ErrConflict:
			metrics.Conflicts.WithLabelValues(op).Inc()
		case apperr.ErrInvariantViolation:
			e.logger.ErrorContext(ctx, "Invariant violation, transaction aborted", "operation", op, "error", err)
		}
		return err
	}

	e.afterCommit(ctx, u)
	return nil
}

func (e *Engine) afterCommit(ctx context.Context, u *unit) {
	for _, key := range u.staleKeys {
		e.balances.Forget(key)
	}
	for _, t := range u.transitions {
		metrics.Transitions.WithLabelValues(t[0], t[1]).Inc()
	}
	for _, r := range u.requests {
		metrics.ChangeRequests.WithLabelValues(r[0], r[1]).Inc()
	}
	for _, p := range u.payments {
		if err := e.accounts.RecordDebtPayment(ctx, p.accountID, p.debtID, p.amount, p.currency); err != nil {
			e.logger.WarnContext(ctx, "Failed to record linked account payment",
				"account_id", p.accountID, "debt_id", p.debtID, "error", err)
		}
	}
	for _, n := range u.notes {
		n.CreatedAt = e.now()
		e.notifier.Notify(ctx, n)
	}
}

// workflow returns an approval workflow that applies mutations within u.
func (u *unit) workflow() *approval.Workflow {
	return approval.New(u, u.e.now)
}

// notify queues a notification for a real party. Virtual contacts are skipped.
func (u *unit) notify(p *models.Party, kind notify.Kind, payload map[string]string) {
	if p == nil || !p.IsReal() {
		return
	}
	u.notes = append(u.notes, notify.Notification{PartyID: p.ID, Kind: kind, Payload: payload})
}

// notifyID resolves partyID and notifies it if it is a real user.
func (u *unit) notifyID(ctx context.Context, partyID string, kind notify.Kind, payload map[string]string) error {
	p, err := u.tx.ResolveParty(ctx, partyID)
	if err != nil {
		return err
	}
	u.notify(p, kind, payload)
	return nil
}

func (u *unit) transition(entity, name string) {
	u.transitions = append(u.transitions, [2]string{entity, name})
}

func (u *unit) requestOutcome(kind models.MutationKind, outcome string) {
	u.requests = append(u.requests, [2]string{string(kind), outcome})
}

// touchDebt marks both parties' balances in the debt's currency stale.
func (u *unit) touchDebt(d *models.Debt) {
	u.staleKeys = append(u.staleKeys,
		balanceKey(d.DebtorID, d.Currency),
		balanceKey(d.CreditorID, d.Currency))
}

func (u *unit) linkedPayment(d *models.Debt, amount money.Amount) {
	if d.LinkedAccountID == "" || amount <= 0 {
		return
	}
	u.payments = append(u.payments, linkedPayment{
		accountID: d.LinkedAccountID,
		debtID:    d.ID,
		amount:    amount,
		currency:  d.Currency,
	})
}

func (e *Engine) today() time.Time {
	now := e.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func debtPayload(d *models.Debt) map[string]string {
	return map[string]string{
		"debt_id":     d.ID,
		"amount":      d.TotalAmount.Format(d.Currency),
		"currency":    d.Currency,
		"description": d.Description,
	}
}

func requestPayload(r *models.ChangeRequest) map[string]string {
	p := map[string]string{
		"request_id": r.ID,
		"kind":       string(r.Kind()),
	}
	if r.DebtID != "" {
		p["debt_id"] = r.DebtID
	}
	if r.Reason != "" {
		p["reason"] = r.Reason
	}
	if r.ResponseMessage != "" {
		p["message"] = r.ResponseMessage
	}
	return p
}
