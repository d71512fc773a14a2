package approval

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

type fakeApplier struct {
	apps []Application
}

func (f *fakeApplier) Apply(_ context.Context, _ storage.Ledger, app Application) (*models.Debt, error) {
	f.apps = append(f.apps, app)
	if app.Debt == nil {
		return &models.Debt{ID: "created-debt"}, nil
	}
	if _, ok := app.Mutation.(models.DeleteDebtMutation); ok {
		return nil, nil
	}
	return app.Debt, nil
}

var (
	bob     = &models.Party{ID: "bob", Kind: models.PartyReal}
	grandma = &models.Party{ID: "grandma", Kind: models.PartyVirtual, OwnerID: "alice"}
)

func debt(status models.DebtStatus) *models.Debt {
	return &models.Debt{ID: "d1", CreatedBy: "alice", DebtorID: "alice", CreditorID: "bob", Status: status}
}

func TestNeedsApproval(t *testing.T) {
	desc := "x"
	tests := []struct {
		name string
		p    Proposal
		want bool
	}{
		{
			name: "virtual counterparty never needs approval",
			p:    Proposal{Actor: "alice", Counterparty: grandma, Debt: debt(models.DebtAccepted), Mutation: models.DeleteDebtMutation{}},
			want: false,
		},
		{
			name: "debtor declaring own debt",
			p: Proposal{Actor: "alice", Counterparty: bob,
				Mutation: models.CreateDebtMutation{Draft: models.DebtDraft{DebtorID: "alice", CreditorID: "bob"}}},
			want: false,
		},
		{
			name: "creditor claiming a receivable",
			p: Proposal{Actor: "alice", Counterparty: bob,
				Mutation: models.CreateDebtMutation{Draft: models.DebtDraft{DebtorID: "bob", CreditorID: "alice"}}},
			want: true,
		},
		{
			name: "creator edits own pending debt",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtPending), Mutation: models.UpdateDebtMutation{Description: &desc}},
			want: false,
		},
		{
			name: "edit of accepted debt",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted), Mutation: models.UpdateDebtMutation{Description: &desc}},
			want: true,
		},
		{
			name: "creator withdraws pending debt",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtPending), Mutation: models.DeleteDebtMutation{}},
			want: false,
		},
		{
			name: "delete of accepted debt",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted), Mutation: models.DeleteDebtMutation{}},
			want: true,
		},
		{
			name: "debtor marks paid",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted), Mutation: models.MarkPaidMutation{InstallmentID: "i1"}},
			want: true,
		},
		{
			name: "creditor marks paid",
			p: Proposal{Actor: "bob", Counterparty: &models.Party{ID: "alice", Kind: models.PartyReal},
				Debt: debt(models.DebtAccepted), Mutation: models.MarkPaidMutation{InstallmentID: "i1"}},
			want: false,
		},
		{
			name: "debtor reverts own payment",
			p:    Proposal{Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted), Mutation: models.RevertPaymentMutation{InstallmentID: "i1"}},
			want: false,
		},
		{
			name: "creditor reverts payment",
			p: Proposal{Actor: "bob", Counterparty: &models.Party{ID: "alice", Kind: models.PartyReal},
				Debt: debt(models.DebtAccepted), Mutation: models.RevertPaymentMutation{InstallmentID: "i1"}},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NeedsApproval(tt.p)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func setup(t *testing.T) (*sqlite.SQLiteStore, *fakeApplier, *Workflow) {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	applier := &fakeApplier{}
	now := func() time.Time { return time.Unix(1700000000, 0) }
	return store, applier, New(applier, now)
}

func TestPropose(t *testing.T) {
	ctx := context.Background()

	t.Run("immediate mutations go straight to the applier", func(t *testing.T) {
		store, applier, w := setup(t)

		res, err := w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: grandma, Debt: debt(models.DebtAccepted),
			Mutation: models.MarkPaidMutation{InstallmentID: "i1"},
		})
		require.NoError(t, err)
		assert.True(t, res.Immediate)
		assert.Nil(t, res.Request)
		require.Len(t, applier.apps, 1)
		assert.False(t, applier.apps[0].Approved)

		requests, err := store.ListChangeRequests(ctx, "alice", "")
		require.NoError(t, err)
		assert.Empty(t, requests)
	})

	t.Run("gated mutations file a request and do not apply", func(t *testing.T) {
		store, applier, w := setup(t)

		res, err := w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted),
			Mutation: models.MarkPaidMutation{InstallmentID: "i1"}, Reason: "paid cash",
		})
		require.NoError(t, err)
		assert.False(t, res.Immediate)
		require.NotNil(t, res.Request)
		assert.Equal(t, "bob", res.Request.TargetApprover)
		assert.Equal(t, "d1", res.Request.DebtID)
		assert.Empty(t, applier.apps)

		_, err = w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted),
			Mutation: models.MarkPaidMutation{InstallmentID: "i1"},
		})
		assert.ErrorIs(t, err, apperr.ErrConflict, "duplicate payment request")

		_, err = w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted),
			Mutation: models.MarkPaidMutation{InstallmentID: "i2"},
		})
		assert.NoError(t, err, "another installment is a different request")
	})
}

func TestResolve(t *testing.T) {
	ctx := context.Background()

	propose := func(t *testing.T, store storage.Ledger, w *Workflow) *models.ChangeRequest {
		t.Helper()
		res, err := w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: bob,
			Mutation: models.CreateDebtMutation{Draft: models.DebtDraft{DebtorID: "bob", CreditorID: "alice"}},
		})
		require.NoError(t, err)
		require.NotNil(t, res.Request)
		return res.Request
	}

	t.Run("only the target approver resolves", func(t *testing.T) {
		store, applier, w := setup(t)
		req := propose(t, store, w)

		_, err := w.Resolve(ctx, store, req.ID, "alice", true, "")
		assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)
		assert.Empty(t, applier.apps)
	})

	t.Run("approval replays the mutation once", func(t *testing.T) {
		store, applier, w := setup(t)
		req := propose(t, store, w)

		res, err := w.Resolve(ctx, store, req.ID, "bob", true, "fair")
		require.NoError(t, err)
		assert.Equal(t, models.RequestApproved, res.Request.Status)
		require.NotNil(t, res.Debt)
		require.Len(t, applier.apps, 1)
		assert.True(t, applier.apps[0].Approved)
		assert.Equal(t, "alice", applier.apps[0].Actor)

		stored, err := store.GetChangeRequest(ctx, req.ID)
		require.NoError(t, err)
		assert.Equal(t, "created-debt", stored.DebtID)
		assert.Equal(t, "fair", stored.ResponseMessage)

		_, err = w.Resolve(ctx, store, req.ID, "bob", true, "")
		assert.ErrorIs(t, err, apperr.ErrConflict)
		_, err = w.Resolve(ctx, store, req.ID, "bob", false, "")
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Len(t, applier.apps, 1, "second resolution has no effect")
	})

	t.Run("rejection leaves the target untouched", func(t *testing.T) {
		store, applier, w := setup(t)
		req := propose(t, store, w)

		res, err := w.Resolve(ctx, store, req.ID, "bob", false, "never")
		require.NoError(t, err)
		assert.Equal(t, models.RequestRejected, res.Request.Status)
		assert.Nil(t, res.Debt)
		assert.Empty(t, applier.apps)
	})

	t.Run("approval of a request whose debt is gone conflicts", func(t *testing.T) {
		store, applier, w := setup(t)
		res, err := w.Propose(ctx, store, Proposal{
			Actor: "alice", Counterparty: bob, Debt: debt(models.DebtAccepted), Mutation: models.DeleteDebtMutation{},
		})
		require.NoError(t, err)

		_, err = w.Resolve(ctx, store, res.Request.ID, "bob", true, "")
		assert.ErrorIs(t, err, apperr.ErrConflict)
		assert.Empty(t, applier.apps)
	})

	t.Run("requester can cancel", func(t *testing.T) {
		store, _, w := setup(t)
		req := propose(t, store, w)

		_, err := w.Cancel(ctx, store, req.ID, "bob")
		assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)

		cancelled, err := w.Cancel(ctx, store, req.ID, "alice")
		require.NoError(t, err)
		assert.Equal(t, models.RequestCancelled, cancelled.Status)

		_, err = w.Resolve(ctx, store, req.ID, "bob", true, "")
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("missing request is not found", func(t *testing.T) {
		store, _, w := setup(t)
		_, err := w.Resolve(ctx, store, "missing", "bob", true, "")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}
