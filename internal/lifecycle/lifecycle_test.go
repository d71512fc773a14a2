package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		from    models.DebtStatus
		t       Transition
		want    models.DebtStatus
		wantErr error
	}{
		{name: "accept pending", from: models.DebtPending, t: Accept, want: models.DebtAccepted},
		{name: "reject pending", from: models.DebtPending, t: Reject, want: models.DebtRejected},
		{name: "settle accepted", from: models.DebtAccepted, t: Settle, want: models.DebtPaid},
		{name: "reopen paid", from: models.DebtPaid, t: Reopen, want: models.DebtAccepted},
		{name: "reconsider rejected", from: models.DebtRejected, t: Reconsider, want: models.DebtPending},
		{name: "accept twice", from: models.DebtAccepted, t: Accept, wantErr: apperr.ErrConflict},
		{name: "reject after accept", from: models.DebtAccepted, t: Reject, wantErr: apperr.ErrConflict},
		{name: "settle pending", from: models.DebtPending, t: Settle, wantErr: apperr.ErrConflict},
		{name: "reopen rejected", from: models.DebtRejected, t: Reopen, wantErr: apperr.ErrConflict},
		{name: "unknown transition", from: models.DebtPending, t: "archive", wantErr: apperr.ErrInvariantViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Next(tt.from, tt.t)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, Allowed(tt.from, tt.t))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, Allowed(tt.from, tt.t))
		})
	}
}

func scheduledDebt(paid ...bool) *models.Debt {
	d := &models.Debt{
		ID:               "d1",
		CreatedBy:        "alice",
		DebtorID:         "alice",
		CreditorID:       "bob",
		InstallmentCount: len(paid),
		Status:           models.DebtAccepted,
	}
	for i, p := range paid {
		d.Installments = append(d.Installments, models.Installment{ID: string(rune('a' + i)), Sequence: i + 1, Amount: 400, Paid: p})
	}
	return d
}

func TestDerive(t *testing.T) {
	t.Run("partial payment stays accepted", func(t *testing.T) {
		d := scheduledDebt(true, true, false)
		assert.Equal(t, Transition(""), Derive(d))
		assert.Equal(t, models.DebtAccepted, d.Status)
		assert.Equal(t, 2, d.PaidInstallmentsCount)
	})

	t.Run("last installment settles", func(t *testing.T) {
		d := scheduledDebt(true, true, true)
		assert.Equal(t, Settle, Derive(d))
		assert.Equal(t, models.DebtPaid, d.Status)
		assert.Equal(t, 3, d.PaidInstallmentsCount)
	})

	t.Run("reverting an installment reopens", func(t *testing.T) {
		d := scheduledDebt(true, false, true)
		d.Status = models.DebtPaid
		assert.Equal(t, Reopen, Derive(d))
		assert.Equal(t, models.DebtAccepted, d.Status)
	})

	t.Run("creditor flag settles a single-payment debt", func(t *testing.T) {
		d := &models.Debt{ID: "d2", InstallmentCount: 1, Status: models.DebtAccepted, PaidByCreditor: true}
		assert.Equal(t, Settle, Derive(d))
		assert.Equal(t, models.DebtPaid, d.Status)
	})

	t.Run("debtor confirmation alone does not settle", func(t *testing.T) {
		d := &models.Debt{ID: "d3", InstallmentCount: 1, Status: models.DebtAccepted, DebtorConfirmedPaid: true}
		assert.Equal(t, Transition(""), Derive(d))
		assert.Equal(t, models.DebtAccepted, d.Status)
	})

	t.Run("pending debts are not derived", func(t *testing.T) {
		d := scheduledDebt(true, true)
		d.Status = models.DebtPending
		assert.Equal(t, Transition(""), Derive(d))
		assert.Equal(t, models.DebtPending, d.Status)
	})
}

func TestCheckResponder(t *testing.T) {
	d := &models.Debt{ID: "d1", CreatedBy: "alice", DebtorID: "alice", CreditorID: "bob"}

	assert.NoError(t, CheckResponder(d, "bob"))
	assert.ErrorIs(t, CheckResponder(d, "alice"), apperr.ErrUnauthorizedTransition)
	assert.ErrorIs(t, CheckResponder(d, "mallory"), apperr.ErrUnauthorizedTransition)
}

func TestCheckParty(t *testing.T) {
	d := &models.Debt{ID: "d1", DebtorID: "alice", CreditorID: "bob"}

	role, err := CheckParty(d, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleDebtor, role)

	role, err = CheckParty(d, "bob")
	require.NoError(t, err)
	assert.Equal(t, models.RoleCreditor, role)

	_, err = CheckParty(d, "mallory")
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)
}
