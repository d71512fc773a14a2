package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func createUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()
	user := models.NewUser(email, email, "hash")
	require.NoError(t, store.CreateUser(context.Background(), user))
	return user
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func scheduledDebt(debtor, creditor string) *models.Debt {
	due := date(2024, time.January, 31)
	return &models.Debt{
		CreatedBy:         debtor,
		DebtorID:          debtor,
		CreditorID:        creditor,
		TotalAmount:       120000,
		InstallmentAmount: 40000,
		Currency:          "USD",
		Description:       "Laptop",
		InstallmentCount:  3,
		Cadence:           money.Monthly,
		DueDate:           &due,
		Status:            models.DebtAccepted,
		Installments: []models.Installment{
			{Sequence: 1, Amount: 40000, DueDate: date(2024, time.January, 31)},
			{Sequence: 2, Amount: 40000, DueDate: date(2024, time.February, 29)},
			{Sequence: 3, Amount: 40000, DueDate: date(2024, time.March, 31)},
		},
	}
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestUsersAndParties(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")

	t.Run("GetUserByEmail finds the user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.ID, got.ID)
	})

	t.Run("missing user is nil without error", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		err := store.CreateUser(ctx, models.NewUser("alice@example.com", "Other", "hash"))
		assert.ErrorIs(t, err, apperr.ErrConflict)
	})

	t.Run("ResolveParty distinguishes real and virtual", func(t *testing.T) {
		contact := &models.Contact{OwnerID: alice.ID, Name: "Grandma"}
		require.NoError(t, store.CreateContact(ctx, contact))

		realParty, err := store.ResolveParty(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PartyReal, realParty.Kind)

		virtual, err := store.ResolveParty(ctx, contact.ID)
		require.NoError(t, err)
		assert.Equal(t, models.PartyVirtual, virtual.Kind)
		assert.Equal(t, alice.ID, virtual.OwnerID)
		assert.Equal(t, "Grandma", virtual.DisplayName)

		_, err = store.ResolveParty(ctx, "missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		contacts, err := store.ListContacts(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, contact.ID, contacts[0].ID)
	})
}

func TestDebts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")

	t.Run("CreateDebt stores installments in order", func(t *testing.T) {
		debt := scheduledDebt(alice.ID, bob.ID)
		require.NoError(t, store.CreateDebt(ctx, debt))
		assert.NotEmpty(t, debt.ID)
		assert.Equal(t, int64(1), debt.Version)

		got, err := store.GetDebt(ctx, debt.ID)
		require.NoError(t, err)
		assert.Equal(t, money.Amount(120000), got.TotalAmount)
		assert.Equal(t, money.Monthly, got.Cadence)
		require.NotNil(t, got.DueDate)
		assert.True(t, got.DueDate.Equal(date(2024, time.January, 31)))
		require.Len(t, got.Installments, 3)
		for i, inst := range got.Installments {
			assert.Equal(t, i+1, inst.Sequence)
			assert.Equal(t, debt.ID, inst.DebtID)
		}
		assert.True(t, got.Installments[1].DueDate.Equal(date(2024, time.February, 29)))

		byInst, err := store.GetDebtByInstallment(ctx, got.Installments[2].ID)
		require.NoError(t, err)
		assert.Equal(t, debt.ID, byInst.ID)
	})

	t.Run("GetDebt on missing ID is not found", func(t *testing.T) {
		_, err := store.GetDebt(ctx, "missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)

		_, err = store.GetDebtByInstallment(ctx, "missing")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("UpdateDebt with a stale version conflicts", func(t *testing.T) {
		debt := scheduledDebt(alice.ID, bob.ID)
		require.NoError(t, store.CreateDebt(ctx, debt))

		first, err := store.GetDebt(ctx, debt.ID)
		require.NoError(t, err)
		second, err := store.GetDebt(ctx, debt.ID)
		require.NoError(t, err)

		now := time.Now().UTC()
		first.Installments[0].Paid = true
		first.Installments[0].PaidAt = &now
		first.CountPaidInstallments()
		require.NoError(t, store.UpdateDebt(ctx, first))
		assert.Equal(t, int64(2), first.Version)

		second.Description = "stale edit"
		err = store.UpdateDebt(ctx, second)
		assert.ErrorIs(t, err, apperr.ErrConflict)

		got, err := store.GetDebt(ctx, debt.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", got.Description)
		assert.Equal(t, 1, got.PaidInstallmentsCount)
		assert.True(t, got.Installments[0].Paid)
		require.NotNil(t, got.Installments[0].PaidAt)
	})

	t.Run("DeleteDebt removes installments", func(t *testing.T) {
		debt := scheduledDebt(alice.ID, bob.ID)
		require.NoError(t, store.CreateDebt(ctx, debt))

		assert.ErrorIs(t, store.DeleteDebt(ctx, debt.ID, debt.Version+5), apperr.ErrConflict)
		require.NoError(t, store.DeleteDebt(ctx, debt.ID, debt.Version))

		_, err := store.GetDebt(ctx, debt.ID)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
		installments, err := store.ListInstallments(ctx, debt.ID)
		require.NoError(t, err)
		assert.Empty(t, installments)
	})
}

func TestListDebtsAndActiveInstallments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createUser(t, store, "alice@example.com")
	bob := createUser(t, store, "bob@example.com")

	owes := scheduledDebt(alice.ID, bob.ID)
	require.NoError(t, store.CreateDebt(ctx, owes))

	owed := &models.Debt{
		CreatedBy: bob.ID, DebtorID: bob.ID, CreditorID: alice.ID,
		TotalAmount: 5000, InstallmentAmount: 5000, Currency: "USD", Description: "Lunch",
		InstallmentCount: 1, Cadence: money.Monthly, Status: models.DebtPending,
	}
	require.NoError(t, store.CreateDebt(ctx, owed))

	asDebtor, err := store.ListDebtsForParty(ctx, alice.ID, models.RoleDebtor)
	require.NoError(t, err)
	require.Len(t, asDebtor, 1)
	assert.Equal(t, owes.ID, asDebtor[0].ID)
	assert.Len(t, asDebtor[0].Installments, 3)

	asCreditor, err := store.ListDebtsForParty(ctx, alice.ID, models.RoleCreditor)
	require.NoError(t, err)
	require.Len(t, asCreditor, 1)
	assert.Equal(t, owed.ID, asCreditor[0].ID)

	all, err := store.ListDebtsForParty(ctx, alice.ID, models.RoleAny)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Pay the first installment; only two remain active.
	debt, err := store.GetDebt(ctx, owes.ID)
	require.NoError(t, err)
	debt.Installments[0].Paid = true
	require.NoError(t, store.UpdateDebt(ctx, debt))

	active, err := store.ListActiveInstallments(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, owes.ID, active[0].ID)
	require.Len(t, active[0].Installments, 2)
	assert.Equal(t, 2, active[0].Installments[0].Sequence)
	assert.False(t, active[0].Installments[0].Paid)
}

func TestChangeRequests(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	desc := "New description"
	req := &models.ChangeRequest{
		DebtID:         "debt-1",
		RequestedBy:    "alice",
		TargetApprover: "bob",
		Mutation:       models.UpdateDebtMutation{Description: &desc},
		Reason:         "typo",
	}
	require.NoError(t, store.CreateChangeRequest(ctx, req))
	assert.Equal(t, models.RequestPending, req.Status)

	got, err := store.GetChangeRequest(ctx, req.ID)
	require.NoError(t, err)
	update, ok := got.Mutation.(models.UpdateDebtMutation)
	require.True(t, ok, "mutation type %T", got.Mutation)
	require.NotNil(t, update.Description)
	assert.Equal(t, desc, *update.Description)

	pending, err := store.ListPendingChangeRequestsForDebt(ctx, "debt-1")
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	got.Status = models.RequestApproved
	got.ResponseMessage = "ok"
	require.NoError(t, store.ResolveChangeRequest(ctx, got))

	got.Status = models.RequestRejected
	assert.ErrorIs(t, store.ResolveChangeRequest(ctx, got), apperr.ErrConflict)

	final, err := store.GetChangeRequest(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, final.Status)
	assert.Equal(t, "ok", final.ResponseMessage)
	assert.NotZero(t, final.ResolvedAt)

	forBob, err := store.ListChangeRequests(ctx, "bob", "")
	require.NoError(t, err)
	assert.Len(t, forBob, 1)

	stillPending, err := store.ListChangeRequests(ctx, "bob", models.RequestPending)
	require.NoError(t, err)
	assert.Empty(t, stillPending)

	_, err = store.GetChangeRequest(ctx, "missing")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGroupsSplitsAndSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	group := &models.Group{
		Name:      "Trip",
		Currency:  "USD",
		CreatedBy: "x",
		Members: []models.Member{
			{PartyID: "x", Kind: models.PartyReal, DisplayName: "X"},
			{PartyID: "y", Kind: models.PartyReal, DisplayName: "Y"},
			{PartyID: "z", Kind: models.PartyVirtual, DisplayName: "Z"},
		},
	}
	require.NoError(t, store.CreateGroup(ctx, group))

	got, err := store.GetGroup(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, got.Members, 3)
	assert.Equal(t, "x", got.Members[0].PartyID)
	assert.Equal(t, models.PartyVirtual, got.Members[2].Kind)

	groups, err := store.ListGroupsForParty(ctx, "y")
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Members, 3)

	mx, my, mz := got.Members[0].ID, got.Members[1].ID, got.Members[2].ID
	split := &models.Split{
		GroupID:     group.ID,
		CreatedBy:   "x",
		Description: "Dinner",
		TotalAmount: 30000,
		Currency:    "USD",
		Payers:      []models.Allocation{{MemberID: mx, Amount: 30000}},
		Participants: []models.Allocation{
			{MemberID: mx, Amount: 10000},
			{MemberID: my, Amount: 10000},
			{MemberID: mz, Amount: 10000},
		},
		SplitType:      models.SplitEqual,
		ApprovalStatus: models.ApprovalPendingValidation,
		Approvals: []models.SplitApproval{
			{MemberID: my, PartyID: "y", Status: models.ApprovalPendingValidation},
		},
	}
	require.NoError(t, store.CreateSplit(ctx, split))

	t.Run("GetSplit restores allocations in order", func(t *testing.T) {
		loaded, err := store.GetSplit(ctx, split.ID)
		require.NoError(t, err)
		assert.Equal(t, split.Payers, loaded.Payers)
		assert.Equal(t, split.Participants, loaded.Participants)
		require.Len(t, loaded.Approvals, 1)
		assert.Equal(t, models.ApprovalPendingValidation, loaded.Approvals[0].Status)
	})

	t.Run("UpdateSplit checks the version", func(t *testing.T) {
		first, err := store.GetSplit(ctx, split.ID)
		require.NoError(t, err)
		stale, err := store.GetSplit(ctx, split.ID)
		require.NoError(t, err)

		first.Approvals[0].Status = models.ApprovalApproved
		first.Approvals[0].RespondedAt = time.Now().Unix()
		first.ApprovalStatus = models.ApprovalActive
		require.NoError(t, store.UpdateSplit(ctx, first))

		stale.ApprovalStatus = models.ApprovalRejected
		assert.ErrorIs(t, store.UpdateSplit(ctx, stale), apperr.ErrConflict)

		loaded, err := store.GetSplit(ctx, split.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalActive, loaded.ApprovalStatus)
		assert.Equal(t, models.ApprovalApproved, loaded.Approvals[0].Status)
		assert.NotZero(t, loaded.Approvals[0].RespondedAt)
	})

	t.Run("settlements are listed newest first", func(t *testing.T) {
		require.NoError(t, store.CreateSettlement(ctx, &models.Settlement{
			GroupID: group.ID, FromMemberID: my, ToMemberID: mx, Amount: 5000, Currency: "USD",
			CreatedBy: "y", CreatedAt: 100,
		}))
		require.NoError(t, store.CreateSettlement(ctx, &models.Settlement{
			GroupID: group.ID, FromMemberID: mz, ToMemberID: mx, Amount: 10000, Currency: "USD",
			CreatedBy: "x", CreatedAt: 200, Note: "cash",
		}))

		settlements, err := store.ListSettlements(ctx, group.ID)
		require.NoError(t, err)
		require.Len(t, settlements, 2)
		assert.Equal(t, "cash", settlements[0].Note)
		assert.Equal(t, money.Amount(5000), settlements[1].Amount)
	})

	splits, err := store.ListGroupSplits(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, splits, 1)
	assert.Len(t, splits[0].Participants, 3)
}

func TestWithTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("error rolls back every write", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithTx(ctx, func(tx storage.Ledger) error {
			if err := tx.CreateUser(ctx, models.NewUser("tx@example.com", "Tx", "hash")); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		user, err := store.GetUserByEmail(ctx, "tx@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("success commits", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.Ledger) error {
			return tx.CreateUser(ctx, models.NewUser("ok@example.com", "Ok", "hash"))
		})
		require.NoError(t, err)

		user, err := store.GetUserByEmail(ctx, "ok@example.com")
		require.NoError(t, err)
		assert.NotNil(t, user)
	})

	t.Run("multi-row writes inside a transaction reuse it", func(t *testing.T) {
		err := store.WithTx(ctx, func(tx storage.Ledger) error {
			return tx.CreateDebt(ctx, scheduledDebt("a", "b"))
		})
		require.NoError(t, err)

		debts, err := store.ListDebtsForParty(ctx, "a", models.RoleAny)
		require.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Len(t, debts[0].Installments, 3)
	})
}

func TestReadTx(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.CreateDebt(ctx, scheduledDebt("a", "b")))

	t.Run("reads debts with their installments", func(t *testing.T) {
		var debts []*models.Debt
		err := store.ReadTx(ctx, func(tx storage.Ledger) error {
			var err error
			debts, err = tx.ListDebtsForParty(ctx, "a", models.RoleAny)
			return err
		})
		require.NoError(t, err)
		require.Len(t, debts, 1)
		assert.Len(t, debts[0].Installments, 3)
	})

	t.Run("inside a write transaction sees its uncommitted rows", func(t *testing.T) {
		boom := errors.New("boom")
		err := store.WithTx(ctx, func(tx storage.Ledger) error {
			if err := tx.CreateDebt(ctx, scheduledDebt("c", "d")); err != nil {
				return err
			}
			err := tx.(*SQLiteStore).ReadTx(ctx, func(inner storage.Ledger) error {
				debts, err := inner.ListDebtsForParty(ctx, "c", models.RoleAny)
				require.NoError(t, err)
				assert.Len(t, debts, 1)
				return nil
			})
			require.NoError(t, err)
			return boom
		})
		assert.ErrorIs(t, err, boom)

		debts, err := store.ListDebtsForParty(ctx, "c", models.RoleAny)
		require.NoError(t, err)
		assert.Empty(t, debts)
	})
}
