package ledger

import (
	"context"
	"errors"
	"math"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/notify"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

type fixture struct {
	engine *Engine
	store  *sqlite.SQLiteStore
	sent   *notify.Recorder
	alice  string
	bob    string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "ledger.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	sent := &notify.Recorder{}
	clock := func() time.Time { return time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC) }
	f := &fixture{
		engine: New(store, WithNotifier(sent), WithClock(clock)),
		store:  store,
		sent:   sent,
	}
	f.alice = f.user(t, "alice@example.com")
	f.bob = f.user(t, "bob@example.com")
	return f
}

func (f *fixture) user(t *testing.T, email string) string {
	t.Helper()
	u := models.NewUser(email, email, "hash")
	require.NoError(t, f.store.CreateUser(context.Background(), u))
	return u.ID
}

func (f *fixture) contact(t *testing.T, owner, name string) string {
	t.Helper()
	c, err := f.engine.CreateContact(context.Background(), owner, name)
	require.NoError(t, err)
	return c.ID
}

func usd(s string) money.Amount {
	return money.MustParse(s, "USD")
}

func draft(debtor, creditor string, amount money.Amount, installments int) models.DebtDraft {
	due := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	return models.DebtDraft{
		DebtorID:         debtor,
		CreditorID:       creditor,
		Amount:           amount,
		Currency:         "USD",
		Description:      "Laptop",
		InstallmentCount: installments,
		DueDate:          &due,
	}
}

func TestInstallmentLifecycle(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// The debtor declares the debt; it waits for the creditor.
	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("1200"), 3), "")
	require.NoError(t, err)
	assert.Nil(t, res.Request)
	require.NotNil(t, res.Debt)
	assert.Equal(t, models.DebtPending, res.Debt.Status)
	assert.Equal(t, []notify.Kind{notify.DebtProposed}, f.sent.Kinds(f.bob))

	requests, err := f.engine.ListChangeRequests(ctx, f.bob, "")
	require.NoError(t, err)
	assert.Empty(t, requests)

	_, err = f.engine.RespondToDebt(ctx, f.alice, res.Debt.ID, true)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition, "creator cannot accept")

	debt, err := f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, models.DebtAccepted, debt.Status)
	assert.Equal(t, []notify.Kind{notify.DebtAccepted}, f.sent.Kinds(f.alice))

	require.Len(t, debt.Installments, 3)
	wantDue := []time.Time{
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	for i, inst := range debt.Installments {
		assert.Equal(t, usd("400"), inst.Amount)
		assert.True(t, inst.DueDate.Equal(wantDue[i]), "installment %d due %s", i+1, inst.DueDate)
	}

	bal, err := f.engine.GetBalances(ctx, f.alice, "", "USD")
	require.NoError(t, err)
	assert.Equal(t, usd("1200"), bal.IOwe)
	assert.Equal(t, -usd("1200"), bal.Net)

	for i, inst := range debt.Installments {
		res, err := f.engine.MarkInstallmentPaid(ctx, f.bob, inst.ID, "")
		require.NoError(t, err)
		assert.Nil(t, res.Request, "creditor marks apply immediately")
		if i < 2 {
			assert.Equal(t, models.DebtAccepted, res.Debt.Status)
			assert.Equal(t, i+1, res.Debt.PaidInstallmentsCount)
		} else {
			assert.Equal(t, models.DebtPaid, res.Debt.Status)
		}
	}

	bal, err = f.engine.GetBalances(ctx, f.alice, "", "USD")
	require.NoError(t, err)
	assert.Zero(t, bal.Net)
	assert.Empty(t, bal.Counterparties)

	// The debtor takes back a payment: the debt reopens.
	res, err = f.engine.RevertInstallmentPayment(ctx, f.alice, debt.Installments[2].ID, "bounced")
	require.NoError(t, err)
	assert.Nil(t, res.Request)
	assert.Equal(t, models.DebtAccepted, res.Debt.Status)
	assert.Equal(t, 2, res.Debt.PaidInstallmentsCount)
}

func TestDebtorPaymentNeedsCreditorApproval(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("90"), 3), "")
	require.NoError(t, err)
	_, err = f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, true)
	require.NoError(t, err)
	inst := res.Debt.Installments[0]

	marked, err := f.engine.MarkInstallmentPaid(ctx, f.alice, inst.ID, "paid cash")
	require.NoError(t, err)
	require.NotNil(t, marked.Request)
	assert.Nil(t, marked.Debt)
	assert.Equal(t, f.bob, marked.Request.TargetApprover)

	stored, err := f.engine.GetDebt(ctx, f.alice, res.Debt.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.PaidInstallmentsCount, "request does not touch the debt")

	resolved, err := f.engine.ResolveChangeRequest(ctx, f.bob, marked.Request.ID, true, "got it")
	require.NoError(t, err)
	assert.Equal(t, models.RequestApproved, resolved.Request.Status)
	require.NotNil(t, resolved.Debt)
	assert.Equal(t, 1, resolved.Debt.PaidInstallmentsCount)

	_, err = f.engine.ResolveChangeRequest(ctx, f.bob, marked.Request.ID, true, "")
	assert.ErrorIs(t, err, apperr.ErrConflict)

	again, err := f.engine.GetDebt(ctx, f.alice, res.Debt.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.PaidInstallmentsCount, "second resolution has no effect")
	assert.Equal(t, resolved.Debt.Version, again.Version)

	assert.Contains(t, f.sent.Kinds(f.alice), notify.ChangeRequestApproved)
}

func TestApprovalGating(t *testing.T) {
	ctx := context.Background()

	t.Run("real counterparty gets a change request", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.bob, f.alice, usd("50"), 1), "dinner")
		require.NoError(t, err)
		require.NotNil(t, res.Request)
		assert.Nil(t, res.Debt)
		assert.Equal(t, models.MutationCreate, res.Request.Kind())

		debts, err := f.engine.ListDebts(ctx, f.alice, models.RoleAny, "")
		require.NoError(t, err)
		assert.Empty(t, debts)
		assert.Equal(t, []notify.Kind{notify.ChangeRequestCreated}, f.sent.Kinds(f.bob))

		resolved, err := f.engine.ResolveChangeRequest(ctx, f.bob, res.Request.ID, true, "")
		require.NoError(t, err)
		require.NotNil(t, resolved.Debt)
		assert.Equal(t, models.DebtAccepted, resolved.Debt.Status)
		assert.Equal(t, f.alice, resolved.Debt.CreatedBy)
		assert.Equal(t, resolved.Debt.ID, resolved.Request.DebtID)

		upd := "dinner and drinks"
		changed, err := f.engine.UpdateDebt(ctx, f.alice, resolved.Debt.ID, models.UpdateDebtMutation{Description: &upd}, "")
		require.NoError(t, err)
		require.NotNil(t, changed.Request)

		deleted, err := f.engine.DeleteDebt(ctx, f.alice, resolved.Debt.ID, "")
		require.NoError(t, err)
		require.NotNil(t, deleted.Request)

		stored, err := f.engine.GetDebt(ctx, f.alice, resolved.Debt.ID)
		require.NoError(t, err)
		assert.Equal(t, "Laptop", stored.Description)
	})

	t.Run("virtual counterparty applies immediately", func(t *testing.T) {
		f := newFixture(t)
		grandma := f.contact(t, f.alice, "Grandma")

		res, err := f.engine.CreateDebt(ctx, f.alice, draft(grandma, f.alice, usd("50"), 1), "")
		require.NoError(t, err)
		assert.Nil(t, res.Request)
		require.NotNil(t, res.Debt)
		assert.Equal(t, models.DebtAccepted, res.Debt.Status)

		upd := "groceries"
		changed, err := f.engine.UpdateDebt(ctx, f.alice, res.Debt.ID, models.UpdateDebtMutation{Description: &upd}, "")
		require.NoError(t, err)
		assert.Nil(t, changed.Request)
		assert.Equal(t, "groceries", changed.Debt.Description)

		deleted, err := f.engine.DeleteDebt(ctx, f.alice, res.Debt.ID, "")
		require.NoError(t, err)
		assert.Nil(t, deleted.Request)
		assert.Nil(t, deleted.Debt)

		requests, err := f.engine.ListChangeRequests(ctx, f.alice, "")
		require.NoError(t, err)
		assert.Empty(t, requests)
		assert.Empty(t, f.sent.All(), "virtual contacts are never notified")
	})

	t.Run("another user's contact is off limits", func(t *testing.T) {
		f := newFixture(t)
		bobsFriend := f.contact(t, f.bob, "Carol")

		_, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, bobsFriend, usd("10"), 1), "")
		assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)
	})
}

func TestCreateDebtValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(d *models.DebtDraft)
	}{
		{"zero amount", func(d *models.DebtDraft) { d.Amount = 0 }},
		{"empty description", func(d *models.DebtDraft) { d.Description = "  " }},
		{"bad currency", func(d *models.DebtDraft) { d.Currency = "usd" }},
		{"same party", func(d *models.DebtDraft) { d.CreditorID = d.DebtorID }},
		{"too many installments", func(d *models.DebtDraft) { d.InstallmentCount = 601 }},
		{"amount below installment count", func(d *models.DebtDraft) { d.Amount = 2; d.InstallmentCount = 3 }},
		{"unknown cadence", func(d *models.DebtDraft) { d.Cadence = "daily" }},
		{"amount above maximum", func(d *models.DebtDraft) { d.Amount = money.MaxAmount + 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := draft(f.alice, f.bob, usd("100"), 2)
			tt.mutate(&d)
			_, err := f.engine.CreateDebt(ctx, f.alice, d, "")
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	debts, err := f.engine.ListDebts(ctx, f.alice, models.RoleAny, "")
	require.NoError(t, err)
	assert.Empty(t, debts)
}

func TestInstallmentRemainderGoesFirst(t *testing.T) {
	f := newFixture(t)
	grandma := f.contact(t, f.alice, "Grandma")

	res, err := f.engine.CreateDebt(context.Background(), f.alice, draft(f.alice, grandma, 1000, 3), "")
	require.NoError(t, err)
	require.Len(t, res.Debt.Installments, 3)
	assert.Equal(t, money.Amount(334), res.Debt.Installments[0].Amount)
	assert.Equal(t, money.Amount(333), res.Debt.Installments[1].Amount)
	assert.Equal(t, money.Amount(333), res.Debt.Installments[2].Amount)
	assert.Equal(t, money.Amount(333), res.Debt.InstallmentAmount)
}

func TestConcurrentAcceptHasOneWinner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("30"), 1), "")
	require.NoError(t, err)

	const racers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		wins      int
		conflicts int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(accept bool) {
			defer wg.Done()
			_, err := f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, accept)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, apperr.ErrConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i%2 == 0)
	}
	wg.Wait()

	assert.Equal(t, 1, wins)
	assert.Equal(t, racers-1, conflicts)
}

func TestCreditorPaidFlagAndConfirmation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("75"), 1), "")
	require.NoError(t, err)
	id := res.Debt.ID
	_, err = f.engine.RespondToDebt(ctx, f.bob, id, true)
	require.NoError(t, err)

	_, err = f.engine.MarkDebtPaidByCreditor(ctx, f.alice, id)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)

	d, err := f.engine.MarkDebtPaidByCreditor(ctx, f.bob, id)
	require.NoError(t, err)
	assert.True(t, d.PaidByCreditor)
	assert.False(t, d.FullyReconciled())
	assert.Equal(t, models.DebtPaid, d.Status)

	d, err = f.engine.MarkDebtPaidByCreditor(ctx, f.bob, id)
	require.NoError(t, err)
	assert.False(t, d.PaidByCreditor)
	assert.Equal(t, models.DebtAccepted, d.Status)

	conf, err := f.engine.RequestPaymentConfirmation(ctx, f.alice, id, "sent by transfer")
	require.NoError(t, err)
	require.NotNil(t, conf.Request)
	assert.Equal(t, models.MutationMarkPaid, conf.Request.Kind())

	_, err = f.engine.RequestPaymentConfirmation(ctx, f.alice, id, "")
	assert.ErrorIs(t, err, apperr.ErrConflict, "one pending confirmation at a time")

	stored, err := f.engine.GetDebt(ctx, f.bob, id)
	require.NoError(t, err)
	assert.False(t, stored.DebtorConfirmedPaid, "the flag waits for the creditor")
	assert.Equal(t, models.DebtAccepted, stored.Status, "debtor's word alone does not settle")

	resolved, err := f.engine.ResolveChangeRequest(ctx, f.bob, conf.Request.ID, true, "")
	require.NoError(t, err)
	assert.True(t, resolved.Debt.FullyReconciled())
	assert.Equal(t, models.DebtPaid, resolved.Debt.Status)
}

func TestRejectAndReconsider(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("20"), 1), "")
	require.NoError(t, err)

	d, err := f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, false)
	require.NoError(t, err)
	assert.Equal(t, models.DebtRejected, d.Status)

	_, err = f.engine.MarkInstallmentPaid(ctx, f.bob, "missing", "")
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = f.engine.ReconsiderDebt(ctx, f.alice, d.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)

	d, err = f.engine.ReconsiderDebt(ctx, f.bob, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.DebtPending, d.Status)

	// The creator withdraws a pending debt without asking.
	del, err := f.engine.DeleteDebt(ctx, f.alice, d.ID, "")
	require.NoError(t, err)
	assert.Nil(t, del.Request)
	_, err = f.engine.GetDebt(ctx, f.alice, d.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestNotificationsOnlyAfterCommit(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("20"), 1), "")
	require.NoError(t, err)
	f.sent.Reset()

	// The second accept fails inside its transaction and must not notify.
	_, err = f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, true)
	require.NoError(t, err)
	_, err = f.engine.RespondToDebt(ctx, f.bob, res.Debt.ID, true)
	require.ErrorIs(t, err, apperr.ErrConflict)

	all := f.sent.All()
	require.Len(t, all, 1)
	assert.Equal(t, f.alice, all[0].PartyID)
	assert.Equal(t, notify.DebtAccepted, all[0].Kind)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestGroupBalancesAndSuggestions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	y := f.contact(t, f.alice, "Y")
	z := f.contact(t, f.alice, "Z")

	g, err := f.engine.CreateGroup(ctx, f.alice, "Trip", "USD", []string{y, z})
	require.NoError(t, err)
	require.Len(t, g.Members, 3)
	x := g.Members[0]
	assert.Equal(t, f.alice, x.PartyID)
	memberY, _ := g.MemberForParty(y)
	memberZ, _ := g.MemberForParty(z)

	split, err := f.engine.CreateSharedExpense(ctx, f.alice, g.ID, SplitInput{
		Description:  "Cabin",
		Total:        usd("300"),
		Payers:       []models.Allocation{{MemberID: x.ID, Amount: usd("300")}},
		Participants: []string{x.ID, memberY.ID, memberZ.ID},
		SplitType:    models.SplitEqual,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalActive, split.ApprovalStatus, "no other real user takes part")

	balances, err := f.engine.GetGroupBalances(ctx, f.alice, g.ID)
	require.NoError(t, err)
	nets := calculator.NetBalances(balances)
	assert.Equal(t, map[string]money.Amount{
		x.ID:       usd("200"),
		memberY.ID: -usd("100"),
		memberZ.ID: -usd("100"),
	}, nets)

	transfers, err := f.engine.GetSettlementSuggestions(ctx, f.alice, g.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []calculator.Transfer{
		{From: memberY.ID, To: x.ID, Amount: usd("100")},
		{From: memberZ.ID, To: x.ID, Amount: usd("100")},
	}, transfers)

	_, err = f.engine.RecordSettlement(ctx, f.alice, g.ID, memberY.ID, x.ID, usd("100"), "cash")
	require.NoError(t, err)

	transfers, err = f.engine.GetSettlementSuggestions(ctx, f.alice, g.ID)
	require.NoError(t, err)
	assert.Equal(t, []calculator.Transfer{{From: memberZ.ID, To: x.ID, Amount: usd("100")}}, transfers)

	_, err = f.engine.MarkSplitSettled(ctx, f.alice, split.ID)
	require.NoError(t, err)
	balances, err = f.engine.GetGroupBalances(ctx, f.alice, g.ID)
	require.NoError(t, err)
	var sum money.Amount
	for _, b := range balances {
		sum += b.NetBalance
	}
	assert.Zero(t, sum)

	_, err = f.engine.GetGroupBalances(ctx, f.bob, g.ID)
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)
}

func TestSharedExpenseApproval(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*fixture, *models.Group, *models.Split) {
		t.Helper()
		f := newFixture(t)
		g, err := f.engine.CreateGroup(ctx, f.alice, "Flat", "USD", []string{f.bob})
		require.NoError(t, err)
		a, _ := g.MemberForParty(f.alice)
		b, _ := g.MemberForParty(f.bob)

		split, err := f.engine.CreateSharedExpense(ctx, f.alice, g.ID, SplitInput{
			Description:  "Rent",
			Total:        usd("1000"),
			Payers:       []models.Allocation{{MemberID: a.ID, Amount: usd("1000")}},
			Participants: []string{a.ID, b.ID},
			SplitType:    models.SplitCustom,
			CustomShares: map[string]money.Amount{a.ID: usd("600"), b.ID: usd("400")},
		})
		require.NoError(t, err)
		return f, g, split
	}

	t.Run("pending split stays out of balances until approved", func(t *testing.T) {
		f, g, split := setup(t)
		assert.Equal(t, models.ApprovalPendingValidation, split.ApprovalStatus)
		assert.Equal(t, []notify.Kind{notify.SplitApprovalRequest}, f.sent.Kinds(f.bob))

		balances, err := f.engine.GetGroupBalances(ctx, f.alice, g.ID)
		require.NoError(t, err)
		for _, b := range balances {
			assert.Zero(t, b.NetBalance)
		}

		_, _, err = f.engine.ApproveSharedExpense(ctx, f.alice, split.ID)
		assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition, "creator is not asked")

		approved, pending, err := f.engine.ApproveSharedExpense(ctx, f.bob, split.ID)
		require.NoError(t, err)
		assert.True(t, approved)
		assert.Zero(t, pending)
		assert.Contains(t, f.sent.Kinds(f.alice), notify.SplitApproved)

		_, _, err = f.engine.ApproveSharedExpense(ctx, f.bob, split.ID)
		assert.ErrorIs(t, err, apperr.ErrConflict)

		balances, err = f.engine.GetGroupBalances(ctx, f.alice, g.ID)
		require.NoError(t, err)
		nets := calculator.NetBalances(balances)
		a, _ := g.MemberForParty(f.alice)
		assert.Equal(t, usd("400"), nets[a.ID])
	})

	t.Run("one rejection rejects the split", func(t *testing.T) {
		f, _, split := setup(t)

		require.NoError(t, f.engine.RejectSharedExpense(ctx, f.bob, split.ID, "wrong month"))
		stored, err := f.store.GetSplit(ctx, split.ID)
		require.NoError(t, err)
		assert.Equal(t, models.ApprovalRejected, stored.ApprovalStatus)
		assert.Contains(t, f.sent.Kinds(f.alice), notify.SplitRejected)
	})

	t.Run("shares must add up", func(t *testing.T) {
		f, g, _ := setup(t)
		a, _ := g.MemberForParty(f.alice)
		b, _ := g.MemberForParty(f.bob)

		_, err := f.engine.CreateSharedExpense(ctx, f.alice, g.ID, SplitInput{
			Description:  "Power",
			Total:        usd("100"),
			Payers:       []models.Allocation{{MemberID: a.ID, Amount: usd("100")}},
			Participants: []string{a.ID, b.ID},
			SplitType:    models.SplitCustom,
			CustomShares: map[string]money.Amount{a.ID: usd("60"), b.ID: usd("30")},
		})
		assert.ErrorIs(t, err, apperr.ErrValidation)
	})
}

func TestGetBalancesOfContact(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	grandma := f.contact(t, f.alice, "Grandma")

	_, err := f.engine.CreateDebt(ctx, f.alice, draft(grandma, f.alice, usd("40"), 1), "")
	require.NoError(t, err)

	bal, err := f.engine.GetBalances(ctx, f.alice, grandma, "USD")
	require.NoError(t, err)
	assert.Equal(t, usd("40"), bal.IOwe)

	_, err = f.engine.GetBalances(ctx, f.bob, grandma, "USD")
	assert.ErrorIs(t, err, apperr.ErrUnauthorizedTransition)

	_, err = f.engine.GetBalances(ctx, f.alice, "", "dollars")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestRevertWholeDebtPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("debtor undoes a premature paid marking", func(t *testing.T) {
		f := newFixture(t)
		grandma := f.contact(t, f.alice, "Grandma")

		res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, grandma, usd("50"), 1), "")
		require.NoError(t, err)
		id := res.Debt.ID

		paid, err := f.engine.RequestPaymentConfirmation(ctx, f.alice, id, "")
		require.NoError(t, err)
		require.NotNil(t, paid.Debt)
		assert.Equal(t, models.DebtPaid, paid.Debt.Status)
		assert.True(t, paid.Debt.FullyReconciled())

		reverted, err := f.engine.RevertDebtPayment(ctx, f.alice, id, "transfer bounced")
		require.NoError(t, err)
		assert.Nil(t, reverted.Request)
		require.NotNil(t, reverted.Debt)
		assert.Equal(t, models.DebtAccepted, reverted.Debt.Status)
		assert.False(t, reverted.Debt.PaidByCreditor)
		assert.False(t, reverted.Debt.DebtorConfirmedPaid)
		assert.Equal(t, usd("50"), Outstanding(reverted.Debt))

		_, err = f.engine.RevertDebtPayment(ctx, f.alice, id, "")
		assert.ErrorIs(t, err, apperr.ErrConflict, "nothing left to revert")
	})

	t.Run("creditor revert waits for the debtor", func(t *testing.T) {
		f := newFixture(t)

		res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("90"), 3), "")
		require.NoError(t, err)
		id := res.Debt.ID
		_, err = f.engine.RespondToDebt(ctx, f.bob, id, true)
		require.NoError(t, err)
		for _, inst := range res.Debt.Installments[:2] {
			_, err := f.engine.MarkInstallmentPaid(ctx, f.bob, inst.ID, "")
			require.NoError(t, err)
		}
		d, err := f.engine.MarkDebtPaidByCreditor(ctx, f.bob, id)
		require.NoError(t, err)
		assert.Equal(t, models.DebtPaid, d.Status)

		reverted, err := f.engine.RevertDebtPayment(ctx, f.bob, id, "counted twice")
		require.NoError(t, err)
		require.NotNil(t, reverted.Request)
		assert.Equal(t, f.alice, reverted.Request.TargetApprover)
		assert.Equal(t, models.MutationRevertPayment, reverted.Request.Kind())

		_, err = f.engine.RevertDebtPayment(ctx, f.bob, id, "")
		assert.ErrorIs(t, err, apperr.ErrConflict, "one pending revert at a time")

		resolved, err := f.engine.ResolveChangeRequest(ctx, f.alice, reverted.Request.ID, true, "")
		require.NoError(t, err)
		require.NotNil(t, resolved.Debt)
		assert.Equal(t, models.DebtAccepted, resolved.Debt.Status)
		assert.False(t, resolved.Debt.PaidByCreditor)
		assert.Zero(t, resolved.Debt.PaidInstallmentsCount)
		assert.Equal(t, usd("90"), Outstanding(resolved.Debt))
	})
}

func TestRejectedConfirmationLeavesDebtUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, f.bob, usd("300"), 3), "")
	require.NoError(t, err)
	id := res.Debt.ID
	accepted, err := f.engine.RespondToDebt(ctx, f.bob, id, true)
	require.NoError(t, err)

	conf, err := f.engine.RequestPaymentConfirmation(ctx, f.alice, id, "")
	require.NoError(t, err)
	require.NotNil(t, conf.Request)

	_, err = f.engine.ResolveChangeRequest(ctx, f.bob, conf.Request.ID, false, "not received")
	require.NoError(t, err)

	stored, err := f.engine.GetDebt(ctx, f.alice, id)
	require.NoError(t, err)
	assert.Equal(t, accepted.Version, stored.Version)
	assert.False(t, stored.DebtorConfirmedPaid)
	assert.Equal(t, models.DebtAccepted, stored.Status)

	// The rejected confirmation does not count as a recorded payment.
	amount := usd("450")
	upd, err := f.engine.UpdateDebt(ctx, f.alice, id, models.UpdateDebtMutation{Amount: &amount}, "")
	require.NoError(t, err)
	require.NotNil(t, upd.Request)
	resolved, err := f.engine.ResolveChangeRequest(ctx, f.bob, upd.Request.ID, true, "")
	require.NoError(t, err)
	assert.Equal(t, usd("450"), resolved.Debt.TotalAmount)
	require.Len(t, resolved.Debt.Installments, 3)
	assert.Equal(t, usd("150"), resolved.Debt.Installments[0].Amount)
}

func TestAmountsCannotWrap(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	y := f.contact(t, f.alice, "Y")
	z := f.contact(t, f.alice, "Z")

	g, err := f.engine.CreateGroup(ctx, f.alice, "Trip", "USD", []string{y, z})
	require.NoError(t, err)
	x := g.Members[0]
	memberY, _ := g.MemberForParty(y)
	memberZ, _ := g.MemberForParty(z)
	everyone := []string{x.ID, memberY.ID, memberZ.ID}

	tests := []struct {
		name string
		in   SplitInput
	}{
		{
			name: "payers wrapping to the total",
			in: SplitInput{
				Total: 1,
				Payers: []models.Allocation{
					{MemberID: x.ID, Amount: math.MaxInt64},
					{MemberID: memberY.ID, Amount: math.MaxInt64},
					{MemberID: memberZ.ID, Amount: 3},
				},
				SplitType: models.SplitEqual,
			},
		},
		{
			name: "custom shares wrapping to the total",
			in: SplitInput{
				Total:     1,
				Payers:    []models.Allocation{{MemberID: x.ID, Amount: 1}},
				SplitType: models.SplitCustom,
				CustomShares: map[string]money.Amount{
					x.ID: math.MaxInt64, memberY.ID: math.MaxInt64, memberZ.ID: 3,
				},
			},
		},
		{
			name: "total above maximum",
			in: SplitInput{
				Total:     money.MaxAmount + 1,
				Payers:    []models.Allocation{{MemberID: x.ID, Amount: money.MaxAmount + 1}},
				SplitType: models.SplitEqual,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			in.Description = "Cabin"
			in.Participants = everyone
			_, err := f.engine.CreateSharedExpense(ctx, f.alice, g.ID, in)
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}

	_, err = f.engine.RecordSettlement(ctx, f.alice, g.ID, memberY.ID, x.ID, money.MaxAmount+1, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	splits, err := f.engine.ListSplits(ctx, f.alice, g.ID)
	require.NoError(t, err)
	assert.Empty(t, splits)
	balances, err := f.engine.GetGroupBalances(ctx, f.alice, g.ID)
	require.NoError(t, err)
	for _, b := range balances {
		assert.Zero(t, b.NetBalance)
	}
}

func TestBalancesReadOneSnapshot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	grandma := f.contact(t, f.alice, "Grandma")

	res, err := f.engine.CreateDebt(ctx, f.alice, draft(f.alice, grandma, usd("1200"), 3), "")
	require.NoError(t, err)

	allowed := map[money.Amount]bool{usd("1200"): true, usd("800"): true, usd("400"): true, 0: true}
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				bal, err := f.engine.GetBalances(ctx, f.alice, "", "USD")
				if !assert.NoError(t, err) {
					return
				}
				assert.True(t, allowed[bal.IOwe], "balance %d is not a committed state", bal.IOwe)
				assert.Equal(t, -bal.IOwe, bal.Net)
			}
		}()
	}

	for _, inst := range res.Debt.Installments {
		_, err := f.engine.MarkInstallmentPaid(ctx, f.alice, inst.ID, "")
		require.NoError(t, err)
	}
	close(done)
	wg.Wait()

	bal, err := f.engine.GetBalances(ctx, f.alice, "", "USD")
	require.NoError(t, err)
	assert.Zero(t, bal.IOwe)
}
