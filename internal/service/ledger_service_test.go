package service

import (
	"context"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/notify"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestInstallmentDebtOverRPC(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")

	created, err := s.ledger.CreateDebt(ctx, as(alice, &pb.CreateDebtRequest{
		DebtorId:         alice.userID,
		CreditorId:       bob.userID,
		Amount:           "1200.00",
		Currency:         "USD",
		Description:      "Laptop",
		InstallmentCount: 3,
		DueDate:          date(t, "2024-01-31"),
	}))
	require.NoError(t, err)
	require.NotNil(t, created.Msg.Debt)
	assert.Nil(t, created.Msg.ChangeRequest)
	assert.Equal(t, "pending", created.Msg.Debt.Status)
	assert.Equal(t, "0.00", created.Msg.Debt.Outstanding, "pending debts owe nothing yet")
	debtID := created.Msg.Debt.Id

	listed, err := s.ledger.ListDebts(ctx, as(bob, &pb.ListDebtsRequest{Role: "creditor"}))
	require.NoError(t, err)
	require.Len(t, listed.Msg.Debts, 1)

	accepted, err := s.ledger.RespondToDebt(ctx, as(bob, &pb.RespondToDebtRequest{DebtId: debtID, Accept: true}))
	require.NoError(t, err)
	debt := accepted.Msg.Debt
	assert.Equal(t, "accepted", debt.Status)
	assert.Equal(t, "1200.00", debt.Outstanding)
	require.Len(t, debt.Installments, 3)
	assert.Equal(t, "400.00", debt.Installments[0].Amount)
	assert.Equal(t, "2024-02-29", debt.Installments[1].DueDate.AsTime().Format(time.DateOnly))

	// The debtor's payment waits for the creditor.
	marked, err := s.ledger.MarkInstallmentPaid(ctx, as(alice, &pb.MarkInstallmentPaidRequest{
		InstallmentId: debt.Installments[0].Id,
		Reason:        "bank transfer",
	}))
	require.NoError(t, err)
	assert.Nil(t, marked.Msg.Debt)
	require.NotNil(t, marked.Msg.ChangeRequest)
	cr := marked.Msg.ChangeRequest
	assert.Equal(t, "markPaid", cr.Kind)
	assert.Equal(t, bob.userID, cr.TargetApprover)
	assert.JSONEq(t, `{"installment_id":"`+debt.Installments[0].Id+`"}`, string(cr.Payload))

	pending, err := s.ledger.ListChangeRequests(ctx, as(bob, &pb.ListChangeRequestsRequest{Status: "pending"}))
	require.NoError(t, err)
	require.Len(t, pending.Msg.ChangeRequests, 1)

	resolved, err := s.ledger.ResolveChangeRequest(ctx, as(bob, &pb.ResolveChangeRequestRequest{
		RequestId: cr.Id,
		Approve:   true,
	}))
	require.NoError(t, err)
	assert.Equal(t, "approved", resolved.Msg.ChangeRequest.Status)
	require.NotNil(t, resolved.Msg.Debt)
	assert.Equal(t, int32(1), resolved.Msg.Debt.PaidInstallmentsCount)
	assert.Equal(t, "800.00", resolved.Msg.Debt.Outstanding)

	_, err = s.ledger.ResolveChangeRequest(ctx, as(bob, &pb.ResolveChangeRequestRequest{RequestId: cr.Id, Approve: true}))
	requireCode(t, connect.CodeAborted, err)

	active, err := s.ledger.ListActiveInstallments(ctx, as(alice, &pb.ListActiveInstallmentsRequest{}))
	require.NoError(t, err)
	require.Len(t, active.Msg.Debts, 1)
	assert.Len(t, active.Msg.Debts[0].Installments, 2, "only unpaid installments are listed")

	bal, err := s.ledger.GetBalances(ctx, as(alice, &pb.GetBalancesRequest{Currency: "USD"}))
	require.NoError(t, err)
	assert.Equal(t, "800.00", bal.Msg.IOwe)
	assert.Equal(t, "-800.00", bal.Msg.Net)
	require.Len(t, bal.Msg.Counterparties, 1)
	assert.Equal(t, bob.userID, bal.Msg.Counterparties[0].PartyId)
	assert.Equal(t, "-800.00", bal.Msg.Counterparties[0].Net)

	assert.Contains(t, s.sent.Kinds(alice.userID), notify.ChangeRequestApproved)
}

func TestContactDebtOverRPC(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")

	contact, err := s.ledger.CreateContact(ctx, as(alice, &pb.CreateContactRequest{Name: "Grandma"}))
	require.NoError(t, err)
	grandma := contact.Msg.Contact.Id

	created, err := s.ledger.CreateDebt(ctx, as(alice, &pb.CreateDebtRequest{
		DebtorId:    grandma,
		CreditorId:  alice.userID,
		Amount:      "50",
		Currency:    "USD",
		Description: "Groceries",
	}))
	require.NoError(t, err)
	require.NotNil(t, created.Msg.Debt)
	assert.Equal(t, "accepted", created.Msg.Debt.Status)
	assert.Equal(t, "50.00", created.Msg.Debt.TotalAmount)

	desc := "Groceries and flowers"
	updated, err := s.ledger.UpdateDebt(ctx, as(alice, &pb.UpdateDebtRequest{
		DebtId:      created.Msg.Debt.Id,
		Description: &desc,
	}))
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Msg.Debt.Description)

	bal, err := s.ledger.GetBalances(ctx, as(alice, &pb.GetBalancesRequest{PartyId: grandma, Currency: "USD"}))
	require.NoError(t, err)
	assert.Equal(t, "50.00", bal.Msg.IOwe)

	paid, err := s.ledger.MarkDebtPaidByCreditor(ctx, as(alice, &pb.MarkDebtPaidByCreditorRequest{DebtId: created.Msg.Debt.Id}))
	require.NoError(t, err)
	assert.True(t, paid.Msg.Debt.PaidByCreditor)
	assert.Equal(t, "0.00", paid.Msg.Debt.Outstanding)

	deleted, err := s.ledger.DeleteDebt(ctx, as(alice, &pb.DeleteDebtRequest{DebtId: created.Msg.Debt.Id}))
	require.NoError(t, err)
	assert.Nil(t, deleted.Msg.Debt)
	assert.Nil(t, deleted.Msg.ChangeRequest)

	contacts, err := s.ledger.ListContacts(ctx, as(alice, &pb.ListContactsRequest{}))
	require.NoError(t, err)
	require.Len(t, contacts.Msg.Contacts, 1)
	assert.Equal(t, "Grandma", contacts.Msg.Contacts[0].Name)

	assert.Empty(t, s.sent.All(), "contacts are never notified")
}

func TestLedgerErrorCodes(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	carol := s.register(t, "carol@example.com")

	created, err := s.ledger.CreateDebt(ctx, as(alice, &pb.CreateDebtRequest{
		DebtorId: alice.userID, CreditorId: bob.userID, Amount: "10", Currency: "USD", Description: "Lunch",
	}))
	require.NoError(t, err)
	debtID := created.Msg.Debt.Id

	newDebt := func(mut func(*pb.CreateDebtRequest)) error {
		req := &pb.CreateDebtRequest{
			DebtorId: alice.userID, CreditorId: bob.userID, Amount: "10", Currency: "USD", Description: "Lunch",
		}
		mut(req)
		_, err := s.ledger.CreateDebt(ctx, as(alice, req))
		return err
	}

	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"too many decimals", newDebt(func(r *pb.CreateDebtRequest) { r.Amount = "10.001" }), connect.CodeInvalidArgument},
		{"unknown currency", newDebt(func(r *pb.CreateDebtRequest) { r.Currency = "usd" }), connect.CodeInvalidArgument},
		{"amount above maximum", newDebt(func(r *pb.CreateDebtRequest) { r.Amount = "10000000000000.01" }), connect.CodeInvalidArgument},
		{"bad date", newDebt(func(r *pb.CreateDebtRequest) { r.DueDate = &timestamppb.Timestamp{Seconds: 1, Nanos: -1} }), connect.CodeInvalidArgument},
		{"self debt", newDebt(func(r *pb.CreateDebtRequest) { r.CreditorId = alice.userID }), connect.CodeInvalidArgument},
		{"unknown cadence", newDebt(func(r *pb.CreateDebtRequest) { r.Cadence = "hourly" }), connect.CodeInvalidArgument},
		{"bad role filter", func() error {
			_, err := s.ledger.ListDebts(ctx, as(alice, &pb.ListDebtsRequest{Role: "guarantor"}))
			return err
		}(), connect.CodeInvalidArgument},
		{"missing debt", func() error {
			_, err := s.ledger.GetDebt(ctx, as(alice, &pb.GetDebtRequest{DebtId: "missing"}))
			return err
		}(), connect.CodeNotFound},
		{"outsider reads debt", func() error {
			_, err := s.ledger.GetDebt(ctx, as(carol, &pb.GetDebtRequest{DebtId: debtID}))
			return err
		}(), connect.CodePermissionDenied},
		{"creator accepts own debt", func() error {
			_, err := s.ledger.RespondToDebt(ctx, as(alice, &pb.RespondToDebtRequest{DebtId: debtID, Accept: true}))
			return err
		}(), connect.CodePermissionDenied},
		{"outsider balances", func() error {
			_, err := s.ledger.GetBalances(ctx, as(carol, &pb.GetBalancesRequest{PartyId: alice.userID, Currency: "USD"}))
			return err
		}(), connect.CodePermissionDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.want, tt.err)
		})
	}
}

func TestRevertDebtPaymentOverRPC(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")

	created, err := s.ledger.CreateDebt(ctx, as(alice, &pb.CreateDebtRequest{
		DebtorId: alice.userID, CreditorId: bob.userID, Amount: "75", Currency: "USD", Description: "Concert",
	}))
	require.NoError(t, err)
	debtID := created.Msg.Debt.Id

	_, err = s.ledger.RespondToDebt(ctx, as(bob, &pb.RespondToDebtRequest{DebtId: debtID, Accept: true}))
	require.NoError(t, err)
	paid, err := s.ledger.MarkDebtPaidByCreditor(ctx, as(bob, &pb.MarkDebtPaidByCreditorRequest{DebtId: debtID}))
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Msg.Debt.Status)

	// The creditor's revert waits for the debtor.
	reverted, err := s.ledger.RevertDebtPayment(ctx, as(bob, &pb.RevertDebtPaymentRequest{DebtId: debtID, Reason: "cheque bounced"}))
	require.NoError(t, err)
	assert.Nil(t, reverted.Msg.Debt)
	cr := reverted.Msg.ChangeRequest
	require.NotNil(t, cr)
	assert.Equal(t, "revertPayment", cr.Kind)
	assert.Equal(t, alice.userID, cr.TargetApprover)
	assert.JSONEq(t, `{"reason":"cheque bounced"}`, string(cr.Payload))

	resolved, err := s.ledger.ResolveChangeRequest(ctx, as(alice, &pb.ResolveChangeRequestRequest{RequestId: cr.Id, Approve: true}))
	require.NoError(t, err)
	require.NotNil(t, resolved.Msg.Debt)
	assert.Equal(t, "accepted", resolved.Msg.Debt.Status)
	assert.False(t, resolved.Msg.Debt.PaidByCreditor)
	assert.Equal(t, "75.00", resolved.Msg.Debt.Outstanding)

	// Nothing is left to revert.
	_, err = s.ledger.RevertDebtPayment(ctx, as(alice, &pb.RevertDebtPaymentRequest{DebtId: debtID}))
	requireCode(t, connect.CodeAborted, err)
}
