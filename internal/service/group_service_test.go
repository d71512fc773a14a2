package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func memberFor(t *testing.T, g *pb.Group, partyID string) string {
	t.Helper()
	for _, m := range g.Members {
		if m.PartyId == partyID {
			return m.Id
		}
	}
	t.Fatalf("party %s is not in group %s", partyID, g.Id)
	return ""
}

func TestCreateGroup(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")
	carol := s.register(t, "carol@example.com")

	resp, err := s.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{
		Name:     "Roommates",
		Currency: "EUR",
		PartyIds: []string{bob.userID},
	}))
	require.NoError(t, err)
	g := resp.Msg.Group
	assert.NotEmpty(t, g.Id)
	assert.Equal(t, "Roommates", g.Name)
	assert.Equal(t, alice.userID, g.CreatedBy)
	require.Len(t, g.Members, 2)
	assert.Equal(t, alice.userID, g.Members[0].PartyId, "creator is the first member")
	assert.NotNil(t, g.CreatedAt)

	got, err := s.groups.GetGroup(ctx, as(bob, &pb.GetGroupRequest{GroupId: g.Id}))
	require.NoError(t, err)
	assert.Equal(t, g.Id, got.Msg.Group.Id)

	_, err = s.groups.GetGroup(ctx, as(carol, &pb.GetGroupRequest{GroupId: g.Id}))
	requireCode(t, connect.CodePermissionDenied, err)

	list, err := s.groups.ListGroups(ctx, as(carol, &pb.ListGroupsRequest{}))
	require.NoError(t, err)
	assert.Empty(t, list.Msg.Groups)

	_, err = s.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{Name: "Trip", Currency: "euro"}))
	requireCode(t, connect.CodeInvalidArgument, err)
}

func TestSharedExpenseOverRPC(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")

	created, err := s.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{
		Name:     "Flat",
		Currency: "USD",
		PartyIds: []string{bob.userID},
	}))
	require.NoError(t, err)
	g := created.Msg.Group
	a, b := memberFor(t, g, alice.userID), memberFor(t, g, bob.userID)

	split, err := s.groups.CreateSharedExpense(ctx, as(alice, &pb.CreateSharedExpenseRequest{
		GroupId:        g.Id,
		Description:    "Dinner",
		TotalAmount:    "30.01",
		Payers:         []*pb.Allocation{{MemberId: a, Amount: "30.01"}},
		ParticipantIds: []string{a, b},
	}))
	require.NoError(t, err)
	sp := split.Msg.Split
	assert.Equal(t, "equal", sp.SplitType)
	assert.Equal(t, "pendingValidation", sp.ApprovalStatus)
	require.Len(t, sp.Participants, 2)
	assert.Equal(t, a, sp.Participants[0].MemberId)
	assert.Equal(t, "15.01", sp.Participants[0].Amount)
	assert.Equal(t, b, sp.Participants[1].MemberId)
	assert.Equal(t, "15.00", sp.Participants[1].Amount)

	approved, err := s.groups.ApproveSharedExpense(ctx, as(bob, &pb.ApproveSharedExpenseRequest{SplitId: sp.Id}))
	require.NoError(t, err)
	assert.True(t, approved.Msg.Approved)
	assert.Zero(t, approved.Msg.PendingCount)

	balances, err := s.groups.GetGroupBalances(ctx, as(bob, &pb.GetGroupBalancesRequest{GroupId: g.Id}))
	require.NoError(t, err)
	assert.Equal(t, "USD", balances.Msg.Currency)
	require.Len(t, balances.Msg.Balances, 2)
	first := balances.Msg.Balances[0]
	assert.Equal(t, a, first.MemberId)
	assert.Equal(t, "15.00", first.NetBalance)
	assert.Equal(t, "30.01", first.TotalPaid)
	assert.Equal(t, "15.01", first.TotalOwed)
	assert.Equal(t, "-15.00", balances.Msg.Balances[1].NetBalance)

	suggestions, err := s.groups.GetSettlementSuggestions(ctx, as(alice, &pb.GetSettlementSuggestionsRequest{GroupId: g.Id}))
	require.NoError(t, err)
	require.Len(t, suggestions.Msg.Transfers, 1)
	transfer := suggestions.Msg.Transfers[0]
	assert.Equal(t, b, transfer.FromMemberId)
	assert.Equal(t, a, transfer.ToMemberId)
	assert.Equal(t, "15.00", transfer.Amount)

	settled, err := s.groups.RecordSettlement(ctx, as(bob, &pb.RecordSettlementRequest{
		GroupId:      g.Id,
		FromMemberId: b,
		ToMemberId:   a,
		Amount:       "15",
		Note:         "cash",
	}))
	require.NoError(t, err)
	assert.Equal(t, "15.00", settled.Msg.Settlement.Amount)

	suggestions, err = s.groups.GetSettlementSuggestions(ctx, as(alice, &pb.GetSettlementSuggestionsRequest{GroupId: g.Id}))
	require.NoError(t, err)
	assert.Empty(t, suggestions.Msg.Transfers)

	settlements, err := s.groups.ListSettlements(ctx, as(alice, &pb.ListSettlementsRequest{GroupId: g.Id}))
	require.NoError(t, err)
	assert.Len(t, settlements.Msg.Settlements, 1)

	splits, err := s.groups.ListSplits(ctx, as(alice, &pb.ListSplitsRequest{GroupId: g.Id}))
	require.NoError(t, err)
	require.Len(t, splits.Msg.Splits, 1)
	assert.Equal(t, "active", splits.Msg.Splits[0].ApprovalStatus)
}

func TestSharedExpenseErrors(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	alice := s.register(t, "alice@example.com")
	bob := s.register(t, "bob@example.com")

	created, err := s.groups.CreateGroup(ctx, as(alice, &pb.CreateGroupRequest{
		Name: "Flat", Currency: "USD", PartyIds: []string{bob.userID},
	}))
	require.NoError(t, err)
	g := created.Msg.Group
	a, b := memberFor(t, g, alice.userID), memberFor(t, g, bob.userID)

	expense := func(mut func(*pb.CreateSharedExpenseRequest)) error {
		req := &pb.CreateSharedExpenseRequest{
			GroupId:        g.Id,
			Description:    "Power",
			TotalAmount:    "100",
			Payers:         []*pb.Allocation{{MemberId: a, Amount: "100"}},
			ParticipantIds: []string{a, b},
		}
		mut(req)
		_, err := s.groups.CreateSharedExpense(ctx, as(alice, req))
		return err
	}

	tests := []struct {
		name string
		err  error
		want connect.Code
	}{
		{"payers short of total", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.Payers = []*pb.Allocation{{MemberId: a, Amount: "90"}}
		}), connect.CodeInvalidArgument},
		{"custom shares do not add up", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.SplitType = "custom"
			r.CustomShares = []*pb.Allocation{{MemberId: a, Amount: "60"}, {MemberId: b, Amount: "30"}}
		}), connect.CodeInvalidArgument},
		{"custom share listed twice", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.SplitType = "custom"
			r.CustomShares = []*pb.Allocation{{MemberId: a, Amount: "50"}, {MemberId: a, Amount: "50"}}
		}), connect.CodeInvalidArgument},
		{"bad amount", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.TotalAmount = "ten"
		}), connect.CodeInvalidArgument},
		{"payer amount past the maximum", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.Payers = []*pb.Allocation{{MemberId: a, Amount: "10000000000000.01"}, {MemberId: b, Amount: "100"}}
		}), connect.CodeInvalidArgument},
		{"unknown payer", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.Payers = []*pb.Allocation{{MemberId: "stranger", Amount: "100"}}
		}), connect.CodeNotFound},
		{"unknown group", expense(func(r *pb.CreateSharedExpenseRequest) {
			r.GroupId = "missing"
		}), connect.CodeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.want, tt.err)
		})
	}

	t.Run("rejected split cannot be approved", func(t *testing.T) {
		split, err := s.groups.CreateSharedExpense(ctx, as(alice, &pb.CreateSharedExpenseRequest{
			GroupId:        g.Id,
			Description:    "Internet",
			TotalAmount:    "40",
			Payers:         []*pb.Allocation{{MemberId: a, Amount: "40"}},
			ParticipantIds: []string{a, b},
		}))
		require.NoError(t, err)

		_, err = s.groups.RejectSharedExpense(ctx, as(bob, &pb.RejectSharedExpenseRequest{
			SplitId: split.Msg.Split.Id,
			Reason:  "not my plan",
		}))
		require.NoError(t, err)

		_, err = s.groups.ApproveSharedExpense(ctx, as(bob, &pb.ApproveSharedExpenseRequest{SplitId: split.Msg.Split.Id}))
		requireCode(t, connect.CodeAborted, err)
	})
}
