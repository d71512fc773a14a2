package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// GroupService implements the Connect GroupService: groups, shared expenses
// and settlements. Amounts are read in the group's currency.
type GroupService struct {
	engine *ledger.Engine
	logger *slog.Logger
}

// NewGroupService creates a new GroupService over engine.
func NewGroupService(engine *ledger.Engine, logger *slog.Logger) *GroupService {
	return &GroupService{engine: engine, logger: logger}
}

// CreateGroup creates a new group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.GroupResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "CreateGroup request received",
		"name", req.Msg.Name,
		"members_count", len(req.Msg.PartyIds),
	)

	g, err := s.engine.CreateGroup(ctx, actor, req.Msg.Name, req.Msg.Currency, req.Msg.PartyIds)
	if err != nil {
		return nil, fail(ctx, s.logger, "CreateGroup", err)
	}
	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(g)}), nil
}

// GetGroup retrieves a group the caller belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GroupResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.engine.GetGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetGroup", err)
	}
	return connect.NewResponse(&pb.GroupResponse{Group: toProtoGroup(g)}), nil
}

// ListGroups retrieves the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, _ *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	groups, err := s.engine.ListGroups(ctx, actor)
	if err != nil {
		return nil, fail(ctx, s.logger, "ListGroups", err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// CreateSharedExpense records a split. Payers must cover the total exactly.
func (s *GroupService) CreateSharedExpense(ctx context.Context, req *connect.Request[pb.CreateSharedExpenseRequest]) (*connect.Response[pb.SplitResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	s.logger.InfoContext(ctx, "CreateSharedExpense request received",
		"group_id", msg.GroupId,
		"participants", len(msg.ParticipantIds),
		"split_type", msg.SplitType,
	)

	g, err := s.engine.GetGroup(ctx, actor, msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "CreateSharedExpense", err)
	}

	total, err := parseAmount("total_amount", msg.TotalAmount, g.Currency)
	if err != nil {
		return nil, err
	}
	payers, err := parseAllocations("payers", msg.Payers, g.Currency)
	if err != nil {
		return nil, err
	}

	splitType := models.SplitType(msg.SplitType)
	if splitType == "" {
		splitType = models.SplitEqual
	}
	in := ledger.SplitInput{
		Description:  msg.Description,
		Total:        total,
		Payers:       payers,
		Participants: msg.ParticipantIds,
		SplitType:    splitType,
	}
	if len(msg.CustomShares) > 0 {
		shares, err := parseAllocations("custom_shares", msg.CustomShares, g.Currency)
		if err != nil {
			return nil, err
		}
		in.CustomShares = make(map[string]money.Amount, len(shares))
		for _, sh := range shares {
			if _, dup := in.CustomShares[sh.MemberID]; dup {
				return nil, invalid("custom_shares: member %s is listed twice", sh.MemberID)
			}
			in.CustomShares[sh.MemberID] = sh.Amount
		}
	}

	split, err := s.engine.CreateSharedExpense(ctx, actor, msg.GroupId, in)
	if err != nil {
		return nil, fail(ctx, s.logger, "CreateSharedExpense", err)
	}
	return connect.NewResponse(&pb.SplitResponse{Split: toProtoSplit(split)}), nil
}

func parseAllocations(field string, in []*pb.Allocation, currency string) ([]models.Allocation, error) {
	out := make([]models.Allocation, 0, len(in))
	for _, a := range in {
		amount, err := parseAmount(field, a.Amount, currency)
		if err != nil {
			return nil, err
		}
		out = append(out, models.Allocation{MemberID: a.MemberId, Amount: amount})
	}
	return out, nil
}

func (s *GroupService) ApproveSharedExpense(ctx context.Context, req *connect.Request[pb.ApproveSharedExpenseRequest]) (*connect.Response[pb.ApproveSharedExpenseResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	approved, pending, err := s.engine.ApproveSharedExpense(ctx, actor, req.Msg.SplitId)
	if err != nil {
		return nil, fail(ctx, s.logger, "ApproveSharedExpense", err)
	}
	return connect.NewResponse(&pb.ApproveSharedExpenseResponse{Approved: approved, PendingCount: int32(pending)}), nil
}

func (s *GroupService) RejectSharedExpense(ctx context.Context, req *connect.Request[pb.RejectSharedExpenseRequest]) (*connect.Response[pb.RejectSharedExpenseResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.engine.RejectSharedExpense(ctx, actor, req.Msg.SplitId, req.Msg.Reason); err != nil {
		return nil, fail(ctx, s.logger, "RejectSharedExpense", err)
	}
	return connect.NewResponse(&pb.RejectSharedExpenseResponse{}), nil
}

func (s *GroupService) MarkSplitSettled(ctx context.Context, req *connect.Request[pb.MarkSplitSettledRequest]) (*connect.Response[pb.SplitResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	split, err := s.engine.MarkSplitSettled(ctx, actor, req.Msg.SplitId)
	if err != nil {
		return nil, fail(ctx, s.logger, "MarkSplitSettled", err)
	}
	return connect.NewResponse(&pb.SplitResponse{Split: toProtoSplit(split)}), nil
}

func (s *GroupService) ListSplits(ctx context.Context, req *connect.Request[pb.ListSplitsRequest]) (*connect.Response[pb.ListSplitsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	splits, err := s.engine.ListSplits(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "ListSplits", err)
	}

	out := make([]*pb.Split, len(splits))
	for i, sp := range splits {
		out[i] = toProtoSplit(sp)
	}
	return connect.NewResponse(&pb.ListSplitsResponse{Splits: out}), nil
}

// RecordSettlement records a payment from one member to another.
func (s *GroupService) RecordSettlement(ctx context.Context, req *connect.Request[pb.RecordSettlementRequest]) (*connect.Response[pb.RecordSettlementResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg
	s.logger.InfoContext(ctx, "RecordSettlement request received",
		"group_id", msg.GroupId,
		"from", msg.FromMemberId,
		"to", msg.ToMemberId,
		"amount", msg.Amount,
	)

	g, err := s.engine.GetGroup(ctx, actor, msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "RecordSettlement", err)
	}
	amount, err := parseAmount("amount", msg.Amount, g.Currency)
	if err != nil {
		return nil, err
	}

	st, err := s.engine.RecordSettlement(ctx, actor, msg.GroupId, msg.FromMemberId, msg.ToMemberId, amount, msg.Note)
	if err != nil {
		return nil, fail(ctx, s.logger, "RecordSettlement", err)
	}
	return connect.NewResponse(&pb.RecordSettlementResponse{Settlement: toProtoSettlement(st)}), nil
}

func (s *GroupService) ListSettlements(ctx context.Context, req *connect.Request[pb.ListSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	settlements, err := s.engine.ListSettlements(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "ListSettlements", err)
	}

	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toProtoSettlement(st)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}

// GetGroupBalances calculates net balances for all members of a group.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.engine.GetGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetGroupBalances", err)
	}
	balances, err := s.engine.GetGroupBalances(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetGroupBalances", err)
	}

	s.logger.InfoContext(ctx, "GetGroupBalances successful", "group_id", g.ID, "members", len(balances))
	return connect.NewResponse(&pb.GetGroupBalancesResponse{
		Currency: g.Currency,
		Balances: toProtoMemberBalances(balances, g.Currency),
	}), nil
}

// GetSettlementSuggestions proposes transfers that settle the group.
func (s *GroupService) GetSettlementSuggestions(ctx context.Context, req *connect.Request[pb.GetSettlementSuggestionsRequest]) (*connect.Response[pb.GetSettlementSuggestionsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	g, err := s.engine.GetGroup(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetSettlementSuggestions", err)
	}
	transfers, err := s.engine.GetSettlementSuggestions(ctx, actor, req.Msg.GroupId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetSettlementSuggestions", err)
	}
	return connect.NewResponse(&pb.GetSettlementSuggestionsResponse{
		Currency:  g.Currency,
		Transfers: toProtoTransfers(transfers, g.Currency),
	}), nil
}
