package ledger

import (
	"context"
	"strings"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/notify"
)

// SplitInput describes a new shared expense. Member references are group
// member IDs.
type SplitInput struct {
	Description string
	Total       money.Amount
	Payers      []models.Allocation
	// Participants owe a share, in the order shares are assigned.
	Participants []string
	SplitType    models.SplitType
	// CustomShares is required for custom splits and must be empty otherwise.
	CustomShares map[string]money.Amount
}

// CreateGroup creates a group in currency. actor is always a member; other
// members are real users or actor's own contacts.
func (e *Engine) CreateGroup(ctx context.Context, actor, name, currency string, partyIDs []string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validation("group name is required")
	}
	if err := money.ValidateCurrency(currency); err != nil {
		return nil, apperr.Validation("%v", err)
	}

	ids := []string{actor}
	seen := map[string]bool{actor: true}
	for _, id := range partyIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}

	group := &models.Group{
		Name:      name,
		Currency:  currency,
		CreatedBy: actor,
		CreatedAt: e.now().Unix(),
	}
	err := e.run(ctx, "create_group", func(u *unit) error {
		for _, id := range ids {
			p, err := u.tx.ResolveParty(ctx, id)
			if err != nil {
				return err
			}
			if !p.IsReal() && p.OwnerID != actor {
				return apperr.Unauthorized("contact %s belongs to another user", id)
			}
			group.Members = append(group.Members, models.Member{
				PartyID:     p.ID,
				Kind:        p.Kind,
				DisplayName: p.DisplayName,
			})
		}
		if err := u.tx.CreateGroup(ctx, group); err != nil {
			return err
		}
		u.transition("group", "create")
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Created group", "group_id", group.ID, "actor", actor, "members", len(group.Members))
	return group, nil
}

// GetGroup returns a group actor belongs to.
func (e *Engine) GetGroup(ctx context.Context, actor, groupID string) (*models.Group, error) {
	g, err := e.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := memberOf(g, actor); err != nil {
		return nil, err
	}
	return g, nil
}

// ListGroups lists the groups actor belongs to.
func (e *Engine) ListGroups(ctx context.Context, actor string) ([]*models.Group, error) {
	return e.store.ListGroupsForParty(ctx, actor)
}

// CreateSharedExpense records a split in a group. It is active at once unless
// another real user takes part, in which case each of them must approve it.
func (e *Engine) CreateSharedExpense(ctx context.Context, actor, groupID string, in SplitInput) (*models.Split, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return nil, apperr.Validation("description is required")
	}
	if in.Total <= 0 {
		return nil, apperr.Validation("total amount must be positive")
	}

	var split *models.Split
	err := e.run(ctx, "create_shared_expense", func(u *unit) error {
		g, err := u.tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if _, err := memberOf(g, actor); err != nil {
			return err
		}

		split, err = buildSplit(g, actor, in)
		if err != nil {
			return err
		}
		split.CreatedAt = e.now().Unix()
		if err := u.tx.CreateSplit(ctx, split); err != nil {
			return err
		}

		u.transition("split", "create")
		for _, a := range split.Approvals {
			if err := u.notifyID(ctx, a.PartyID, notify.SplitApprovalRequest, splitPayload(split)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Created shared expense",
		"split_id", split.ID, "group_id", groupID, "actor", actor, "status", split.ApprovalStatus)
	return split, nil
}

// buildSplit validates in against g and computes shares and approvals.
func buildSplit(g *models.Group, actor string, in SplitInput) (*models.Split, error) {
	if len(in.Payers) == 0 {
		return nil, apperr.Validation("at least one payer is required")
	}
	if err := money.CheckRange(in.Total); err != nil {
		return nil, apperr.Validation("%v", err)
	}
	var paid money.Amount
	seen := make(map[string]bool, len(in.Payers))
	for _, p := range in.Payers {
		if _, ok := g.Member(p.MemberID); !ok {
			return nil, apperr.NotFound("member", p.MemberID)
		}
		if seen[p.MemberID] {
			return nil, apperr.Validation("payer %s is listed twice", p.MemberID)
		}
		seen[p.MemberID] = true
		if p.Amount <= 0 {
			return nil, apperr.Validation("payer amounts must be positive")
		}
		// Bounded by the total, so the running sum cannot wrap.
		if p.Amount > in.Total-paid {
			return nil, apperr.Validation("payers paid more than %s", in.Total.Format(g.Currency))
		}
		paid += p.Amount
	}
	if paid != in.Total {
		return nil, apperr.Validation("payers paid %s, expected %s", paid.Format(g.Currency), in.Total.Format(g.Currency))
	}

	for _, id := range in.Participants {
		if _, ok := g.Member(id); !ok {
			return nil, apperr.NotFound("member", id)
		}
	}

	var (
		shares []calculator.Share
		err    error
	)
	switch in.SplitType {
	case models.SplitEqual, "":
		if len(in.CustomShares) > 0 {
			return nil, apperr.Validation("custom shares are only allowed for custom splits")
		}
		in.SplitType = models.SplitEqual
		shares, err = calculator.EqualShares(in.Total, in.Participants)
	case models.SplitCustom:
		shares, err = calculator.CustomShares(in.Total, in.Participants, in.CustomShares)
	default:
		return nil, apperr.Validation("unknown split type %q", in.SplitType)
	}
	if err != nil {
		return nil, apperr.Validation("%v", err)
	}

	s := &models.Split{
		GroupID:        g.ID,
		CreatedBy:      actor,
		Description:    in.Description,
		TotalAmount:    in.Total,
		Currency:       g.Currency,
		Payers:         append([]models.Allocation(nil), in.Payers...),
		SplitType:      in.SplitType,
		ApprovalStatus: models.ApprovalActive,
	}
	for _, sh := range shares {
		s.Participants = append(s.Participants, models.Allocation{MemberID: sh.MemberID, Amount: sh.Amount})

		m, _ := g.Member(sh.MemberID)
		if m.Kind == models.PartyReal && m.PartyID != actor {
			s.Approvals = append(s.Approvals, models.SplitApproval{
				MemberID: m.ID,
				PartyID:  m.PartyID,
				Status:   models.ApprovalPendingValidation,
			})
		}
	}
	if len(s.Approvals) > 0 {
		s.ApprovalStatus = models.ApprovalPendingValidation
	}
	return s, nil
}

// ApproveSharedExpense records actor's approval. approved reports whether the
// split became active; pending is the number of approvals still missing.
func (e *Engine) ApproveSharedExpense(ctx context.Context, actor, splitID string) (approved bool, pending int, err error) {
	err = e.run(ctx, "approve_shared_expense", func(u *unit) error {
		s, a, err := u.pendingApproval(ctx, actor, splitID)
		if err != nil {
			return err
		}
		a.Status = models.ApprovalApproved
		a.RespondedAt = e.now().Unix()

		pending = s.PendingApprovals()
		if pending == 0 {
			s.ApprovalStatus = models.ApprovalActive
			approved = true
		}
		if err := u.tx.UpdateSplit(ctx, s); err != nil {
			return err
		}

		u.transition("split", "approve")
		if approved {
			u.transition("split", "activate")
			return u.notifyID(ctx, s.CreatedBy, notify.SplitApproved, splitPayload(s))
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return approved, pending, nil
}

// RejectSharedExpense rejects a split pending actor's approval. One rejection
// rejects the whole split.
func (e *Engine) RejectSharedExpense(ctx context.Context, actor, splitID, reason string) error {
	return e.run(ctx, "reject_shared_expense", func(u *unit) error {
		s, a, err := u.pendingApproval(ctx, actor, splitID)
		if err != nil {
			return err
		}
		a.Status = models.ApprovalRejected
		a.Reason = strings.TrimSpace(reason)
		a.RespondedAt = e.now().Unix()
		s.ApprovalStatus = models.ApprovalRejected

		if err := u.tx.UpdateSplit(ctx, s); err != nil {
			return err
		}

		u.transition("split", "reject")
		payload := splitPayload(s)
		if a.Reason != "" {
			payload["reason"] = a.Reason
		}
		return u.notifyID(ctx, s.CreatedBy, notify.SplitRejected, payload)
	})
}

// pendingApproval loads a split awaiting validation and actor's undecided
// approval entry on it.
func (u *unit) pendingApproval(ctx context.Context, actor, splitID string) (*models.Split, *models.SplitApproval, error) {
	s, err := u.tx.GetSplit(ctx, splitID)
	if err != nil {
		return nil, nil, err
	}
	a, ok := s.Approval(actor)
	if !ok {
		return nil, nil, apperr.Unauthorized("%s is not asked to approve split %s", actor, splitID)
	}
	if s.ApprovalStatus != models.ApprovalPendingValidation {
		return nil, nil, apperr.Conflict("split %s is %s", splitID, s.ApprovalStatus)
	}
	if a.Status != models.ApprovalPendingValidation {
		return nil, nil, apperr.Conflict("%s already answered split %s", actor, splitID)
	}
	return s, a, nil
}

// MarkSplitSettled takes an active split out of the group balances. Only one
// of its payers may do so.
func (e *Engine) MarkSplitSettled(ctx context.Context, actor, splitID string) (*models.Split, error) {
	var out *models.Split
	err := e.run(ctx, "mark_split_settled", func(u *unit) error {
		s, err := u.tx.GetSplit(ctx, splitID)
		if err != nil {
			return err
		}
		g, err := u.tx.GetGroup(ctx, s.GroupID)
		if err != nil {
			return err
		}
		m, err := memberOf(g, actor)
		if err != nil {
			return err
		}
		if !s.IsPayer(m.ID) {
			return apperr.Unauthorized("only a payer can settle split %s", splitID)
		}
		if s.ApprovalStatus != models.ApprovalActive {
			return apperr.Conflict("split %s is %s", splitID, s.ApprovalStatus)
		}
		if s.Settled {
			return apperr.Conflict("split %s is already settled", splitID)
		}

		s.Settled = true
		if err := u.tx.UpdateSplit(ctx, s); err != nil {
			return err
		}
		u.transition("split", "settle")
		out = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListSplits lists every split in a group actor belongs to, oldest first.
func (e *Engine) ListSplits(ctx context.Context, actor, groupID string) ([]*models.Split, error) {
	if _, err := e.GetGroup(ctx, actor, groupID); err != nil {
		return nil, err
	}
	return e.store.ListGroupSplits(ctx, groupID)
}

// RecordSettlement appends a transfer between two members of a group.
func (e *Engine) RecordSettlement(ctx context.Context, actor, groupID, fromMemberID, toMemberID string, amount money.Amount, note string) (*models.Settlement, error) {
	if amount <= 0 {
		return nil, apperr.Validation("settlement amount must be positive")
	}
	if err := money.CheckRange(amount); err != nil {
		return nil, apperr.Validation("%v", err)
	}
	if fromMemberID == toMemberID {
		return nil, apperr.Validation("a member cannot settle with themselves")
	}

	var out *models.Settlement
	err := e.run(ctx, "record_settlement", func(u *unit) error {
		g, err := u.tx.GetGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if _, err := memberOf(g, actor); err != nil {
			return err
		}
		from, ok := g.Member(fromMemberID)
		if !ok {
			return apperr.NotFound("member", fromMemberID)
		}
		to, ok := g.Member(toMemberID)
		if !ok {
			return apperr.NotFound("member", toMemberID)
		}

		out = &models.Settlement{
			GroupID:      groupID,
			FromMemberID: from.ID,
			ToMemberID:   to.ID,
			Amount:       amount,
			Currency:     g.Currency,
			CreatedAt:    e.now().Unix(),
			CreatedBy:    actor,
			Note:         strings.TrimSpace(note),
		}
		if err := u.tx.CreateSettlement(ctx, out); err != nil {
			return err
		}

		u.transition("settlement", "record")
		payload := map[string]string{
			"group_id":      groupID,
			"settlement_id": out.ID,
			"amount":        amount.Format(g.Currency),
			"currency":      g.Currency,
		}
		for _, m := range []*models.Member{from, to} {
			if m.Kind == models.PartyReal && m.PartyID != actor {
				u.notes = append(u.notes, notify.Notification{PartyID: m.PartyID, Kind: notify.SettlementRecorded, Payload: payload})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.InfoContext(ctx, "Recorded settlement", "settlement_id", out.ID, "group_id", groupID, "actor", actor)
	return out, nil
}

// ListSettlements lists a group's settlements, newest first.
func (e *Engine) ListSettlements(ctx context.Context, actor, groupID string) ([]*models.Settlement, error) {
	if _, err := e.GetGroup(ctx, actor, groupID); err != nil {
		return nil, err
	}
	return e.store.ListSettlements(ctx, groupID)
}

// GetGroupBalances computes each member's net position from the group's
// active, unsettled splits and its settlements. Nets sum to zero.
func (e *Engine) GetGroupBalances(ctx context.Context, actor, groupID string) ([]calculator.MemberBalance, error) {
	var out []calculator.MemberBalance
	err := e.run(ctx, "group_balances", func(u *unit) error {
		var err error
		out, err = u.groupBalances(ctx, actor, groupID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSettlementSuggestions proposes transfers that zero every member's net
// balance in the group.
func (e *Engine) GetSettlementSuggestions(ctx context.Context, actor, groupID string) ([]calculator.Transfer, error) {
	var out []calculator.Transfer
	err := e.run(ctx, "settlement_suggestions", func(u *unit) error {
		balances, err := u.groupBalances(ctx, actor, groupID)
		if err != nil {
			return err
		}
		out, err = calculator.SuggestSettlements(calculator.NetBalances(balances))
		if err != nil {
			return apperr.Invariant("group %s: %v", groupID, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *unit) groupBalances(ctx context.Context, actor, groupID string) ([]calculator.MemberBalance, error) {
	g, err := u.tx.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if _, err := memberOf(g, actor); err != nil {
		return nil, err
	}
	splits, err := u.tx.ListGroupSplits(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := u.tx.ListSettlements(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members := make([]string, len(g.Members))
	for i, m := range g.Members {
		members[i] = m.ID
	}

	var inputs []calculator.SplitForBalance
	for _, s := range splits {
		if !s.CountsTowardBalances() {
			continue
		}
		inputs = append(inputs, calculator.SplitForBalance{
			Payers:       toShares(s.Payers),
			Participants: toShares(s.Participants),
		})
	}
	transfers := make([]calculator.SettlementForBalance, len(settlements))
	for i, s := range settlements {
		transfers[i] = calculator.SettlementForBalance{
			FromMemberID: s.FromMemberID,
			ToMemberID:   s.ToMemberID,
			Amount:       s.Amount,
		}
	}

	balances, err := calculator.CalculateGroupBalances(members, inputs, transfers)
	if err != nil {
		return nil, apperr.Invariant("group %s: %v", groupID, err)
	}
	return balances, nil
}

func toShares(allocs []models.Allocation) []calculator.Share {
	shares := make([]calculator.Share, len(allocs))
	for i, a := range allocs {
		shares[i] = calculator.Share{MemberID: a.MemberID, Amount: a.Amount}
	}
	return shares
}

// memberOf returns actor's member entry in g.
func memberOf(g *models.Group, actor string) (*models.Member, error) {
	m, ok := g.MemberForParty(actor)
	if !ok {
		return nil, apperr.Unauthorized("%s is not a member of group %s", actor, g.ID)
	}
	return m, nil
}

func splitPayload(s *models.Split) map[string]string {
	return map[string]string{
		"split_id":    s.ID,
		"group_id":    s.GroupID,
		"amount":      s.TotalAmount.Format(s.Currency),
		"currency":    s.Currency,
		"description": s.Description,
	}
}
