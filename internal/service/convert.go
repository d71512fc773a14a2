package service

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

func parseAmount(field, s, currency string) (money.Amount, error) {
	if err := money.ValidateCurrency(currency); err != nil {
		return 0, invalid("%v", err)
	}
	a, err := money.Parse(s, currency)
	if err != nil {
		return 0, invalid("%s: %v", field, err)
	}
	return a, nil
}

// parseDate reads an optional calendar date. Nil means unset; any time of
// day is dropped and the UTC date is kept.
func parseDate(field string, ts *timestamppb.Timestamp) (*time.Time, error) {
	if ts == nil {
		return nil, nil
	}
	if err := ts.CheckValid(); err != nil {
		return nil, invalid("%s: %v", field, err)
	}
	t := ts.AsTime()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

func toDate(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// toTimestamp converts a stored Unix time. Zero means unset.
func toTimestamp(unix int64) *timestamppb.Timestamp {
	if unix == 0 {
		return nil
	}
	return timestamppb.New(time.Unix(unix, 0))
}

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   toTimestamp(u.CreatedAt),
	}
}

func toProtoContact(c *models.Contact) *pb.Contact {
	return &pb.Contact{Id: c.ID, Name: c.Name, CreatedAt: toTimestamp(c.CreatedAt)}
}

func toProtoDebt(d *models.Debt) *pb.Debt {
	if d == nil {
		return nil
	}
	out := &pb.Debt{
		Id:                    d.ID,
		CreatedBy:             d.CreatedBy,
		DebtorId:              d.DebtorID,
		CreditorId:            d.CreditorID,
		TotalAmount:           d.TotalAmount.Format(d.Currency),
		InstallmentAmount:     d.InstallmentAmount.Format(d.Currency),
		Currency:              d.Currency,
		Description:           d.Description,
		Category:              d.Category,
		InstallmentCount:      int32(d.InstallmentCount),
		PaidInstallmentsCount: int32(d.PaidInstallmentsCount),
		Cadence:               string(d.Cadence),
		PurchaseDate:          toDate(d.PurchaseDate),
		DueDate:               toDate(d.DueDate),
		Status:                string(d.Status),
		LinkedAccountId:       d.LinkedAccountID,
		PaidByCreditor:        d.PaidByCreditor,
		DebtorConfirmedPaid:   d.DebtorConfirmedPaid,
		Outstanding:           ledger.Outstanding(d).Format(d.Currency),
		Version:               d.Version,
		CreatedAt:             toTimestamp(d.CreatedAt),
		UpdatedAt:             toTimestamp(d.UpdatedAt),
	}
	for _, inst := range d.Installments {
		out.Installments = append(out.Installments, &pb.Installment{
			Id:       inst.ID,
			Sequence: int32(inst.Sequence),
			Amount:   inst.Amount.Format(d.Currency),
			DueDate:  timestamppb.New(inst.DueDate),
			Paid:     inst.Paid,
			PaidAt:   toDate(inst.PaidAt),
		})
	}
	return out
}

func toProtoDebts(debts []*models.Debt) []*pb.Debt {
	out := make([]*pb.Debt, 0, len(debts))
	for _, d := range debts {
		out = append(out, toProtoDebt(d))
	}
	return out
}

// toProtoChangeRequest renders the stored mutation as the JSON payload.
// Amounts in the payload stay in minor units.
func toProtoChangeRequest(r *models.ChangeRequest) (*pb.ChangeRequest, error) {
	if r == nil {
		return nil, nil
	}
	payload, err := models.EncodeMutation(r.Mutation)
	if err != nil {
		return nil, err
	}
	return &pb.ChangeRequest{
		Id:              r.ID,
		DebtId:          r.DebtID,
		Kind:            string(r.Kind()),
		RequestedBy:     r.RequestedBy,
		TargetApprover:  r.TargetApprover,
		Payload:         payload,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ResponseMessage: r.ResponseMessage,
		CreatedAt:       toTimestamp(r.CreatedAt),
		ResolvedAt:      toTimestamp(r.ResolvedAt),
	}, nil
}

func toProtoMutationResponse(res *ledger.MutationResult) (*pb.DebtMutationResponse, error) {
	req, err := toProtoChangeRequest(res.Request)
	if err != nil {
		return nil, err
	}
	return &pb.DebtMutationResponse{Debt: toProtoDebt(res.Debt), ChangeRequest: req}, nil
}

func toProtoGroup(g *models.Group) *pb.Group {
	out := &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		CreatedBy: g.CreatedBy,
		Members:   make([]*pb.Member, 0, len(g.Members)),
		CreatedAt: toTimestamp(g.CreatedAt),
	}
	for _, m := range g.Members {
		out.Members = append(out.Members, &pb.Member{
			Id:          m.ID,
			PartyId:     m.PartyID,
			Kind:        string(m.Kind),
			DisplayName: m.DisplayName,
		})
	}
	return out
}

func toProtoAllocations(allocs []models.Allocation, currency string) []*pb.Allocation {
	out := make([]*pb.Allocation, 0, len(allocs))
	for _, a := range allocs {
		out = append(out, &pb.Allocation{MemberId: a.MemberID, Amount: a.Amount.Format(currency)})
	}
	return out
}

func toProtoSplit(s *models.Split) *pb.Split {
	out := &pb.Split{
		Id:             s.ID,
		GroupId:        s.GroupID,
		CreatedBy:      s.CreatedBy,
		Description:    s.Description,
		TotalAmount:    s.TotalAmount.Format(s.Currency),
		Currency:       s.Currency,
		Payers:         toProtoAllocations(s.Payers, s.Currency),
		Participants:   toProtoAllocations(s.Participants, s.Currency),
		SplitType:      string(s.SplitType),
		ApprovalStatus: string(s.ApprovalStatus),
		Settled:        s.Settled,
		CreatedAt:      toTimestamp(s.CreatedAt),
	}
	for _, a := range s.Approvals {
		out.Approvals = append(out.Approvals, &pb.SplitApproval{
			MemberId:    a.MemberID,
			PartyId:     a.PartyID,
			Status:      string(a.Status),
			Reason:      a.Reason,
			RespondedAt: toTimestamp(a.RespondedAt),
		})
	}
	return out
}

func toProtoSettlement(s *models.Settlement) *pb.Settlement {
	return &pb.Settlement{
		Id:           s.ID,
		GroupId:      s.GroupID,
		FromMemberId: s.FromMemberID,
		ToMemberId:   s.ToMemberID,
		Amount:       s.Amount.Format(s.Currency),
		Currency:     s.Currency,
		Note:         s.Note,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    toTimestamp(s.CreatedAt),
	}
}

func toProtoMemberBalances(balances []calculator.MemberBalance, currency string) []*pb.MemberBalance {
	out := make([]*pb.MemberBalance, 0, len(balances))
	for _, b := range balances {
		out = append(out, &pb.MemberBalance{
			MemberId:   b.MemberID,
			NetBalance: b.NetBalance.Format(currency),
			TotalPaid:  b.TotalPaid.Format(currency),
			TotalOwed:  b.TotalOwed.Format(currency),
		})
	}
	return out
}

func toProtoTransfers(transfers []calculator.Transfer, currency string) []*pb.Transfer {
	out := make([]*pb.Transfer, 0, len(transfers))
	for _, t := range transfers {
		out = append(out, &pb.Transfer{FromMemberId: t.From, ToMemberId: t.To, Amount: t.Amount.Format(currency)})
	}
	return out
}
