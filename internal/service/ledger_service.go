package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

// LedgerService exposes debts, contacts, balances and change requests. The
// acting party is always the authenticated user.
type LedgerService struct {
	engine *ledger.Engine
	logger *slog.Logger
}

// NewLedgerService creates a LedgerService over engine.
func NewLedgerService(engine *ledger.Engine, logger *slog.Logger) *LedgerService {
	return &LedgerService{engine: engine, logger: logger}
}

func actorFrom(ctx context.Context) (string, error) {
	id := middleware.GetUserID(ctx)
	if id == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return id, nil
}

func (s *LedgerService) CreateContact(ctx context.Context, req *connect.Request[pb.CreateContactRequest]) (*connect.Response[pb.CreateContactResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.engine.CreateContact(ctx, actor, req.Msg.Name)
	if err != nil {
		return nil, fail(ctx, s.logger, "CreateContact", err)
	}
	return connect.NewResponse(&pb.CreateContactResponse{Contact: toProtoContact(c)}), nil
}

func (s *LedgerService) ListContacts(ctx context.Context, _ *connect.Request[pb.ListContactsRequest]) (*connect.Response[pb.ListContactsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	contacts, err := s.engine.ListContacts(ctx, actor)
	if err != nil {
		return nil, fail(ctx, s.logger, "ListContacts", err)
	}
	out := make([]*pb.Contact, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, toProtoContact(c))
	}
	return connect.NewResponse(&pb.ListContactsResponse{Contacts: out}), nil
}

// CreateDebt records a debt. When the counterparty is a real user the
// response carries the pending change request instead of the debt.
func (s *LedgerService) CreateDebt(ctx context.Context, req *connect.Request[pb.CreateDebtRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	amount, err := parseAmount("amount", msg.Amount, msg.Currency)
	if err != nil {
		return nil, err
	}
	purchase, err := parseDate("purchase_date", msg.PurchaseDate)
	if err != nil {
		return nil, err
	}
	due, err := parseDate("due_date", msg.DueDate)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.CreateDebt(ctx, actor, models.DebtDraft{
		DebtorID:         msg.DebtorId,
		CreditorID:       msg.CreditorId,
		Amount:           amount,
		Currency:         msg.Currency,
		Description:      msg.Description,
		Category:         msg.Category,
		InstallmentCount: int(msg.InstallmentCount),
		Cadence:          money.Cadence(msg.Cadence),
		PurchaseDate:     purchase,
		DueDate:          due,
		LinkedAccountID:  msg.LinkedAccountId,
	}, msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "CreateDebt", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) mutationResponse(ctx context.Context, res *ledger.MutationResult) (*connect.Response[pb.DebtMutationResponse], error) {
	out, err := toProtoMutationResponse(res)
	if err != nil {
		return nil, fail(ctx, s.logger, "Encode mutation", err)
	}
	return connect.NewResponse(out), nil
}

func (s *LedgerService) GetDebt(ctx context.Context, req *connect.Request[pb.GetDebtRequest]) (*connect.Response[pb.DebtResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.engine.GetDebt(ctx, actor, req.Msg.DebtId)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetDebt", err)
	}
	return connect.NewResponse(&pb.DebtResponse{Debt: toProtoDebt(d)}), nil
}

func (s *LedgerService) ListDebts(ctx context.Context, req *connect.Request[pb.ListDebtsRequest]) (*connect.Response[pb.ListDebtsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.engine.ListDebts(ctx, actor, models.DebtRole(req.Msg.Role), models.DebtStatus(req.Msg.Status))
	if err != nil {
		return nil, fail(ctx, s.logger, "ListDebts", err)
	}
	return connect.NewResponse(&pb.ListDebtsResponse{Debts: toProtoDebts(debts)}), nil
}

func (s *LedgerService) UpdateDebt(ctx context.Context, req *connect.Request[pb.UpdateDebtRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	msg := req.Msg

	m := models.UpdateDebtMutation{
		Description:     msg.Description,
		Category:        msg.Category,
		LinkedAccountID: msg.LinkedAccountId,
	}
	if msg.InstallmentCount != nil {
		n := int(*msg.InstallmentCount)
		m.InstallmentCount = &n
	}
	if msg.Amount != nil {
		// Amounts are read in the debt's own currency.
		d, err := s.engine.GetDebt(ctx, actor, msg.DebtId)
		if err != nil {
			return nil, fail(ctx, s.logger, "UpdateDebt", err)
		}
		amount, err := parseAmount("amount", *msg.Amount, d.Currency)
		if err != nil {
			return nil, err
		}
		m.Amount = &amount
	}
	due, err := parseDate("due_date", msg.DueDate)
	if err != nil {
		return nil, err
	}
	m.DueDate = due

	res, err := s.engine.UpdateDebt(ctx, actor, msg.DebtId, m, msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "UpdateDebt", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) DeleteDebt(ctx context.Context, req *connect.Request[pb.DeleteDebtRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.DeleteDebt(ctx, actor, req.Msg.DebtId, req.Msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "DeleteDebt", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) RespondToDebt(ctx context.Context, req *connect.Request[pb.RespondToDebtRequest]) (*connect.Response[pb.DebtResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.engine.RespondToDebt(ctx, actor, req.Msg.DebtId, req.Msg.Accept)
	if err != nil {
		return nil, fail(ctx, s.logger, "RespondToDebt", err)
	}
	return connect.NewResponse(&pb.DebtResponse{Debt: toProtoDebt(d)}), nil
}

func (s *LedgerService) ReconsiderDebt(ctx context.Context, req *connect.Request[pb.ReconsiderDebtRequest]) (*connect.Response[pb.DebtResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.engine.ReconsiderDebt(ctx, actor, req.Msg.DebtId)
	if err != nil {
		return nil, fail(ctx, s.logger, "ReconsiderDebt", err)
	}
	return connect.NewResponse(&pb.DebtResponse{Debt: toProtoDebt(d)}), nil
}

func (s *LedgerService) MarkInstallmentPaid(ctx context.Context, req *connect.Request[pb.MarkInstallmentPaidRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.MarkInstallmentPaid(ctx, actor, req.Msg.InstallmentId, req.Msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "MarkInstallmentPaid", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) RevertInstallmentPayment(ctx context.Context, req *connect.Request[pb.RevertInstallmentPaymentRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.RevertInstallmentPayment(ctx, actor, req.Msg.InstallmentId, req.Msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "RevertInstallmentPayment", err)
	}
	return s.mutationResponse(ctx, res)
}

// RevertDebtPayment undoes a whole-debt paid marking. The debtor's revert
// applies at once; the creditor's waits for the debtor.
func (s *LedgerService) RevertDebtPayment(ctx context.Context, req *connect.Request[pb.RevertDebtPaymentRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.RevertDebtPayment(ctx, actor, req.Msg.DebtId, req.Msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "RevertDebtPayment", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) MarkDebtPaidByCreditor(ctx context.Context, req *connect.Request[pb.MarkDebtPaidByCreditorRequest]) (*connect.Response[pb.DebtResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	d, err := s.engine.MarkDebtPaidByCreditor(ctx, actor, req.Msg.DebtId)
	if err != nil {
		return nil, fail(ctx, s.logger, "MarkDebtPaidByCreditor", err)
	}
	return connect.NewResponse(&pb.DebtResponse{Debt: toProtoDebt(d)}), nil
}

func (s *LedgerService) RequestPaymentConfirmation(ctx context.Context, req *connect.Request[pb.RequestPaymentConfirmationRequest]) (*connect.Response[pb.DebtMutationResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.RequestPaymentConfirmation(ctx, actor, req.Msg.DebtId, req.Msg.Reason)
	if err != nil {
		return nil, fail(ctx, s.logger, "RequestPaymentConfirmation", err)
	}
	return s.mutationResponse(ctx, res)
}

func (s *LedgerService) ListActiveInstallments(ctx context.Context, _ *connect.Request[pb.ListActiveInstallmentsRequest]) (*connect.Response[pb.ListActiveInstallmentsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	debts, err := s.engine.ListActiveInstallments(ctx, actor)
	if err != nil {
		return nil, fail(ctx, s.logger, "ListActiveInstallments", err)
	}
	return connect.NewResponse(&pb.ListActiveInstallmentsResponse{Debts: toProtoDebts(debts)}), nil
}

func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[pb.GetBalancesRequest]) (*connect.Response[pb.GetBalancesResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	b, err := s.engine.GetBalances(ctx, actor, req.Msg.PartyId, req.Msg.Currency)
	if err != nil {
		return nil, fail(ctx, s.logger, "GetBalances", err)
	}

	out := &pb.GetBalancesResponse{
		PartyId:        b.PartyID,
		Currency:       b.Currency,
		OwedToMe:       b.OwedToMe.Format(b.Currency),
		IOwe:           b.IOwe.Format(b.Currency),
		Net:            b.Net.Format(b.Currency),
		Counterparties: make([]*pb.CounterpartyBalance, 0, len(b.Counterparties)),
	}
	for _, c := range b.Counterparties {
		out.Counterparties = append(out.Counterparties, &pb.CounterpartyBalance{
			PartyId: c.PartyID,
			Net:     c.Net.Format(b.Currency),
		})
	}
	return connect.NewResponse(out), nil
}

func (s *LedgerService) ListChangeRequests(ctx context.Context, req *connect.Request[pb.ListChangeRequestsRequest]) (*connect.Response[pb.ListChangeRequestsResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	reqs, err := s.engine.ListChangeRequests(ctx, actor, models.ChangeRequestStatus(req.Msg.Status))
	if err != nil {
		return nil, fail(ctx, s.logger, "ListChangeRequests", err)
	}
	out := make([]*pb.ChangeRequest, 0, len(reqs))
	for _, r := range reqs {
		cr, err := toProtoChangeRequest(r)
		if err != nil {
			return nil, fail(ctx, s.logger, "ListChangeRequests", err)
		}
		out = append(out, cr)
	}
	return connect.NewResponse(&pb.ListChangeRequestsResponse{ChangeRequests: out}), nil
}

func (s *LedgerService) ResolveChangeRequest(ctx context.Context, req *connect.Request[pb.ResolveChangeRequestRequest]) (*connect.Response[pb.ResolveChangeRequestResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.engine.ResolveChangeRequest(ctx, actor, req.Msg.RequestId, req.Msg.Approve, req.Msg.Message)
	if err != nil {
		return nil, fail(ctx, s.logger, "ResolveChangeRequest", err)
	}
	cr, err := toProtoChangeRequest(res.Request)
	if err != nil {
		return nil, fail(ctx, s.logger, "ResolveChangeRequest", err)
	}
	return connect.NewResponse(&pb.ResolveChangeRequestResponse{ChangeRequest: cr, Debt: toProtoDebt(res.Debt)}), nil
}

func (s *LedgerService) CancelChangeRequest(ctx context.Context, req *connect.Request[pb.CancelChangeRequestRequest]) (*connect.Response[pb.CancelChangeRequestResponse], error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.engine.CancelChangeRequest(ctx, actor, req.Msg.RequestId)
	if err != nil {
		return nil, fail(ctx, s.logger, "CancelChangeRequest", err)
	}
	cr, err := toProtoChangeRequest(r)
	if err != nil {
		return nil, fail(ctx, s.logger, "CancelChangeRequest", err)
	}
	return connect.NewResponse(&pb.CancelChangeRequestResponse{ChangeRequest: cr}), nil
}
