package ledger

import (
	"context"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

// BalanceSummary is a party's position in one currency.
type BalanceSummary struct {
	PartyID  string
	Currency string
	OwedToMe money.Amount
	IOwe     money.Amount
	Net      money.Amount
	// Counterparties is sorted by party ID; positive means they owe me.
	Counterparties []calculator.CounterpartyBalance
}

func balanceKey(partyID, currency string) string {
	return partyID + "|" + currency
}

// Outstanding is what is still owed on d. Pending and rejected debts owe
// nothing for balance purposes.
func Outstanding(d *models.Debt) money.Amount {
	switch {
	case d.Status != models.DebtAccepted:
		return 0
	case d.HasSchedule():
		return d.UnpaidAmount()
	case d.PaidByCreditor:
		return 0
	default:
		return d.TotalAmount
	}
}

// GetBalances computes partyID's balance in currency from the stored debts.
// partyID defaults to actor; a virtual contact may be queried by its owner.
// Identical concurrent calls share one computation, which reads a single
// snapshot of the debts and their installments.
func (e *Engine) GetBalances(ctx context.Context, actor, partyID, currency string) (*BalanceSummary, error) {
	if err := money.ValidateCurrency(currency); err != nil {
		return nil, apperr.Validation("%v", err)
	}
	if partyID == "" {
		partyID = actor
	}
	if partyID != actor {
		p, err := e.store.ResolveParty(ctx, partyID)
		if err != nil {
			return nil, err
		}
		if !p.ActsFor(actor) {
			return nil, apperr.Unauthorized("%s may not view balances of %s", actor, partyID)
		}
	}

	// The shared computation must not fail because the first caller gave up.
	detached := context.WithoutCancel(ctx)
	v, err, shared := e.balances.Do(balanceKey(partyID, currency), func() (any, error) {
		var debts []*models.Debt
		err := e.store.ReadTx(detached, func(tx storage.Ledger) error {
			var err error
			debts, err = tx.ListDebtsForParty(detached, partyID, models.RoleAny)
			return err
		})
		if err != nil {
			return nil, err
		}
		inputs := make([]calculator.DebtForBalance, 0, len(debts))
		for _, d := range debts {
			inputs = append(inputs, calculator.DebtForBalance{
				DebtorID:    d.DebtorID,
				CreditorID:  d.CreditorID,
				Currency:    d.Currency,
				Outstanding: Outstanding(d),
			})
		}
		bal := calculator.CalculatePartyBalance(partyID, currency, inputs)
		return BalanceSummary{
			PartyID:        partyID,
			Currency:       currency,
			OwedToMe:       bal.OwedToMe,
			IOwe:           bal.IOwe,
			Net:            bal.Net,
			Counterparties: bal.Counterparties,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		e.logger.DebugContext(ctx, "Shared balance computation", "party_id", partyID, "currency", currency)
	}

	summary := v.(BalanceSummary)
	summary.Counterparties = append([]calculator.CounterpartyBalance(nil), summary.Counterparties...)
	return &summary, nil
}
