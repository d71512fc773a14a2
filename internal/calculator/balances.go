package calculator

import (
	"fmt"
	"sort"

	"github.com/mmynk/splitledger/internal/money"
)

// DebtForBalance represents a debt with the minimal information needed for
// party balance calculations. Outstanding is what is still owed on it.
type DebtForBalance struct {
	DebtorID    string
	CreditorID  string
	Currency    string
	Outstanding money.Amount
}

// CounterpartyBalance is the net position against one other party.
type CounterpartyBalance struct {
	PartyID string
	Net     money.Amount // Positive = they owe me, Negative = I owe them
}

// PartyBalance summarizes what a party is owed and owes in one currency.
type PartyBalance struct {
	OwedToMe       money.Amount
	IOwe           money.Amount
	Net            money.Amount
	Counterparties []CounterpartyBalance
}

// CalculatePartyBalance sums the outstanding amounts of debts in currency
// where partyID is creditor (owed to me) or debtor (I owe).
func CalculatePartyBalance(partyID, currency string, debts []DebtForBalance) PartyBalance {
	var bal PartyBalance
	perParty := make(map[string]money.Amount)

	for _, d := range debts {
		if d.Currency != currency || d.Outstanding == 0 {
			continue
		}
		switch partyID {
		case d.CreditorID:
			bal.OwedToMe += d.Outstanding
			perParty[d.DebtorID] += d.Outstanding
		case d.DebtorID:
			bal.IOwe += d.Outstanding
			perParty[d.CreditorID] -= d.Outstanding
		}
	}
	bal.Net = bal.OwedToMe - bal.IOwe

	for id, net := range perParty {
		if net == 0 {
			continue
		}
		bal.Counterparties = append(bal.Counterparties, CounterpartyBalance{PartyID: id, Net: net})
	}
	sort.Slice(bal.Counterparties, func(i, j int) bool {
		return bal.Counterparties[i].PartyID < bal.Counterparties[j].PartyID
	})
	return bal
}

// SplitForBalance represents a split with the minimal information needed for
// group balance calculations.
type SplitForBalance struct {
	Payers       []Share
	Participants []Share
}

// SettlementForBalance represents a settlement with the minimal information needed for balance calculations.
type SettlementForBalance struct {
	FromMemberID string // Who paid (debtor settling up)
	ToMemberID   string // Who received (creditor being paid)
	Amount       money.Amount
}

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	MemberID   string
	NetBalance money.Amount // Positive = owed money, Negative = owes money
	TotalPaid  money.Amount // Paid on splits plus settlements sent
	TotalOwed  money.Amount // Shares owed plus settlements received
}

// CalculateGroupBalances computes member balances across splits and settlements.
//
// Algorithm:
//   - For each split: each payer is credited what they paid, each participant is debited their share
//   - For each settlement: sender's balance improves, receiver's balance decreases
//   - net_balance = total_paid - total_owed
//
// Members are returned in the order given, followed by any member that only
// appears in a split or settlement. Nets must sum to zero; anything else means
// a split was stored with unbalanced payers and shares.
func CalculateGroupBalances(members []string, splits []SplitForBalance, settlements []SettlementForBalance) ([]MemberBalance, error) {
	balances := make(map[string]*MemberBalance)
	order := make([]string, 0, len(members))

	get := func(id string) *MemberBalance {
		if b, ok := balances[id]; ok {
			return b
		}
		b := &MemberBalance{MemberID: id}
		balances[id] = b
		order = append(order, id)
		return b
	}
	for _, m := range members {
		get(m)
	}

	for _, split := range splits {
		for _, p := range split.Payers {
			get(p.MemberID).TotalPaid += p.Amount
		}
		for _, p := range split.Participants {
			get(p.MemberID).TotalOwed += p.Amount
		}
	}

	for _, s := range settlements {
		get(s.FromMemberID).TotalPaid += s.Amount
		get(s.ToMemberID).TotalOwed += s.Amount
	}

	result := make([]MemberBalance, 0, len(order))
	var sum money.Amount
	for _, id := range order {
		b := balances[id]
		b.NetBalance = b.TotalPaid - b.TotalOwed
		sum += b.NetBalance
		result = append(result, *b)
	}

	if sum != 0 {
		return nil, fmt.Errorf("group balances sum to %d instead of zero", sum)
	}
	return result, nil
}

// NetBalances turns member balances into the map consumed by SuggestSettlements.
func NetBalances(balances []MemberBalance) map[string]money.Amount {
	nets := make(map[string]money.Amount, len(balances))
	for _, b := range balances {
		nets[b.MemberID] = b.NetBalance
	}
	return nets
}
