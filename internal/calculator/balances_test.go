package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/money"
)

func TestCalculatePartyBalance(t *testing.T) {
	debts := []DebtForBalance{
		{DebtorID: "bob", CreditorID: "alice", Currency: "USD", Outstanding: 1200},
		{DebtorID: "carol", CreditorID: "alice", Currency: "USD", Outstanding: 500},
		{DebtorID: "alice", CreditorID: "bob", Currency: "USD", Outstanding: 200},
		{DebtorID: "alice", CreditorID: "dave", Currency: "USD", Outstanding: 0},
		{DebtorID: "bob", CreditorID: "alice", Currency: "EUR", Outstanding: 9999},
	}

	bal := CalculatePartyBalance("alice", "USD", debts)

	assert.Equal(t, money.Amount(1700), bal.OwedToMe)
	assert.Equal(t, money.Amount(200), bal.IOwe)
	assert.Equal(t, money.Amount(1500), bal.Net)
	assert.Equal(t, []CounterpartyBalance{
		{PartyID: "bob", Net: 1000},
		{PartyID: "carol", Net: 500},
	}, bal.Counterparties)
}

func TestCalculatePartyBalance_NoDebts(t *testing.T) {
	bal := CalculatePartyBalance("alice", "USD", nil)
	assert.Zero(t, bal.OwedToMe)
	assert.Zero(t, bal.IOwe)
	assert.Zero(t, bal.Net)
	assert.Empty(t, bal.Counterparties)
}

func TestCalculateGroupBalances(t *testing.T) {
	members := []string{"X", "Y", "Z"}
	splits := []SplitForBalance{
		{
			Payers: []Share{{MemberID: "X", Amount: 9000}},
			Participants: []Share{
				{MemberID: "X", Amount: 3000},
				{MemberID: "Y", Amount: 3000},
				{MemberID: "Z", Amount: 3000},
			},
		},
	}

	balances, err := CalculateGroupBalances(members, splits, nil)
	require.NoError(t, err)
	require.Len(t, balances, 3)

	assert.Equal(t, MemberBalance{MemberID: "X", NetBalance: 6000, TotalPaid: 9000, TotalOwed: 3000}, balances[0])
	assert.Equal(t, MemberBalance{MemberID: "Y", NetBalance: -3000, TotalPaid: 0, TotalOwed: 3000}, balances[1])
	assert.Equal(t, MemberBalance{MemberID: "Z", NetBalance: -3000, TotalPaid: 0, TotalOwed: 3000}, balances[2])
}

func TestCalculateGroupBalances_WithSettlements(t *testing.T) {
	members := []string{"X", "Y", "Z"}
	splits := []SplitForBalance{
		{
			Payers: []Share{{MemberID: "X", Amount: 9000}},
			Participants: []Share{
				{MemberID: "X", Amount: 3000},
				{MemberID: "Y", Amount: 3000},
				{MemberID: "Z", Amount: 3000},
			},
		},
	}
	settlements := []SettlementForBalance{
		{FromMemberID: "Y", ToMemberID: "X", Amount: 3000},
	}

	balances, err := CalculateGroupBalances(members, splits, settlements)
	require.NoError(t, err)

	nets := NetBalances(balances)
	assert.Equal(t, money.Amount(3000), nets["X"])
	assert.Equal(t, money.Amount(0), nets["Y"])
	assert.Equal(t, money.Amount(-3000), nets["Z"])
}

func TestCalculateGroupBalances_MultiplePayers(t *testing.T) {
	splits := []SplitForBalance{
		{
			Payers: []Share{{MemberID: "A", Amount: 600}, {MemberID: "B", Amount: 400}},
			Participants: []Share{
				{MemberID: "A", Amount: 334},
				{MemberID: "B", Amount: 333},
				{MemberID: "C", Amount: 333},
			},
		},
	}

	balances, err := CalculateGroupBalances([]string{"A", "B", "C"}, splits, nil)
	require.NoError(t, err)

	var sum money.Amount
	for _, b := range balances {
		sum += b.NetBalance
	}
	assert.Zero(t, sum)
	assert.Equal(t, money.Amount(266), balances[0].NetBalance)
	assert.Equal(t, money.Amount(67), balances[1].NetBalance)
	assert.Equal(t, money.Amount(-333), balances[2].NetBalance)
}

func TestCalculateGroupBalances_UnbalancedSplit(t *testing.T) {
	splits := []SplitForBalance{
		{
			Payers:       []Share{{MemberID: "A", Amount: 1000}},
			Participants: []Share{{MemberID: "B", Amount: 900}},
		},
	}

	_, err := CalculateGroupBalances([]string{"A", "B"}, splits, nil)
	assert.Error(t, err)
}

func TestCalculateGroupBalances_UnknownMemberAppended(t *testing.T) {
	settlements := []SettlementForBalance{{FromMemberID: "A", ToMemberID: "ghost", Amount: 100}}

	balances, err := CalculateGroupBalances([]string{"A"}, nil, settlements)
	require.NoError(t, err)
	require.Len(t, balances, 2)
	assert.Equal(t, "ghost", balances[1].MemberID)
	assert.Equal(t, money.Amount(-100), balances[1].NetBalance)
}
