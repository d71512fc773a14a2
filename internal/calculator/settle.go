package calculator

import (
	"container/heap"
	"fmt"

	"github.com/mmynk/splitledger/internal/money"
)

// Transfer is a suggested payment From → To.
type Transfer struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount money.Amount
}

// SuggestSettlements proposes transfers that zero out nets (positive = is
// owed, negative = owes).
//
// Greedy: repeatedly pair the creditor with the largest remaining balance
// with the debtor with the largest remaining debt and move the smaller of the
// two. Every transfer clears at least one party and the last clears two, so n
// non-zero parties need at most n-1 transfers. Ties are broken by ID, which
// keeps the output deterministic. This is not always the minimum number of
// transfers.
func SuggestSettlements(nets map[string]money.Amount) ([]Transfer, error) {
	creditors := &balanceHeap{}
	debtors := &balanceHeap{}
	var sum money.Amount

	for id, net := range nets {
		sum += net
		switch {
		case net > 0:
			*creditors = append(*creditors, balanceEntry{id: id, amount: net})
		case net < 0:
			*debtors = append(*debtors, balanceEntry{id: id, amount: -net})
		}
	}
	if sum != 0 {
		return nil, fmt.Errorf("net balances sum to %d instead of zero", sum)
	}
	heap.Init(creditors)
	heap.Init(debtors)

	var transfers []Transfer
	for creditors.Len() > 0 && debtors.Len() > 0 {
		c := heap.Pop(creditors).(balanceEntry)
		d := heap.Pop(debtors).(balanceEntry)

		amount := money.Min(c.amount, d.amount)
		transfers = append(transfers, Transfer{From: d.id, To: c.id, Amount: amount})

		c.amount -= amount
		d.amount -= amount
		if c.amount > 0 {
			heap.Push(creditors, c)
		}
		if d.amount > 0 {
			heap.Push(debtors, d)
		}
	}

	return transfers, nil
}

type balanceEntry struct {
	id     string
	amount money.Amount
}

// balanceHeap is a max-heap on amount, then min on id.
type balanceHeap []balanceEntry

func (h balanceHeap) Len() int { return len(h) }

func (h balanceHeap) Less(i, j int) bool {
	if h[i].amount != h[j].amount {
		return h[i].amount > h[j].amount
	}
	return h[i].id < h[j].id
}

func (h balanceHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *balanceHeap) Push(x any) { *h = append(*h, x.(balanceEntry)) }

func (h *balanceHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
