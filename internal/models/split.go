package models

import "github.com/mmynk/splitledger/internal/money"

// SplitType selects how a split's total is shared among participants.
type SplitType string

const (
	SplitEqual  SplitType = "equal"
	SplitCustom SplitType = "custom"
)

// ApprovalStatus is used both for a split as a whole and for each member's
// approval of it. A split is Active, PendingValidation or Rejected; a member
// approval is PendingValidation, Approved or Rejected.
type ApprovalStatus string

const (
	ApprovalActive            ApprovalStatus = "active"
	ApprovalPendingValidation ApprovalStatus = "pendingValidation"
	ApprovalApproved          ApprovalStatus = "approved"
	ApprovalRejected          ApprovalStatus = "rejected"
)

// Allocation assigns an amount to a group member.
type Allocation struct {
	MemberID string
	Amount   money.Amount
}

// SplitApproval is one real member's decision on a split they take part in.
type SplitApproval struct {
	MemberID    string
	PartyID     string
	Status      ApprovalStatus
	Reason      string
	RespondedAt int64
}

// Split is one group expense.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string

	GroupID string

	// CreatedBy is the party ID of the real user who recorded the expense.
	CreatedBy string

	Description string

	TotalAmount money.Amount
	Currency    string

	// Payers are the members who actually paid and how much. They sum to TotalAmount.
	Payers []Allocation

	// Participants are the members who owe a share, in deterministic order.
	// Shares sum to TotalAmount.
	Participants []Allocation

	SplitType SplitType

	ApprovalStatus ApprovalStatus

	// Settled removes the split from balance computations.
	Settled bool

	// Approvals holds one entry per real participant other than the creator.
	Approvals []SplitApproval

	Version   int64
	CreatedAt int64
}

// PendingApprovals counts approvals still waiting for a decision.
func (s *Split) PendingApprovals() int {
	n := 0
	for _, a := range s.Approvals {
		if a.Status == ApprovalPendingValidation {
			n++
		}
	}
	return n
}

// Approval returns the approval entry for partyID.
func (s *Split) Approval(partyID string) (*SplitApproval, bool) {
	for i := range s.Approvals {
		if s.Approvals[i].PartyID == partyID {
			return &s.Approvals[i], true
		}
	}
	return nil, false
}

// CountsTowardBalances reports whether the split contributes to group balances.
func (s *Split) CountsTowardBalances() bool {
	return s.ApprovalStatus == ApprovalActive && !s.Settled
}

// IsPayer reports whether memberID paid part of the split.
func (s *Split) IsPayer(memberID string) bool {
	for _, p := range s.Payers {
		if p.MemberID == memberID {
			return true
		}
	}
	return false
}
