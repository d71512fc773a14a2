package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/mmynk/splitledger/internal/money"
)

// MutationKind tags the variant carried by a change request.
type MutationKind string

const (
	MutationCreate        MutationKind = "create"
	MutationUpdate        MutationKind = "update"
	MutationDelete        MutationKind = "delete"
	MutationMarkPaid      MutationKind = "markPaid"
	MutationRevertPayment MutationKind = "revertPayment"
)

// ChangeRequestStatus is the resolution state of a change request.
type ChangeRequestStatus string

const (
	RequestPending   ChangeRequestStatus = "pending"
	RequestApproved  ChangeRequestStatus = "approved"
	RequestRejected  ChangeRequestStatus = "rejected"
	RequestCancelled ChangeRequestStatus = "cancelled"
)

// Mutation is a proposed change to a debt. The concrete type determines the
// kind; there is no untyped payload.
type Mutation interface {
	Kind() MutationKind
}

// CreateDebtMutation proposes a new debt.
type CreateDebtMutation struct {
	Draft DebtDraft `json:"draft"`
}

// UpdateDebtMutation changes descriptive or monetary fields. Nil fields are
// left untouched.
type UpdateDebtMutation struct {
	Description      *string       `json:"description,omitempty"`
	Category         *string       `json:"category,omitempty"`
	Amount           *money.Amount `json:"amount,omitempty"`
	InstallmentCount *int          `json:"installment_count,omitempty"`
	DueDate          *time.Time    `json:"due_date,omitempty"`
	LinkedAccountID  *string       `json:"linked_account_id,omitempty"`
}

// DeleteDebtMutation removes a debt and its installments.
type DeleteDebtMutation struct{}

// MarkPaidMutation marks one installment paid, or the whole debt when
// InstallmentID is empty.
type MarkPaidMutation struct {
	InstallmentID string `json:"installment_id,omitempty"`
}

// RevertPaymentMutation clears the paid flag of one installment, or every
// payment marker of the debt when InstallmentID is empty.
type RevertPaymentMutation struct {
	InstallmentID string `json:"installment_id,omitempty"`
	Reason        string `json:"reason,omitempty"`
}

func (CreateDebtMutation) Kind() MutationKind    { return MutationCreate }
func (UpdateDebtMutation) Kind() MutationKind    { return MutationUpdate }
func (DeleteDebtMutation) Kind() MutationKind    { return MutationDelete }
func (MarkPaidMutation) Kind() MutationKind      { return MutationMarkPaid }
func (RevertPaymentMutation) Kind() MutationKind { return MutationRevertPayment }

// IsEmpty reports whether the update changes nothing.
func (m UpdateDebtMutation) IsEmpty() bool {
	return m.Description == nil && m.Category == nil && m.Amount == nil &&
		m.InstallmentCount == nil && m.DueDate == nil && m.LinkedAccountID == nil
}

// EncodeMutation serializes the payload of m for storage.
func EncodeMutation(m Mutation) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s mutation: %w", m.Kind(), err)
	}
	return data, nil
}

// DecodeMutation rebuilds the typed mutation stored under kind.
func DecodeMutation(kind MutationKind, data []byte) (Mutation, error) {
	var (
		m   Mutation
		err error
	)
	switch kind {
	case MutationCreate:
		var v CreateDebtMutation
		err = json.Unmarshal(data, &v)
		m = v
	case MutationUpdate:
		var v UpdateDebtMutation
		err = json.Unmarshal(data, &v)
		m = v
	case MutationDelete:
		m = DeleteDebtMutation{}
	case MutationMarkPaid:
		var v MarkPaidMutation
		err = json.Unmarshal(data, &v)
		m = v
	case MutationRevertPayment:
		var v RevertPaymentMutation
		err = json.Unmarshal(data, &v)
		m = v
	default:
		return nil, fmt.Errorf("unknown mutation kind %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s mutation: %w", kind, err)
	}
	return m, nil
}

// ChangeRequest is a mutation waiting for the counterparty's decision.
type ChangeRequest struct {
	// ID is the unique identifier for the request (UUID format).
	ID string

	// DebtID is the target debt. It is empty for a create request until the
	// request is approved and the debt exists.
	DebtID string

	// RequestedBy is the real user who proposed the change.
	RequestedBy string

	// TargetApprover is the only user allowed to resolve the request.
	TargetApprover string

	Mutation Mutation

	// Reason is the requester's optional explanation.
	Reason string

	Status ChangeRequestStatus

	// ResponseMessage is the approver's optional note.
	ResponseMessage string

	CreatedAt  int64
	ResolvedAt int64
}

// Kind returns the kind of the wrapped mutation.
func (r *ChangeRequest) Kind() MutationKind {
	return r.Mutation.Kind()
}
