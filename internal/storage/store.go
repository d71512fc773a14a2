// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/mmynk/splitledger/internal/models"
)

// UserStore holds registered users. It is the subset the auth layer needs.
type UserStore interface {
	// CreateUser inserts a new user. Emails are unique.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns nil and no error when no user has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID returns nil and no error when the user does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Ledger is the repository over parties, debts, change requests, groups,
// splits and settlements.
//
// Writes that touch more than one row (a debt and its installments, a split
// and its shares) are atomic. Update methods check the entity's Version and
// return apperr.ErrConflict when another writer got there first; on success
// they bump Version on the passed entity. Missing rows are apperr.ErrNotFound.
type Ledger interface {
	UserStore

	CreateContact(ctx context.Context, contact *models.Contact) error
	ListContacts(ctx context.Context, ownerID string) ([]*models.Contact, error)

	// ResolveParty maps an ID to a real user or a virtual contact.
	ResolveParty(ctx context.Context, id string) (*models.Party, error)

	// CreateDebt persists a debt together with its installments.
	CreateDebt(ctx context.Context, debt *models.Debt) error

	// GetDebt returns a debt with its installments ordered by sequence.
	GetDebt(ctx context.Context, id string) (*models.Debt, error)

	// GetDebtByInstallment returns the debt owning installmentID.
	GetDebtByInstallment(ctx context.Context, installmentID string) (*models.Debt, error)

	// UpdateDebt writes every debt field and replaces its installment rows.
	UpdateDebt(ctx context.Context, debt *models.Debt) error

	// DeleteDebt removes a debt and its installments if its version still matches.
	DeleteDebt(ctx context.Context, id string, version int64) error

	// ListDebtsForParty lists debts where partyID is on the given side
	// (models.RoleAny for both), newest first.
	ListDebtsForParty(ctx context.Context, partyID string, role models.DebtRole) ([]*models.Debt, error)

	// ListInstallments lists a debt's installments ordered by sequence.
	ListInstallments(ctx context.Context, debtID string) ([]models.Installment, error)

	// ListActiveInstallments returns accepted debts involving partyID that
	// still have unpaid installments. Each debt carries only its unpaid
	// installments, ordered by due date.
	ListActiveInstallments(ctx context.Context, partyID string) ([]*models.Debt, error)

	CreateChangeRequest(ctx context.Context, req *models.ChangeRequest) error
	GetChangeRequest(ctx context.Context, id string) (*models.ChangeRequest, error)

	// ResolveChangeRequest stores req's status, response, resolution time and
	// debt ID, but only if the stored status is still pending. Otherwise it
	// returns apperr.ErrConflict.
	ResolveChangeRequest(ctx context.Context, req *models.ChangeRequest) error

	// ListChangeRequests lists requests sent by or addressed to partyID,
	// optionally filtered by status (empty for all), newest first.
	ListChangeRequests(ctx context.Context, partyID string, status models.ChangeRequestStatus) ([]*models.ChangeRequest, error)

	// ListPendingChangeRequestsForDebt lists unresolved requests against a debt.
	ListPendingChangeRequestsForDebt(ctx context.Context, debtID string) ([]*models.ChangeRequest, error)

	CreateGroup(ctx context.Context, group *models.Group) error
	GetGroup(ctx context.Context, id string) (*models.Group, error)
	ListGroupsForParty(ctx context.Context, partyID string) ([]*models.Group, error)

	// CreateSplit persists a split with its payers, shares and approvals.
	CreateSplit(ctx context.Context, split *models.Split) error
	GetSplit(ctx context.Context, id string) (*models.Split, error)

	// UpdateSplit writes the split's approval status, settled flag and approvals.
	UpdateSplit(ctx context.Context, split *models.Split) error

	// ListGroupSplits lists every split in a group, oldest first.
	ListGroupSplits(ctx context.Context, groupID string) ([]*models.Split, error)

	// CreateSettlement appends a settlement. Settlements are never updated.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements lists a group's settlements, newest first.
	ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error)
}

// Store is a Ledger that can run a unit of work in a transaction.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the engine.
type Store interface {
	Ledger

	// WithTx runs fn against a Ledger bound to one transaction. The
	// transaction commits if fn returns nil and rolls back otherwise.
	WithTx(ctx context.Context, fn func(tx Ledger) error) error

	// ReadTx runs fn against a Ledger that sees one consistent snapshot.
	// fn must only read.
	ReadTx(ctx context.Context, fn func(tx Ledger) error) error

	// Close releases any resources held by the store.
	Close() error
}
