package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
)

const debtColumns = `id, created_by, debtor_id, creditor_id, total_amount, installment_amount,
	currency, description, category, installment_count, paid_installments_count, cadence,
	purchase_date, due_date, status, linked_account_id, paid_by_creditor, debtor_confirmed_paid,
	version, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDebt(row rowScanner) (*models.Debt, error) {
	d := &models.Debt{}
	var (
		cadence, status                 string
		purchaseDate, dueDate           sql.NullString
		linkedAccount                   sql.NullString
		paidByCreditor, debtorConfirmed int
	)
	err := row.Scan(&d.ID, &d.CreatedBy, &d.DebtorID, &d.CreditorID, &d.TotalAmount, &d.InstallmentAmount,
		&d.Currency, &d.Description, &d.Category, &d.InstallmentCount, &d.PaidInstallmentsCount, &cadence,
		&purchaseDate, &dueDate, &status, &linkedAccount, &paidByCreditor, &debtorConfirmed,
		&d.Version, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}

	d.Cadence = money.Cadence(cadence)
	d.Status = models.DebtStatus(status)
	d.LinkedAccountID = linkedAccount.String
	d.PaidByCreditor = paidByCreditor == 1
	d.DebtorConfirmedPaid = debtorConfirmed == 1

	if d.PurchaseDate, err = scanNullDate(purchaseDate); err != nil {
		return nil, err
	}
	if d.DueDate, err = scanNullDate(dueDate); err != nil {
		return nil, err
	}
	return d, nil
}

// CreateDebt persists a new debt and its installments in one transaction.
func (s *SQLiteStore) CreateDebt(ctx context.Context, debt *models.Debt) error {
	// Generate IDs if not set
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if debt.CreatedAt == 0 {
		debt.CreatedAt = now
	}
	debt.UpdatedAt = debt.CreatedAt
	if debt.Version == 0 {
		debt.Version = 1
	}

	return s.atomic(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO debts (`+debtColumns+`)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			debt.ID, debt.CreatedBy, debt.DebtorID, debt.CreditorID, debt.TotalAmount, debt.InstallmentAmount,
			debt.Currency, debt.Description, debt.Category, debt.InstallmentCount, debt.PaidInstallmentsCount,
			string(debt.Cadence), nullDate(debt.PurchaseDate), nullDate(debt.DueDate), string(debt.Status),
			nullString(debt.LinkedAccountID), boolInt(debt.PaidByCreditor), boolInt(debt.DebtorConfirmedPaid),
			debt.Version, debt.CreatedAt, debt.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert debt: %w", err)
		}

		return insertInstallments(ctx, q, debt)
	})
}

func insertInstallments(ctx context.Context, q querier, debt *models.Debt) error {
	for i := range debt.Installments {
		inst := &debt.Installments[i]
		if inst.ID == "" {
			inst.ID = uuid.New().String()
		}
		inst.DebtID = debt.ID

		_, err := q.ExecContext(ctx,
			`INSERT INTO installments (id, debt_id, sequence, amount, due_date, paid, paid_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			inst.ID, inst.DebtID, inst.Sequence, inst.Amount, formatDate(inst.DueDate),
			boolInt(inst.Paid), nullUnix(inst.PaidAt),
		)
		if err != nil {
			return fmt.Errorf("failed to insert installment: %w", err)
		}
	}
	return nil
}

// GetDebt retrieves a debt by ID, including its installments.
func (s *SQLiteStore) GetDebt(ctx context.Context, id string) (*models.Debt, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+debtColumns+" FROM debts WHERE id = ?", id)
	debt, err := scanDebt(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("debt", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}

	if debt.Installments, err = s.ListInstallments(ctx, id); err != nil {
		return nil, err
	}
	return debt, nil
}

// GetDebtByInstallment retrieves the debt that owns an installment.
func (s *SQLiteStore) GetDebtByInstallment(ctx context.Context, installmentID string) (*models.Debt, error) {
	var debtID string
	err := s.q.QueryRowContext(ctx,
		"SELECT debt_id FROM installments WHERE id = ?",
		installmentID,
	).Scan(&debtID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("installment", installmentID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get installment: %w", err)
	}

	return s.GetDebt(ctx, debtID)
}

// UpdateDebt writes the debt if nobody changed it since it was read, then
// replaces its installment rows.
func (s *SQLiteStore) UpdateDebt(ctx context.Context, debt *models.Debt) error {
	updatedAt := time.Now().Unix()

	err := s.atomic(ctx, func(q querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE debts SET
				total_amount = ?, installment_amount = ?, description = ?, category = ?,
				installment_count = ?, paid_installments_count = ?, cadence = ?,
				purchase_date = ?, due_date = ?, status = ?, linked_account_id = ?,
				paid_by_creditor = ?, debtor_confirmed_paid = ?,
				version = version + 1, updated_at = ?
			 WHERE id = ? AND version = ?`,
			debt.TotalAmount, debt.InstallmentAmount, debt.Description, debt.Category,
			debt.InstallmentCount, debt.PaidInstallmentsCount, string(debt.Cadence),
			nullDate(debt.PurchaseDate), nullDate(debt.DueDate), string(debt.Status), nullString(debt.LinkedAccountID),
			boolInt(debt.PaidByCreditor), boolInt(debt.DebtorConfirmedPaid),
			updatedAt, debt.ID, debt.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update debt: %w", err)
		}
		if err := expectOneRow(res, "debt", debt.ID); err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, "DELETE FROM installments WHERE debt_id = ?", debt.ID); err != nil {
			return fmt.Errorf("failed to clear installments: %w", err)
		}
		return insertInstallments(ctx, q, debt)
	})
	if err != nil {
		return err
	}

	debt.Version++
	debt.UpdatedAt = updatedAt
	return nil
}

// DeleteDebt removes a debt and its installments.
func (s *SQLiteStore) DeleteDebt(ctx context.Context, id string, version int64) error {
	return s.atomic(ctx, func(q querier) error {
		if _, err := q.ExecContext(ctx, "DELETE FROM installments WHERE debt_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete installments: %w", err)
		}

		res, err := q.ExecContext(ctx, "DELETE FROM debts WHERE id = ? AND version = ?", id, version)
		if err != nil {
			return fmt.Errorf("failed to delete debt: %w", err)
		}
		return expectOneRow(res, "debt", id)
	})
}

// ListDebtsForParty retrieves debts where partyID is debtor, creditor or either.
func (s *SQLiteStore) ListDebtsForParty(ctx context.Context, partyID string, role models.DebtRole) ([]*models.Debt, error) {
	var (
		where string
		args  []any
	)
	switch role {
	case models.RoleDebtor:
		where, args = "debtor_id = ?", []any{partyID}
	case models.RoleCreditor:
		where, args = "creditor_id = ?", []any{partyID}
	default:
		where, args = "(debtor_id = ? OR creditor_id = ?)", []any{partyID, partyID}
	}

	debts, err := s.queryDebts(ctx,
		"SELECT "+debtColumns+" FROM debts WHERE "+where+" ORDER BY created_at DESC, id",
		args...,
	)
	if err != nil {
		return nil, err
	}

	for _, d := range debts {
		if d.Installments, err = s.ListInstallments(ctx, d.ID); err != nil {
			return nil, err
		}
	}
	return debts, nil
}

// ListActiveInstallments retrieves unpaid installments of accepted debts
// involving partyID, grouped under their debt.
func (s *SQLiteStore) ListActiveInstallments(ctx context.Context, partyID string) ([]*models.Debt, error) {
	debts, err := s.queryDebts(ctx,
		`SELECT `+debtColumns+` FROM debts
		 WHERE (debtor_id = ? OR creditor_id = ?)
		   AND status = ?
		   AND EXISTS (SELECT 1 FROM installments i WHERE i.debt_id = debts.id AND i.paid = 0)
		 ORDER BY created_at, id`,
		partyID, partyID, string(models.DebtAccepted),
	)
	if err != nil {
		return nil, err
	}

	for _, d := range debts {
		if d.Installments, err = s.listInstallments(ctx,
			"WHERE debt_id = ? AND paid = 0 ORDER BY due_date, sequence", d.ID); err != nil {
			return nil, err
		}
	}
	return debts, nil
}

// queryDebts reads every matching debt row and closes the result set before
// returning, so callers can issue follow-up queries.
func (s *SQLiteStore) queryDebts(ctx context.Context, query string, args ...any) ([]*models.Debt, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	defer rows.Close()

	var debts []*models.Debt
	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan debt: %w", err)
		}
		debts = append(debts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate debts: %w", err)
	}
	return debts, nil
}

// ListInstallments retrieves a debt's installments in sequence order.
func (s *SQLiteStore) ListInstallments(ctx context.Context, debtID string) ([]models.Installment, error) {
	return s.listInstallments(ctx, "WHERE debt_id = ? ORDER BY sequence", debtID)
}

func (s *SQLiteStore) listInstallments(ctx context.Context, clause string, args ...any) ([]models.Installment, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, debt_id, sequence, amount, due_date, paid, paid_at FROM installments "+clause,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get installments: %w", err)
	}
	defer rows.Close()

	var installments []models.Installment
	for rows.Next() {
		var (
			inst    models.Installment
			dueDate string
			paid    int
			paidAt  sql.NullInt64
		)
		if err := rows.Scan(&inst.ID, &inst.DebtID, &inst.Sequence, &inst.Amount, &dueDate, &paid, &paidAt); err != nil {
			return nil, fmt.Errorf("failed to scan installment: %w", err)
		}
		if inst.DueDate, err = parseDate(dueDate); err != nil {
			return nil, err
		}
		inst.Paid = paid == 1
		inst.PaidAt = scanNullUnix(paidAt)
		installments = append(installments, inst)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate installments: %w", err)
	}

	return installments, nil
}

// expectOneRow turns a zero-row update into a conflict: the row was changed
// or removed after the caller read it.
func expectOneRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check %s update: %w", entity, err)
	}
	if n == 0 {
		return apperr.Conflict("%s %s was modified concurrently", entity, id)
	}
	return nil
}
