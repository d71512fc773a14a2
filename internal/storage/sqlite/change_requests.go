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
)

const changeRequestColumns = `id, debt_id, requested_by, target_approver, kind, payload, reason,
	status, response_message, created_at, resolved_at`

func scanChangeRequest(row rowScanner) (*models.ChangeRequest, error) {
	req := &models.ChangeRequest{}
	var (
		debtID     sql.NullString
		kind       string
		payload    string
		status     string
		resolvedAt sql.NullInt64
	)
	err := row.Scan(&req.ID, &debtID, &req.RequestedBy, &req.TargetApprover, &kind, &payload, &req.Reason,
		&status, &req.ResponseMessage, &req.CreatedAt, &resolvedAt)
	if err != nil {
		return nil, err
	}

	req.DebtID = debtID.String
	req.Status = models.ChangeRequestStatus(status)
	req.ResolvedAt = resolvedAt.Int64
	if req.Mutation, err = models.DecodeMutation(models.MutationKind(kind), []byte(payload)); err != nil {
		return nil, err
	}
	return req, nil
}

// CreateChangeRequest persists a new pending change request.
func (s *SQLiteStore) CreateChangeRequest(ctx context.Context, req *models.ChangeRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.CreatedAt == 0 {
		req.CreatedAt = time.Now().Unix()
	}
	if req.Status == "" {
		req.Status = models.RequestPending
	}

	payload, err := models.EncodeMutation(req.Mutation)
	if err != nil {
		return err
	}

	_, err = s.q.ExecContext(ctx,
		`INSERT INTO change_requests (`+changeRequestColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.ID, nullString(req.DebtID), req.RequestedBy, req.TargetApprover, string(req.Kind()), string(payload),
		req.Reason, string(req.Status), req.ResponseMessage, req.CreatedAt, nil,
	)
	if err != nil {
		return fmt.Errorf("failed to insert change request: %w", err)
	}
	return nil
}

// GetChangeRequest retrieves a change request by ID.
func (s *SQLiteStore) GetChangeRequest(ctx context.Context, id string) (*models.ChangeRequest, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+changeRequestColumns+" FROM change_requests WHERE id = ?", id)
	req, err := scanChangeRequest(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("change request", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get change request: %w", err)
	}
	return req, nil
}

// ResolveChangeRequest moves a pending request to its final status. The
// status check and the update are one statement, so a request resolves once.
func (s *SQLiteStore) ResolveChangeRequest(ctx context.Context, req *models.ChangeRequest) error {
	if req.ResolvedAt == 0 {
		req.ResolvedAt = time.Now().Unix()
	}

	res, err := s.q.ExecContext(ctx,
		`UPDATE change_requests
		 SET status = ?, response_message = ?, resolved_at = ?, debt_id = ?
		 WHERE id = ? AND status = ?`,
		string(req.Status), req.ResponseMessage, req.ResolvedAt, nullString(req.DebtID),
		req.ID, string(models.RequestPending),
	)
	if err != nil {
		return fmt.Errorf("failed to resolve change request: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check change request update: %w", err)
	}
	if n == 0 {
		return apperr.Conflict("change request %s is no longer pending", req.ID)
	}
	return nil
}

// ListChangeRequests retrieves requests sent by or addressed to partyID.
func (s *SQLiteStore) ListChangeRequests(ctx context.Context, partyID string, status models.ChangeRequestStatus) ([]*models.ChangeRequest, error) {
	query := "SELECT " + changeRequestColumns + " FROM change_requests WHERE (requested_by = ? OR target_approver = ?)"
	args := []any{partyID, partyID}
	if status != "" {
		query += " AND status = ?"
		args = append(args, string(status))
	}
	query += " ORDER BY created_at DESC, id"

	return s.queryChangeRequests(ctx, query, args...)
}

// ListPendingChangeRequestsForDebt retrieves unresolved requests against a debt.
func (s *SQLiteStore) ListPendingChangeRequestsForDebt(ctx context.Context, debtID string) ([]*models.ChangeRequest, error) {
	return s.queryChangeRequests(ctx,
		"SELECT "+changeRequestColumns+" FROM change_requests WHERE debt_id = ? AND status = ? ORDER BY created_at, id",
		debtID, string(models.RequestPending),
	)
}

func (s *SQLiteStore) queryChangeRequests(ctx context.Context, query string, args ...any) ([]*models.ChangeRequest, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list change requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.ChangeRequest
	for rows.Next() {
		req, err := scanChangeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan change request: %w", err)
		}
		requests = append(requests, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate change requests: %w", err)
	}

	return requests, nil
}
