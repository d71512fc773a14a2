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

const splitColumns = `id, group_id, created_by, description, total_amount, currency, split_type,
	approval_status, settled, version, created_at`

func scanSplit(row rowScanner) (*models.Split, error) {
	sp := &models.Split{}
	var (
		splitType, status string
		settled           int
	)
	err := row.Scan(&sp.ID, &sp.GroupID, &sp.CreatedBy, &sp.Description, &sp.TotalAmount, &sp.Currency,
		&splitType, &status, &settled, &sp.Version, &sp.CreatedAt)
	if err != nil {
		return nil, err
	}
	sp.SplitType = models.SplitType(splitType)
	sp.ApprovalStatus = models.ApprovalStatus(status)
	sp.Settled = settled == 1
	return sp, nil
}

// CreateSplit persists a split with its payers, shares and approvals in one
// transaction.
func (s *SQLiteStore) CreateSplit(ctx context.Context, split *models.Split) error {
	if split.ID == "" {
		split.ID = uuid.New().String()
	}
	if split.CreatedAt == 0 {
		split.CreatedAt = time.Now().Unix()
	}
	if split.Version == 0 {
		split.Version = 1
	}

	return s.atomic(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			`INSERT INTO splits (`+splitColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			split.ID, split.GroupID, split.CreatedBy, split.Description, split.TotalAmount, split.Currency,
			string(split.SplitType), string(split.ApprovalStatus), boolInt(split.Settled), split.Version, split.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split: %w", err)
		}

		if err := insertAllocations(ctx, q, "split_payers", split.ID, split.Payers); err != nil {
			return err
		}
		if err := insertAllocations(ctx, q, "split_shares", split.ID, split.Participants); err != nil {
			return err
		}
		return insertApprovals(ctx, q, split)
	})
}

func insertAllocations(ctx context.Context, q querier, table, splitID string, allocations []models.Allocation) error {
	for i, a := range allocations {
		_, err := q.ExecContext(ctx,
			"INSERT INTO "+table+" (split_id, member_id, amount, position) VALUES (?, ?, ?, ?)",
			splitID, a.MemberID, a.Amount, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}
	return nil
}

func insertApprovals(ctx context.Context, q querier, split *models.Split) error {
	for _, a := range split.Approvals {
		var respondedAt any
		if a.RespondedAt != 0 {
			respondedAt = a.RespondedAt
		}
		_, err := q.ExecContext(ctx,
			`INSERT INTO split_approvals (split_id, member_id, party_id, status, reason, responded_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			split.ID, a.MemberID, a.PartyID, string(a.Status), a.Reason, respondedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert split approval: %w", err)
		}
	}
	return nil
}

// GetSplit retrieves a split by ID with payers, shares and approvals.
func (s *SQLiteStore) GetSplit(ctx context.Context, id string) (*models.Split, error) {
	row := s.q.QueryRowContext(ctx, "SELECT "+splitColumns+" FROM splits WHERE id = ?", id)
	split, err := scanSplit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("split", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get split: %w", err)
	}

	if err := s.loadSplitDetails(ctx, split); err != nil {
		return nil, err
	}
	return split, nil
}

// UpdateSplit writes status, settled flag and approvals if the version still
// matches.
func (s *SQLiteStore) UpdateSplit(ctx context.Context, split *models.Split) error {
	err := s.atomic(ctx, func(q querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE splits SET approval_status = ?, settled = ?, version = version + 1
			 WHERE id = ? AND version = ?`,
			string(split.ApprovalStatus), boolInt(split.Settled), split.ID, split.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update split: %w", err)
		}
		if err := expectOneRow(res, "split", split.ID); err != nil {
			return err
		}

		if _, err := q.ExecContext(ctx, "DELETE FROM split_approvals WHERE split_id = ?", split.ID); err != nil {
			return fmt.Errorf("failed to clear split approvals: %w", err)
		}
		return insertApprovals(ctx, q, split)
	})
	if err != nil {
		return err
	}

	split.Version++
	return nil
}

// ListGroupSplits retrieves every split of a group, oldest first.
func (s *SQLiteStore) ListGroupSplits(ctx context.Context, groupID string) ([]*models.Split, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT "+splitColumns+" FROM splits WHERE group_id = ? ORDER BY created_at, id",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list splits: %w", err)
	}

	var splits []*models.Split
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate splits: %w", err)
	}

	for _, split := range splits {
		if err := s.loadSplitDetails(ctx, split); err != nil {
			return nil, err
		}
	}
	return splits, nil
}

func (s *SQLiteStore) loadSplitDetails(ctx context.Context, split *models.Split) error {
	var err error
	if split.Payers, err = s.listAllocations(ctx, "split_payers", split.ID); err != nil {
		return err
	}
	if split.Participants, err = s.listAllocations(ctx, "split_shares", split.ID); err != nil {
		return err
	}

	rows, err := s.q.QueryContext(ctx,
		`SELECT a.member_id, a.party_id, a.status, a.reason, a.responded_at
		 FROM split_approvals a
		 JOIN group_members m ON m.id = a.member_id
		 WHERE a.split_id = ?
		 ORDER BY m.position`,
		split.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get split approvals: %w", err)
	}
	defer rows.Close()

	split.Approvals = nil
	for rows.Next() {
		var (
			a           models.SplitApproval
			status      string
			respondedAt sql.NullInt64
		)
		if err := rows.Scan(&a.MemberID, &a.PartyID, &status, &a.Reason, &respondedAt); err != nil {
			return fmt.Errorf("failed to scan split approval: %w", err)
		}
		a.Status = models.ApprovalStatus(status)
		a.RespondedAt = respondedAt.Int64
		split.Approvals = append(split.Approvals, a)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate split approvals: %w", err)
	}
	return nil
}

func (s *SQLiteStore) listAllocations(ctx context.Context, table, splitID string) ([]models.Allocation, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT member_id, amount FROM "+table+" WHERE split_id = ? ORDER BY position",
		splitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", table, err)
	}
	defer rows.Close()

	var allocations []models.Allocation
	for rows.Next() {
		var a models.Allocation
		if err := rows.Scan(&a.MemberID, &a.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", table, err)
		}
		allocations = append(allocations, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s: %w", table, err)
	}
	return allocations, nil
}
