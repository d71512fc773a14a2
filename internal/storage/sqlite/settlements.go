package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
)

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	// Generate ID if not set
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO settlements (id, group_id, from_member_id, to_member_id, amount, currency, created_at, created_by, note)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.GroupID, settlement.FromMemberID, settlement.ToMemberID,
		settlement.Amount, settlement.Currency, settlement.CreatedAt, settlement.CreatedBy, nullString(settlement.Note),
	)
	if err != nil {
		return fmt.Errorf("failed to insert settlement: %w", err)
	}

	return nil
}

// ListSettlements retrieves all settlements for a group, newest first.
func (s *SQLiteStore) ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT id, group_id, from_member_id, to_member_id, amount, currency, created_at, created_by, note
		 FROM settlements WHERE group_id = ? ORDER BY created_at DESC, id`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements by group: %w", err)
	}
	defer rows.Close()

	var settlements []*models.Settlement
	for rows.Next() {
		settlement := &models.Settlement{}
		var note sql.NullString

		if err := rows.Scan(&settlement.ID, &settlement.GroupID, &settlement.FromMemberID, &settlement.ToMemberID,
			&settlement.Amount, &settlement.Currency, &settlement.CreatedAt, &settlement.CreatedBy, &note); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}

		if note.Valid {
			settlement.Note = note.String
		}

		settlements = append(settlements, settlement)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}
