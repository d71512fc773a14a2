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

// CreateGroup persists a new group with its members.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	return s.atomic(ctx, func(q querier) error {
		_, err := q.ExecContext(ctx,
			"INSERT INTO groups (id, name, currency, created_by, created_at) VALUES (?, ?, ?, ?, ?)",
			group.ID, group.Name, group.Currency, group.CreatedBy, group.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert group: %w", err)
		}

		for i := range group.Members {
			m := &group.Members[i]
			if m.ID == "" {
				m.ID = uuid.New().String()
			}
			m.GroupID = group.ID

			_, err = q.ExecContext(ctx,
				`INSERT INTO group_members (id, group_id, party_id, kind, display_name, position)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				m.ID, m.GroupID, m.PartyID, string(m.Kind), m.DisplayName, i,
			)
			if err != nil {
				return fmt.Errorf("failed to insert group member: %w", err)
			}
		}
		return nil
	})
}

// GetGroup retrieves a group by ID, including its members.
func (s *SQLiteStore) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	group := &models.Group{}
	err := s.q.QueryRowContext(ctx,
		"SELECT id, name, currency, created_by, created_at FROM groups WHERE id = ?",
		id,
	).Scan(&group.ID, &group.Name, &group.Currency, &group.CreatedBy, &group.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("group", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	if group.Members, err = s.listMembers(ctx, id); err != nil {
		return nil, err
	}
	return group, nil
}

// ListGroupsForParty retrieves every group partyID is a member of.
func (s *SQLiteStore) ListGroupsForParty(ctx context.Context, partyID string) ([]*models.Group, error) {
	rows, err := s.q.QueryContext(ctx,
		`SELECT g.id, g.name, g.currency, g.created_by, g.created_at
		 FROM groups g
		 JOIN group_members m ON m.group_id = g.id
		 WHERE m.party_id = ?
		 ORDER BY g.created_at DESC, g.id`,
		partyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}

	var groups []*models.Group
	for rows.Next() {
		g := &models.Group{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Currency, &g.CreatedBy, &g.CreatedAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan group: %w", err)
		}
		groups = append(groups, g)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate groups: %w", err)
	}

	for _, g := range groups {
		if g.Members, err = s.listMembers(ctx, g.ID); err != nil {
			return nil, err
		}
	}
	return groups, nil
}

func (s *SQLiteStore) listMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, group_id, party_id, kind, display_name FROM group_members WHERE group_id = ? ORDER BY position",
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get group members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var (
			m    models.Member
			kind string
		)
		if err := rows.Scan(&m.ID, &m.GroupID, &m.PartyID, &kind, &m.DisplayName); err != nil {
			return nil, fmt.Errorf("failed to scan group member: %w", err)
		}
		m.Kind = models.PartyKind(kind)
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate group members: %w", err)
	}

	return members, nil
}
