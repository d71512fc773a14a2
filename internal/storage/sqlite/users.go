package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/models"
)

// CreateUser inserts a new user into the database.
func (s *SQLiteStore) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, display_name, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.q.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.DisplayName,
		user.PasswordHash,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return apperr.Conflict("email %s is already registered", user.Email)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves a user by their email address.
func (s *SQLiteStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

// GetUserByID retrieves a user by their ID.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *SQLiteStore) getUser(ctx context.Context, column, value string) (*models.User, error) {
	query := `
		SELECT id, email, display_name, password_hash, created_at, updated_at
		FROM users
		WHERE ` + column + ` = ?
	`

	user := &models.User{}
	err := s.q.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // User not found
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", column, err)
	}

	return user, nil
}

// CreateContact persists a new virtual contact.
func (s *SQLiteStore) CreateContact(ctx context.Context, contact *models.Contact) error {
	if contact.ID == "" {
		contact.ID = uuid.New().String()
	}
	if contact.CreatedAt == 0 {
		contact.CreatedAt = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		"INSERT INTO contacts (id, owner_id, name, created_at) VALUES (?, ?, ?, ?)",
		contact.ID, contact.OwnerID, contact.Name, contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert contact: %w", err)
	}
	return nil
}

// ListContacts returns the contacts owned by ownerID, by name.
func (s *SQLiteStore) ListContacts(ctx context.Context, ownerID string) ([]*models.Contact, error) {
	rows, err := s.q.QueryContext(ctx,
		"SELECT id, owner_id, name, created_at FROM contacts WHERE owner_id = ? ORDER BY name",
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*models.Contact
	for rows.Next() {
		c := &models.Contact{}
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}

// ResolveParty looks id up among users first, then contacts.
func (s *SQLiteStore) ResolveParty(ctx context.Context, id string) (*models.Party, error) {
	user, err := s.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user.Party(), nil
	}

	c := &models.Contact{}
	err = s.q.QueryRowContext(ctx,
		"SELECT id, owner_id, name, created_at FROM contacts WHERE id = ?",
		id,
	).Scan(&c.ID, &c.OwnerID, &c.Name, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("party", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return c.Party(), nil
}
