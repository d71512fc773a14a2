package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
)

func newAuthenticator(t *testing.T) *PasswordAuthenticator {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)
}

func TestPasswordAuthenticator(t *testing.T) {
	ctx := context.Background()
	a := newAuthenticator(t)

	user, err := a.Register(ctx, " Alice@Example.com ", "Alice", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "correct horse", user.PasswordHash)

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"valid", "alice@example.com", "correct horse", nil},
		{"case-insensitive email", "ALICE@example.com", "correct horse", nil},
		{"wrong password", "alice@example.com", "wrong horse", ErrInvalidCredentials},
		{"unknown user", "bob@example.com", "correct horse", ErrInvalidCredentials},
		{"malformed email", "not-an-email", "correct horse", ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Authenticate(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, got.ID)
		})
	}

	_, err = a.Register(ctx, "alice@example.com", "Again", "another password")
	assert.ErrorIs(t, err, ErrEmailExists)

	_, err = a.Register(ctx, "carol@example.com", "Carol", "short")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestJWTManager(t *testing.T) {
	user := &models.User{ID: "user-1", Email: "alice@example.com"}
	m := NewJWTManager("secret", time.Hour)

	token, err := m.Generate(user)
	require.NoError(t, err)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, "alice@example.com", claims.Email)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour).Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewJWTManager("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Validate(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Validate("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
