package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"validation", Validation("amount must be positive"), ErrValidation},
		{"not found", NotFound("debt", "d1"), ErrNotFound},
		{"unauthorized", Unauthorized("only the creditor may do this"), ErrUnauthorizedTransition},
		{"conflict", Conflict("version mismatch"), ErrConflict},
		{"invariant", Invariant("installments drifted"), ErrInvariantViolation},
		{"wrapped twice", fmt.Errorf("respond: %w", Conflict("stale")), ErrConflict},
		{"plain error", errors.New("disk full"), nil},
		{"nil", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "not found: debt d1", NotFound("debt", "d1").Error())
	assert.Equal(t, "validation failed: amount must be positive", Validation("amount must be %s", "positive").Error())
}
