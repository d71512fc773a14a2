package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/apperr"
	"github.com/mmynk/splitledger/internal/auth"
)

// toConnectError maps domain and auth errors onto Connect codes. Errors that
// are already Connect errors pass through.
func toConnectError(err error) error {
	if err == nil {
		return nil
	}
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}

	switch {
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, auth.ErrWeakPassword), errors.Is(err, auth.ErrInvalidEmail):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return connect.NewError(connect.CodeUnauthenticated, err)
	}

	switch apperr.Kind(err) {
	case apperr.ErrValidation:
		return connect.NewError(connect.CodeInvalidArgument, err)
	case apperr.ErrNotFound:
		return connect.NewError(connect.CodeNotFound, err)
	case apperr.ErrUnauthorizedTransition:
		return connect.NewError(connect.CodePermissionDenied, err)
	case apperr.ErrConflict:
		return connect.NewError(connect.CodeAborted, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// invalid reports a malformed request field.
func invalid(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, apperr.Validation(format, args...))
}

// fail logs err under op and converts it for the wire. Caller mistakes are
// logged at info, everything else at error.
func fail(ctx context.Context, logger *slog.Logger, op string, err error) error {
	ce := toConnectError(err)
	if connect.CodeOf(ce) == connect.CodeInternal {
		logger.ErrorContext(ctx, op+" failed", "error", err)
	} else {
		logger.InfoContext(ctx, op+" rejected", "error", err)
	}
	return ce
}
