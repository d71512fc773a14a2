package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()

	alice := s.register(t, "alice@example.com")
	assert.NotEmpty(t, alice.userID)
	assert.NotEmpty(t, alice.token)

	login, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "Alice@Example.com",
		Password: "correct horse",
	}))
	require.NoError(t, err)
	assert.Equal(t, alice.userID, login.Msg.User.Id)

	me, err := s.auth.GetCurrentUser(ctx, as(session{token: login.Msg.Token}, &pb.GetCurrentUserRequest{}))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Msg.User.Email)
	assert.Equal(t, "alice@example.com", me.Msg.User.DisplayName)
}

func TestAuthErrors(t *testing.T) {
	s := setupTestServer(t)
	ctx := context.Background()
	s.register(t, "alice@example.com")

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "duplicate email",
			call: func() error {
				_, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
					Email: "alice@example.com", DisplayName: "Alice", Password: "another secret",
				}))
				return err
			},
			want: connect.CodeAlreadyExists,
		},
		{
			name: "short password",
			call: func() error {
				_, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
					Email: "bob@example.com", DisplayName: "Bob", Password: "short",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "malformed email",
			call: func() error {
				_, err := s.auth.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
					Email: "carol at example", Password: "long enough",
				}))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "wrong password",
			call: func() error {
				_, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
					Email: "alice@example.com", Password: "wrong horse",
				}))
				return err
			},
			want: connect.CodeUnauthenticated,
		},
		{
			name: "unknown user",
			call: func() error {
				_, err := s.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
					Email: "nobody@example.com", Password: "correct horse",
				}))
				return err
			},
			want: connect.CodeUnauthenticated,
		},
		{
			name: "no token",
			call: func() error {
				_, err := s.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
				return err
			},
			want: connect.CodeUnauthenticated,
		},
		{
			name: "forged token",
			call: func() error {
				_, err := s.ledger.ListDebts(ctx, as(session{token: "not.a.jwt"}, &pb.ListDebtsRequest{}))
				return err
			},
			want: connect.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.want, tt.call())
		})
	}
}
