package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/notify"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/logging"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

type testServer struct {
	auth   protoconnect.AuthServiceClient
	ledger protoconnect.LedgerServiceClient
	groups protoconnect.GroupServiceClient
	sent   *notify.Recorder
}

// setupTestServer serves all three services behind the auth interceptor, the
// way cmd/server wires them.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := logging.Discard()
	sent := &notify.Recorder{}
	engine := ledger.New(store, ledger.WithNotifier(sent), ledger.WithLogger(logger))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			protoconnect.AuthServiceRegisterProcedure,
			protoconnect.AuthServiceLoginProcedure,
		),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), interceptors))
	mux.Handle(protoconnect.NewLedgerServiceHandler(NewLedgerService(engine, logger), interceptors))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(engine, logger), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return &testServer{
		auth:   protoconnect.NewAuthServiceClient(server.Client(), server.URL),
		ledger: protoconnect.NewLedgerServiceClient(server.Client(), server.URL),
		groups: protoconnect.NewGroupServiceClient(server.Client(), server.URL),
		sent:   sent,
	}
}

type session struct {
	userID string
	token  string
}

func (s *testServer) register(t *testing.T, email string) session {
	t.Helper()
	resp, err := s.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Email:       email,
		DisplayName: email,
		Password:    "correct horse",
	}))
	require.NoError(t, err)
	return session{userID: resp.Msg.User.Id, token: resp.Msg.Token}
}

// as builds a request authenticated as sess.
func as[T any](sess session, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+sess.token)
	return req
}

func requireCode(t *testing.T, want connect.Code, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, connect.CodeOf(err), "error: %v", err)
}

// date builds the wire form of a calendar date.
func date(t *testing.T, s string) *timestamppb.Timestamp {
	t.Helper()
	d, err := time.Parse(time.DateOnly, s)
	require.NoError(t, err)
	return timestamppb.New(d)
}
