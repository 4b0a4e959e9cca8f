package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/logging"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

type testClients struct {
	auth        protoconnect.AuthServiceClient
	groups      protoconnect.GroupServiceClient
	expenses    protoconnect.ExpenseServiceClient
	settlements protoconnect.SettlementServiceClient
}

// setupTestServer starts every service against a fresh SQLite database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	logger := logging.Discard()
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store).WithCost(bcrypt.MinCost)

	public := connect.WithInterceptors(middleware.LoggingInterceptor(logger), middleware.OptionalAuth(jwtManager))
	authenticated := connect.WithInterceptors(middleware.LoggingInterceptor(logger), middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()
	mux.Handle(protoconnect.NewAuthServiceHandler(NewAuthService(authenticator, jwtManager, store, logger), public))
	mux.Handle(protoconnect.NewGroupServiceHandler(NewGroupService(store, logger), authenticated))
	mux.Handle(protoconnect.NewExpenseServiceHandler(NewExpenseService(store, "INR", logger), authenticated))
	mux.Handle(protoconnect.NewSettlementServiceHandler(NewSettlementService(store, "INR", logger), authenticated))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		auth:        protoconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		groups:      protoconnect.NewGroupServiceClient(http.DefaultClient, server.URL),
		expenses:    protoconnect.NewExpenseServiceClient(http.DefaultClient, server.URL),
		settlements: protoconnect.NewSettlementServiceClient(http.DefaultClient, server.URL),
	}
}

// session is a registered user and their bearer token.
type session struct {
	user  *pb.User
	token string
}

func register(t *testing.T, c *testClients, name string) session {
	t.Helper()
	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&pb.RegisterRequest{
		Name:     name,
		Email:    name + "@example.com",
		Password: "password-" + name,
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", name, err)
	}
	return session{user: resp.Msg.User, token: resp.Msg.Token}
}

// as wraps msg in a request authenticated as s.
func as[T any](s session, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+s.token)
	return req
}

func expectCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

// newGroup creates a group owned by owner with the given extra members.
func newGroup(t *testing.T, c *testClients, owner session, members ...session) *pb.Group {
	t.Helper()
	ctx := context.Background()
	resp, err := c.groups.CreateGroup(ctx, as(owner, &pb.CreateGroupRequest{Name: "Flat"}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	for _, m := range members {
		_, err := c.groups.AddMember(ctx, as(owner, &pb.AddMemberRequest{
			GroupId: resp.Msg.Group.Id,
			Email:   m.user.Email,
		}))
		if err != nil {
			t.Fatalf("AddMember(%s) failed: %v", m.user.Name, err)
		}
	}
	return resp.Msg.Group
}
