package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func TestRegisterAndLogin(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	alice := register(t, c, "alice")
	if alice.user.Id == "" || alice.token == "" {
		t.Fatal("expected user ID and token")
	}

	resp, err := c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{
		Email:    "ALICE@example.com",
		Password: "password-alice",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Msg.User.Id != alice.user.Id {
		t.Errorf("Login returned user %s, want %s", resp.Msg.User.Id, alice.user.Id)
	}

	me, err := c.auth.GetCurrentUser(ctx, as(session{token: resp.Msg.Token}, &pb.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.Name != "alice" || me.Msg.User.Email != "alice@example.com" {
		t.Errorf("unexpected current user: %+v", me.Msg.User)
	}
}

func TestRegister_Errors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	register(t, c, "alice")

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		want connect.Code
	}{
		{"duplicate email", &pb.RegisterRequest{Name: "Al", Email: "alice@example.com", Password: "longenough"}, connect.CodeAlreadyExists},
		{"weak password", &pb.RegisterRequest{Name: "Bob", Email: "bob@example.com", Password: "short"}, connect.CodeInvalidArgument},
		{"missing name", &pb.RegisterRequest{Email: "carol@example.com", Password: "longenough"}, connect.CodeInvalidArgument},
		{"bad email", &pb.RegisterRequest{Name: "Dan", Email: "dan", Password: "longenough"}, connect.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.auth.Register(ctx, connect.NewRequest(tt.req))
			expectCode(t, err, tt.want)
		})
	}
}

func TestLogin_Errors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	register(t, c, "alice")

	_, err := c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "alice@example.com", Password: "wrong-password"}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "nobody@example.com", Password: "password-alice"}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.auth.Login(ctx, connect.NewRequest(&pb.LoginRequest{Email: "alice@example.com"}))
	expectCode(t, err, connect.CodeInvalidArgument)
}

func TestAuthRequired(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.auth.GetCurrentUser(ctx, connect.NewRequest(&pb.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.groups.ListGroups(ctx, as(session{token: "garbage"}, &pb.ListGroupsRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}
