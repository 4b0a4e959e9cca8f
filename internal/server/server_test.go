package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/splitledger/internal/config"
	"github.com/mmynk/splitledger/internal/storage/sqlite"
	"github.com/mmynk/splitledger/pkg/logging"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.CORSOrigin = "https://app.example.com"

	store, err := sqlite.New(filepath.Join(t.TempDir(), "server.db"))
	require.NoError(t, err)

	srv := httptest.NewServer(NewHandler(cfg, store, logging.Discard(), Options{BcryptCost: bcrypt.MinCost}))
	t.Cleanup(func() {
		srv.Close()
		store.Close()
	})
	return srv
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)
	status, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok\n", body)
}

func TestRPCThroughRouter(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	authClient := protoconnect.NewAuthServiceClient(srv.Client(), srv.URL)
	reg, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "password123",
	}))
	require.NoError(t, err)

	groups := protoconnect.NewGroupServiceClient(srv.Client(), srv.URL)
	_, err = groups.ListGroups(ctx, connect.NewRequest(&pb.ListGroupsRequest{}))
	assert.Equal(t, connect.CodeUnauthenticated, connect.CodeOf(err))

	req := connect.NewRequest(&pb.CreateGroupRequest{Name: "Trip"})
	req.Header().Set("Authorization", "Bearer "+reg.Msg.Token)
	created, err := groups.CreateGroup(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, reg.Msg.User.Id, created.Msg.Group.OwnerId)

	// Served RPCs show up in the metrics endpoint.
	status, body := get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "splitledger_rpc_requests_total")
	assert.Contains(t, body, `procedure="/splitledger.v1.GroupService/CreateGroup"`)
}

// postJSON sends a Connect unary call as a browser would, without a generated client.
func postJSON(t *testing.T, url, contentType, token, body string) map[string]any {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestJSONWireFormat(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	authClient := protoconnect.NewAuthServiceClient(srv.Client(), srv.URL)

	var users []*pb.RegisterResponse
	for _, name := range []string{"alice", "bob"} {
		reg, err := authClient.Register(ctx, connect.NewRequest(&pb.RegisterRequest{
			Name: name, Email: name + "@example.com", Password: "password123",
		}))
		require.NoError(t, err)
		users = append(users, reg.Msg)
	}
	alice, bob := users[0].Token, users[1].Token

	for _, contentType := range []string{"application/json", "application/json; charset=utf-8"} {
		t.Run(contentType, func(t *testing.T) {
			group := postJSON(t, srv.URL+protoconnect.GroupServiceCreateGroupProcedure, contentType, alice, `{"name":"Trip"}`)["group"].(map[string]any)
			groupID := group["id"].(string)
			postJSON(t, srv.URL+protoconnect.GroupServiceAddMemberProcedure, contentType, alice,
				`{"groupId":"`+groupID+`","email":"bob@example.com"}`)

			// Request fields may use either the proto or the JSON name.
			expense := postJSON(t, srv.URL+protoconnect.ExpenseServiceCreateExpenseProcedure, contentType, bob,
				`{"group_id":"`+groupID+`","amount":"100","splitType":"EQUAL"}`)["expense"].(map[string]any)
			assert.Equal(t, "100.00", expense["amount"])
			for _, share := range expense["shares"].([]any) {
				assert.Equal(t, "50.00", share.(map[string]any)["amount"])
			}

			balances := postJSON(t, srv.URL+protoconnect.GroupServiceGetGroupBalancesProcedure, contentType, alice,
				`{"groupId":"`+groupID+`"}`)
			rows := map[string]map[string]any{}
			for _, b := range balances["balances"].([]any) {
				row := b.(map[string]any)
				rows[row["userId"].(string)] = row
			}
			a, b := rows[users[0].User.Id], rows[users[1].User.Id]
			require.NotNil(t, a)
			require.NotNil(t, b)
			assert.Equal(t, "-50.00", a["net"])
			assert.Equal(t, "0.00", a["totalPaid"])
			assert.Equal(t, "50.00", b["net"])
			assert.Equal(t, "100.00", b["totalPaid"])

			debts := balances["debts"].([]any)
			require.Len(t, debts, 1)
			assert.Equal(t, "50.00", debts[0].(map[string]any)["amount"])
		})
	}
}

func TestUnknownProcedure(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/splitledger.v1.GroupService/DeleteGroup", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)
	req, err := http.NewRequest(http.MethodOptions, srv.URL+protoconnect.GroupServiceListGroupsProcedure, nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://app.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://app.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Headers"), "Authorization")
}
