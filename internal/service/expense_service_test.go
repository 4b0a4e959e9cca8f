package service

import (
	"context"
	"sort"
	"testing"

	"connectrpc.com/connect"

	pb "github.com/mmynk/splitledger/pkg/proto"
)

func shareAmounts(e *pb.Expense) map[string]string {
	out := make(map[string]string, len(e.Shares))
	for _, s := range e.Shares {
		out[s.UserId] = s.Amount
	}
	return out
}

func TestCreateExpense_EqualSplitRemainder(t *testing.T) {
	c := setupTestServer(t)
	alice := register(t, c, "alice")
	bob := register(t, c, "bob")
	carol := register(t, c, "carol")
	group := newGroup(t, c, alice, bob, carol)

	resp, err := c.expenses.CreateExpense(context.Background(), as(alice, &pb.CreateExpenseRequest{
		GroupId:   group.Id,
		Amount:    "10",
		SplitType: "EQUAL",
		Note:      "Groceries",
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}

	e := resp.Msg.Expense
	if e.PayerId != alice.user.Id {
		t.Errorf("payer should default to caller, got %s", e.PayerId)
	}
	if e.Currency != "INR" {
		t.Errorf("currency should default to INR, got %s", e.Currency)
	}
	if e.Amount != "10.00" {
		t.Errorf("expected amount rendered as 10.00, got %q", e.Amount)
	}
	if len(e.Shares) != 3 {
		t.Fatalf("expected 3 shares, got %d", len(e.Shares))
	}

	// The leftover cent goes to the lowest member ID.
	ids := []string{alice.user.Id, bob.user.Id, carol.user.Id}
	sort.Strings(ids)
	amounts := shareAmounts(e)
	for i, id := range ids {
		want := "3.33"
		if i == 0 {
			want = "3.34"
		}
		if amounts[id] != want {
			t.Errorf("share of %s: expected %s, got %s", id, want, amounts[id])
		}
	}
}

func TestCreateExpense_PercentAndCustom(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice")
	bob := register(t, c, "bob")
	group := newGroup(t, c, alice, bob)

	resp, err := c.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{
		GroupId:   group.Id,
		PayerId:   bob.user.Id,
		Amount:    "99.99",
		Currency:  "usd",
		SplitType: "percent",
		Shares: []*pb.ShareInput{
			{UserId: alice.user.Id, Percent: "60"},
			{UserId: bob.user.Id, Percent: "40"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense(PERCENT) failed: %v", err)
	}
	e := resp.Msg.Expense
	if e.SplitType != "PERCENT" || e.Currency != "USD" || e.CreatedBy != alice.user.Id || e.PayerId != bob.user.Id {
		t.Errorf("unexpected expense header: %v", e)
	}
	// 59.994 and 39.996: floors 59.99 and 39.99, the spare cent goes to the larger remainder (bob).
	amounts := shareAmounts(e)
	if amounts[alice.user.Id] != "59.99" || amounts[bob.user.Id] != "40.00" {
		t.Errorf("unexpected percent shares: %v", amounts)
	}

	resp, err = c.expenses.CreateExpense(ctx, as(bob, &pb.CreateExpenseRequest{
		GroupId:   group.Id,
		Amount:    "10",
		SplitType: "CUSTOM",
		Shares: []*pb.ShareInput{
			{UserId: alice.user.Id, Amount: "4"},
			{UserId: bob.user.Id, Amount: "6.0"},
		},
	}))
	if err != nil {
		t.Fatalf("CreateExpense(CUSTOM) failed: %v", err)
	}
	amounts = shareAmounts(resp.Msg.Expense)
	if amounts[alice.user.Id] != "4.00" || amounts[bob.user.Id] != "6.00" {
		t.Errorf("unexpected custom shares: %v", amounts)
	}
}

func TestCreateExpense_Invalid(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice")
	bob := register(t, c, "bob")
	mallory := register(t, c, "mallory")
	group := newGroup(t, c, alice, bob)

	base := func(mod func(r *pb.CreateExpenseRequest)) *pb.CreateExpenseRequest {
		r := &pb.CreateExpenseRequest{GroupId: group.Id, Amount: "10", SplitType: "EQUAL"}
		mod(r)
		return r
	}

	tests := []struct {
		name string
		as   session
		req  *pb.CreateExpenseRequest
		want connect.Code
	}{
		{"zero amount", alice, base(func(r *pb.CreateExpenseRequest) { r.Amount = "0" }), connect.CodeInvalidArgument},
		{"missing amount", alice, base(func(r *pb.CreateExpenseRequest) { r.Amount = "" }), connect.CodeInvalidArgument},
		{"not a number", alice, base(func(r *pb.CreateExpenseRequest) { r.Amount = "ten" }), connect.CodeInvalidArgument},
		{"negative amount", alice, base(func(r *pb.CreateExpenseRequest) { r.Amount = "-5" }), connect.CodeInvalidArgument},
		{"three decimals", alice, base(func(r *pb.CreateExpenseRequest) { r.Amount = "10.001" }), connect.CodeInvalidArgument},
		{"bad currency", alice, base(func(r *pb.CreateExpenseRequest) { r.Currency = "XYZ1" }), connect.CodeInvalidArgument},
		{"unknown split type", alice, base(func(r *pb.CreateExpenseRequest) { r.SplitType = "SHARES" }), connect.CodeInvalidArgument},
		{"payer not in group", alice, base(func(r *pb.CreateExpenseRequest) { r.PayerId = mallory.user.Id }), connect.CodeInvalidArgument},
		{"equal with shares", alice, base(func(r *pb.CreateExpenseRequest) {
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id}}
		}), connect.CodeInvalidArgument},
		{"percent not 100", alice, base(func(r *pb.CreateExpenseRequest) {
			r.SplitType = "PERCENT"
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id, Percent: "50"}, {UserId: bob.user.Id, Percent: "49"}}
		}), connect.CodeInvalidArgument},
		{"percent not a number", alice, base(func(r *pb.CreateExpenseRequest) {
			r.SplitType = "PERCENT"
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id, Percent: "half"}, {UserId: bob.user.Id, Percent: "50"}}
		}), connect.CodeInvalidArgument},
		{"percent share for outsider", alice, base(func(r *pb.CreateExpenseRequest) {
			r.SplitType = "PERCENT"
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id, Percent: "50"}, {UserId: mallory.user.Id, Percent: "50"}}
		}), connect.CodeInvalidArgument},
		{"custom mismatch", alice, base(func(r *pb.CreateExpenseRequest) {
			r.SplitType = "CUSTOM"
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id, Amount: "4"}, {UserId: bob.user.Id, Amount: "5"}}
		}), connect.CodeInvalidArgument},
		{"custom line without amount", alice, base(func(r *pb.CreateExpenseRequest) {
			r.SplitType = "CUSTOM"
			r.Shares = []*pb.ShareInput{{UserId: alice.user.Id, Amount: "10"}, {UserId: bob.user.Id}}
		}), connect.CodeInvalidArgument},
		{"caller not in group", mallory, base(func(*pb.CreateExpenseRequest) {}), connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.expenses.CreateExpense(ctx, as(tt.as, tt.req))
			expectCode(t, err, tt.want)
		})
	}

	// Nothing was stored.
	resp, err := c.expenses.ListExpenses(ctx, as(alice, &pb.ListExpensesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 0 {
		t.Errorf("expected no expenses after failed creates, got %d", len(resp.Msg.Expenses))
	}
}

func TestSetShareSettled(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice")
	bob := register(t, c, "bob")
	carol := register(t, c, "carol")
	group := newGroup(t, c, alice, bob, carol)

	created, err := c.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{
		GroupId: group.Id, Amount: "30", SplitType: "EQUAL",
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	expenseID := created.Msg.Expense.Id

	before, err := c.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}

	resp, err := c.expenses.SetShareSettled(ctx, as(bob, &pb.SetShareSettledRequest{
		ExpenseId: expenseID, UserId: bob.user.Id, Settled: true,
	}))
	if err != nil {
		t.Fatalf("SetShareSettled failed: %v", err)
	}
	for _, s := range resp.Msg.Expense.Shares {
		if s.Settled != (s.UserId == bob.user.Id) {
			t.Errorf("share %s: settled=%v", s.UserId, s.Settled)
		}
	}

	// The flag is informational; balances do not move.
	after, err := c.groups.GetGroupBalances(ctx, as(alice, &pb.GetGroupBalancesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}
	for i := range before.Msg.Balances {
		if before.Msg.Balances[i].Net != after.Msg.Balances[i].Net {
			t.Errorf("balance of %s moved from %s to %s", before.Msg.Balances[i].UserId, before.Msg.Balances[i].Net, after.Msg.Balances[i].Net)
		}
	}

	// The payer may flip any share; other members only their own.
	if _, err := c.expenses.SetShareSettled(ctx, as(alice, &pb.SetShareSettledRequest{ExpenseId: expenseID, UserId: carol.user.Id, Settled: true})); err != nil {
		t.Errorf("payer SetShareSettled failed: %v", err)
	}
	_, err = c.expenses.SetShareSettled(ctx, as(carol, &pb.SetShareSettledRequest{ExpenseId: expenseID, UserId: bob.user.Id}))
	expectCode(t, err, connect.CodePermissionDenied)

	_, err = c.expenses.SetShareSettled(ctx, as(alice, &pb.SetShareSettledRequest{ExpenseId: "ghost", UserId: bob.user.Id}))
	expectCode(t, err, connect.CodeNotFound)
}

func TestListExpenses_NewestFirst(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice")
	bob := register(t, c, "bob")
	mallory := register(t, c, "mallory")
	group := newGroup(t, c, alice, bob)

	var ids []string
	for _, note := range []string{"first", "second", "third"} {
		resp, err := c.expenses.CreateExpense(ctx, as(alice, &pb.CreateExpenseRequest{
			GroupId: group.Id, Amount: "1.00", Note: note,
		}))
		if err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		ids = append(ids, resp.Msg.Expense.Id)
	}

	resp, err := c.expenses.ListExpenses(ctx, as(bob, &pb.ListExpensesRequest{GroupId: group.Id}))
	if err != nil {
		t.Fatalf("ListExpenses failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(resp.Msg.Expenses))
	}
	for i, e := range resp.Msg.Expenses {
		if e.Id != ids[len(ids)-1-i] {
			t.Errorf("position %d: expected %s, got %s (%s)", i, ids[len(ids)-1-i], e.Id, e.Note)
		}
		if len(e.Shares) != 2 {
			t.Errorf("expense %s: expected 2 shares, got %d", e.Id, len(e.Shares))
		}
	}

	_, err = c.expenses.ListExpenses(ctx, as(mallory, &pb.ListExpensesRequest{GroupId: group.Id}))
	expectCode(t, err, connect.CodePermissionDenied)
}
