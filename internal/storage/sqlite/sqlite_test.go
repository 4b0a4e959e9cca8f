package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	// Create temp directory for test database
	tempDir, err := os.MkdirTemp("", "splitledger-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func mustCreateUser(t *testing.T, store *SQLiteStore, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", email, err)
	}
	return user
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")

	t.Run("GetUserByEmail returns stored user", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got.ID != alice.ID || got.Name != "Alice" || got.PasswordHash != "hash" {
			t.Errorf("unexpected user: %+v", got)
		}
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		dup := models.NewUser("alice@example.com", "Other", "hash")
		err := store.CreateUser(ctx, dup)
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("missing user is not found", func(t *testing.T) {
		if _, err := store.GetUserByID(ctx, "nope"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound by id, got %v", err)
		}
		if _, err := store.GetUserByEmail(ctx, "nope@example.com"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound by email, got %v", err)
		}
	})

	t.Run("GetUsersByIDs omits unknown ids", func(t *testing.T) {
		users, err := store.GetUsersByIDs(ctx, []string{alice.ID, "ghost"})
		if err != nil {
			t.Fatalf("GetUsersByIDs failed: %v", err)
		}
		if len(users) != 1 || users[alice.ID] == nil {
			t.Errorf("Expected only alice, got %v", users)
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")
	bob := mustCreateUser(t, store, "bob@example.com", "Bob")
	carol := mustCreateUser(t, store, "carol@example.com", "Carol")

	group := &models.Group{
		Name:    "Flat",
		OwnerID: alice.ID,
		Members: []models.Membership{{UserID: alice.ID, Role: models.RoleOwner}},
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	t.Run("CreateGroup generates ID and timestamps", func(t *testing.T) {
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
		if group.Members[0].JoinedAt != group.CreatedAt {
			t.Errorf("Expected owner to join at creation, got %d", group.Members[0].JoinedAt)
		}
	})

	t.Run("AddMember then GetGroup lists members in join order", func(t *testing.T) {
		if err := store.AddMember(ctx, group.ID, &models.Membership{UserID: bob.ID, Role: models.RoleMember, JoinedAt: group.CreatedAt + 1}); err != nil {
			t.Fatalf("AddMember failed: %v", err)
		}
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.Members) != 2 {
			t.Fatalf("Expected 2 members, got %d", len(got.Members))
		}
		if got.Members[0].UserID != alice.ID || got.Members[0].Role != models.RoleOwner || got.Members[0].UserName != "Alice" {
			t.Errorf("unexpected first member: %+v", got.Members[0])
		}
		if got.Members[1].UserID != bob.ID || got.Members[1].Role != models.RoleMember {
			t.Errorf("unexpected second member: %+v", got.Members[1])
		}
	})

	t.Run("AddMember twice is a conflict", func(t *testing.T) {
		err := store.AddMember(ctx, group.ID, &models.Membership{UserID: bob.ID, Role: models.RoleMember})
		if !errors.Is(err, storage.ErrConflict) {
			t.Errorf("Expected ErrConflict, got %v", err)
		}
	})

	t.Run("AddMember to missing group is not found", func(t *testing.T) {
		err := store.AddMember(ctx, "ghost", &models.Membership{UserID: carol.ID, Role: models.RoleMember})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListGroupsForUser only returns own groups", func(t *testing.T) {
		groups, err := store.ListGroupsForUser(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != group.ID {
			t.Errorf("Expected bob to see one group, got %d", len(groups))
		}

		groups, err = store.ListGroupsForUser(ctx, carol.ID)
		if err != nil {
			t.Fatalf("ListGroupsForUser failed: %v", err)
		}
		if len(groups) != 0 {
			t.Errorf("Expected carol to see no groups, got %d", len(groups))
		}
	})
}

func TestExpensesAndSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustCreateUser(t, store, "alice@example.com", "Alice")
	bob := mustCreateUser(t, store, "bob@example.com", "Bob")
	group := &models.Group{
		Name:    "Trip",
		OwnerID: alice.ID,
		Members: []models.Membership{
			{UserID: alice.ID, Role: models.RoleOwner},
			{UserID: bob.ID, Role: models.RoleMember},
		},
	}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	first := &models.Expense{
		GroupID:   group.ID,
		PayerID:   alice.ID,
		CreatedBy: alice.ID,
		Amount:    10000,
		Currency:  "INR",
		SplitType: "EQUAL",
		Note:      "Dinner",
		CreatedAt: 100,
		Shares: []models.ExpenseShare{
			{UserID: alice.ID, Amount: 5000},
			{UserID: bob.ID, Amount: 5000},
		},
	}
	second := &models.Expense{
		GroupID:   group.ID,
		PayerID:   bob.ID,
		CreatedBy: bob.ID,
		Amount:    301,
		Currency:  "INR",
		SplitType: "CUSTOM",
		CreatedAt: 200,
		Shares: []models.ExpenseShare{
			{UserID: alice.ID, Amount: 300},
			{UserID: bob.ID, Amount: 1},
		},
	}
	for _, e := range []*models.Expense{first, second} {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
	}

	t.Run("GetExpense round trips amounts and shares", func(t *testing.T) {
		got, err := store.GetExpense(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if got.Amount != money.Cents(10000) || got.Note != "Dinner" || got.Currency != "INR" {
			t.Errorf("unexpected expense: %+v", got)
		}
		if len(got.Shares) != 2 || got.Shares[0].UserID != alice.ID || got.Shares[1].Amount != 5000 {
			t.Errorf("unexpected shares: %+v", got.Shares)
		}
	})

	t.Run("ListExpensesByGroup is newest first with shares", func(t *testing.T) {
		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("Expected 2 expenses, got %d", len(expenses))
		}
		if expenses[0].ID != second.ID || expenses[1].ID != first.ID {
			t.Errorf("Expected newest first")
		}
		for _, e := range expenses {
			var sum money.Cents
			for _, s := range e.Shares {
				sum += s.Amount
			}
			if sum != e.Amount {
				t.Errorf("expense %s: shares sum to %d, want %d", e.ID, sum, e.Amount)
			}
		}
	})

	t.Run("CreateExpense with unknown share member rolls back", func(t *testing.T) {
		bad := &models.Expense{
			GroupID:   group.ID,
			PayerID:   alice.ID,
			CreatedBy: alice.ID,
			Amount:    100,
			Currency:  "INR",
			SplitType: "CUSTOM",
			Shares:    []models.ExpenseShare{{UserID: "ghost", Amount: 100}},
		}
		if err := store.CreateExpense(ctx, bad); err == nil {
			t.Fatal("Expected foreign key failure")
		}
		if _, err := store.GetExpense(ctx, bad.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected expense to be rolled back, got %v", err)
		}
	})

	t.Run("SetShareSettled toggles one share", func(t *testing.T) {
		if err := store.SetShareSettled(ctx, first.ID, bob.ID, true); err != nil {
			t.Fatalf("SetShareSettled failed: %v", err)
		}
		got, err := store.GetExpense(ctx, first.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		for _, s := range got.Shares {
			if s.Settled != (s.UserID == bob.ID) {
				t.Errorf("share %s settled=%v", s.UserID, s.Settled)
			}
		}
		err = store.SetShareSettled(ctx, first.ID, "ghost", true)
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound for unknown share, got %v", err)
		}
	})

	t.Run("settlements round trip newest first", func(t *testing.T) {
		older := &models.Settlement{
			GroupID: group.ID, FromUserID: bob.ID, ToUserID: alice.ID,
			Amount: 2500, Currency: "INR", CreatedBy: bob.ID, CreatedAt: 300,
		}
		newer := &models.Settlement{
			GroupID: group.ID, FromUserID: bob.ID, ToUserID: alice.ID,
			Amount: 2500, Currency: "INR", CreatedBy: alice.ID, CreatedAt: 400, Note: "rest",
		}
		for _, s := range []*models.Settlement{older, newer} {
			if err := store.CreateSettlement(ctx, s); err != nil {
				t.Fatalf("CreateSettlement failed: %v", err)
			}
			if s.ID == "" {
				t.Error("Expected settlement ID to be generated")
			}
		}

		got, err := store.GetSettlement(ctx, newer.ID)
		if err != nil {
			t.Fatalf("GetSettlement failed: %v", err)
		}
		if got.Amount != 2500 || got.Note != "rest" || got.FromUserID != bob.ID {
			t.Errorf("unexpected settlement: %+v", got)
		}

		list, err := store.ListSettlementsByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListSettlementsByGroup failed: %v", err)
		}
		if len(list) != 2 || list[0].ID != newer.ID {
			t.Errorf("Expected newest settlement first, got %d settlements", len(list))
		}

		if _, err := store.GetSettlement(ctx, "ghost"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("non-positive amounts are rejected by schema", func(t *testing.T) {
		zero := &models.Settlement{
			GroupID: group.ID, FromUserID: bob.ID, ToUserID: alice.ID,
			Amount: 0, Currency: "INR", CreatedBy: bob.ID,
		}
		if err := store.CreateSettlement(ctx, zero); err == nil {
			t.Error("Expected CHECK constraint failure")
		}
	})
}
