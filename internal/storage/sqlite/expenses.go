package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
)

const expenseColumns = `id, group_id, payer_id, created_by, amount_cents, currency, split_type, note, created_at`

// CreateExpense persists an expense and its shares in a single transaction,
// so an expense is never visible without its allocation.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	var note any
	if expense.Note != "" {
		note = expense.Note
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			expense.ID, expense.GroupID, expense.PayerID, expense.CreatedBy,
			int64(expense.Amount), expense.Currency, expense.SplitType, note, expense.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		for _, share := range expense.Shares {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO expense_shares (expense_id, user_id, amount_cents, settled) VALUES (?, ?, ?, ?)",
				expense.ID, share.UserID, int64(share.Amount), share.Settled,
			)
			if err != nil {
				return fmt.Errorf("failed to insert expense share: %w", err)
			}
		}
		return nil
	})
}

// GetExpense retrieves an expense by ID, including its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense, err := scanExpense(s.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, expenseID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT expense_id, user_id, amount_cents, settled FROM expense_shares
		 WHERE expense_id = ? ORDER BY rowid`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer rows.Close()

	if err := attachShares(rows, map[string]*models.Expense{expense.ID: expense}); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpensesByGroup retrieves all expenses for a group with their shares, newest first.
func (s *SQLiteStore) ListExpensesByGroup(ctx context.Context, groupID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE group_id = ? ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses by group: %w", err)
	}

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	// Load all shares of the group in one query.
	shareRows, err := s.db.QueryContext(ctx,
		`SELECT s.expense_id, s.user_id, s.amount_cents, s.settled
		 FROM expense_shares s JOIN expenses e ON e.id = s.expense_id
		 WHERE e.group_id = ?
		 ORDER BY s.rowid`,
		groupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expense shares: %w", err)
	}
	defer shareRows.Close()

	if err := attachShares(shareRows, byID); err != nil {
		return nil, err
	}
	return expenses, nil
}

// SetShareSettled marks one member's share of an expense as settled or not.
func (s *SQLiteStore) SetShareSettled(ctx context.Context, expenseID, userID string, settled bool) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE expense_shares SET settled = ? WHERE expense_id = ? AND user_id = ?",
		settled, expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense share: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update expense share: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("share of %s in expense %s: %w", userID, expenseID, storage.ErrNotFound)
	}
	return nil
}

func scanExpense(row scanner) (*models.Expense, error) {
	expense := &models.Expense{}
	var (
		amount int64
		note   sql.NullString
	)
	err := row.Scan(&expense.ID, &expense.GroupID, &expense.PayerID, &expense.CreatedBy,
		&amount, &expense.Currency, &expense.SplitType, &note, &expense.CreatedAt)
	if err != nil {
		return nil, err
	}
	expense.Amount = money.Cents(amount)
	if note.Valid {
		expense.Note = note.String
	}
	return expense, nil
}

// attachShares scans (expense_id, user_id, amount_cents, settled) rows onto the given expenses.
func attachShares(rows *sql.Rows, byID map[string]*models.Expense) error {
	for rows.Next() {
		var (
			expenseID string
			share     models.ExpenseShare
			amount    int64
		)
		if err := rows.Scan(&expenseID, &share.UserID, &amount, &share.Settled); err != nil {
			return fmt.Errorf("failed to scan expense share: %w", err)
		}
		share.Amount = money.Cents(amount)
		if e, ok := byID[expenseID]; ok {
			e.Shares = append(e.Shares, share)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense shares: %w", err)
	}
	return nil
}
