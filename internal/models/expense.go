package models

import "github.com/mmynk/splitledger/internal/money"

// Expense represents an amount paid by one member on behalf of the group,
// together with how it was split.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PayerID is the member who fronted the money.
	PayerID string

	// CreatedBy is the member who recorded the expense.
	CreatedBy string

	// Amount is the total paid.
	Amount money.Cents

	// Currency is the ISO 4217 code of Amount.
	Currency string

	// SplitType is the policy used to compute Shares (EQUAL, PERCENT or CUSTOM).
	SplitType string

	// Note is an optional description (e.g., "Dinner at Thalassa").
	Note string

	// Shares holds one entry per member who owes part of the expense.
	// Share amounts always add up to Amount.
	Shares []ExpenseShare

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// ExpenseShare is one member's part of an expense.
type ExpenseShare struct {
	UserID string
	Amount money.Cents

	// Settled is informational only. Balances always count the full share.
	Settled bool
}
