// Package models defines the core domain models for splitledger.
//
// # Models
//
//   - User: registered account; members of groups are users
//   - Group and Membership: a set of users sharing expenses, with an OWNER
//   - Expense and ExpenseShare: an amount fronted by one payer and its allocation
//   - Settlement: a direct payment between two members
//
// # Design Principles
//
//  1. Money is stored as money.Cents, never float64
//  2. Avoid circular references: use ID strings instead of pointers for relationships
//  3. Records are value types; Expense and Settlement are never edited after creation,
//     except for the per-share Settled flag
//  4. Timestamps are Unix seconds
package models
