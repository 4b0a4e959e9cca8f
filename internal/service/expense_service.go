package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

var errNotShareParty = errors.New("only the share's member or the expense payer can change it")

// ExpenseService records expenses and their allocation among group members.
type ExpenseService struct {
	protoconnect.UnimplementedExpenseServiceHandler
	store           storage.Store
	defaultCurrency string
	logger          *slog.Logger
}

// NewExpenseService creates an ExpenseService. defaultCurrency applies when a
// request leaves the currency empty.
func NewExpenseService(store storage.Store, defaultCurrency string, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{store: store, defaultCurrency: defaultCurrency, logger: logger}
}

// CreateExpense validates the amount, allocates it among the group's members
// and stores the expense together with its shares.
func (s *ExpenseService) CreateExpense(ctx context.Context, req *connect.Request[pb.CreateExpenseRequest]) (*connect.Response[pb.CreateExpenseResponse], error) {
	msg := req.Msg
	group, userID, err := memberGroup(ctx, s.store, msg.GroupId)
	if err != nil {
		return nil, err
	}

	payerID := msg.PayerId
	if payerID == "" {
		payerID = userID
	}
	if !group.HasMember(payerID) {
		return nil, invalidArgument("payer %s is not a member of the group", payerID)
	}

	amount, err := money.Parse(msg.Amount)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := money.RequirePositive(amount); err != nil {
		return nil, toConnectError(err)
	}

	cur, err := normalizeCurrency(msg.Currency, s.defaultCurrency)
	if err != nil {
		return nil, toConnectError(err)
	}

	splitType, err := calculator.ParseSplitType(msg.SplitType)
	if err != nil {
		return nil, toConnectError(err)
	}

	lines, err := toShareLines(msg.Shares)
	if err != nil {
		return nil, toConnectError(err)
	}
	policy := calculator.SplitPolicy{Type: splitType, Shares: lines}
	alloc, err := calculator.Allocate(amount, policy, group.MemberIDs())
	if err != nil {
		metrics.Allocations.WithLabelValues(string(splitType), metrics.OutcomeInvalid).Inc()
		s.logger.Warn("CreateExpense allocation rejected", "group_id", group.ID, "split_type", splitType, "error", err)
		return nil, toConnectError(err)
	}
	metrics.Allocations.WithLabelValues(string(splitType), metrics.OutcomeOK).Inc()

	expense := &models.Expense{
		GroupID:   group.ID,
		PayerID:   payerID,
		CreatedBy: userID,
		Amount:    amount,
		Currency:  cur,
		SplitType: string(splitType),
		Note:      strings.TrimSpace(msg.Note),
	}
	for _, id := range alloc.Members() {
		expense.Shares = append(expense.Shares, models.ExpenseShare{UserID: id, Amount: alloc[id]})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		s.logger.Error("CreateExpense failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Expense created",
		"expense_id", expense.ID,
		"group_id", group.ID,
		"payer_id", payerID,
		"amount", amount.String(),
		"split_type", splitType,
		"shares", len(expense.Shares),
	)
	return connect.NewResponse(&pb.CreateExpenseResponse{Expense: toProtoExpense(expense)}), nil
}

func toShareLines(in []*pb.ShareInput) ([]calculator.ShareLine, error) {
	if len(in) == 0 {
		return nil, nil
	}
	lines := make([]calculator.ShareLine, 0, len(in))
	for _, sh := range in {
		if sh == nil {
			continue
		}
		percent, err := optionalDecimal(sh.Percent)
		if err != nil {
			return nil, err
		}
		amount, err := optionalDecimal(sh.Amount)
		if err != nil {
			return nil, err
		}
		lines = append(lines, calculator.ShareLine{MemberID: sh.UserId, Percent: percent, Amount: amount})
	}
	return lines, nil
}

// optionalDecimal parses a share parameter; an empty string leaves it unset.
func optionalDecimal(s string) (decimal.NullDecimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%w: %q is not a decimal number", calculator.ErrValidation, s)
	}
	return decimal.NewNullDecimal(d), nil
}

// ListExpenses returns the group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	group, _, err := memberGroup(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Error("ListExpenses failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toProtoExpense(e)
	}
	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: out}), nil
}

// SetShareSettled flips the informational settled flag of one share.
// Balances do not read the flag; only settlements move money.
func (s *ExpenseService) SetShareSettled(ctx context.Context, req *connect.Request[pb.SetShareSettledRequest]) (*connect.Response[pb.SetShareSettledResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	if req.Msg.ExpenseId == "" || req.Msg.UserId == "" {
		return nil, invalidArgument("expense_id and user_id required")
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseId)
	if err != nil {
		return nil, toConnectError(err)
	}
	if _, _, err := memberGroup(ctx, s.store, expense.GroupID); err != nil {
		return nil, err
	}
	if userID != req.Msg.UserId && userID != expense.PayerID {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotShareParty)
	}

	if err := s.store.SetShareSettled(ctx, expense.ID, req.Msg.UserId, req.Msg.Settled); err != nil {
		return nil, toConnectError(err)
	}
	for i := range expense.Shares {
		if expense.Shares[i].UserID == req.Msg.UserId {
			expense.Shares[i].Settled = req.Msg.Settled
		}
	}

	s.logger.Info("Share settled flag changed", "expense_id", expense.ID, "user_id", req.Msg.UserId, "settled", req.Msg.Settled)
	return connect.NewResponse(&pb.SetShareSettledResponse{Expense: toProtoExpense(expense)}), nil
}
