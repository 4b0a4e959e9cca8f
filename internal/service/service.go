// Package service implements the splitledger.v1 connect services on top of
// storage and the calculator.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
	"golang.org/x/text/currency"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/middleware"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
)

var (
	errNotMember   = errors.New("caller is not a member of this group")
	errNotOwner    = errors.New("only the group owner can add members")
	errInvalidCode = errors.New("invalid currency code")
)

// toConnectError maps domain and storage errors onto connect codes.
func toConnectError(err error) *connect.Error {
	var connectErr *connect.Error
	switch {
	case errors.As(err, &connectErr):
		return connectErr
	case errors.Is(err, money.ErrInvalidAmount),
		errors.Is(err, calculator.ErrValidation),
		errors.Is(err, calculator.ErrEmptyMemberSet),
		errors.Is(err, errInvalidCode):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrConflict):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(format string, args ...any) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// callerID returns the authenticated user, or Unauthenticated.
func callerID(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}

// memberGroup loads a group and checks that the caller belongs to it.
func memberGroup(ctx context.Context, store storage.Store, groupID string) (*models.Group, string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, "", err
	}
	if groupID == "" {
		return nil, "", invalidArgument("group_id required")
	}
	group, err := store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, "", toConnectError(err)
	}
	if !group.HasMember(userID) {
		return nil, "", connect.NewError(connect.CodePermissionDenied, errNotMember)
	}
	return group, userID, nil
}

// normalizeCurrency validates an ISO 4217 code, falling back to def when empty.
func normalizeCurrency(code, def string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		code = def
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q", errInvalidCode, code)
	}
	return unit.String(), nil
}

// ─── Conversions ────────────────────────────────────────────────────────────

func toProtoUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func toProtoMember(m models.Membership) *pb.Member {
	return &pb.Member{
		UserId:   m.UserID,
		Name:     m.UserName,
		Role:     m.Role,
		JoinedAt: m.JoinedAt,
	}
}

func toProtoGroup(g *models.Group) *pb.Group {
	members := make([]*pb.Member, len(g.Members))
	for i, m := range g.Members {
		members[i] = toProtoMember(m)
	}
	return &pb.Group{
		Id:        g.ID,
		Name:      g.Name,
		OwnerId:   g.OwnerID,
		Members:   members,
		CreatedAt: g.CreatedAt,
	}
}

// Money leaves the service as a fixed two-decimal string.
func toProtoExpense(e *models.Expense) *pb.Expense {
	shares := make([]*pb.ExpenseShare, len(e.Shares))
	for i, s := range e.Shares {
		shares[i] = &pb.ExpenseShare{
			UserId:  s.UserID,
			Amount:  s.Amount.String(),
			Settled: s.Settled,
		}
	}
	return &pb.Expense{
		Id:        e.ID,
		GroupId:   e.GroupID,
		PayerId:   e.PayerID,
		CreatedBy: e.CreatedBy,
		Amount:    e.Amount.String(),
		Currency:  e.Currency,
		SplitType: e.SplitType,
		Note:      e.Note,
		Shares:    shares,
		CreatedAt: e.CreatedAt,
	}
}

func toProtoSettlement(s *models.Settlement) *pb.Settlement {
	return &pb.Settlement{
		Id:         s.ID,
		GroupId:    s.GroupID,
		FromUserId: s.FromUserID,
		ToUserId:   s.ToUserID,
		Amount:     s.Amount.String(),
		Currency:   s.Currency,
		Note:       s.Note,
		CreatedBy:  s.CreatedBy,
		CreatedAt:  s.CreatedAt,
	}
}
