package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/money"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// SettlementService records direct payments between group members.
type SettlementService struct {
	protoconnect.UnimplementedSettlementServiceHandler
	store           storage.Store
	defaultCurrency string
	logger          *slog.Logger
}

// NewSettlementService creates a SettlementService.
func NewSettlementService(store storage.Store, defaultCurrency string, logger *slog.Logger) *SettlementService {
	return &SettlementService{store: store, defaultCurrency: defaultCurrency, logger: logger}
}

// RecordSettlement stores a payment from one member to another.
func (s *SettlementService) RecordSettlement(ctx context.Context, req *connect.Request[pb.RecordSettlementRequest]) (*connect.Response[pb.RecordSettlementResponse], error) {
	msg := req.Msg
	group, userID, err := memberGroup(ctx, s.store, msg.GroupId)
	if err != nil {
		return nil, err
	}

	if msg.FromUserId == "" || msg.ToUserId == "" {
		return nil, invalidArgument("from_user_id and to_user_id required")
	}
	if msg.FromUserId == msg.ToUserId {
		return nil, invalidArgument("cannot settle with yourself")
	}
	for _, id := range []string{msg.FromUserId, msg.ToUserId} {
		if !group.HasMember(id) {
			return nil, invalidArgument("user %s is not a member of the group", id)
		}
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

	settlement := &models.Settlement{
		GroupID:    group.ID,
		FromUserID: msg.FromUserId,
		ToUserID:   msg.ToUserId,
		Amount:     amount,
		Currency:   cur,
		CreatedBy:  userID,
		Note:       strings.TrimSpace(msg.Note),
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		s.logger.Error("RecordSettlement failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", group.ID,
		"from", settlement.FromUserID,
		"to", settlement.ToUserID,
		"amount", amount.String(),
	)
	return connect.NewResponse(&pb.RecordSettlementResponse{Settlement: toProtoSettlement(settlement)}), nil
}

// ListSettlements returns the group's settlements, newest first.
func (s *SettlementService) ListSettlements(ctx context.Context, req *connect.Request[pb.ListSettlementsRequest]) (*connect.Response[pb.ListSettlementsResponse], error) {
	group, _, err := memberGroup(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	settlements, err := s.store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Error("ListSettlements failed", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Settlement, len(settlements))
	for i, st := range settlements {
		out[i] = toProtoSettlement(st)
	}
	return connect.NewResponse(&pb.ListSettlementsResponse{Settlements: out}), nil
}
