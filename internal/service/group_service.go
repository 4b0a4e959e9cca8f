package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/auth"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/metrics"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
	pb "github.com/mmynk/splitledger/pkg/proto"
	"github.com/mmynk/splitledger/pkg/proto/protoconnect"
)

// GroupService implements the Connect GroupService.
type GroupService struct {
	protoconnect.UnimplementedGroupServiceHandler
	store  storage.Store
	logger *slog.Logger
}

// NewGroupService creates a new GroupService with the given storage backend.
func NewGroupService(store storage.Store, logger *slog.Logger) *GroupService {
	return &GroupService{store: store, logger: logger}
}

// CreateGroup creates a new group with the caller as its owner.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[pb.CreateGroupRequest]) (*connect.Response[pb.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, invalidArgument("group name required")
	}

	owner, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		s.logger.Error("CreateGroup failed - could not load owner", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	group := &models.Group{
		Name:    name,
		OwnerID: userID,
		Members: []models.Membership{{UserID: userID, UserName: owner.Name, Role: models.RoleOwner}},
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		s.logger.Error("CreateGroup failed", "error", err)
		return nil, toConnectError(err)
	}

	s.logger.Info("Group created", "group_id", group.ID, "owner_id", userID)
	return connect.NewResponse(&pb.CreateGroupResponse{Group: toProtoGroup(group)}), nil
}

// ListGroups returns every group the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[pb.ListGroupsRequest]) (*connect.Response[pb.ListGroupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := s.store.ListGroupsForUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListGroups failed", "user_id", userID, "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*pb.Group, len(groups))
	for i, g := range groups {
		out[i] = toProtoGroup(g)
	}
	return connect.NewResponse(&pb.ListGroupsResponse{Groups: out}), nil
}

// GetGroup retrieves a group by ID. Only members can see it.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[pb.GetGroupRequest]) (*connect.Response[pb.GetGroupResponse], error) {
	group, _, err := memberGroup(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&pb.GetGroupResponse{Group: toProtoGroup(group)}), nil
}

// AddMember adds a registered user, found by email, to the group.
// Only members holding the OWNER role may add others.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[pb.AddMemberRequest]) (*connect.Response[pb.AddMemberResponse], error) {
	group, userID, err := memberGroup(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}
	if !isOwner(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotOwner)
	}

	role := strings.ToUpper(strings.TrimSpace(req.Msg.Role))
	switch role {
	case "":
		role = models.RoleMember
	case models.RoleMember, models.RoleOwner:
	default:
		return nil, invalidArgument("unknown role %q", req.Msg.Role)
	}

	user, err := s.store.GetUserByEmail(ctx, auth.NormalizeEmail(req.Msg.Email))
	if err != nil {
		return nil, toConnectError(err)
	}

	member := &models.Membership{UserID: user.ID, UserName: user.Name, Role: role}
	if err := s.store.AddMember(ctx, group.ID, member); err != nil {
		if !errors.Is(err, storage.ErrConflict) {
			s.logger.Error("AddMember failed", "group_id", group.ID, "error", err)
		}
		return nil, toConnectError(err)
	}

	s.logger.Info("Member added", "group_id", group.ID, "user_id", user.ID, "role", role)
	return connect.NewResponse(&pb.AddMemberResponse{Member: toProtoMember(*member)}), nil
}

func isOwner(group *models.Group, userID string) bool {
	for _, m := range group.Members {
		if m.UserID == userID {
			return m.Role == models.RoleOwner
		}
	}
	return false
}

// GetGroupBalances folds every expense and settlement of the group into
// per-member balances and proposes the payments that would clear them.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[pb.GetGroupBalancesRequest]) (*connect.Response[pb.GetGroupBalancesResponse], error) {
	group, _, err := memberGroup(ctx, s.store, req.Msg.GroupId)
	if err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Error("GetGroupBalances failed - could not list expenses", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		s.logger.Error("GetGroupBalances failed - could not list settlements", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	balances := calculator.ComputeBalances(group.MemberIDs(), toBalanceExpenses(expenses), toBalanceSettlements(settlements))
	metrics.BalanceComputations.Inc()
	metrics.BalanceRecords.Observe(float64(len(expenses) + len(settlements)))

	if sum := calculator.SumNet(balances); sum != 0 {
		// Every record is zero-sum, so this means corrupted data.
		s.logger.Error("Group balances do not sum to zero", "group_id", group.ID, "sum", sum.String())
	}

	names, err := s.memberNames(ctx, group, balances)
	if err != nil {
		s.logger.Error("GetGroupBalances failed - could not load users", "group_id", group.ID, "error", err)
		return nil, toConnectError(err)
	}

	resp := &pb.GetGroupBalancesResponse{
		GroupId:  group.ID,
		Balances: make([]*pb.MemberBalance, len(balances)),
	}
	for i, b := range balances {
		resp.Balances[i] = &pb.MemberBalance{
			UserId:    b.MemberID,
			Name:      names[b.MemberID],
			TotalPaid: b.TotalPaid.String(),
			TotalOwed: b.TotalOwed.String(),
			Net:       b.Net(),
		}
	}
	for _, d := range calculator.SimplifyDebts(balances) {
		resp.Debts = append(resp.Debts, &pb.Debt{
			FromUserId: d.From,
			ToUserId:   d.To,
			Amount:     d.Amount.String(),
		})
	}

	s.logger.Debug("GetGroupBalances", "group_id", group.ID,
		"expenses", len(expenses), "settlements", len(settlements), "debts", len(resp.Debts))
	return connect.NewResponse(resp), nil
}

// memberNames resolves display names for every balance row, including users
// that appear in records but are no longer in the group.
func (s *GroupService) memberNames(ctx context.Context, group *models.Group, balances []calculator.MemberBalance) (map[string]string, error) {
	names := make(map[string]string, len(balances))
	for _, m := range group.Members {
		names[m.UserID] = m.UserName
	}
	var missing []string
	for _, b := range balances {
		if _, ok := names[b.MemberID]; !ok {
			missing = append(missing, b.MemberID)
		}
	}
	if len(missing) == 0 {
		return names, nil
	}
	users, err := s.store.GetUsersByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, u := range users {
		names[id] = u.Name
	}
	return names, nil
}

func toBalanceExpenses(expenses []*models.Expense) []calculator.ExpenseForBalance {
	out := make([]calculator.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		shares := make([]calculator.ShareForBalance, len(e.Shares))
		for j, sh := range e.Shares {
			shares[j] = calculator.ShareForBalance{MemberID: sh.UserID, Amount: sh.Amount}
		}
		out[i] = calculator.ExpenseForBalance{PayerID: e.PayerID, Amount: e.Amount, Shares: shares}
	}
	return out
}

func toBalanceSettlements(settlements []*models.Settlement) []calculator.SettlementForBalance {
	out := make([]calculator.SettlementForBalance, len(settlements))
	for i, st := range settlements {
		out[i] = calculator.SettlementForBalance{FromUserID: st.FromUserID, ToUserID: st.ToUserID, Amount: st.Amount}
	}
	return out
}
