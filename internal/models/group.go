package models

// Membership roles.
const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"
)

// Group represents a set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Goa Trip").
	Name string

	// OwnerID is the user who created the group. Only the owner may add members.
	OwnerID string

	// Members lists the memberships of the group, ordered by join time.
	Members []Membership

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Membership links a user to a group.
type Membership struct {
	UserID   string
	UserName string
	Role     string
	JoinedAt int64
}

// MemberIDs returns the user IDs of all members, in membership order.
func (g *Group) MemberIDs() []string {
	ids := make([]string, len(g.Members))
	for i, m := range g.Members {
		ids[i] = m.UserID
	}
	return ids
}

// HasMember reports whether userID belongs to the group.
func (g *Group) HasMember(userID string) bool {
	for _, m := range g.Members {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
