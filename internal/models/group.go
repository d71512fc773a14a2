package models

// Group is a pool of members who share expenses in one currency.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Ski Trip").
	Name string

	// Currency is the currency of every split and settlement in the group.
	Currency string

	// CreatedBy is the real user who created the group.
	CreatedBy string

	// Members is never empty for an existing group.
	Members []Member

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Member wraps one party inside one group. A member row belongs to exactly
// one group; the same party in two groups has two member IDs.
type Member struct {
	ID          string
	GroupID     string
	PartyID     string
	Kind        PartyKind
	DisplayName string
}

// Member returns the member with the given member ID.
func (g *Group) Member(memberID string) (*Member, bool) {
	for i := range g.Members {
		if g.Members[i].ID == memberID {
			return &g.Members[i], true
		}
	}
	return nil, false
}

// MemberForParty returns the member wrapping partyID.
func (g *Group) MemberForParty(partyID string) (*Member, bool) {
	for i := range g.Members {
		if g.Members[i].PartyID == partyID {
			return &g.Members[i], true
		}
	}
	return nil, false
}
