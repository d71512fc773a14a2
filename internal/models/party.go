package models

// PartyKind distinguishes registered users from locally-defined contacts.
type PartyKind string

const (
	PartyReal    PartyKind = "real"
	PartyVirtual PartyKind = "virtual"
)

// Party is anyone who can owe or be owed money.
type Party struct {
	// ID is the user ID for real users and the contact ID for virtual contacts.
	ID string

	Kind PartyKind

	DisplayName string

	// OwnerID is the real user who owns a virtual contact. Empty for real users.
	OwnerID string
}

// IsReal reports whether the party is a registered user.
func (p *Party) IsReal() bool {
	return p.Kind == PartyReal
}

// ActsFor reports whether the real user actorID may act as this party:
// either it is the party, or it owns the party as a contact.
func (p *Party) ActsFor(actorID string) bool {
	if p.Kind == PartyReal {
		return p.ID == actorID
	}
	return p.OwnerID == actorID
}

// Contact is a virtual party owned by a real user.
type Contact struct {
	// ID is the unique identifier for the contact (UUID format).
	ID string

	// OwnerID is the user who created the contact.
	OwnerID string

	// Name is the display name chosen by the owner.
	Name string

	// CreatedAt is the Unix timestamp when the contact was created.
	CreatedAt int64
}

// Party returns the contact as a virtual Party.
func (c *Contact) Party() *Party {
	return &Party{ID: c.ID, Kind: PartyVirtual, DisplayName: c.Name, OwnerID: c.OwnerID}
}
