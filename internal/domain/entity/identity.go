package entity

import "github.com/google/uuid"

// IdentityMetadata is the provider metadata the auth backend attaches to a user.
type IdentityMetadata struct {
	PreferredUsername string
	FullName          string
	Name              string
	AvatarURL         string
	ProviderID        string
}

// Identity is an authenticated reader as asserted by the auth backend.
// A nil *Identity denotes an anonymous reader.
type Identity struct {
	UserID   uuid.UUID
	Email    string
	Metadata IdentityMetadata
}

// IsAnonymous reports whether no authenticated reader is present.
func (i *Identity) IsAnonymous() bool {
	return i == nil || i.UserID == uuid.Nil
}
