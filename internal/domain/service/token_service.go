package service

import (
	"time"

	"novelhub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// UserMetadata mirrors the user_metadata object the auth backend embeds in access tokens.
type UserMetadata struct {
	PreferredUsername string `json:"preferred_username,omitempty"`
	FullName          string `json:"full_name,omitempty"`
	Name              string `json:"name,omitempty"`
	AvatarURL         string `json:"avatar_url,omitempty"`
	ProviderID        string `json:"provider_id,omitempty"`
}

// Claims are the access-token claims issued by the auth backend.
// The subject carries the user id.
type Claims struct {
	Email        string       `json:"email,omitempty"`
	Role         string       `json:"role,omitempty"`
	UserMetadata UserMetadata `json:"user_metadata"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens into reader identities.
type TokenService interface {
	// Identify validates a bearer token and returns the identity it asserts.
	Identify(tokenString string) (*entity.Identity, error)

	// Issue signs an access token for identity, valid for ttl.
	// Used for local development and tests where no auth backend is reachable.
	Issue(identity *entity.Identity, ttl time.Duration) (string, error)
}
