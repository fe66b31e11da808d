// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"novelhub/config"
	"novelhub/internal/domain/entity"
	"novelhub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidToken is returned for any token that cannot be trusted.
var ErrInvalidToken = errors.New("invalid access token")

// jwtService validates HS256 access tokens signed by the auth backend.
type jwtService struct {
	secret   []byte
	issuer   string
	audience string
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Auth == nil || cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwtSecret must be provided")
	}

	return &jwtService{
		secret:   []byte(cfg.Auth.JWTSecret),
		issuer:   cfg.Auth.Issuer,
		audience: cfg.Auth.Audience,
		now:      time.Now,
	}, nil
}

// Identify parses and verifies tokenString and maps its claims to an Identity.
func (s *jwtService) Identify(tokenString string) (*entity.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	if s.audience != "" {
		opts = append(opts, jwt.WithAudience(s.audience))
	}

	claims := &service.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidToken, "parse: %v", err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidToken, "subject %q is not a user id", claims.Subject)
	}

	return &entity.Identity{
		UserID: userID,
		Email:  claims.Email,
		Metadata: entity.IdentityMetadata{
			PreferredUsername: claims.UserMetadata.PreferredUsername,
			FullName:          claims.UserMetadata.FullName,
			Name:              claims.UserMetadata.Name,
			AvatarURL:         claims.UserMetadata.AvatarURL,
			ProviderID:        claims.UserMetadata.ProviderID,
		},
	}, nil
}

// Issue signs an access token shaped like the auth backend's.
func (s *jwtService) Issue(identity *entity.Identity, ttl time.Duration) (string, error) {
	if identity.IsAnonymous() {
		return "", errors.New("cannot issue a token for an anonymous identity")
	}

	now := s.now()
	claims := &service.Claims{
		Email: identity.Email,
		Role:  "authenticated",
		UserMetadata: service.UserMetadata{
			PreferredUsername: identity.Metadata.PreferredUsername,
			FullName:          identity.Metadata.FullName,
			Name:              identity.Metadata.Name,
			AvatarURL:         identity.Metadata.AvatarURL,
			ProviderID:        identity.Metadata.ProviderID,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	if s.audience != "" {
		claims.Audience = jwt.ClaimStrings{s.audience}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
