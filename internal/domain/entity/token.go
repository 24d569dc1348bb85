package entity

import (
	"time"

	"github.com/google/uuid"
)

// Realm is the audience a bearer token was issued for. It selects the secret pair used to sign it.
type Realm int

const (
	realmUnknown Realm = iota
	// RealmUser covers regular users and is presented with the "Bearer" scheme.
	RealmUser
	// RealmAdmin covers administrators and is presented with the "Admin" scheme.
	RealmAdmin
)

const (
	SchemeBearer = "Bearer"
	SchemeAdmin  = "Admin"
)

// ParseRealm maps an Authorization header scheme to its realm. Unknown schemes are rejected.
func ParseRealm(scheme string) (Realm, bool) {
	switch scheme {
	case SchemeBearer:
		return RealmUser, true
	case SchemeAdmin:
		return RealmAdmin, true
	default:
		return realmUnknown, false
	}
}

// Scheme returns the Authorization header scheme of the realm.
func (r Realm) Scheme() string {
	switch r {
	case RealmUser:
		return SchemeBearer
	case RealmAdmin:
		return SchemeAdmin
	case realmUnknown:
		return ""
	default:
		return ""
	}
}

func (r Realm) String() string {
	switch r {
	case RealmUser:
		return "user"
	case RealmAdmin:
		return "admin"
	case realmUnknown:
		return "unknown"
	default:
		return "unknown"
	}
}

// TokenPurpose distinguishes short-lived access tokens from long-lived refresh tokens.
type TokenPurpose string

const (
	TokenPurposeAccess  TokenPurpose = "access"
	TokenPurposeRefresh TokenPurpose = "refresh"
)

func (p TokenPurpose) String() string {
	return string(p)
}

// TokenClaims is the verified content of a token.
type TokenClaims struct {
	PrincipalID uuid.UUID
	IssuedAt    time.Time
	ExpiresAt   time.Time
}

// AuthTokens is the access/refresh pair handed to a client after login.
type AuthTokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
