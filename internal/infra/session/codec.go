// Package session implements the server-side session stores.
package session

import (
	"bytes"
	"encoding/json"
	"time"

	"community/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	authKindOAuth2     = "oauth2"
	authKindAttributes = "attributes"
)

// record is the stored form of a session.
type record struct {
	ID         string      `json:"id"`
	User       *userRecord `json:"user,omitempty"`
	Auth       *authRecord `json:"auth,omitempty"`
	OAuthState string      `json:"oauth_state,omitempty"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

type userRecord struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Principal  string    `json:"principal,omitempty"`
	SocialType string    `json:"social_type,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type authRecord struct {
	Kind           string         `json:"kind"`
	RegistrationID string         `json:"registration_id,omitempty"`
	Attributes     map[string]any `json:"attributes,omitempty"`
	Credentials    string         `json:"credentials,omitempty"`
	Authorities    []string       `json:"authorities"`
}

// encode serializes the session. The password hash never leaves the database.
func encode(session *entity.Session) ([]byte, error) {
	rec := record{
		ID:         session.ID,
		User:       fromUser(session.User),
		OAuthState: session.OAuthState,
		ExpiresAt:  session.ExpiresAt,
	}

	switch auth := session.Authentication.(type) {
	case nil:
	case *entity.OAuth2Authentication:
		rec.Auth = &authRecord{
			Kind:           authKindOAuth2,
			RegistrationID: auth.RegistrationID,
			Attributes:     auth.Attributes,
			Authorities:    auth.GrantedAuthorities.ToStrings(),
		}
	case *entity.AttributeAuthentication:
		rec.Auth = &authRecord{
			Kind:        authKindAttributes,
			Attributes:  auth.Principal,
			Credentials: auth.Credentials,
			Authorities: auth.GrantedAuthorities.ToStrings(),
		}
	default:
		return nil, errors.Errorf("session: unsupported authentication %T", auth)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "session: failed to marshal")
	}

	return data, nil
}

// decode restores a session. Numbers inside attributes stay json.Number so
// provider ids survive the round trip unchanged.
func decode(data []byte) (*entity.Session, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var rec record
	if err := decoder.Decode(&rec); err != nil {
		return nil, errors.Wrap(err, "session: failed to unmarshal")
	}

	session := &entity.Session{
		ID:         rec.ID,
		User:       toUser(rec.User),
		OAuthState: rec.OAuthState,
		ExpiresAt:  rec.ExpiresAt,
	}

	if rec.Auth != nil {
		switch rec.Auth.Kind {
		case authKindOAuth2:
			session.Authentication = &entity.OAuth2Authentication{
				RegistrationID:     rec.Auth.RegistrationID,
				Attributes:         rec.Auth.Attributes,
				GrantedAuthorities: entity.AuthoritiesFromStrings(rec.Auth.Authorities),
			}
		case authKindAttributes:
			session.Authentication = &entity.AttributeAuthentication{
				Principal:          rec.Auth.Attributes,
				Credentials:        rec.Auth.Credentials,
				GrantedAuthorities: entity.AuthoritiesFromStrings(rec.Auth.Authorities),
			}
		default:
			return nil, errors.Errorf("session: unknown authentication kind %q", rec.Auth.Kind)
		}
	}

	return session, nil
}

func fromUser(user *entity.User) *userRecord {
	if user == nil {
		return nil
	}

	return &userRecord{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Principal:  user.Principal,
		SocialType: string(user.SocialType),
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

func toUser(rec *userRecord) *entity.User {
	if rec == nil {
		return nil
	}

	return &entity.User{
		ID:         rec.ID,
		Name:       rec.Name,
		Email:      rec.Email,
		Principal:  rec.Principal,
		SocialType: entity.SocialType(rec.SocialType),
		CreatedAt:  rec.CreatedAt,
		UpdatedAt:  rec.UpdatedAt,
	}
}
