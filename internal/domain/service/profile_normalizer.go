package service

import (
	"time"

	"community/internal/domain/entity"
)

// ProviderProfile is the provider-agnostic result of normalizing a user-info payload.
type ProviderProfile struct {
	Name       string
	Email      string
	Principal  string
	SocialType entity.SocialType
	ResolvedAt time.Time
}

// ToUser builds the candidate Identity for first-time registration.
func (p *ProviderProfile) ToUser() *entity.User {
	return &entity.User{
		Name:       p.Name,
		Email:      p.Email,
		Principal:  p.Principal,
		SocialType: p.SocialType,
		CreatedAt:  p.ResolvedAt,
	}
}

// ProfileNormalizer maps raw provider attributes to a ProviderProfile.
type ProfileNormalizer interface {
	// Normalize selects the mapping for providerKey and extracts the profile fields.
	// Missing fields become empty strings; an unknown key fails with domainerrors.ErrUnknownProvider.
	Normalize(providerKey string, attrs map[string]any) (*ProviderProfile, error)
}
