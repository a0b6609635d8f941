package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// SocialType identifies one of the supported social login providers.
type SocialType string

const (
	// SocialTypeFacebook is the Facebook provider.
	SocialTypeFacebook SocialType = "facebook"
	// SocialTypeGoogle is the Google provider.
	SocialTypeGoogle SocialType = "google"
	// SocialTypeKakao is the Kakao provider.
	SocialTypeKakao SocialType = "kakao"
)

const rolePrefix = "ROLE_"

// ErrUnsupportedSocialType is returned when a provider key is outside the supported set.
var ErrUnsupportedSocialType = errors.New("unsupported social type")

// SocialTypes lists every supported provider in a stable order.
func SocialTypes() []SocialType {
	return []SocialType{SocialTypeFacebook, SocialTypeGoogle, SocialTypeKakao}
}

// ParseSocialType converts a provider key (e.g. a registration id) into a SocialType.
func ParseSocialType(key string) (SocialType, error) {
	socialType := SocialType(key)
	if !socialType.IsValid() {
		return "", errors.Wrapf(ErrUnsupportedSocialType, "provider %q", key)
	}

	return socialType, nil
}

// String returns the provider key.
func (s SocialType) String() string {
	return string(s)
}

// IsValid checks if the SocialType is one of the supported providers.
func (s SocialType) IsValid() bool {
	switch s {
	case SocialTypeFacebook, SocialTypeGoogle, SocialTypeKakao:
		return true
	default:
		return false
	}
}

// Authority returns the authority granted to members of this provider, e.g. ROLE_GOOGLE.
func (s SocialType) Authority() Authority {
	return Authority(rolePrefix + strings.ToUpper(string(s)))
}
