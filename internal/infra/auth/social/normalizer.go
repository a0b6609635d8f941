// Package social turns raw provider user-info payloads into provider-agnostic profiles.
package social

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/service"
)

// Attribute keys of the user-info payloads.
const (
	attrID         = "id"
	attrName       = "name"
	attrEmail      = "email"
	attrProperties = "properties"
	attrNickname   = "nickname"
	attrKakaoEmail = "kaccount_email"
)

// profileMapper extracts profile fields from one provider's payload.
type profileMapper func(attrs map[string]any) (name, email, principal string)

// normalizer implements service.ProfileNormalizer with a strategy per provider.
type normalizer struct {
	mappers map[entity.SocialType]profileMapper
	now     func() time.Time
}

// NewNormalizer returns the normalizer for every supported provider.
func NewNormalizer() service.ProfileNormalizer {
	return newNormalizer(time.Now)
}

func newNormalizer(now func() time.Time) *normalizer {
	return &normalizer{
		mappers: map[entity.SocialType]profileMapper{
			entity.SocialTypeFacebook: mapModernProfile,
			entity.SocialTypeGoogle:   mapModernProfile,
			entity.SocialTypeKakao:    mapKakaoProfile,
		},
		now: now,
	}
}

// Normalize maps attrs using the strategy registered for providerKey.
func (n *normalizer) Normalize(providerKey string, attrs map[string]any) (*service.ProviderProfile, error) {
	socialType := entity.SocialType(providerKey)
	mapper, ok := n.mappers[socialType]
	if !ok {
		return nil, domainerrors.ErrUnknownProvider.WrapMessage(fmt.Sprintf("provider %q", providerKey))
	}

	name, email, principal := mapper(attrs)

	return &service.ProviderProfile{
		Name:       name,
		Email:      email,
		Principal:  principal,
		SocialType: socialType,
		ResolvedAt: n.now(),
	}, nil
}

// mapModernProfile reads the flat payload shared by Facebook and Google.
func mapModernProfile(attrs map[string]any) (name, email, principal string) {
	return stringAttr(attrs, attrName), stringAttr(attrs, attrEmail), stringAttr(attrs, attrID)
}

// mapKakaoProfile reads the legacy Kakao v1 payload, which nests the nickname
// under "properties" and keeps the email at the top level as kaccount_email.
func mapKakaoProfile(attrs map[string]any) (name, email, principal string) {
	properties, _ := attrs[attrProperties].(map[string]any)

	return stringAttr(properties, attrNickname), stringAttr(attrs, attrKakaoEmail), stringAttr(attrs, attrID)
}

func stringAttr(attrs map[string]any, key string) string {
	if attrs == nil {
		return ""
	}

	return stringify(attrs[key])
}

// stringify renders a decoded JSON scalar. Whole numbers print without an
// exponent so numeric provider ids survive float64 decoding.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		if value == math.Trunc(value) && !math.IsInf(value, 0) {
			return strconv.FormatFloat(value, 'f', -1, 64)
		}

		return strconv.FormatFloat(value, 'g', -1, 64)
	case float32:
		return stringify(float64(value))
	default:
		return fmt.Sprint(value)
	}
}
