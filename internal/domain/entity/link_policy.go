package entity

import (
	"strings"

	"github.com/pkg/errors"
)

// LinkPolicy decides whether a social login may adopt an existing record with the same email.
type LinkPolicy string

const (
	// LinkPolicyEmail adopts any record with the same email, whatever its origin.
	LinkPolicyEmail LinkPolicy = "email"
	// LinkPolicyStrict adopts a record only when it was registered with the same provider.
	LinkPolicyStrict LinkPolicy = "strict"
)

// ParseLinkPolicy converts the configured value, case-insensitively.
func ParseLinkPolicy(value string) (LinkPolicy, error) {
	switch policy := LinkPolicy(strings.ToLower(strings.TrimSpace(value))); policy {
	case LinkPolicyEmail, LinkPolicyStrict:
		return policy, nil
	default:
		return "", errors.Errorf("unknown link policy %q", value)
	}
}

// Allows reports whether existing may be adopted for a login with socialType.
func (p LinkPolicy) Allows(existing *User, socialType SocialType) bool {
	if p != LinkPolicyStrict {
		return true
	}

	return existing.SocialType == socialType
}
