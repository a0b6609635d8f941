package entity

import "slices"

// Authority is a granted permission checked by route gates, e.g. ROLE_KAKAO.
type Authority string

// String returns the string representation of the Authority.
func (a Authority) String() string {
	return string(a)
}

// Authorities is the granted-authority set of an authentication.
type Authorities []Authority

// Contains checks if the set holds a specific authority.
func (as Authorities) Contains(authority Authority) bool {
	return slices.Contains(as, authority)
}

// ToStrings converts Authorities to []string for serialization.
func (as Authorities) ToStrings() []string {
	result := make([]string, len(as))
	for i, a := range as {
		result[i] = a.String()
	}

	return result
}

// AuthoritiesFromStrings converts []string to Authorities, skipping blank entries.
func AuthoritiesFromStrings(ss []string) Authorities {
	result := make(Authorities, 0, len(ss))
	for _, s := range ss {
		if s == "" {
			continue
		}
		result = append(result, Authority(s))
	}

	return result
}
