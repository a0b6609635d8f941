package entity

// Authentication is the credential a request was authenticated with.
// Route gates only look at the granted authorities; the identity resolver
// additionally needs the concrete kind to read provider attributes.
type Authentication interface {
	// Authorities returns the granted-authority set.
	Authorities() Authorities
	// IsAuthenticated reports whether the authentication represents a logged-in principal.
	IsAuthenticated() bool
}

// OAuth2Authentication is installed after a successful provider callback.
// It carries the raw user-info attributes exactly as the provider returned them.
type OAuth2Authentication struct {
	RegistrationID     string         // Provider key the user logged in with, e.g. "kakao".
	Attributes         map[string]any // Raw user-info payload.
	GrantedAuthorities Authorities    // Authorities extracted at login time.
}

// Authorities returns the granted-authority set.
func (a *OAuth2Authentication) Authorities() Authorities {
	return a.GrantedAuthorities
}

// IsAuthenticated always reports true for a completed OAuth2 login.
func (a *OAuth2Authentication) IsAuthenticated() bool {
	return true
}

// AttributeAuthentication replaces an OAuth2Authentication whose authorities
// disagree with the persisted account.
type AttributeAuthentication struct {
	Principal          map[string]any // Raw provider attributes carried over as principal.
	Credentials        string         // Always "N/A"; social accounts have no credential.
	GrantedAuthorities Authorities
}

// NoCredentials is the credential placeholder of an AttributeAuthentication.
const NoCredentials = "N/A"

// NewAttributeAuthentication builds an AttributeAuthentication holding a single authority.
func NewAttributeAuthentication(principal map[string]any, authority Authority) *AttributeAuthentication {
	return &AttributeAuthentication{
		Principal:          principal,
		Credentials:        NoCredentials,
		GrantedAuthorities: Authorities{authority},
	}
}

// Authorities returns the granted-authority set.
func (a *AttributeAuthentication) Authorities() Authorities {
	return a.GrantedAuthorities
}

// IsAuthenticated always reports true.
func (a *AttributeAuthentication) IsAuthenticated() bool {
	return true
}

// SecurityContext holds the authentication of one request.
// It is created per request and never shared between requests.
type SecurityContext struct {
	authentication Authentication
	changed        bool
}

// NewSecurityContext creates a request-local security context.
func NewSecurityContext(authentication Authentication) *SecurityContext {
	return &SecurityContext{authentication: authentication}
}

// Authentication returns the current authentication, or nil for anonymous requests.
func (s *SecurityContext) Authentication() Authentication {
	if s == nil {
		return nil
	}

	return s.authentication
}

// SetAuthentication replaces the current authentication.
func (s *SecurityContext) SetAuthentication(authentication Authentication) {
	s.authentication = authentication
	s.changed = true
}

// Changed reports whether SetAuthentication was called during the request.
func (s *SecurityContext) Changed() bool {
	return s != nil && s.changed
}

// IsAuthenticated reports whether the context holds a logged-in principal.
func (s *SecurityContext) IsAuthenticated() bool {
	authentication := s.Authentication()

	return authentication != nil && authentication.IsAuthenticated()
}

// HasAuthority reports whether the current authentication was granted the authority.
func (s *SecurityContext) HasAuthority(authority Authority) bool {
	if !s.IsAuthenticated() {
		return false
	}

	return s.authentication.Authorities().Contains(authority)
}
