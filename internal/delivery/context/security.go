package context

import (
	"community/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

const (
	keySession         = "session"
	keySecurityContext = "security_context"
)

// SetSession attaches the loaded session to the request.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(keySession, session)
}

// GetSession returns the request's session, or nil when the session middleware did not run.
func GetSession(c echo.Context) *entity.Session {
	session, _ := c.Get(keySession).(*entity.Session)

	return session
}

// SetSecurityContext attaches the request's security context.
func SetSecurityContext(c echo.Context, sec *entity.SecurityContext) {
	c.Set(keySecurityContext, sec)
}

// GetSecurityContext returns the request's security context.
// An empty context is created on first access so callers never see nil.
func GetSecurityContext(c echo.Context) *entity.SecurityContext {
	if sec, ok := c.Get(keySecurityContext).(*entity.SecurityContext); ok && sec != nil {
		return sec
	}

	sec := entity.NewSecurityContext(nil)
	SetSecurityContext(c, sec)

	return sec
}
