package middleware

import (
	"net/http"
	"strings"

	"community/internal/delivery/api/response"
	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// LoginPath is where anonymous requests to protected routes are sent.
const LoginPath = "/login"

// publicPaths are reachable without an authentication; every other path requires one.
var publicPaths = map[string]struct{}{
	"/":        {},
	LoginPath:  {},
	"/health":  {},
	"/metrics": {},
	ErrorPath:  {},
}

// SecurityMiddleware gates routes on the request's security context.
// It must run after SessionMiddleware.
type SecurityMiddleware struct{}

// NewSecurityMiddleware is the constructor for SecurityMiddleware.
func NewSecurityMiddleware() *SecurityMiddleware {
	return &SecurityMiddleware{}
}

// Authenticate redirects anonymous requests for non-public paths to the login page.
func (m *SecurityMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if IsPublicPath(c.Request().URL.Path) || deliverycontext.GetSecurityContext(c).IsAuthenticated() {
			return next(c)
		}

		return c.Redirect(http.StatusFound, LoginPath)
	}
}

// RequireAuthority rejects requests whose authentication lacks authority.
// Anonymous requests are redirected to the login page first.
func (m *SecurityMiddleware) RequireAuthority(authority entity.Authority) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sec := deliverycontext.GetSecurityContext(c)
			if !sec.IsAuthenticated() {
				return c.Redirect(http.StatusFound, LoginPath)
			}
			if !sec.HasAuthority(authority) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+authority.String()+"' authority")
			}

			return next(c)
		}
	}
}

// IsPublicPath reports whether path is served to anonymous requests.
func IsPublicPath(path string) bool {
	if _, ok := publicPaths[path]; ok {
		return true
	}

	return strings.HasPrefix(path, LoginPath+"/")
}
