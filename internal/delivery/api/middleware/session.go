package middleware

import (
	"log/slog"
	"net/http"

	"community/config"
	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"
	"community/internal/usecase"

	"github.com/labstack/echo/v4"
)

const defaultCookieName = "COMMUNITY_SESSION"

// SessionMiddleware loads the session named by the cookie and persists it
// right before the response is written.
type SessionMiddleware struct {
	sessions   usecase.SessionUsecase
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewSessionMiddleware creates the session middleware.
func NewSessionMiddleware(sessions usecase.SessionUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	m := &SessionMiddleware{
		sessions:   sessions,
		cookieName: defaultCookieName,
		logger:     logger,
	}
	if cfg.Session != nil {
		if cfg.Session.CookieName != "" {
			m.cookieName = cfg.Session.CookieName
		}
		m.secure = cfg.Session.Secure
	}

	return m
}

// Process attaches the session and a request-local security context to c.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := ""
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			id = cookie.Value
		}

		session, err := m.sessions.Load(c.Request().Context(), id)
		if err != nil {
			return err
		}
		sec := entity.NewSecurityContext(session.Authentication)

		deliverycontext.SetSession(c, session)
		deliverycontext.SetSecurityContext(c, sec)

		c.Response().Before(func() {
			m.commit(c, session, sec)
		})

		return next(c)
	}
}

func (m *SessionMiddleware) commit(c echo.Context, session *entity.Session, sec *entity.SecurityContext) {
	if sec.Changed() && !session.IsInvalidated() {
		session.SetAuthentication(sec.Authentication())
	}

	ctx := c.Request().Context()
	result, err := m.sessions.Commit(ctx, session)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to commit session", slog.Any("error", err))

		return
	}

	switch {
	case result.ClearCookie:
		c.SetCookie(&http.Cookie{
			Name:     m.cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
	case result.SetCookie:
		c.SetCookie(&http.Cookie{
			Name:     m.cookieName,
			Value:    result.SessionID,
			Path:     "/",
			Expires:  session.ExpiresAt,
			HttpOnly: true,
			Secure:   m.secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
