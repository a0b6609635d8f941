package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "community/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (string, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	var fromCtx string
	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := m.Process(func(c echo.Context) error {
		ctx := c.Request().Context()
		fromCtx = deliverycontext.GetRequestIDFromContext(ctx)
		assert.NotNil(t, deliverycontext.GetLogger(ctx))

		return c.NoContent(http.StatusOK)
	})(c)
	require.NoError(t, err)

	return rec.Header().Get(deliverycontext.HeaderXRequestID), fromCtx
}

func TestRequestIDMiddleware_PropagatesHeader(t *testing.T) {
	header, fromCtx := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", header)
	assert.Equal(t, "req-123", fromCtx)
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	header, fromCtx := runRequestID(t, "")

	_, err := uuid.Parse(header)
	require.NoError(t, err)
	assert.Equal(t, header, fromCtx)
}

func TestRequestIDMiddleware_ReplacesOversizedID(t *testing.T) {
	header, _ := runRequestID(t, strings.Repeat("x", maxRequestIDLength+1))

	_, err := uuid.Parse(header)
	require.NoError(t, err)
}
