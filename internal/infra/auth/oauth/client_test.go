package oauth

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"community/config"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const kakaoPayload = `{"id":1234567890123456789,"kaccount_email":"havi@gmail.com","properties":{"nickname":"havi"}}`

func newProviderServer(t *testing.T, userInfoStatus int, userInfoBody string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		assert.Equal(t, "kakao-client", r.PostForm.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "bearer", "expires_in": 3600})
	})
	mux.HandleFunc("/me", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		w.WriteHeader(userInfoStatus)
		_, _ = io.WriteString(w, userInfoBody)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return srv
}

func newTestClient(srv *httptest.Server) *client {
	return newClient(entity.SocialTypeKakao, &config.OAuthClientConfig{
		ClientID:     "kakao-client",
		ClientSecret: "kakao-secret",
		RedirectURI:  "http://localhost:8080/login/kakao/callback",
		AuthURI:      srv.URL + "/authorize",
		TokenURI:     srv.URL + "/token",
		UserInfoURI:  srv.URL + "/me",
	}, srv.Client())
}

func TestClient_FetchAttributes(t *testing.T) {
	srv := newProviderServer(t, http.StatusOK, kakaoPayload)

	attrs, err := newTestClient(srv).FetchAttributes(context.Background(), "the-code")

	require.NoError(t, err)
	assert.Equal(t, json.Number("1234567890123456789"), attrs["id"])
	assert.Equal(t, "havi@gmail.com", attrs["kaccount_email"])
	assert.Equal(t, map[string]any{"nickname": "havi"}, attrs["properties"])
}

func TestClient_FetchAttributes_UserInfoFailure(t *testing.T) {
	srv := newProviderServer(t, http.StatusUnauthorized, `{"msg":"invalid token"}`)

	_, err := newTestClient(srv).FetchAttributes(context.Background(), "the-code")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClient_AuthCodeURL(t *testing.T) {
	srv := newProviderServer(t, http.StatusOK, kakaoPayload)

	raw := newTestClient(srv).AuthCodeURL("signed-state")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/authorize", u.Path)
	assert.Equal(t, "signed-state", u.Query().Get("state"))
	assert.Equal(t, "kakao-client", u.Query().Get("client_id"))
	assert.Equal(t, "code", u.Query().Get("response_type"))
	assert.Equal(t, "http://localhost:8080/login/kakao/callback", u.Query().Get("redirect_uri"))
}

func TestNewClient_UsesProviderDefaults(t *testing.T) {
	c := newClient(entity.SocialTypeGoogle, &config.OAuthClientConfig{
		ClientID:    "google-client",
		RedirectURI: "http://localhost:8080/login/google/callback",
	}, nil)

	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth", c.oauthConfig.Endpoint.AuthURL)
	assert.Equal(t, "https://www.googleapis.com/oauth2/v2/userinfo", c.userInfoURL)
	assert.Equal(t, []string{"openid", "email", "profile"}, c.oauthConfig.Scopes)
	assert.Equal(t, entity.SocialTypeGoogle, c.SocialType())
}

func TestNewRegistry(t *testing.T) {
	cfg := &config.Config{OAuth: &config.OAuthConfig{
		Kakao: &config.OAuthClientConfig{
			ClientID:    "kakao-client",
			RedirectURI: "http://localhost:8080/login/kakao/callback",
		},
		Google: &config.OAuthClientConfig{},
	}}

	reg, err := NewRegistry(RegistryParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)

	assert.Equal(t, []entity.SocialType{entity.SocialTypeKakao}, reg.Enabled())

	c, err := reg.Client(entity.SocialTypeKakao)
	require.NoError(t, err)
	assert.Equal(t, entity.SocialTypeKakao, c.SocialType())

	_, err = reg.Client(entity.SocialTypeGoogle)
	assert.ErrorIs(t, err, domainerrors.ErrProviderNotConfigured)
}

func TestNewRegistry_RejectsIncompleteRegistration(t *testing.T) {
	cfg := &config.Config{OAuth: &config.OAuthConfig{
		Facebook: &config.OAuthClientConfig{ClientID: "fb-client", RedirectURI: "not a url"},
	}}

	_, err := NewRegistry(RegistryParams{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	assert.Error(t, err)
}
