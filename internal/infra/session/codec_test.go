package session

import (
	"encoding/json"
	"testing"
	"time"

	"community/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_OAuth2SessionRoundTrip(t *testing.T) {
	expires := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	session := &entity.Session{
		ID: "sid",
		User: &entity.User{
			ID:         uuid.New(),
			Name:       "havi",
			Password:   "$2a$10$secret",
			Email:      "havi@gmail.com",
			Principal:  "42",
			SocialType: entity.SocialTypeKakao,
		},
		Authentication: &entity.OAuth2Authentication{
			RegistrationID: "kakao",
			Attributes: map[string]any{
				"id":         json.Number("1234567890123456789"),
				"properties": map[string]any{"nickname": "havi"},
			},
			GrantedAuthorities: entity.Authorities{"ROLE_KAKAO"},
		},
		OAuthState: "nonce",
		ExpiresAt:  expires,
	}

	data, err := encode(session)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$10$secret")

	got, err := decode(data)
	require.NoError(t, err)

	assert.Equal(t, "sid", got.ID)
	assert.Equal(t, "nonce", got.OAuthState)
	assert.True(t, expires.Equal(got.ExpiresAt))
	require.NotNil(t, got.User)
	assert.Equal(t, session.User.ID, got.User.ID)
	assert.Equal(t, entity.SocialTypeKakao, got.User.SocialType)
	assert.Empty(t, got.User.Password)

	auth, ok := got.Authentication.(*entity.OAuth2Authentication)
	require.True(t, ok)
	assert.Equal(t, "kakao", auth.RegistrationID)
	assert.Equal(t, json.Number("1234567890123456789"), auth.Attributes["id"])
	assert.Equal(t, entity.Authorities{"ROLE_KAKAO"}, auth.GrantedAuthorities)
}

func TestCodec_AttributeAuthenticationRoundTrip(t *testing.T) {
	session := &entity.Session{
		ID:             "sid",
		Authentication: entity.NewAttributeAuthentication(map[string]any{"id": "7"}, "ROLE_GOOGLE"),
		ExpiresAt:      time.Now().Add(time.Hour),
	}

	data, err := encode(session)
	require.NoError(t, err)

	got, err := decode(data)
	require.NoError(t, err)

	auth, ok := got.Authentication.(*entity.AttributeAuthentication)
	require.True(t, ok)
	assert.Equal(t, entity.NoCredentials, auth.Credentials)
	assert.Equal(t, entity.Authorities{"ROLE_GOOGLE"}, auth.GrantedAuthorities)
	assert.Equal(t, "7", auth.Principal["id"])
}

func TestCodec_AnonymousSession(t *testing.T) {
	data, err := encode(&entity.Session{ID: "sid", ExpiresAt: time.Now().Add(time.Hour)})
	require.NoError(t, err)

	got, err := decode(data)
	require.NoError(t, err)
	assert.Nil(t, got.User)
	assert.Nil(t, got.Authentication)
}

func TestCodec_RejectsUnknownKind(t *testing.T) {
	_, err := decode([]byte(`{"id":"sid","auth":{"kind":"basic","authorities":[]}}`))
	assert.Error(t, err)
}

func TestGenerateID(t *testing.T) {
	first, err := generateID()
	require.NoError(t, err)
	second, err := generateID()
	require.NoError(t, err)

	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
}
