package social

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestNormalizer() *normalizer {
	return newNormalizer(func() time.Time { return fixedNow })
}

func decodeAttrs(t *testing.T, raw string) map[string]any {
	t.Helper()

	var attrs map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &attrs))

	return attrs
}

func TestNormalize_Kakao(t *testing.T) {
	attrs := decodeAttrs(t, `{"id":42,"kaccount_email":"havi@gmail.com","properties":{"nickname":"havi"}}`)

	profile, err := newTestNormalizer().Normalize("kakao", attrs)

	require.NoError(t, err)
	assert.Equal(t, "havi", profile.Name)
	assert.Equal(t, "havi@gmail.com", profile.Email)
	assert.Equal(t, "42", profile.Principal)
	assert.Equal(t, entity.SocialTypeKakao, profile.SocialType)
	assert.Equal(t, fixedNow, profile.ResolvedAt)
}

func TestNormalize_ModernProviders(t *testing.T) {
	tests := []struct {
		provider string
		raw      string
		want     [3]string
	}{
		{
			provider: "google",
			raw:      `{"id":"108234","name":"Havi Kim","email":"havi@gmail.com","picture":"x"}`,
			want:     [3]string{"Havi Kim", "havi@gmail.com", "108234"},
		},
		{
			provider: "facebook",
			raw:      `{"id":"10157","name":"Havi","email":"havi@facebook.com"}`,
			want:     [3]string{"Havi", "havi@facebook.com", "10157"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			profile, err := newTestNormalizer().Normalize(tt.provider, decodeAttrs(t, tt.raw))

			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]string{profile.Name, profile.Email, profile.Principal})
			assert.Equal(t, entity.SocialType(tt.provider), profile.SocialType)
		})
	}
}

func TestNormalize_UnknownProvider(t *testing.T) {
	profile, err := newTestNormalizer().Normalize("twitter", map[string]any{"id": "1"})

	assert.Nil(t, profile)
	assert.ErrorIs(t, err, domainerrors.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "twitter")
}

func TestNormalize_MissingFieldsBecomeEmpty(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		attrs    map[string]any
	}{
		{name: "kakao without properties", provider: "kakao", attrs: map[string]any{"id": float64(7)}},
		{name: "kakao with malformed properties", provider: "kakao", attrs: map[string]any{"id": float64(7), "properties": "oops"}},
		{name: "google without email", provider: "google", attrs: map[string]any{"id": "7", "email": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile, err := newTestNormalizer().Normalize(tt.provider, tt.attrs)

			require.NoError(t, err)
			assert.Equal(t, "7", profile.Principal)
			assert.Empty(t, profile.Email)
		})
	}
}

func TestNormalize_NilAttributes(t *testing.T) {
	profile, err := newTestNormalizer().Normalize("facebook", nil)

	require.NoError(t, err)
	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Email)
	assert.Empty(t, profile.Principal)
}

func TestStringify(t *testing.T) {
	decoder := json.NewDecoder(strings.NewReader(`12345678901234567890`))
	decoder.UseNumber()
	var big any
	require.NoError(t, decoder.Decode(&big))

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "string", in: "abc", want: "abc"},
		{name: "integral float", in: float64(42), want: "42"},
		{name: "large integral float", in: float64(1234567890123), want: "1234567890123"},
		{name: "fractional float", in: 4.5, want: "4.5"},
		{name: "json number", in: big, want: "12345678901234567890"},
		{name: "int", in: 7, want: "7"},
		{name: "bool", in: true, want: "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stringify(tt.in))
		})
	}
}

func TestProviderProfile_ToUser(t *testing.T) {
	profile, err := newTestNormalizer().Normalize("kakao", decodeAttrs(t, `{"id":42,"kaccount_email":"havi@gmail.com","properties":{"nickname":"havi"}}`))
	require.NoError(t, err)

	user := profile.ToUser()

	assert.Equal(t, "havi", user.Name)
	assert.Equal(t, "havi@gmail.com", user.Email)
	assert.Equal(t, "42", user.Principal)
	assert.Equal(t, entity.SocialTypeKakao, user.SocialType)
	assert.Equal(t, fixedNow, user.CreatedAt)
	assert.Empty(t, user.Password)
	assert.True(t, user.IsSocial())
}
