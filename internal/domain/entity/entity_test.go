package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSocialType(t *testing.T) {
	for _, key := range []string{"facebook", "google", "kakao"} {
		socialType, err := ParseSocialType(key)
		require.NoError(t, err)
		assert.Equal(t, key, socialType.String())
	}

	_, err := ParseSocialType("twitter")
	assert.ErrorIs(t, err, ErrUnsupportedSocialType)

	_, err = ParseSocialType("KAKAO")
	assert.Error(t, err)
}

func TestSocialType_Authority(t *testing.T) {
	assert.Equal(t, Authority("ROLE_FACEBOOK"), SocialTypeFacebook.Authority())
	assert.Equal(t, Authority("ROLE_GOOGLE"), SocialTypeGoogle.Authority())
	assert.Equal(t, Authority("ROLE_KAKAO"), SocialTypeKakao.Authority())
}

func TestUser_Origin(t *testing.T) {
	local := &User{Name: "havi", Email: "havi@gmail.com", Password: "hash"}
	social := &User{Name: "havi", Email: "havi@gmail.com", Principal: "42", SocialType: SocialTypeKakao}

	assert.True(t, local.IsLocal())
	assert.False(t, local.IsSocial())
	assert.True(t, social.IsSocial())
	assert.False(t, social.IsLocal())
}

func TestLinkPolicy(t *testing.T) {
	policy, err := ParseLinkPolicy(" Strict ")
	require.NoError(t, err)
	assert.Equal(t, LinkPolicyStrict, policy)

	_, err = ParseLinkPolicy("merge")
	assert.Error(t, err)

	local := &User{Email: "havi@gmail.com"}
	google := &User{Email: "havi@gmail.com", Principal: "1", SocialType: SocialTypeGoogle}

	assert.True(t, LinkPolicyEmail.Allows(local, SocialTypeKakao))
	assert.True(t, LinkPolicyEmail.Allows(google, SocialTypeKakao))
	assert.False(t, LinkPolicyStrict.Allows(local, SocialTypeKakao))
	assert.False(t, LinkPolicyStrict.Allows(google, SocialTypeKakao))
	assert.True(t, LinkPolicyStrict.Allows(google, SocialTypeGoogle))
}

func TestSecurityContext(t *testing.T) {
	var nilCtx *SecurityContext
	assert.Nil(t, nilCtx.Authentication())
	assert.False(t, nilCtx.IsAuthenticated())
	assert.False(t, nilCtx.Changed())

	sec := NewSecurityContext(&OAuth2Authentication{GrantedAuthorities: Authorities{"ROLE_GOOGLE"}})
	assert.True(t, sec.HasAuthority("ROLE_GOOGLE"))
	assert.False(t, sec.HasAuthority("ROLE_KAKAO"))
	assert.False(t, sec.Changed())

	sec.SetAuthentication(NewAttributeAuthentication(nil, "ROLE_KAKAO"))
	assert.True(t, sec.Changed())
	assert.True(t, sec.HasAuthority("ROLE_KAKAO"))
	assert.False(t, sec.HasAuthority("ROLE_GOOGLE"))
}

func TestSession_ChangeTracking(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	session := NewSession("sid", now, time.Hour)

	assert.False(t, session.IsDirty())
	assert.False(t, session.IsExpired(now))
	assert.True(t, session.IsExpired(now.Add(time.Hour)))

	session.SetOAuthState("nonce")
	assert.True(t, session.IsDirty())
	assert.Equal(t, "nonce", session.ConsumeOAuthState())
	assert.Empty(t, session.ConsumeOAuthState())

	session.SetIdentity(&User{Email: "havi@gmail.com"})
	session.RenewID()
	assert.True(t, session.NeedsRenewal())

	session.MarkClean()
	assert.False(t, session.IsDirty())
	assert.False(t, session.NeedsRenewal())

	session.Invalidate()
	assert.True(t, session.IsInvalidated())
	assert.Nil(t, session.Identity())
	assert.Nil(t, session.Authentication)
}

func TestAuthoritiesFromStrings(t *testing.T) {
	got := AuthoritiesFromStrings([]string{"ROLE_KAKAO", "", "ROLE_GOOGLE"})

	assert.Equal(t, Authorities{"ROLE_KAKAO", "ROLE_GOOGLE"}, got)
	assert.Equal(t, []string{"ROLE_KAKAO", "ROLE_GOOGLE"}, got.ToStrings())
}
