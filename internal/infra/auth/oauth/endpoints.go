package oauth

import (
	"community/internal/domain/entity"

	"golang.org/x/oauth2"
)

// providerDefaults are the public endpoints used when the configuration leaves a URI empty.
type providerDefaults struct {
	endpoint    oauth2.Endpoint
	userInfoURL string
	scopes      []string
}

var defaults = map[entity.SocialType]providerDefaults{
	entity.SocialTypeFacebook: {
		endpoint: oauth2.Endpoint{
			AuthURL:  "https://www.facebook.com/dialog/oauth",
			TokenURL: "https://graph.facebook.com/oauth/access_token",
		},
		userInfoURL: "https://graph.facebook.com/me?fields=id,name,email",
		scopes:      []string{"email", "public_profile"},
	},
	entity.SocialTypeGoogle: {
		endpoint: oauth2.Endpoint{
			AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
			TokenURL: "https://oauth2.googleapis.com/token",
		},
		userInfoURL: "https://www.googleapis.com/oauth2/v2/userinfo",
		scopes:      []string{"openid", "email", "profile"},
	},
	entity.SocialTypeKakao: {
		endpoint: oauth2.Endpoint{
			AuthURL:   "https://kauth.kakao.com/oauth/authorize",
			TokenURL:  "https://kauth.kakao.com/oauth/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
		userInfoURL: "https://kapi.kakao.com/v1/user/me",
	},
}
