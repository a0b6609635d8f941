package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"community/internal/domain/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"oauth": map[string]any{
			"kakao": map[string]any{
				"clientId":    "",
				"userInfoUri": "",
			},
		},
		"auth": map[string]any{
			"linkPolicy": "email",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "OAUTH_KAKAO_CLIENTID", want: "oauth.kakao.clientId"},
		{envKey: "OAUTH_KAKAO_USERINFOURI", want: "oauth.kakao.userInfoUri"},
		{envKey: "AUTH_LINKPOLICY", want: "auth.linkPolicy"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

const testConfigYAML = `
env:
  serviceName: community
http:
  port: 8080
auth:
  linkPolicy: email
  stateTTL: 5m
oauth:
  kakao:
    clientId: kakao-client
    redirectUri: http://localhost:8080/login/kakao/callback
seed:
  users:
    - name: havi
      email: havi@gmail.com
      password: test
`

func TestLoadWithEnv_ReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("AUTH_LINKPOLICY", "strict")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "community", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "strict", cfg.Auth.LinkPolicy)
	assert.Equal(t, 5*time.Minute, cfg.Auth.StateTTL)
	require.NotNil(t, cfg.OAuth.Kakao)
	assert.Equal(t, "kakao-client", cfg.OAuth.Kakao.ClientID)
	assert.Nil(t, cfg.OAuth.Google)
	require.Len(t, cfg.Seed.Users, 1)
	assert.Equal(t, "havi@gmail.com", cfg.Seed.Users[0].Email)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, constants.SessionStoreMemory, cfg.Session.Store)
	assert.Equal(t, defaultSessionCookieName, cfg.Session.CookieName)
	assert.Equal(t, defaultSessionTTL, cfg.Session.TTL)
	assert.Equal(t, defaultLinkPolicy, cfg.Auth.LinkPolicy)
	assert.Equal(t, defaultStateTTL, cfg.Auth.StateTTL)
	assert.NotNil(t, cfg.OAuth)
}
