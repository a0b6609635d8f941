// Package oauth implements the authorization-code flow against the social providers.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"community/config"
	"community/internal/domain/entity"
	"community/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	defaultHTTPTimeout  = 10 * time.Second
	maxUserInfoBodySize = 1 << 20
)

// client implements service.ProviderClient with golang.org/x/oauth2.
type client struct {
	socialType  entity.SocialType
	oauthConfig *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

var _ service.ProviderClient = (*client)(nil)

func newClient(socialType entity.SocialType, cfg *config.OAuthClientConfig, httpClient *http.Client) *client {
	def := defaults[socialType]

	endpoint := def.endpoint
	if cfg.AuthURI != "" {
		endpoint.AuthURL = cfg.AuthURI
	}
	if cfg.TokenURI != "" {
		endpoint.TokenURL = cfg.TokenURI
	}

	userInfoURL := def.userInfoURL
	if cfg.UserInfoURI != "" {
		userInfoURL = cfg.UserInfoURI
	}

	scopes := def.scopes
	if len(cfg.Scopes) > 0 {
		scopes = cfg.Scopes
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &client{
		socialType: socialType,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Endpoint:     endpoint,
			Scopes:       scopes,
		},
		userInfoURL: userInfoURL,
		httpClient:  httpClient,
	}
}

// SocialType returns the provider identifier used by the registry.
func (c *client) SocialType() entity.SocialType {
	return c.socialType
}

// AuthCodeURL builds the consent URL for the given state.
func (c *client) AuthCodeURL(state string) string {
	return c.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// FetchAttributes exchanges the code and reads the user-info endpoint with the issued token.
// Numbers are kept as json.Number so large provider ids are not rounded.
func (c *client) FetchAttributes(ctx context.Context, code string) (map[string]any, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)

	token, err := c.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "%s token exchange failed", c.socialType)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := c.oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s user info request failed", c.socialType)
	}
	defer resp.Body.Close()

	body := io.LimitReader(resp.Body, maxUserInfoBodySize)
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(body)

		return nil, errors.Errorf("%s user info request failed with status %d: %s", c.socialType, resp.StatusCode, string(raw))
	}

	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var attrs map[string]any
	if err := decoder.Decode(&attrs); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	return attrs, nil
}
