package auth

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"community/config"
	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

const (
	stateIssuer   = "community-login"
	stateNonceLen = 24
)

// stateClaims is the payload of the signed OAuth state parameter.
type stateClaims struct {
	Provider string `json:"prv"`
	Nonce    string `json:"nonce"`
	jwt.RegisteredClaims
}

// jwtStateService signs the OAuth state as a short-lived HS256 token so the
// callback can be checked without server-side bookkeeping beyond the nonce.
type jwtStateService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewStateService is the constructor for jwtStateService.
func NewStateService(cfg *config.Config) (service.StateService, error) {
	if cfg.Auth == nil || cfg.Auth.StateSecret == "" {
		return nil, errors.New("auth.stateSecret must be provided")
	}

	return &jwtStateService{
		secret: []byte(cfg.Auth.StateSecret),
		ttl:    cfg.Auth.StateTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a fresh state for socialType and returns it with its nonce.
func (s *jwtStateService) Issue(socialType entity.SocialType) (state, nonce string, err error) {
	nonce, err = newNonce()
	if err != nil {
		return "", "", err
	}

	now := s.now()
	claims := stateClaims{
		Provider: socialType.String(),
		Nonce:    nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    stateIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	state, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", "", errors.Wrap(err, "sign oauth state")
	}

	return state, nonce, nil
}

// Verify checks the state and returns its nonce.
func (s *jwtStateService) Verify(state string, socialType entity.SocialType) (string, error) {
	claims := &stateClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(stateIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", domainerrors.ErrOAuthStateInvalid.WrapMessage(err.Error())
	}

	if claims.Provider != socialType.String() {
		return "", domainerrors.ErrOAuthStateInvalid.WrapMessage("state issued for another provider")
	}

	return claims.Nonce, nil
}

func newNonce() (string, error) {
	buf := make([]byte, stateNonceLen)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "generate nonce")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
