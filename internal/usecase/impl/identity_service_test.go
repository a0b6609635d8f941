package impl

import (
	"context"
	"testing"
	"time"

	"community/internal/domain/entity"
	domainerrors "community/internal/domain/errors"
	"community/internal/domain/repository"
	"community/internal/domain/service"
	"community/internal/infra/auth/social"
	mockRepo "community/internal/mocks/repository"
	mockSvc "community/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityFixtures struct {
	service    *identityService
	userRepo   *mockRepo.MockUserRepository
	normalizer *mockSvc.MockProfileNormalizer
	publisher  *mockSvc.MockEventPublisher
	metrics    *mockSvc.MockIdentityMetrics
}

func createIdentityFixtures(t *testing.T, linkPolicy string) identityFixtures {
	t.Helper()

	userRepo := mockRepo.NewMockUserRepository(t)
	normalizer := mockSvc.NewMockProfileNormalizer(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockIdentityMetrics(t)

	uc, err := NewIdentityService(IdentityServiceParams{
		UserRepo:   userRepo,
		Normalizer: normalizer,
		Publisher:  publisher,
		Metrics:    metrics,
		Config:     newTestConfig(linkPolicy),
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)

	srv, ok := uc.(*identityService)
	require.True(t, ok)

	return identityFixtures{
		service:    srv,
		userRepo:   userRepo,
		normalizer: normalizer,
		publisher:  publisher,
		metrics:    metrics,
	}
}

func googleLogin() *entity.OAuth2Authentication {
	return &entity.OAuth2Authentication{
		RegistrationID: "google",
		Attributes: map[string]any{
			"sub":   "1234567890",
			"name":  "Havi",
			"email": "havi@gmail.com",
		},
		GrantedAuthorities: entity.Authorities{entity.SocialTypeGoogle.Authority()},
	}
}

func googleProfile() *service.ProviderProfile {
	return &service.ProviderProfile{
		Name:       "Havi",
		Email:      "havi@gmail.com",
		Principal:  "1234567890",
		SocialType: entity.SocialTypeGoogle,
		ResolvedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func newTestSession() *entity.Session {
	return entity.NewSession("session-id", time.Now(), time.Hour)
}

func TestNewIdentityService_InvalidLinkPolicy(t *testing.T) {
	_, err := NewIdentityService(IdentityServiceParams{
		Config: newTestConfig("sometimes"),
		Logger: newDiscardLogger(),
	})

	require.Error(t, err)
}

func TestIdentityService_Resolve_ReturnsCachedIdentity(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	session := newTestSession()
	cached := &entity.User{ID: uuid.New(), Email: "havi@gmail.com"}
	session.SetIdentity(cached)

	f.metrics.EXPECT().ObserveResolution(service.ResolutionCached).Return()

	user, err := f.service.Resolve(context.Background(), session, entity.NewSecurityContext(googleLogin()))

	require.NoError(t, err)
	assert.Same(t, cached, user)
}

func TestIdentityService_Resolve_AnonymousReturnsNil(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	f.metrics.EXPECT().ObserveResolution(service.ResolutionAnonymous).Return()

	user, err := f.service.Resolve(context.Background(), newTestSession(), entity.NewSecurityContext(nil))

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_Resolve_AttributeAuthenticationIsNotResolved(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	f.metrics.EXPECT().ObserveResolution(service.ResolutionAnonymous).Return()

	sec := entity.NewSecurityContext(entity.NewAttributeAuthentication(map[string]any{}, "ROLE_GOOGLE"))
	user, err := f.service.Resolve(context.Background(), newTestSession(), sec)

	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestIdentityService_Resolve_UnknownProviderFailsWithoutRepositoryCalls(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	session := newTestSession()
	auth := &entity.OAuth2Authentication{RegistrationID: "github", Attributes: map[string]any{}}

	f.normalizer.EXPECT().Normalize("github", auth.Attributes).Return(nil, entity.ErrUnsupportedSocialType)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionFailed).Return()

	user, err := f.service.Resolve(context.Background(), session, entity.NewSecurityContext(auth))

	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUnsupportedSocialType)
	assert.Nil(t, user)
	assert.Nil(t, session.Identity())
}

func TestIdentityService_Resolve_ExistingUser(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	session := newTestSession()
	auth := googleLogin()
	sec := entity.NewSecurityContext(auth)
	existing := &entity.User{
		ID:         uuid.New(),
		Email:      "havi@gmail.com",
		Principal:  "1234567890",
		SocialType: entity.SocialTypeGoogle,
	}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(existing, nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

	user, err := f.service.Resolve(ctx, session, sec)

	require.NoError(t, err)
	assert.Same(t, existing, user)
	assert.Same(t, existing, session.Identity())
	assert.Same(t, auth, sec.Authentication(), "authentication with the matching authority is kept")
	assert.False(t, sec.Changed())
}

func TestIdentityService_Resolve_CreatesAndPublishes(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	session := newTestSession()
	auth := googleLogin()
	profile := googleProfile()

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(profile, nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			assert.Equal(t, "Havi", u.Name)
			assert.Equal(t, "1234567890", u.Principal)
			assert.Equal(t, entity.SocialTypeGoogle, u.SocialType)
			assert.Empty(t, u.Password)
			created := *u
			created.ID = uuid.New()

			return &created, nil
		})
	f.publisher.EXPECT().
		PublishIdentityRegistered(ctx, mock.AnythingOfType("*service.IdentityRegisteredEvent")).
		Run(func(_ context.Context, event *service.IdentityRegisteredEvent) {
			assert.Equal(t, "google", event.SocialType)
			assert.Equal(t, "havi@gmail.com", event.Email)
			assert.Equal(t, profile.ResolvedAt, event.RegisteredAt)
		}).
		Return(nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionCreated).Return()

	user, err := f.service.Resolve(ctx, session, entity.NewSecurityContext(auth))

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Same(t, user, session.Identity())
}

func TestIdentityService_Resolve_PublishFailureDoesNotFailLogin(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			u.ID = uuid.New()

			return u, nil
		})
	f.publisher.EXPECT().PublishIdentityRegistered(ctx, mock.Anything).Return(errors.New("broker down"))
	f.metrics.EXPECT().ObserveResolution(service.ResolutionCreated).Return()

	user, err := f.service.Resolve(ctx, newTestSession(), entity.NewSecurityContext(auth))

	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestIdentityService_Resolve_DuplicateCreateReReadsWinner(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()
	winner := &entity.User{ID: uuid.New(), Email: "havi@gmail.com", Principal: "1234567890", SocialType: entity.SocialTypeGoogle}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(nil, repository.ErrUserNotFound).Once()
	f.userRepo.EXPECT().Create(ctx, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(winner, nil).Once()
	f.metrics.EXPECT().ObserveResolution(service.ResolutionRaced).Return()

	user, err := f.service.Resolve(ctx, newTestSession(), entity.NewSecurityContext(auth))

	require.NoError(t, err)
	assert.Same(t, winner, user)
}

func TestIdentityService_Resolve_RepositoryFailure(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	session := newTestSession()
	auth := googleLogin()
	dbErr := errors.New("connection refused")

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(nil, dbErr)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionFailed).Return()

	user, err := f.service.Resolve(ctx, session, entity.NewSecurityContext(auth))

	require.ErrorIs(t, err, dbErr)
	assert.Nil(t, user)
	assert.Nil(t, session.Identity())
}

func TestIdentityService_Resolve_LinkPolicy(t *testing.T) {
	local := &entity.User{ID: uuid.New(), Name: "havi", Email: "havi@gmail.com", Password: "$2a$04$hash"}
	kakao := &entity.User{ID: uuid.New(), Email: "havi@gmail.com", Principal: "42", SocialType: entity.SocialTypeKakao}

	tests := []struct {
		name     string
		policy   string
		existing *entity.User
		wantErr  bool
	}{
		{name: "email policy adopts local account", policy: "email", existing: local},
		{name: "email policy adopts other provider", policy: "email", existing: kakao},
		{name: "strict policy rejects local account", policy: "strict", existing: local, wantErr: true},
		{name: "strict policy rejects other provider", policy: "strict", existing: kakao, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createIdentityFixtures(t, tt.policy)
			ctx := context.Background()
			session := newTestSession()
			auth := googleLogin()

			f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
			f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(tt.existing, nil)

			if tt.wantErr {
				f.metrics.EXPECT().ObserveResolution(service.ResolutionFailed).Return()
			} else {
				f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()
			}

			user, err := f.service.Resolve(ctx, session, entity.NewSecurityContext(auth))

			if tt.wantErr {
				require.ErrorIs(t, err, domainerrors.ErrAccountLinkConflict)
				assert.Nil(t, session.Identity())

				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.existing, user)
		})
	}
}

func TestIdentityService_Resolve_ReconcilesAuthority(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()
	sec := entity.NewSecurityContext(auth)
	kakao := &entity.User{ID: uuid.New(), Email: "havi@gmail.com", Principal: "42", SocialType: entity.SocialTypeKakao}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(kakao, nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

	_, err := f.service.Resolve(ctx, newTestSession(), sec)
	require.NoError(t, err)

	replaced, ok := sec.Authentication().(*entity.AttributeAuthentication)
	require.True(t, ok)
	assert.True(t, sec.Changed())
	assert.Equal(t, entity.Authorities{"ROLE_KAKAO"}, replaced.Authorities())
	assert.Equal(t, entity.NoCredentials, replaced.Credentials)
	assert.Equal(t, auth.Attributes, replaced.Principal)
	assert.True(t, sec.HasAuthority("ROLE_KAKAO"))
	assert.False(t, sec.HasAuthority("ROLE_GOOGLE"))
}

func TestIdentityService_Resolve_LocalAccountKeepsAuthentication(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()
	sec := entity.NewSecurityContext(auth)
	local := &entity.User{ID: uuid.New(), Name: "havi", Email: "havi@gmail.com"}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(local, nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

	_, err := f.service.Resolve(ctx, newTestSession(), sec)

	require.NoError(t, err)
	assert.Same(t, auth, sec.Authentication())
	assert.False(t, sec.Changed())
}

func TestIdentityService_Resolve_NilCache(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()
	existing := &entity.User{ID: uuid.New(), Email: "havi@gmail.com", Principal: "1234567890", SocialType: entity.SocialTypeGoogle}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(existing, nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

	user, err := f.service.Resolve(ctx, nil, entity.NewSecurityContext(auth))

	require.NoError(t, err)
	assert.Same(t, existing, user)
}

func TestIdentityService_Resolve_ReconcilesAuthorityWithoutPrincipal(t *testing.T) {
	f := createIdentityFixtures(t, "email")
	ctx := context.Background()
	auth := googleLogin()
	sec := entity.NewSecurityContext(auth)
	kakao := &entity.User{ID: uuid.New(), Email: "havi@gmail.com", SocialType: entity.SocialTypeKakao}

	f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(googleProfile(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(kakao, nil)
	f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

	_, err := f.service.Resolve(ctx, newTestSession(), sec)

	require.NoError(t, err)
	assert.True(t, sec.Changed())
	assert.True(t, sec.HasAuthority("ROLE_KAKAO"))
	assert.False(t, sec.HasAuthority("ROLE_GOOGLE"))
}

func TestIdentityService_Resolve_TwiceInOneSessionCreatesOnce(t *testing.T) {
	userRepo := mockRepo.NewMockUserRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	metrics := mockSvc.NewMockIdentityMetrics(t)

	uc, err := NewIdentityService(IdentityServiceParams{
		UserRepo:   userRepo,
		Normalizer: social.NewNormalizer(),
		Publisher:  publisher,
		Metrics:    metrics,
		Config:     newTestConfig("email"),
		Logger:     newDiscardLogger(),
	})
	require.NoError(t, err)

	ctx := context.Background()
	session := newTestSession()
	sec := entity.NewSecurityContext(&entity.OAuth2Authentication{
		RegistrationID: "kakao",
		Attributes: map[string]any{
			"id":             float64(42),
			"kaccount_email": "havi@gmail.com",
			"properties":     map[string]any{"nickname": "havi"},
		},
		GrantedAuthorities: entity.Authorities{entity.SocialTypeKakao.Authority()},
	})

	userRepo.EXPECT().FindByEmail(ctx, "havi@gmail.com").Return(nil, repository.ErrUserNotFound).Once()
	userRepo.EXPECT().Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, u *entity.User) (*entity.User, error) {
			created := *u
			created.ID = uuid.New()

			return &created, nil
		}).
		Once()
	publisher.EXPECT().PublishIdentityRegistered(ctx, mock.Anything).Return(nil).Once()
	metrics.EXPECT().ObserveResolution(service.ResolutionCreated).Return().Once()
	metrics.EXPECT().ObserveResolution(service.ResolutionCached).Return().Once()

	first, err := uc.Resolve(ctx, session, sec)
	require.NoError(t, err)
	second, err := uc.Resolve(ctx, session, sec)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, "42", first.Principal)
	assert.Equal(t, entity.SocialTypeKakao, first.SocialType)
	assert.False(t, sec.Changed())
}

func TestIdentityService_Resolve_MissingEmail(t *testing.T) {
	profile := func() *service.ProviderProfile {
		p := googleProfile()
		p.Email = ""

		return p
	}
	existing := &entity.User{ID: uuid.New(), Principal: "1234567890", SocialType: entity.SocialTypeGoogle}

	t.Run("strict policy rejects the login", func(t *testing.T) {
		f := createIdentityFixtures(t, "strict")
		session := newTestSession()
		auth := googleLogin()

		f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(profile(), nil)
		f.metrics.EXPECT().ObserveResolution(service.ResolutionFailed).Return()

		user, err := f.service.Resolve(context.Background(), session, entity.NewSecurityContext(auth))

		require.ErrorIs(t, err, domainerrors.ErrProviderEmailMissing)
		assert.Nil(t, user)
		assert.Nil(t, session.Identity())
	})

	t.Run("email policy resolves by empty email", func(t *testing.T) {
		f := createIdentityFixtures(t, "email")
		ctx := context.Background()
		auth := googleLogin()

		f.normalizer.EXPECT().Normalize("google", auth.Attributes).Return(profile(), nil)
		f.userRepo.EXPECT().FindByEmail(ctx, "").Return(existing, nil)
		f.metrics.EXPECT().ObserveResolution(service.ResolutionExisting).Return()

		user, err := f.service.Resolve(ctx, newTestSession(), entity.NewSecurityContext(auth))

		require.NoError(t, err)
		assert.Same(t, existing, user)
	})
}
