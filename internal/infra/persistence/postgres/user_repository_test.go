package postgres

import (
	"testing"
	"time"

	"community/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserMappers_RoundTripSocialUser(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := &entity.User{
		ID:         uuid.New(),
		Name:       "havi",
		Email:      "havi@gmail.com",
		Principal:  "42",
		SocialType: entity.SocialTypeKakao,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	got := toUserDomain(fromUserDomain(user))

	require.NotNil(t, got)
	assert.Equal(t, user, got)
	assert.True(t, got.IsSocial())
}

func TestUserMappers_LocalUserKeepsEmptySocialFields(t *testing.T) {
	m := fromUserDomain(&entity.User{Name: "havi", Email: "havi@gmail.com", Password: "$2a$10$hash"})

	assert.Empty(t, m.SocialType)
	assert.Empty(t, m.Principal)
	assert.Equal(t, uuid.Nil, m.ID)

	require.NoError(t, m.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, m.ID)
	assert.Equal(t, uuid.Version(7), m.ID.Version())
}

func TestUserMappers_Nil(t *testing.T) {
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
