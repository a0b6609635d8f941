package postgres

import (
	"testing"

	domainerrors "community/internal/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm translated", err: gorm.ErrDuplicatedKey, want: true},
		{name: "raw pg error", err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, want: true},
		{name: "wrapped pg error", err: errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), want: true},
		{name: "other pg error", err: &pgconn.PgError{Code: "23502"}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestMapCreateError(t *testing.T) {
	t.Run("duplicate email", func(t *testing.T) {
		err := mapCreateError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})

	t.Run("not null", func(t *testing.T) {
		err := mapCreateError(&pgconn.PgError{Code: "23502"})
		assert.ErrorIs(t, err, domainerrors.ErrUserCreationFailed)
	})

	t.Run("other", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := mapCreateError(cause)

		var dbErr *domainerrors.DatabaseExecuteError
		assert.ErrorAs(t, err, &dbErr)
		assert.ErrorIs(t, err, cause)
	})
}
