// Package binder injects resolved identities into handler input structs.
package binder

import (
	"reflect"

	deliverycontext "community/internal/delivery/context"
	"community/internal/domain/entity"
	"community/internal/domain/service"
	"community/internal/errors"
	"community/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// TagName is the struct tag inspected by SocialUserBinder.
	TagName = "social"
	// TagUser marks a field that receives the resolved social user.
	TagUser = "user"
)

var (
	// ErrUnsupportedField is returned when a field is not a social user target.
	ErrUnsupportedField = errors.New("field is not a social user binding target")
	// ErrInvalidTarget is returned when Bind is given something other than a struct pointer.
	ErrInvalidTarget = errors.New("bind target must be a non-nil struct pointer")

	userType = reflect.TypeOf((*entity.User)(nil))
)

// SocialUserBinder fills fields tagged `social:"user"` of type *entity.User
// with the identity behind the current request.
type SocialUserBinder struct {
	identity usecase.IdentityUsecase
}

// NewSocialUserBinder is the constructor for SocialUserBinder.
func NewSocialUserBinder(identity usecase.IdentityUsecase) *SocialUserBinder {
	return &SocialUserBinder{identity: identity}
}

// Supports reports whether field carries the social user tag and is typed *entity.User.
func (b *SocialUserBinder) Supports(field reflect.StructField) bool {
	return field.Tag.Get(TagName) == TagUser && field.Type == userType
}

// ResolveArgument resolves the identity for field using the request's session and security context.
func (b *SocialUserBinder) ResolveArgument(field reflect.StructField, c echo.Context) (*entity.User, error) {
	if !b.Supports(field) {
		return nil, errors.Wrapf(ErrUnsupportedField, "field %s", field.Name)
	}

	var cache service.IdentityCache
	if session := deliverycontext.GetSession(c); session != nil {
		cache = session
	}

	return b.identity.Resolve(c.Request().Context(), cache, deliverycontext.GetSecurityContext(c))
}

// Bind fills every supported exported field of the struct dst points to.
func (b *SocialUserBinder) Bind(c echo.Context, dst any) error {
	value := reflect.ValueOf(dst)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return ErrInvalidTarget
	}

	target := value.Elem()
	for i := range target.NumField() {
		field := target.Type().Field(i)
		if !field.IsExported() || !b.Supports(field) {
			continue
		}

		user, err := b.ResolveArgument(field, c)
		if err != nil {
			return err
		}
		target.Field(i).Set(reflect.ValueOf(user))
	}

	return nil
}
