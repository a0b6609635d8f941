// Package model holds the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel mirrors the 'users' table.
// The unique index on email is what makes concurrent first logins converge on one record.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100)"`
	Password   string    `gorm:"type:varchar(255)"`
	Email      string    `gorm:"type:varchar(255);uniqueIndex:idx_users_email;not null"`
	Principal  string    `gorm:"type:varchar(255)"`
	SocialType string    `gorm:"type:varchar(32)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate assigns a time-ordered UUID when the caller did not set one.
func (m *UserModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID != uuid.Nil {
		return nil
	}

	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	m.ID = id

	return nil
}
