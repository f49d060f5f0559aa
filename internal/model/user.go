package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrEmptyEmail    = errors.New("user email must not be empty")
	ErrEmptyFullName = errors.New("user full name must not be empty")
)

// User lives in the owning tenant's schema. Email uniqueness is therefore
// per tenant, and a user can never reference another tenant's partition.
type User struct {
	AutoTimeModel

	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email    string    `gorm:"type:varchar(255);not null;unique"`
	FullName string    `gorm:"type:varchar(255);not null"`
	Role     Role      `gorm:"type:varchar(50);not null"`
	Active   bool      `gorm:"not null;default:true"`
}

func (u User) TableName() string   { return "users" }
func (u User) IsSharedModel() bool { return false }

func (u *User) Validate() error {
	if u.Email == "" {
		return ErrEmptyEmail
	}

	if u.FullName == "" {
		return ErrEmptyFullName
	}

	return u.Role.Validate()
}
