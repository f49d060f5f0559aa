package model

import (
	"errors"
	"regexp"

	multitenancy "github.com/bartventer/gorm-multitenancy/v8"
)

var (
	ErrInvalidSlug = errors.New("tenant slug is not valid")
	ErrEmptyName   = errors.New("tenant name must not be empty")

	// Slugs become part of the schema name, so they are restricted to what a
	// Postgres identifier can carry without quoting.
	slugPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,48}$`)
)

const schemaPrefix = "t_"

type Tenant struct {
	multitenancy.TenantModel
	AutoTimeModel

	ID     string       `gorm:"type:varchar(255);not null;unique"`
	Name   string       `gorm:"type:varchar(255);not null"`
	Slug   string       `gorm:"type:varchar(63);not null;unique"`
	Status TenantStatus `gorm:"type:varchar(50);not null"`
	Tier   Tier         `gorm:"type:varchar(50);not null;default:'free'"`
}

func (t Tenant) TableName() string   { return "public.tenants" }
func (t Tenant) IsSharedModel() bool { return true }

// Validate checks all tenant attributes.
func (t *Tenant) Validate() error {
	if t.Name == "" {
		return ErrEmptyName
	}

	err := ValidateSlug(t.Slug)
	if err != nil {
		return err
	}

	err = t.Status.Validate()
	if err != nil {
		return err
	}

	return t.Tier.Validate()
}

// ValidateSlug checks that a slug is usable as a schema name component.
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}

	return nil
}

// SchemaNameForSlug derives the tenant's partition reference from its slug.
// The slug is immutable once assigned, so the derivation is deterministic
// for the lifetime of the tenant.
func SchemaNameForSlug(slug string) string {
	return schemaPrefix + slug
}
