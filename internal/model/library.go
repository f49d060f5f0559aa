package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidResourceKind = errors.New("library resource kind is not valid")
	ErrEmptyResourceTitle  = errors.New("library resource title must not be empty")
)

// ResourceKind distinguishes the content types the library serves.
type ResourceKind string

const (
	ResourceKindGuide    ResourceKind = "guide"
	ResourceKindTemplate ResourceKind = "template"
	ResourceKindResource ResourceKind = "resource"
)

var validResourceKinds = map[ResourceKind]struct{}{
	ResourceKindGuide:    {},
	ResourceKindTemplate: {},
	ResourceKindResource: {},
}

func (k ResourceKind) Validate() error {
	if _, ok := validResourceKinds[k]; !ok {
		return ErrInvalidResourceKind
	}

	return nil
}

// LibraryResource is a tenant-owned content entry (guide, template or
// generic resource).
type LibraryResource struct {
	AutoTimeModel

	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	Title     string       `gorm:"type:varchar(255);not null"`
	Kind      ResourceKind `gorm:"type:varchar(50);not null"`
	URL       string       `gorm:"type:text"`
	Published bool         `gorm:"not null;default:false"`
}

func (r LibraryResource) TableName() string   { return "library_resources" }
func (r LibraryResource) IsSharedModel() bool { return false }

func (r *LibraryResource) Validate() error {
	if r.Title == "" {
		return ErrEmptyResourceTitle
	}

	return r.Kind.Validate()
}
