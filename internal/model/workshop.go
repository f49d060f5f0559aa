package model

import (
	"errors"

	"github.com/google/uuid"
)

var ErrEmptyWorkshopTitle = errors.New("workshop title must not be empty")

// Workshop is a tenant-owned training session definition.
type Workshop struct {
	AutoTimeModel

	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	InstructorID uuid.UUID `gorm:"type:uuid"`
	Published    bool      `gorm:"not null;default:false"`
}

func (w Workshop) TableName() string   { return "workshops" }
func (w Workshop) IsSharedModel() bool { return false }

func (w *Workshop) Validate() error {
	if w.Title == "" {
		return ErrEmptyWorkshopTitle
	}

	return nil
}
