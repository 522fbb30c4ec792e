package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type ProjectModel struct {
	ID        uint   `gorm:"primaryKey"`
	AgencyID  uint   `gorm:"not null;index"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:160;not null"`
	Archived  bool   `gorm:"not null;default:false"`
	Version   int    `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (ProjectModel) TableName() string {
	return constants.TableProjects
}
