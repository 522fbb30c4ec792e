package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type CompanyModel struct {
	ID        uint   `gorm:"primaryKey"`
	AgencyID  uint   `gorm:"not null;index"`
	Name      string `gorm:"size:160;not null"`
	Website   string `gorm:"size:255"`
	Industry  string `gorm:"size:80"`
	Notes     string `gorm:"type:text"`
	Version   int    `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CompanyModel) TableName() string {
	return constants.TableCompanies
}
