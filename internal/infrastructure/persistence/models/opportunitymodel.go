package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type OpportunityModel struct {
	ID           uint   `gorm:"primaryKey"`
	PublicID     string `gorm:"uniqueIndex;size:32;not null"`
	AgencyID     uint   `gorm:"not null;index:idx_agency_status,priority:1"`
	CompanyID    uint   `gorm:"not null;index"`
	Title        string `gorm:"size:255;not null"`
	ContactName  string `gorm:"size:120"`
	ContactEmail string `gorm:"size:255"`
	AmountCents  int64  `gorm:"not null;default:0"`
	Status       string `gorm:"size:20;not null;default:'to_do';index:idx_agency_status,priority:2"`
	Version      int    `gorm:"default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (OpportunityModel) TableName() string {
	return constants.TableOpportunities
}
