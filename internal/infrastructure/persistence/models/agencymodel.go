package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type AgencyModel struct {
	ID               uint    `gorm:"primaryKey"`
	Name             string  `gorm:"size:120;not null"`
	PlanSlug         string  `gorm:"size:20;not null;default:'FREE'"`
	StripeCustomerID *string `gorm:"size:64;uniqueIndex"`
	Version          int     `gorm:"default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

func (AgencyModel) TableName() string {
	return constants.TableAgencies
}
