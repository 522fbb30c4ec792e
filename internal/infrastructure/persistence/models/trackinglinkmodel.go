package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type TrackingLinkModel struct {
	ID            uint   `gorm:"primaryKey"`
	Slug          string `gorm:"uniqueIndex;size:32;not null"`
	AgencyID      uint   `gorm:"not null;index"`
	OpportunityID uint   `gorm:"not null;index"`
	TargetURL     string `gorm:"size:2048;not null"`
	Label         string `gorm:"size:120"`
	TotalClicks   int64  `gorm:"not null;default:0"`
	LastClickedAt *time.Time
	Version       int `gorm:"default:1"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (TrackingLinkModel) TableName() string {
	return constants.TableTrackingLinks
}
