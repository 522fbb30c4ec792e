package models

import (
	"time"

	"leadloft/internal/shared/constants"
)

// TrackingClickModel rows are append-only. The agency_id/clicked_at index
// serves the engagement window query.
type TrackingClickModel struct {
	ID          uint      `gorm:"primaryKey"`
	LinkID      uint      `gorm:"not null;index"`
	AgencyID    uint      `gorm:"not null;index:idx_agency_clicked,priority:1"`
	VisitorHash string    `gorm:"size:64;not null;index"`
	UserAgent   string    `gorm:"size:255"`
	Referer     string    `gorm:"size:255"`
	ClickedAt   time.Time `gorm:"not null;index:idx_agency_clicked,priority:2"`
}

func (TrackingClickModel) TableName() string {
	return constants.TableTrackingClicks
}
