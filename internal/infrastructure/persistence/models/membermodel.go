package models

import (
	"time"

	"gorm.io/gorm"

	"leadloft/internal/shared/constants"
)

type MemberModel struct {
	ID        uint   `gorm:"primaryKey"`
	AgencyID  uint   `gorm:"not null;index;uniqueIndex:idx_agency_email,priority:1"`
	Email     string `gorm:"size:255;not null;uniqueIndex:idx_agency_email,priority:2"`
	Name      string `gorm:"size:120;not null"`
	Role      string `gorm:"size:20;not null;default:'member'"`
	Status    string `gorm:"size:20;not null;default:'invited'"`
	Version   int    `gorm:"default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (MemberModel) TableName() string {
	return constants.TableMembers
}

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Role == "" {
		m.Role = constants.RoleMember
	}
	if m.Status == "" {
		m.Status = constants.MemberStatusInvited
	}
	return nil
}
