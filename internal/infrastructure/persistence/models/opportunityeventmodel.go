package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"leadloft/internal/shared/constants"
)

// OpportunityEventModel rows are append-only; there is no update path and
// no soft delete.
type OpportunityEventModel struct {
	ID            uint      `gorm:"primaryKey"`
	OpportunityID uint      `gorm:"not null;index:idx_opportunity_created,priority:1"`
	AgencyID      uint      `gorm:"not null;index"`
	ActorID       uint      `gorm:"not null"`
	EventType     string    `gorm:"size:30;not null"`
	Metadata      JSONB     `gorm:"type:json"`
	CreatedAt     time.Time `gorm:"index:idx_opportunity_created,priority:2"`
}

func (OpportunityEventModel) TableName() string {
	return constants.TableOpportunityEvents
}

type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = make(map[string]interface{})
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}
