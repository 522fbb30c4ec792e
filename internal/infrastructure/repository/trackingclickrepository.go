package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"leadloft/internal/domain/tracking"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
)

type TrackingClickRepositoryImpl struct {
	db *gorm.DB
}

func NewTrackingClickRepository(db *gorm.DB) tracking.ClickRepository {
	return &TrackingClickRepositoryImpl{db: db}
}

func (r *TrackingClickRepositoryImpl) Save(ctx context.Context, c *tracking.Click) error {
	model := clickToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tracking click: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tracking click ID: %w", err)
	}

	return nil
}

func (r *TrackingClickRepositoryImpl) ListByAgencySince(ctx context.Context, agencyID uint, since time.Time) ([]*tracking.Click, error) {
	var modelList []*models.TrackingClickModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ? AND clicked_at >= ?", agencyID, since).
		Order("clicked_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking clicks: %w", err)
	}

	entities := make([]*tracking.Click, 0, len(modelList))
	for _, model := range modelList {
		entity, err := clickToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func clickToModel(c *tracking.Click) *models.TrackingClickModel {
	return &models.TrackingClickModel{
		ID:          c.ID(),
		LinkID:      c.LinkID(),
		AgencyID:    c.AgencyID(),
		VisitorHash: c.VisitorHash(),
		UserAgent:   c.UserAgent(),
		Referer:     c.Referer(),
		ClickedAt:   c.ClickedAt(),
	}
}

func clickToEntity(model *models.TrackingClickModel) (*tracking.Click, error) {
	entity, err := tracking.ReconstructClick(
		model.ID,
		model.LinkID,
		model.AgencyID,
		model.VisitorHash,
		model.UserAgent,
		model.Referer,
		model.ClickedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map tracking click model to entity: %w", err)
	}
	return entity, nil
}
