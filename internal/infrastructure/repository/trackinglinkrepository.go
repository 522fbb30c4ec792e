package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"leadloft/internal/domain/tracking"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type TrackingLinkRepositoryImpl struct {
	db *gorm.DB
}

func NewTrackingLinkRepository(db *gorm.DB) tracking.LinkRepository {
	return &TrackingLinkRepositoryImpl{db: db}
}

func (r *TrackingLinkRepositoryImpl) Save(ctx context.Context, l *tracking.Link) error {
	model := linkToModel(l)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create tracking link: %w", err)
	}

	if err := l.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tracking link ID: %w", err)
	}

	return nil
}

func (r *TrackingLinkRepositoryImpl) Delete(ctx context.Context, agencyID, linkID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		Delete(&models.TrackingLinkModel{}, linkID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete tracking link: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("tracking link not found")
	}

	return nil
}

// FindBySlug is the redirect path lookup; it is deliberately not scoped by
// agency because the visitor is anonymous.
func (r *TrackingLinkRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*tracking.Link, error) {
	var model models.TrackingLinkModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracking link by slug: %w", err)
	}

	return linkToEntity(&model)
}

func (r *TrackingLinkRepositoryImpl) FindByID(ctx context.Context, agencyID, linkID uint) (*tracking.Link, error) {
	var model models.TrackingLinkModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		First(&model, linkID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get tracking link by ID: %w", err)
	}

	return linkToEntity(&model)
}

func (r *TrackingLinkRepositoryImpl) ListByAgency(ctx context.Context, agencyID uint) ([]*tracking.Link, error) {
	var modelList []*models.TrackingLinkModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking links: %w", err)
	}

	return linksToEntities(modelList)
}

func (r *TrackingLinkRepositoryImpl) ListByOpportunity(ctx context.Context, agencyID, opportunityID uint) ([]*tracking.Link, error) {
	var modelList []*models.TrackingLinkModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ? AND opportunity_id = ?", agencyID, opportunityID).
		Order("created_at DESC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tracking links by opportunity: %w", err)
	}

	return linksToEntities(modelList)
}

func (r *TrackingLinkRepositoryImpl) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TrackingLinkModel{}).
		Where("agency_id = ?", agencyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count tracking links: %w", err)
	}

	return count, nil
}

// IncrementClicks uses a relative UPDATE so concurrent clicks on the same
// link never overwrite each other's count.
func (r *TrackingLinkRepositoryImpl) IncrementClicks(ctx context.Context, linkID uint, clickedAt time.Time) error {
	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TrackingLinkModel{}).
		Where("id = ?", linkID).
		UpdateColumns(map[string]interface{}{
			"total_clicks":    gorm.Expr("total_clicks + 1"),
			"last_clicked_at": clickedAt,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to increment link clicks: %w", err)
	}

	return nil
}

func linksToEntities(modelList []*models.TrackingLinkModel) ([]*tracking.Link, error) {
	entities := make([]*tracking.Link, 0, len(modelList))
	for _, model := range modelList {
		entity, err := linkToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func linkToModel(l *tracking.Link) *models.TrackingLinkModel {
	return &models.TrackingLinkModel{
		ID:            l.ID(),
		Slug:          l.Slug(),
		AgencyID:      l.AgencyID(),
		OpportunityID: l.OpportunityID(),
		TargetURL:     l.TargetURL(),
		Label:         l.Label(),
		TotalClicks:   l.TotalClicks(),
		LastClickedAt: l.LastClickedAt(),
		Version:       l.Version(),
		CreatedAt:     l.CreatedAt(),
		UpdatedAt:     l.UpdatedAt(),
	}
}

func linkToEntity(model *models.TrackingLinkModel) (*tracking.Link, error) {
	entity, err := tracking.ReconstructLink(
		model.ID,
		model.Slug,
		model.AgencyID,
		model.OpportunityID,
		model.TargetURL,
		model.Label,
		model.TotalClicks,
		model.LastClickedAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map tracking link model to entity: %w", err)
	}
	return entity, nil
}
