package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type OpportunityRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) opportunity.Repository {
	return &OpportunityRepositoryImpl{db: db}
}

func (r *OpportunityRepositoryImpl) Save(ctx context.Context, o *opportunity.Opportunity) error {
	model := opportunityToModel(o)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create opportunity: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set opportunity ID: %w", err)
	}

	return nil
}

func (r *OpportunityRepositoryImpl) Update(ctx context.Context, o *opportunity.Opportunity) error {
	model := opportunityToModel(o)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("opportunity not found")
	}

	return nil
}

func (r *OpportunityRepositoryImpl) FindByID(ctx context.Context, agencyID, opportunityID uint) (*opportunity.Opportunity, error) {
	var model models.OpportunityModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		First(&model, opportunityID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opportunity by ID: %w", err)
	}

	return opportunityToEntity(&model)
}

func (r *OpportunityRepositoryImpl) FindByPublicID(ctx context.Context, agencyID uint, publicID string) (*opportunity.Opportunity, error) {
	var model models.OpportunityModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ? AND public_id = ?", agencyID, publicID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get opportunity by public ID: %w", err)
	}

	return opportunityToEntity(&model)
}

func (r *OpportunityRepositoryImpl) FindByIDs(ctx context.Context, agencyID uint, ids []uint) ([]*opportunity.Opportunity, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var modelList []*models.OpportunityModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ? AND id IN ?", agencyID, ids).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get opportunities by IDs: %w", err)
	}

	entities := make([]*opportunity.Opportunity, 0, len(modelList))
	for _, model := range modelList {
		entity, err := opportunityToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *OpportunityRepositoryImpl) List(ctx context.Context, agencyID uint, filter opportunity.ListFilter, offset, limit int) ([]*opportunity.Opportunity, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.OpportunityModel{}).
		Where("agency_id = ?", agencyID)

	if filter.CompanyID != 0 {
		query = query.Where("company_id = ?", filter.CompanyID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opportunities: %w", err)
	}

	var modelList []*models.OpportunityModel
	err := query.
		Order("updated_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list opportunities: %w", err)
	}

	entities := make([]*opportunity.Opportunity, 0, len(modelList))
	for _, model := range modelList {
		entity, err := opportunityToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func opportunityToModel(o *opportunity.Opportunity) *models.OpportunityModel {
	return &models.OpportunityModel{
		ID:           o.ID(),
		PublicID:     o.PublicID(),
		AgencyID:     o.AgencyID(),
		CompanyID:    o.CompanyID(),
		Title:        o.Title(),
		ContactName:  o.ContactName(),
		ContactEmail: o.ContactEmail(),
		AmountCents:  o.AmountCents(),
		Status:       o.Status().String(),
		Version:      o.Version(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

func opportunityToEntity(model *models.OpportunityModel) (*opportunity.Opportunity, error) {
	entity, err := opportunity.ReconstructOpportunity(
		model.ID,
		model.PublicID,
		model.AgencyID,
		model.CompanyID,
		model.Title,
		model.ContactName,
		model.ContactEmail,
		model.AmountCents,
		opportunity.Status(model.Status),
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map opportunity model to entity: %w", err)
	}
	return entity, nil
}
