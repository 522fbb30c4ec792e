package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type AgencyRepositoryImpl struct {
	db *gorm.DB
}

func NewAgencyRepository(db *gorm.DB) agency.Repository {
	return &AgencyRepositoryImpl{db: db}
}

func (r *AgencyRepositoryImpl) Save(ctx context.Context, a *agency.Agency) error {
	model := agencyToModel(a)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create agency: %w", err)
	}

	if err := a.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set agency ID: %w", err)
	}

	return nil
}

func (r *AgencyRepositoryImpl) Update(ctx context.Context, a *agency.Agency) error {
	model := agencyToModel(a)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update agency: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("agency not found")
	}

	return nil
}

func (r *AgencyRepositoryImpl) FindByID(ctx context.Context, id uint) (*agency.Agency, error) {
	var model models.AgencyModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agency by ID: %w", err)
	}

	return agencyToEntity(&model)
}

func (r *AgencyRepositoryImpl) FindByStripeCustomerID(ctx context.Context, customerID string) (*agency.Agency, error) {
	var model models.AgencyModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("stripe_customer_id = ?", customerID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get agency by stripe customer ID: %w", err)
	}

	return agencyToEntity(&model)
}

// GetPlanSlug reads only the plan column. A missing row yields an empty
// slug, which callers resolve to FREE.
func (r *AgencyRepositoryImpl) GetPlanSlug(ctx context.Context, agencyID uint) (plan.Slug, error) {
	var slug string

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AgencyModel{}).
		Where("id = ?", agencyID).
		Pluck("plan_slug", &slug).Error
	if err != nil {
		return "", fmt.Errorf("failed to get plan slug: %w", err)
	}

	return plan.Slug(slug), nil
}

func agencyToModel(a *agency.Agency) *models.AgencyModel {
	model := &models.AgencyModel{
		ID:        a.ID(),
		Name:      a.Name(),
		PlanSlug:  a.PlanSlug().String(),
		Version:   a.Version(),
		CreatedAt: a.CreatedAt(),
		UpdatedAt: a.UpdatedAt(),
	}
	if a.StripeCustomerID() != "" {
		customerID := a.StripeCustomerID()
		model.StripeCustomerID = &customerID
	}
	return model
}

func agencyToEntity(model *models.AgencyModel) (*agency.Agency, error) {
	customerID := ""
	if model.StripeCustomerID != nil {
		customerID = *model.StripeCustomerID
	}

	entity, err := agency.ReconstructAgency(
		model.ID,
		model.Name,
		plan.Slug(model.PlanSlug),
		customerID,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map agency model to entity: %w", err)
	}
	return entity, nil
}
