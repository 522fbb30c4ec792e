package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/company"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type CompanyRepositoryImpl struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) company.Repository {
	return &CompanyRepositoryImpl{db: db}
}

func (r *CompanyRepositoryImpl) Save(ctx context.Context, c *company.Company) error {
	model := companyToModel(c)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set company ID: %w", err)
	}

	return nil
}

func (r *CompanyRepositoryImpl) Update(ctx context.Context, c *company.Company) error {
	model := companyToModel(c)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}

func (r *CompanyRepositoryImpl) Delete(ctx context.Context, agencyID, companyID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		Delete(&models.CompanyModel{}, companyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete company: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("company not found")
	}

	return nil
}

func (r *CompanyRepositoryImpl) FindByID(ctx context.Context, agencyID, companyID uint) (*company.Company, error) {
	var model models.CompanyModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		First(&model, companyID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company by ID: %w", err)
	}

	return companyToEntity(&model)
}

func (r *CompanyRepositoryImpl) List(ctx context.Context, agencyID uint, offset, limit int) ([]*company.Company, int64, error) {
	var total int64
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.CompanyModel{}).
		Where("agency_id = ?", agencyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	var modelList []*models.CompanyModel
	err := query.
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}

	entities := make([]*company.Company, 0, len(modelList))
	for _, model := range modelList {
		entity, err := companyToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func companyToModel(c *company.Company) *models.CompanyModel {
	return &models.CompanyModel{
		ID:        c.ID(),
		AgencyID:  c.AgencyID(),
		Name:      c.Name(),
		Website:   c.Website(),
		Industry:  c.Industry(),
		Notes:     c.Notes(),
		Version:   c.Version(),
		CreatedAt: c.CreatedAt(),
		UpdatedAt: c.UpdatedAt(),
	}
}

func companyToEntity(model *models.CompanyModel) (*company.Company, error) {
	entity, err := company.ReconstructCompany(
		model.ID,
		model.AgencyID,
		model.Name,
		model.Website,
		model.Industry,
		model.Notes,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map company model to entity: %w", err)
	}
	return entity, nil
}
