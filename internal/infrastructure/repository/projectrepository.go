package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/project"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.Repository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Save(ctx context.Context, p *project.Project) error {
	model := projectToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	if err := p.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set project ID: %w", err)
	}

	return nil
}

func (r *ProjectRepositoryImpl) Update(ctx context.Context, p *project.Project) error {
	model := projectToModel(p)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update project: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("project not found")
	}

	return nil
}

func (r *ProjectRepositoryImpl) FindByID(ctx context.Context, agencyID, projectID uint) (*project.Project, error) {
	var model models.ProjectModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		First(&model, projectID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get project by ID: %w", err)
	}

	return projectToEntity(&model)
}

func (r *ProjectRepositoryImpl) List(ctx context.Context, agencyID uint, offset, limit int) ([]*project.Project, int64, error) {
	var total int64
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("agency_id = ?", agencyID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var modelList []*models.ProjectModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}

	entities := make([]*project.Project, 0, len(modelList))
	for _, model := range modelList {
		entity, err := projectToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func (r *ProjectRepositoryImpl) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.ProjectModel{}).
		Where("agency_id = ? AND archived = ?", agencyID, false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}

func projectToModel(p *project.Project) *models.ProjectModel {
	return &models.ProjectModel{
		ID:        p.ID(),
		AgencyID:  p.AgencyID(),
		CompanyID: p.CompanyID(),
		Name:      p.Name(),
		Archived:  p.IsArchived(),
		Version:   p.Version(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func projectToEntity(model *models.ProjectModel) (*project.Project, error) {
	entity, err := project.ReconstructProject(
		model.ID,
		model.AgencyID,
		model.CompanyID,
		model.Name,
		model.Archived,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map project model to entity: %w", err)
	}
	return entity, nil
}
