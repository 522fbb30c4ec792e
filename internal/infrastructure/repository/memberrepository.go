package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/agency"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
)

type MemberRepositoryImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) agency.MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

func (r *MemberRepositoryImpl) Save(ctx context.Context, m *agency.Member) error {
	model := memberToModel(m)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}

	if err := m.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set member ID: %w", err)
	}

	return nil
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, m *agency.Member) error {
	model := memberToModel(m)

	result := db.GetTxFromContext(ctx, r.db).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("member not found")
	}

	return nil
}

func (r *MemberRepositoryImpl) Delete(ctx context.Context, agencyID, memberID uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		Delete(&models.MemberModel{}, memberID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete member: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("member not found")
	}

	return nil
}

func (r *MemberRepositoryImpl) FindByID(ctx context.Context, agencyID, memberID uint) (*agency.Member, error) {
	var model models.MemberModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		First(&model, memberID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by ID: %w", err)
	}

	return memberToEntity(&model)
}

func (r *MemberRepositoryImpl) FindByEmail(ctx context.Context, agencyID uint, email string) (*agency.Member, error) {
	var model models.MemberModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ? AND email = ?", agencyID, email).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get member by email: %w", err)
	}

	return memberToEntity(&model)
}

func (r *MemberRepositoryImpl) ListByAgency(ctx context.Context, agencyID uint) ([]*agency.Member, error) {
	var modelList []*models.MemberModel

	err := db.GetTxFromContext(ctx, r.db).
		Where("agency_id = ?", agencyID).
		Order("created_at ASC").
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	entities := make([]*agency.Member, 0, len(modelList))
	for _, model := range modelList {
		entity, err := memberToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (r *MemberRepositoryImpl) CountByAgency(ctx context.Context, agencyID uint) (int64, error) {
	var count int64

	err := db.GetTxFromContext(ctx, r.db).
		Model(&models.MemberModel{}).
		Where("agency_id = ?", agencyID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count members: %w", err)
	}

	return count, nil
}

func memberToModel(m *agency.Member) *models.MemberModel {
	return &models.MemberModel{
		ID:        m.ID(),
		AgencyID:  m.AgencyID(),
		Email:     m.Email(),
		Name:      m.Name(),
		Role:      m.Role(),
		Status:    m.Status(),
		Version:   m.Version(),
		CreatedAt: m.CreatedAt(),
		UpdatedAt: m.UpdatedAt(),
	}
}

func memberToEntity(model *models.MemberModel) (*agency.Member, error) {
	entity, err := agency.ReconstructMember(
		model.ID,
		model.AgencyID,
		model.Email,
		model.Name,
		model.Role,
		model.Status,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map member model to entity: %w", err)
	}
	return entity, nil
}
