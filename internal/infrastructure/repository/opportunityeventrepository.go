package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/infrastructure/persistence/models"
	"leadloft/internal/shared/db"
)

type OpportunityEventRepositoryImpl struct {
	db *gorm.DB
}

func NewOpportunityEventRepository(db *gorm.DB) opportunity.EventRepository {
	return &OpportunityEventRepositoryImpl{db: db}
}

func (r *OpportunityEventRepositoryImpl) Save(ctx context.Context, e *opportunity.Event) error {
	model, err := eventToModel(e)
	if err != nil {
		return err
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create opportunity event: %w", err)
	}

	if err := e.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set opportunity event ID: %w", err)
	}

	return nil
}

func (r *OpportunityEventRepositoryImpl) ListByOpportunity(ctx context.Context, agencyID, opportunityID uint, offset, limit int) ([]*opportunity.Event, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.OpportunityEventModel{}).
		Where("agency_id = ? AND opportunity_id = ?", agencyID, opportunityID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opportunity events: %w", err)
	}

	var modelList []*models.OpportunityEventModel
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&modelList).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list opportunity events: %w", err)
	}

	entities := make([]*opportunity.Event, 0, len(modelList))
	for _, model := range modelList {
		entity, err := eventToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}

func eventToModel(e *opportunity.Event) (*models.OpportunityEventModel, error) {
	raw, err := e.MarshalMetadata()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event metadata: %w", err)
	}

	metadata := make(models.JSONB)
	if err := json.Unmarshal(raw, &metadata); err != nil {
		return nil, fmt.Errorf("failed to build event metadata: %w", err)
	}

	return &models.OpportunityEventModel{
		ID:            e.ID(),
		OpportunityID: e.OpportunityID(),
		AgencyID:      e.AgencyID(),
		ActorID:       e.ActorID(),
		EventType:     string(e.Type()),
		Metadata:      metadata,
		CreatedAt:     e.CreatedAt(),
	}, nil
}

func eventToEntity(model *models.OpportunityEventModel) (*opportunity.Event, error) {
	raw, err := json.Marshal(model.Metadata)
	if err != nil {
		return nil, fmt.Errorf("failed to read event metadata: %w", err)
	}

	entity, err := opportunity.ReconstructEvent(
		model.ID,
		model.OpportunityID,
		model.AgencyID,
		model.ActorID,
		opportunity.EventType(model.EventType),
		raw,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to map opportunity event model to entity: %w", err)
	}
	return entity, nil
}
