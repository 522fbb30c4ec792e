package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type GetTimelineQuery struct {
	AgencyID      uint
	OpportunityID uint
	Offset        int
	Limit         int
}

type GetTimelineResult struct {
	Events []EventDTO `json:"events"`
	Total  int64      `json:"total"`
}

type GetTimelineUseCase struct {
	opportunityRepo opportunity.Repository
	eventRepo       opportunity.EventRepository
	logger          logger.Interface
}

func NewGetTimelineUseCase(
	opportunityRepo opportunity.Repository,
	eventRepo opportunity.EventRepository,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		opportunityRepo: opportunityRepo,
		eventRepo:       eventRepo,
		logger:          logger,
	}
}

func (uc *GetTimelineUseCase) Execute(ctx context.Context, query GetTimelineQuery) (*GetTimelineResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if query.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}

	opp, err := uc.opportunityRepo.FindByID(ctx, query.AgencyID, query.OpportunityID)
	if err != nil {
		uc.logger.Errorw("failed to load opportunity", "opportunity_id", query.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to load opportunity")
	}
	if opp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("opportunity %d not found", query.OpportunityID))
	}

	events, total, err := uc.eventRepo.ListByOpportunity(ctx, query.AgencyID, query.OpportunityID, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list timeline", "opportunity_id", query.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to list timeline")
	}

	dtos := make([]EventDTO, 0, len(events))
	for _, e := range events {
		dtos = append(dtos, toEventDTO(e))
	}

	return &GetTimelineResult{Events: dtos, Total: total}, nil
}
