package usecases

import (
	"context"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ListOpportunitiesQuery struct {
	AgencyID  uint
	CompanyID uint
	Status    string
	Offset    int
	Limit     int
}

type ListOpportunitiesResult struct {
	Opportunities []OpportunityDTO `json:"opportunities"`
	Total         int64            `json:"total"`
}

type ListOpportunitiesUseCase struct {
	opportunityRepo opportunity.Repository
	logger          logger.Interface
}

func NewListOpportunitiesUseCase(
	opportunityRepo opportunity.Repository,
	logger logger.Interface,
) *ListOpportunitiesUseCase {
	return &ListOpportunitiesUseCase{
		opportunityRepo: opportunityRepo,
		logger:          logger,
	}
}

func (uc *ListOpportunitiesUseCase) Execute(ctx context.Context, query ListOpportunitiesQuery) (*ListOpportunitiesResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	filter := opportunity.ListFilter{CompanyID: query.CompanyID}
	if query.Status != "" {
		status, err := opportunity.ParseStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = status
	}

	opps, total, err := uc.opportunityRepo.List(ctx, query.AgencyID, filter, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list opportunities", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to list opportunities")
	}

	dtos := make([]OpportunityDTO, 0, len(opps))
	for _, o := range opps {
		dtos = append(dtos, toOpportunityDTO(o))
	}

	return &ListOpportunitiesResult{Opportunities: dtos, Total: total}, nil
}
