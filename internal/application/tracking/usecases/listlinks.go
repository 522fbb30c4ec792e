package usecases

import (
	"context"

	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ListLinksQuery struct {
	AgencyID      uint
	OpportunityID uint // optional filter
}

type ListLinksResult struct {
	Links []LinkDTO `json:"links"`
}

type ListLinksUseCase struct {
	linkRepo tracking.LinkRepository
	logger   logger.Interface
}

func NewListLinksUseCase(linkRepo tracking.LinkRepository, logger logger.Interface) *ListLinksUseCase {
	return &ListLinksUseCase{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

func (uc *ListLinksUseCase) Execute(ctx context.Context, query ListLinksQuery) (*ListLinksResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	var (
		links []*tracking.Link
		err   error
	)
	if query.OpportunityID != 0 {
		links, err = uc.linkRepo.ListByOpportunity(ctx, query.AgencyID, query.OpportunityID)
	} else {
		links, err = uc.linkRepo.ListByAgency(ctx, query.AgencyID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tracking links", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to list tracking links")
	}

	dtos := make([]LinkDTO, 0, len(links))
	for _, link := range links {
		dtos = append(dtos, toLinkDTO(link))
	}

	return &ListLinksResult{Links: dtos}, nil
}
