package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/id"
	"leadloft/internal/shared/logger"
)

type CreateLinkCommand struct {
	AgencyID      uint
	OpportunityID uint
	TargetURL     string
	Label         string
}

type CreateLinkUseCase struct {
	linkRepo        tracking.LinkRepository
	opportunityRepo opportunity.Repository
	logger          logger.Interface
}

func NewCreateLinkUseCase(
	linkRepo tracking.LinkRepository,
	opportunityRepo opportunity.Repository,
	logger logger.Interface,
) *CreateLinkUseCase {
	return &CreateLinkUseCase{
		linkRepo:        linkRepo,
		opportunityRepo: opportunityRepo,
		logger:          logger,
	}
}

func (uc *CreateLinkUseCase) Execute(ctx context.Context, cmd CreateLinkCommand) (*LinkDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}

	opp, err := uc.opportunityRepo.FindByID(ctx, cmd.AgencyID, cmd.OpportunityID)
	if err != nil {
		uc.logger.Errorw("failed to load opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to load opportunity")
	}
	if opp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("opportunity %d not found", cmd.OpportunityID))
	}

	slug, err := id.NewTrackingLinkSlug()
	if err != nil {
		uc.logger.Errorw("failed to generate link slug", "error", err)
		return nil, errors.NewInternalError("failed to create tracking link")
	}

	link, err := tracking.NewLink(cmd.AgencyID, cmd.OpportunityID, slug, cmd.TargetURL, cmd.Label)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.linkRepo.Save(ctx, link); err != nil {
		uc.logger.Errorw("failed to save tracking link", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to create tracking link")
	}

	uc.logger.Infow("tracking link created",
		"agency_id", cmd.AgencyID, "opportunity_id", cmd.OpportunityID, "slug", link.Slug())

	dto := toLinkDTO(link)
	return &dto, nil
}
