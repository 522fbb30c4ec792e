package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/company"
	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/id"
	"leadloft/internal/shared/logger"
)

type CreateOpportunityCommand struct {
	AgencyID     uint
	CompanyID    uint
	ActorID      uint
	Title        string
	ContactName  string
	ContactEmail string
	AmountCents  int64
}

type CreateOpportunityUseCase struct {
	opportunityRepo opportunity.Repository
	companyRepo     company.Repository
	logger          logger.Interface
}

func NewCreateOpportunityUseCase(
	opportunityRepo opportunity.Repository,
	companyRepo company.Repository,
	logger logger.Interface,
) *CreateOpportunityUseCase {
	return &CreateOpportunityUseCase{
		opportunityRepo: opportunityRepo,
		companyRepo:     companyRepo,
		logger:          logger,
	}
}

func (uc *CreateOpportunityUseCase) Execute(ctx context.Context, cmd CreateOpportunityCommand) (*OpportunityDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.AgencyID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to load company")
	}
	if comp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %d not found", cmd.CompanyID))
	}

	publicID, err := id.NewOpportunityPublicID()
	if err != nil {
		uc.logger.Errorw("failed to generate public ID", "error", err)
		return nil, errors.NewInternalError("failed to generate opportunity ID")
	}

	opp, err := opportunity.NewOpportunity(cmd.AgencyID, cmd.CompanyID, publicID,
		cmd.Title, cmd.ContactName, cmd.ContactEmail, cmd.AmountCents)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.opportunityRepo.Save(ctx, opp); err != nil {
		uc.logger.Errorw("failed to create opportunity", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to create opportunity")
	}

	uc.logger.Infow("opportunity created",
		"agency_id", cmd.AgencyID, "opportunity_id", opp.ID(), "public_id", opp.PublicID())

	dto := toOpportunityDTO(opp)
	return &dto, nil
}
