package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type DeleteCompanyCommand struct {
	AgencyID  uint
	CompanyID uint
}

type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, cmd DeleteCompanyCommand) error {
	if cmd.AgencyID == 0 {
		return errors.NewValidationError("agency ID is required")
	}
	if cmd.CompanyID == 0 {
		return errors.NewValidationError("company ID is required")
	}

	c, err := uc.companyRepo.FindByID(ctx, cmd.AgencyID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return errors.NewInternalError("failed to load company")
	}
	if c == nil {
		return errors.NewNotFoundError(fmt.Sprintf("company %d not found", cmd.CompanyID))
	}

	if err := uc.companyRepo.Delete(ctx, cmd.AgencyID, cmd.CompanyID); err != nil {
		uc.logger.Errorw("failed to delete company", "company_id", cmd.CompanyID, "error", err)
		return errors.NewInternalError("failed to delete company")
	}

	uc.logger.Infow("company deleted", "agency_id", cmd.AgencyID, "company_id", cmd.CompanyID)

	return nil
}
