package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	AgencyID  uint
	CompanyID uint
	Name      string
	Website   string
	Industry  string
	Notes     string
}

type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*CompanyDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	c, err := uc.companyRepo.FindByID(ctx, cmd.AgencyID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to load company")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %d not found", cmd.CompanyID))
	}

	if err := c.UpdateDetails(cmd.Name, cmd.Website, cmd.Industry, cmd.Notes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update company", "company_id", cmd.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to update company")
	}

	dto := toCompanyDTO(c)
	return &dto, nil
}
