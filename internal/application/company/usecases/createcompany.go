package usecases

import (
	"context"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type CreateCompanyCommand struct {
	AgencyID uint
	Name     string
	Website  string
	Industry string
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CreateCompanyCommand) (*CompanyDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	c, err := company.NewCompany(cmd.AgencyID, cmd.Name, cmd.Website, cmd.Industry)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Save(ctx, c); err != nil {
		uc.logger.Errorw("failed to save company", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to create company")
	}

	uc.logger.Infow("company created", "agency_id", cmd.AgencyID, "company_id", c.ID())

	dto := toCompanyDTO(c)
	return &dto, nil
}
