package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type GetCompanyQuery struct {
	AgencyID  uint
	CompanyID uint
}

type GetCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewGetCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *GetCompanyUseCase {
	return &GetCompanyUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *GetCompanyUseCase) Execute(ctx context.Context, query GetCompanyQuery) (*CompanyDTO, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if query.CompanyID == 0 {
		return nil, errors.NewValidationError("company ID is required")
	}

	c, err := uc.companyRepo.FindByID(ctx, query.AgencyID, query.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", query.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to load company")
	}
	if c == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %d not found", query.CompanyID))
	}

	dto := toCompanyDTO(c)
	return &dto, nil
}
