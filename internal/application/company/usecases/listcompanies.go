package usecases

import (
	"context"

	"leadloft/internal/domain/company"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ListCompaniesQuery struct {
	AgencyID uint
	Offset   int
	Limit    int
}

type ListCompaniesResult struct {
	Companies []CompanyDTO `json:"companies"`
	Total     int64        `json:"total"`
}

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context, query ListCompaniesQuery) (*ListCompaniesResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	companies, total, err := uc.companyRepo.List(ctx, query.AgencyID, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to list companies")
	}

	dtos := make([]CompanyDTO, 0, len(companies))
	for _, c := range companies {
		dtos = append(dtos, toCompanyDTO(c))
	}

	return &ListCompaniesResult{Companies: dtos, Total: total}, nil
}
