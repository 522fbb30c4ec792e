package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/agency"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type GetAgencyQuery struct {
	AgencyID uint
}

type AgencyDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	PlanSlug  string `json:"plan_slug"`
	CreatedAt string `json:"created_at"`
}

type GetAgencyUseCase struct {
	agencyRepo agency.Repository
	logger     logger.Interface
}

func NewGetAgencyUseCase(agencyRepo agency.Repository, logger logger.Interface) *GetAgencyUseCase {
	return &GetAgencyUseCase{
		agencyRepo: agencyRepo,
		logger:     logger,
	}
}

func (uc *GetAgencyUseCase) Execute(ctx context.Context, query GetAgencyQuery) (*AgencyDTO, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	ag, err := uc.agencyRepo.FindByID(ctx, query.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to load agency", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to load agency")
	}
	if ag == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("agency %d not found", query.AgencyID))
	}

	return &AgencyDTO{
		ID:        ag.ID(),
		Name:      ag.Name(),
		PlanSlug:  ag.PlanSlug().String(),
		CreatedAt: biztime.Format(ag.CreatedAt()),
	}, nil
}
