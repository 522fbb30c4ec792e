package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/project"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type GetProjectQuery struct {
	AgencyID  uint
	ProjectID uint
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*ProjectDTO, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if query.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	proj, err := uc.projectRepo.FindByID(ctx, query.AgencyID, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", query.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to load project")
	}
	if proj == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", query.ProjectID))
	}

	dto := toProjectDTO(proj)
	return &dto, nil
}
