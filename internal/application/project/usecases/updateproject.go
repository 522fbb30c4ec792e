package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/project"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type UpdateProjectCommand struct {
	AgencyID  uint
	ProjectID uint
	Name      string
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*ProjectDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.ProjectID == 0 {
		return nil, errors.NewValidationError("project ID is required")
	}

	proj, err := uc.projectRepo.FindByID(ctx, cmd.AgencyID, cmd.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to load project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to load project")
	}
	if proj == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("project %d not found", cmd.ProjectID))
	}

	if err := proj.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Update(ctx, proj); err != nil {
		uc.logger.Errorw("failed to update project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to update project")
	}

	dto := toProjectDTO(proj)
	return &dto, nil
}
