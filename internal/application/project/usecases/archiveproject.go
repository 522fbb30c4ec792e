package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/project"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ArchiveProjectCommand struct {
	AgencyID  uint
	ProjectID uint
}

type ArchiveProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewArchiveProjectUseCase(projectRepo project.Repository, logger logger.Interface) *ArchiveProjectUseCase {
	return &ArchiveProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute archives a project. Archived projects stop counting toward the
// plan's project limit.
func (uc *ArchiveProjectUseCase) Execute(ctx context.Context, cmd ArchiveProjectCommand) (*ProjectDTO, error) {
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

	proj.Archive()

	if err := uc.projectRepo.Update(ctx, proj); err != nil {
		uc.logger.Errorw("failed to archive project", "project_id", cmd.ProjectID, "error", err)
		return nil, errors.NewInternalError("failed to archive project")
	}

	uc.logger.Infow("project archived", "agency_id", cmd.AgencyID, "project_id", cmd.ProjectID)

	dto := toProjectDTO(proj)
	return &dto, nil
}
