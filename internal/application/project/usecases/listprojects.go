package usecases

import (
	"context"

	"leadloft/internal/domain/project"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ListProjectsQuery struct {
	AgencyID uint
	Offset   int
	Limit    int
}

type ListProjectsResult struct {
	Projects []ProjectDTO `json:"projects"`
	Total    int64        `json:"total"`
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) (*ListProjectsResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	projects, total, err := uc.projectRepo.List(ctx, query.AgencyID, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to list projects")
	}

	dtos := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, toProjectDTO(p))
	}

	return &ListProjectsResult{Projects: dtos, Total: total}, nil
}
