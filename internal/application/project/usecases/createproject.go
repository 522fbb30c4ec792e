package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/company"
	"leadloft/internal/domain/plan"
	"leadloft/internal/domain/project"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type CreateProjectCommand struct {
	AgencyID  uint
	CompanyID uint
	Name      string
}

type ProjectDTO struct {
	ID        uint   `json:"id"`
	CompanyID uint   `json:"company_id"`
	Name      string `json:"name"`
	Archived  bool   `json:"archived"`
	CreatedAt string `json:"created_at"`
}

func toProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:        p.ID(),
		CompanyID: p.CompanyID(),
		Name:      p.Name(),
		Archived:  p.IsArchived(),
		CreatedAt: biztime.Format(p.CreatedAt()),
	}
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	companyRepo company.Repository
	checker     entitlement.Checker
	logger      logger.Interface
}

func NewCreateProjectUseCase(
	projectRepo project.Repository,
	companyRepo company.Repository,
	checker entitlement.Checker,
	logger logger.Interface,
) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		companyRepo: companyRepo,
		checker:     checker,
		logger:      logger,
	}
}

// Execute creates a project after the plan limit check passes. The check
// and the insert are separate statements; two requests racing at the
// limit can both succeed.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*ProjectDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	decision, err := uc.checker.CheckResourceLimit(ctx, cmd.AgencyID, plan.ResourceProjects)
	if err != nil {
		uc.logger.Errorw("failed to check project entitlement", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to check plan entitlement")
	}
	if !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	comp, err := uc.companyRepo.FindByID(ctx, cmd.AgencyID, cmd.CompanyID)
	if err != nil {
		uc.logger.Errorw("failed to load company", "company_id", cmd.CompanyID, "error", err)
		return nil, errors.NewInternalError("failed to load company")
	}
	if comp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("company %d not found", cmd.CompanyID))
	}

	proj, err := project.NewProject(cmd.AgencyID, cmd.CompanyID, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, proj); err != nil {
		uc.logger.Errorw("failed to create project", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to create project")
	}

	uc.logger.Infow("project created", "agency_id", cmd.AgencyID, "project_id", proj.ID())

	dto := toProjectDTO(proj)
	return &dto, nil
}
