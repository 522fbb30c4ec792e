package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/domain/project"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type GetPlanQuery struct {
	AgencyID uint
}

// PlanDTO is the current plan plus a usage snapshot. A zero limit means
// the resource is unbounded on this plan.
type PlanDTO struct {
	PlanSlug     string `json:"plan_slug"`
	PlanName     string `json:"plan_name"`
	MaxProjects  int    `json:"max_projects"`
	MaxMembers   int    `json:"max_members"`
	AIEnabled    bool   `json:"ai_enabled"`
	ProjectsUsed int64  `json:"projects_used"`
	MembersUsed  int64  `json:"members_used"`
}

type GetPlanUseCase struct {
	agencyRepo  agency.Repository
	projectRepo project.Repository
	memberRepo  agency.MemberRepository
	logger      logger.Interface
}

func NewGetPlanUseCase(
	agencyRepo agency.Repository,
	projectRepo project.Repository,
	memberRepo agency.MemberRepository,
	logger logger.Interface,
) *GetPlanUseCase {
	return &GetPlanUseCase{
		agencyRepo:  agencyRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, query GetPlanQuery) (*PlanDTO, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	slug, err := uc.agencyRepo.GetPlanSlug(ctx, query.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to resolve plan", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to resolve plan")
	}
	p := plan.Resolve(slug)

	projects, err := uc.projectRepo.CountByAgency(ctx, query.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to count projects", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError(fmt.Sprintf("failed to count %s usage", plan.ResourceProjects))
	}
	members, err := uc.memberRepo.CountByAgency(ctx, query.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to count members", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError(fmt.Sprintf("failed to count %s usage", plan.ResourceMembers))
	}

	maxProjects, _ := p.Limit(plan.ResourceProjects)
	maxMembers, _ := p.Limit(plan.ResourceMembers)

	return &PlanDTO{
		PlanSlug:     p.Slug().String(),
		PlanName:     p.Name(),
		MaxProjects:  maxProjects,
		MaxMembers:   maxMembers,
		AIEnabled:    p.AIEnabled(),
		ProjectsUsed: projects,
		MembersUsed:  members,
	}, nil
}
