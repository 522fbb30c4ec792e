// Package entitlement answers "may this agency do that" questions against
// the plan registry. Checks read current usage immediately before the
// gated write; the check and the write are not atomic, so concurrent
// requests racing at the limit can both pass. The cap is a product
// boundary, not a security boundary.
package entitlement

import (
	"context"
	"fmt"

	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/domain/project"
	"leadloft/internal/shared/logger"
)

// Decision is the outcome of an entitlement check. Reason is set only on
// denial.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

func allow() Decision {
	return Decision{Allowed: true}
}

func deny(reason string) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// Checker gates resource creation and feature access by plan.
type Checker interface {
	CheckResourceLimit(ctx context.Context, agencyID uint, kind plan.ResourceKind) (Decision, error)
	CheckFeature(ctx context.Context, agencyID uint, feature plan.FeatureKind) (Decision, error)
}

type Service struct {
	agencyRepo  agency.Repository
	projectRepo project.Repository
	memberRepo  agency.MemberRepository
	logger      logger.Interface
}

func NewService(
	agencyRepo agency.Repository,
	projectRepo project.Repository,
	memberRepo agency.MemberRepository,
	logger logger.Interface,
) *Service {
	return &Service{
		agencyRepo:  agencyRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		logger:      logger.Named("entitlement"),
	}
}

// CheckResourceLimit denies when the current count has already reached the
// plan's cap: count >= limit. Unlimited resources skip the count query
// entirely.
func (s *Service) CheckResourceLimit(ctx context.Context, agencyID uint, kind plan.ResourceKind) (Decision, error) {
	if agencyID == 0 {
		return Decision{}, fmt.Errorf("agency ID is required")
	}

	p, err := s.resolvePlan(ctx, agencyID)
	if err != nil {
		return Decision{}, err
	}

	limit, ok := p.Limit(kind)
	if !ok {
		return Decision{}, fmt.Errorf("unknown resource kind: %s", kind)
	}

	if limit == plan.Unlimited {
		return allow(), nil
	}

	count, err := s.countUsage(ctx, agencyID, kind)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to count %s usage: %w", kind, err)
	}

	if count >= int64(limit) {
		s.logger.Infow("resource limit reached",
			"agency_id", agencyID, "kind", kind, "count", count, "limit", limit, "plan", p.Slug())
		reason := fmt.Sprintf("%s limit reached: plan %s allows %d", kind, p.Slug(), limit)
		if p.Slug() != plan.SlugPro {
			reason = fmt.Sprintf("%s, upgrade to %s to raise it", reason, plan.SlugPro)
		}
		return deny(reason), nil
	}

	return allow(), nil
}

func (s *Service) CheckFeature(ctx context.Context, agencyID uint, feature plan.FeatureKind) (Decision, error) {
	if agencyID == 0 {
		return Decision{}, fmt.Errorf("agency ID is required")
	}
	if !feature.IsValid() {
		return Decision{}, fmt.Errorf("unknown feature kind: %s", feature)
	}

	p, err := s.resolvePlan(ctx, agencyID)
	if err != nil {
		return Decision{}, err
	}

	switch feature {
	case plan.FeatureAI:
		if !p.AIEnabled() {
			return deny(fmt.Sprintf("feature %s requires the %s plan", feature, plan.SlugPro)), nil
		}
	}

	return allow(), nil
}

func (s *Service) resolvePlan(ctx context.Context, agencyID uint) (plan.Plan, error) {
	slug, err := s.agencyRepo.GetPlanSlug(ctx, agencyID)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("failed to resolve plan: %w", err)
	}
	return plan.Resolve(slug), nil
}

func (s *Service) countUsage(ctx context.Context, agencyID uint, kind plan.ResourceKind) (int64, error) {
	switch kind {
	case plan.ResourceProjects:
		return s.projectRepo.CountByAgency(ctx, agencyID)
	case plan.ResourceMembers:
		return s.memberRepo.CountByAgency(ctx, agencyID)
	default:
		return 0, fmt.Errorf("unknown resource kind: %s", kind)
	}
}
