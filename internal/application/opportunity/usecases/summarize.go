package usecases

import (
	"context"
	"fmt"
	"strings"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/opportunity"
	"leadloft/internal/domain/plan"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type SummarizeCommand struct {
	AgencyID      uint
	OpportunityID uint
}

type SummarizeResult struct {
	Summary string `json:"summary"`
}

// SummarizeUseCase builds the activity digest behind the AI feature gate.
// The gate is checked before any work happens; FREE tenants get a denial
// with the plan reason, never a partial result.
type SummarizeUseCase struct {
	opportunityRepo opportunity.Repository
	eventRepo       opportunity.EventRepository
	checker         entitlement.Checker
	logger          logger.Interface
}

func NewSummarizeUseCase(
	opportunityRepo opportunity.Repository,
	eventRepo opportunity.EventRepository,
	checker entitlement.Checker,
	logger logger.Interface,
) *SummarizeUseCase {
	return &SummarizeUseCase{
		opportunityRepo: opportunityRepo,
		eventRepo:       eventRepo,
		checker:         checker,
		logger:          logger,
	}
}

func (uc *SummarizeUseCase) Execute(ctx context.Context, cmd SummarizeCommand) (*SummarizeResult, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}

	decision, err := uc.checker.CheckFeature(ctx, cmd.AgencyID, plan.FeatureAI)
	if err != nil {
		uc.logger.Errorw("failed to check AI entitlement", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to check plan entitlement")
	}
	if !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	opp, err := uc.opportunityRepo.FindByID(ctx, cmd.AgencyID, cmd.OpportunityID)
	if err != nil {
		uc.logger.Errorw("failed to load opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to load opportunity")
	}
	if opp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("opportunity %d not found", cmd.OpportunityID))
	}

	events, _, err := uc.eventRepo.ListByOpportunity(ctx, cmd.AgencyID, cmd.OpportunityID, 0, 50)
	if err != nil {
		uc.logger.Errorw("failed to list timeline", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to list timeline")
	}

	return &SummarizeResult{Summary: buildDigest(opp, events)}, nil
}

// buildDigest condenses the recent timeline into a short text. Events
// arrive newest first.
func buildDigest(opp *opportunity.Opportunity, events []*opportunity.Event) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s is in stage %s", opp.Title(), opp.Status())
	if opp.AmountCents() > 0 {
		fmt.Fprintf(&b, " for %.2f EUR", float64(opp.AmountCents())/100)
	}
	b.WriteString(".")

	var moves, notes, edits int
	for _, e := range events {
		switch e.Type() {
		case opportunity.EventStatusChanged:
			moves++
		case opportunity.EventNoteAdded:
			notes++
		case opportunity.EventInfoUpdated:
			edits++
		}
	}

	fmt.Fprintf(&b, " Recent activity: %d stage moves, %d notes, %d detail edits.", moves, notes, edits)

	for _, e := range events {
		if e.Type() == opportunity.EventStatusChanged {
			m := e.StatusChanged()
			fmt.Fprintf(&b, " Last stage move: %s to %s.", m.From, m.To)
			break
		}
	}

	return b.String()
}
