package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/services/markdown"
)

type AddNoteCommand struct {
	AgencyID      uint
	OpportunityID uint
	ActorID       uint
	Text          string
}

type AddNoteResult struct {
	Event    EventDTO `json:"event"`
	HTMLBody string   `json:"html_body"`
}

type AddNoteUseCase struct {
	opportunityRepo opportunity.Repository
	eventRepo       opportunity.EventRepository
	markdownSvc     markdown.Service
	logger          logger.Interface
}

func NewAddNoteUseCase(
	opportunityRepo opportunity.Repository,
	eventRepo opportunity.EventRepository,
	markdownSvc markdown.Service,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		opportunityRepo: opportunityRepo,
		eventRepo:       eventRepo,
		markdownSvc:     markdownSvc,
		logger:          logger,
	}
}

// Execute appends a note_added event. Notes do not touch the opportunity
// record itself: no field update happens and no info_updated event is
// emitted alongside.
func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}

	opp, err := uc.opportunityRepo.FindByID(ctx, cmd.AgencyID, cmd.OpportunityID)
	if err != nil {
		uc.logger.Errorw("failed to load opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to load opportunity")
	}
	if opp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("opportunity %d not found", cmd.OpportunityID))
	}

	event, err := opportunity.NewNoteAddedEvent(cmd.OpportunityID, cmd.AgencyID, cmd.ActorID, cmd.Text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.eventRepo.Save(ctx, event); err != nil {
		uc.logger.Errorw("failed to save note", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to save note")
	}

	htmlBody, err := uc.markdownSvc.ToHTMLSanitized(cmd.Text)
	if err != nil {
		uc.logger.Warnw("failed to render note markdown", "opportunity_id", cmd.OpportunityID, "error", err)
		htmlBody = ""
	}

	uc.logger.Infow("note added", "opportunity_id", cmd.OpportunityID, "actor_id", cmd.ActorID)

	return &AddNoteResult{
		Event:    toEventDTO(event),
		HTMLBody: htmlBody,
	}, nil
}
