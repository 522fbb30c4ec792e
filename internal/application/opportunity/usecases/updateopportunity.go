package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/opportunity"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type UpdateOpportunityCommand struct {
	AgencyID      uint
	OpportunityID uint
	ActorID       uint
	Title         *string
	ContactName   *string
	ContactEmail  *string
	AmountCents   *int64
	Status        *string
}

type UpdateOpportunityResult struct {
	Opportunity OpportunityDTO `json:"opportunity"`
	// EventRecorded is false when the field update committed but the
	// timeline write failed. The update is never rolled back for a
	// missing event; the timeline is best effort, the record is not.
	EventRecorded bool `json:"event_recorded"`
}

type UpdateOpportunityUseCase struct {
	opportunityRepo opportunity.Repository
	eventRepo       opportunity.EventRepository
	logger          logger.Interface
}

func NewUpdateOpportunityUseCase(
	opportunityRepo opportunity.Repository,
	eventRepo opportunity.EventRepository,
	logger logger.Interface,
) *UpdateOpportunityUseCase {
	return &UpdateOpportunityUseCase{
		opportunityRepo: opportunityRepo,
		eventRepo:       eventRepo,
		logger:          logger,
	}
}

// Execute applies a field update and appends exactly one timeline event:
// status_changed when the pipeline stage moved (whatever else changed with
// it), info_updated otherwise. Submitting the current values still logs
// info_updated; an update call never skips the timeline.
func (uc *UpdateOpportunityUseCase) Execute(ctx context.Context, cmd UpdateOpportunityCommand) (*UpdateOpportunityResult, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}
	if cmd.OpportunityID == 0 {
		return nil, errors.NewValidationError("opportunity ID is required")
	}

	input, err := uc.buildInput(cmd)
	if err != nil {
		return nil, err
	}

	opp, err := uc.opportunityRepo.FindByID(ctx, cmd.AgencyID, cmd.OpportunityID)
	if err != nil {
		uc.logger.Errorw("failed to load opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to load opportunity")
	}
	if opp == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("opportunity %d not found", cmd.OpportunityID))
	}

	change, err := opp.ApplyUpdate(input)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.opportunityRepo.Update(ctx, opp); err != nil {
		uc.logger.Errorw("failed to update opportunity", "opportunity_id", cmd.OpportunityID, "error", err)
		return nil, errors.NewInternalError("failed to update opportunity")
	}

	event, err := uc.buildEvent(cmd, change)
	if err != nil {
		uc.logger.Errorw("failed to build timeline event after committed update",
			"opportunity_id", cmd.OpportunityID, "error", err)
		return &UpdateOpportunityResult{Opportunity: toOpportunityDTO(opp), EventRecorded: false}, nil
	}

	if err := uc.eventRepo.Save(ctx, event); err != nil {
		uc.logger.Errorw("timeline event write failed after committed update",
			"opportunity_id", cmd.OpportunityID, "event_type", event.Type(), "error", err)
		return &UpdateOpportunityResult{Opportunity: toOpportunityDTO(opp), EventRecorded: false}, nil
	}

	uc.logger.Infow("opportunity updated",
		"opportunity_id", cmd.OpportunityID, "event_type", event.Type(), "actor_id", cmd.ActorID)

	return &UpdateOpportunityResult{Opportunity: toOpportunityDTO(opp), EventRecorded: true}, nil
}

func (uc *UpdateOpportunityUseCase) buildInput(cmd UpdateOpportunityCommand) (opportunity.UpdateInput, error) {
	input := opportunity.UpdateInput{
		Title:        cmd.Title,
		ContactName:  cmd.ContactName,
		ContactEmail: cmd.ContactEmail,
		AmountCents:  cmd.AmountCents,
	}

	if cmd.Status != nil {
		status, err := opportunity.ParseStatus(*cmd.Status)
		if err != nil {
			return opportunity.UpdateInput{}, errors.NewValidationError(err.Error())
		}
		input.Status = &status
	}

	return input, nil
}

func (uc *UpdateOpportunityUseCase) buildEvent(cmd UpdateOpportunityCommand, change opportunity.UpdateResult) (*opportunity.Event, error) {
	if change.StatusChanged {
		return opportunity.NewStatusChangedEvent(cmd.OpportunityID, cmd.AgencyID, cmd.ActorID,
			change.FromStatus, change.ToStatus)
	}
	return opportunity.NewInfoUpdatedEvent(cmd.OpportunityID, cmd.AgencyID, cmd.ActorID)
}
