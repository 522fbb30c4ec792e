package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/agency"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type RemoveMemberCommand struct {
	AgencyID uint
	MemberID uint
	ActorID  uint
}

type RemoveMemberUseCase struct {
	memberRepo agency.MemberRepository
	logger     logger.Interface
}

func NewRemoveMemberUseCase(memberRepo agency.MemberRepository, logger logger.Interface) *RemoveMemberUseCase {
	return &RemoveMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// Execute removes a member seat. The owner seat cannot be removed; an
// agency always has its owner.
func (uc *RemoveMemberUseCase) Execute(ctx context.Context, cmd RemoveMemberCommand) error {
	if cmd.AgencyID == 0 {
		return errors.NewValidationError("agency ID is required")
	}
	if cmd.MemberID == 0 {
		return errors.NewValidationError("member ID is required")
	}

	member, err := uc.memberRepo.FindByID(ctx, cmd.AgencyID, cmd.MemberID)
	if err != nil {
		uc.logger.Errorw("failed to load member", "member_id", cmd.MemberID, "error", err)
		return errors.NewInternalError("failed to load member")
	}
	if member == nil {
		return errors.NewNotFoundError(fmt.Sprintf("member %d not found", cmd.MemberID))
	}

	if member.IsOwner() {
		return errors.NewForbiddenError("the agency owner cannot be removed")
	}

	if err := uc.memberRepo.Delete(ctx, cmd.AgencyID, cmd.MemberID); err != nil {
		uc.logger.Errorw("failed to remove member", "member_id", cmd.MemberID, "error", err)
		return errors.NewInternalError("failed to remove member")
	}

	uc.logger.Infow("member removed",
		"agency_id", cmd.AgencyID, "member_id", cmd.MemberID, "actor_id", cmd.ActorID)

	return nil
}
