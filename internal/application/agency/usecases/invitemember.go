package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/application/entitlement"
	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/infrastructure/email"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type InviteMemberCommand struct {
	AgencyID  uint
	InviterID uint
	Email     string
	Name      string
}

type MemberDTO struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func toMemberDTO(m *agency.Member) MemberDTO {
	return MemberDTO{
		ID:        m.ID(),
		Email:     m.Email(),
		Name:      m.Name(),
		Role:      m.Role(),
		Status:    m.Status(),
		CreatedAt: biztime.Format(m.CreatedAt()),
	}
}

type InviteMemberUseCase struct {
	agencyRepo agency.Repository
	memberRepo agency.MemberRepository
	checker    entitlement.Checker
	emailSvc   email.Service
	logger     logger.Interface
}

func NewInviteMemberUseCase(
	agencyRepo agency.Repository,
	memberRepo agency.MemberRepository,
	checker entitlement.Checker,
	emailSvc email.Service,
	logger logger.Interface,
) *InviteMemberUseCase {
	return &InviteMemberUseCase{
		agencyRepo: agencyRepo,
		memberRepo: memberRepo,
		checker:    checker,
		emailSvc:   emailSvc,
		logger:     logger,
	}
}

// Execute invites a member once the seat limit check passes. The invite
// email is best effort; the seat is reserved even when the send fails.
func (uc *InviteMemberUseCase) Execute(ctx context.Context, cmd InviteMemberCommand) (*MemberDTO, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	decision, err := uc.checker.CheckResourceLimit(ctx, cmd.AgencyID, plan.ResourceMembers)
	if err != nil {
		uc.logger.Errorw("failed to check member entitlement", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to check plan entitlement")
	}
	if !decision.Allowed {
		return nil, errors.NewForbiddenError(decision.Reason)
	}

	existing, err := uc.memberRepo.FindByEmail(ctx, cmd.AgencyID, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to look up member", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to look up member")
	}
	if existing != nil {
		return nil, errors.NewConflictError(fmt.Sprintf("member %s already exists", cmd.Email))
	}

	member, err := agency.NewInvitedMember(cmd.AgencyID, cmd.Email, cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.memberRepo.Save(ctx, member); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError(fmt.Sprintf("member %s already exists", cmd.Email))
		}
		uc.logger.Errorw("failed to save member", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to invite member")
	}

	uc.sendInvite(ctx, cmd, member)

	uc.logger.Infow("member invited",
		"agency_id", cmd.AgencyID, "member_id", member.ID(), "inviter_id", cmd.InviterID)

	dto := toMemberDTO(member)
	return &dto, nil
}

func (uc *InviteMemberUseCase) sendInvite(ctx context.Context, cmd InviteMemberCommand, member *agency.Member) {
	ag, err := uc.agencyRepo.FindByID(ctx, cmd.AgencyID)
	if err != nil || ag == nil {
		uc.logger.Warnw("failed to load agency for invite email", "agency_id", cmd.AgencyID, "error", err)
		return
	}

	inviterName := "A teammate"
	if inviter, err := uc.memberRepo.FindByID(ctx, cmd.AgencyID, cmd.InviterID); err == nil && inviter != nil {
		inviterName = inviter.Name()
	}

	if err := uc.emailSvc.SendMemberInvite(member.Email(), member.Name(), ag.Name(), inviterName); err != nil {
		uc.logger.Warnw("failed to send invite email",
			"agency_id", cmd.AgencyID, "member_id", member.ID(), "error", err)
	}
}
