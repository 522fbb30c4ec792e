package usecases

import (
	"context"

	"leadloft/internal/domain/agency"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type ListMembersQuery struct {
	AgencyID uint
}

type ListMembersResult struct {
	Members []MemberDTO `json:"members"`
}

type ListMembersUseCase struct {
	memberRepo agency.MemberRepository
	logger     logger.Interface
}

func NewListMembersUseCase(memberRepo agency.MemberRepository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, query ListMembersQuery) (*ListMembersResult, error) {
	if query.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	members, err := uc.memberRepo.ListByAgency(ctx, query.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to list members", "agency_id", query.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to list members")
	}

	dtos := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, toMemberDTO(m))
	}

	return &ListMembersResult{Members: dtos}, nil
}
