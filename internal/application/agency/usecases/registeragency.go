package usecases

import (
	"context"

	"leadloft/internal/domain/agency"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/db"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type RegisterAgencyCommand struct {
	Name       string
	OwnerEmail string
	OwnerName  string
}

type RegisterAgencyResult struct {
	AgencyID  uint   `json:"agency_id"`
	Name      string `json:"name"`
	PlanSlug  string `json:"plan_slug"`
	OwnerID   uint   `json:"owner_id"`
	CreatedAt string `json:"created_at"`
}

type RegisterAgencyUseCase struct {
	agencyRepo agency.Repository
	memberRepo agency.MemberRepository
	txManager  *db.TransactionManager
	logger     logger.Interface
}

func NewRegisterAgencyUseCase(
	agencyRepo agency.Repository,
	memberRepo agency.MemberRepository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RegisterAgencyUseCase {
	return &RegisterAgencyUseCase{
		agencyRepo: agencyRepo,
		memberRepo: memberRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute creates the agency and its owner seat in one transaction. New
// agencies always start on FREE; upgrades only happen through billing.
func (uc *RegisterAgencyUseCase) Execute(ctx context.Context, cmd RegisterAgencyCommand) (*RegisterAgencyResult, error) {
	ag, err := agency.NewAgency(cmd.Name)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	var owner *agency.Member

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.agencyRepo.Save(txCtx, ag); err != nil {
			return err
		}

		owner, err = agency.NewOwner(ag.ID(), cmd.OwnerEmail, cmd.OwnerName)
		if err != nil {
			return errors.NewValidationError(err.Error())
		}

		return uc.memberRepo.Save(txCtx, owner)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to register agency", "name", cmd.Name, "error", err)
		return nil, errors.NewInternalError("failed to register agency")
	}

	uc.logger.Infow("agency registered",
		"agency_id", ag.ID(), "plan", ag.PlanSlug(), "owner_id", owner.ID())

	return &RegisterAgencyResult{
		AgencyID:  ag.ID(),
		Name:      ag.Name(),
		PlanSlug:  ag.PlanSlug().String(),
		OwnerID:   owner.ID(),
		CreatedAt: biztime.Format(ag.CreatedAt()),
	}, nil
}
