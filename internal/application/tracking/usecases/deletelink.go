package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type DeleteLinkCommand struct {
	AgencyID uint
	LinkID   uint
}

type DeleteLinkUseCase struct {
	linkRepo tracking.LinkRepository
	logger   logger.Interface
}

func NewDeleteLinkUseCase(linkRepo tracking.LinkRepository, logger logger.Interface) *DeleteLinkUseCase {
	return &DeleteLinkUseCase{
		linkRepo: linkRepo,
		logger:   logger,
	}
}

// Execute soft deletes a link. Past clicks stay in storage but the
// engagement rollup ignores clicks whose link no longer resolves.
func (uc *DeleteLinkUseCase) Execute(ctx context.Context, cmd DeleteLinkCommand) error {
	if cmd.AgencyID == 0 {
		return errors.NewValidationError("agency ID is required")
	}
	if cmd.LinkID == 0 {
		return errors.NewValidationError("link ID is required")
	}

	link, err := uc.linkRepo.FindByID(ctx, cmd.AgencyID, cmd.LinkID)
	if err != nil {
		uc.logger.Errorw("failed to load tracking link", "link_id", cmd.LinkID, "error", err)
		return errors.NewInternalError("failed to load tracking link")
	}
	if link == nil {
		return errors.NewNotFoundError(fmt.Sprintf("link %d not found", cmd.LinkID))
	}

	if err := uc.linkRepo.Delete(ctx, cmd.AgencyID, cmd.LinkID); err != nil {
		uc.logger.Errorw("failed to delete tracking link", "link_id", cmd.LinkID, "error", err)
		return errors.NewInternalError("failed to delete tracking link")
	}

	uc.logger.Infow("tracking link deleted", "agency_id", cmd.AgencyID, "link_id", cmd.LinkID)

	return nil
}
