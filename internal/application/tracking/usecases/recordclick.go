package usecases

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"leadloft/internal/domain/tracking"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type RecordClickCommand struct {
	Slug         string
	VisitorToken string // raw cookie value; empty for first-time visitors
	UserAgent    string
	Referer      string
}

// RecordClickResult carries the redirect target and the visitor token to
// set back on the response cookie.
type RecordClickResult struct {
	TargetURL    string
	VisitorToken string
	NewVisitor   bool
}

type RecordClickUseCase struct {
	linkRepo    tracking.LinkRepository
	clickRepo   tracking.ClickRepository
	visitorSalt string
	logger      logger.Interface
}

func NewRecordClickUseCase(
	linkRepo tracking.LinkRepository,
	clickRepo tracking.ClickRepository,
	visitorSalt string,
	logger logger.Interface,
) *RecordClickUseCase {
	return &RecordClickUseCase{
		linkRepo:    linkRepo,
		clickRepo:   clickRepo,
		visitorSalt: visitorSalt,
		logger:      logger,
	}
}

// Execute resolves the slug and records the click. Only a salted hash of
// the visitor token is stored; the raw token lives in the cookie alone.
// A failed click write is logged but never blocks the redirect.
func (uc *RecordClickUseCase) Execute(ctx context.Context, cmd RecordClickCommand) (*RecordClickResult, error) {
	if cmd.Slug == "" {
		return nil, errors.NewValidationError("slug is required")
	}

	link, err := uc.linkRepo.FindBySlug(ctx, cmd.Slug)
	if err != nil {
		uc.logger.Errorw("failed to resolve tracking link", "slug", cmd.Slug, "error", err)
		return nil, errors.NewInternalError("failed to resolve tracking link")
	}
	if link == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("link %s not found", cmd.Slug))
	}

	token := cmd.VisitorToken
	newVisitor := token == ""
	if newVisitor {
		token = uuid.NewString()
	}

	click, err := tracking.NewClick(link.ID(), link.AgencyID(),
		uc.hashVisitor(token), cmd.UserAgent, cmd.Referer, time.Now())
	if err != nil {
		uc.logger.Errorw("failed to build click", "slug", cmd.Slug, "error", err)
		return nil, errors.NewInternalError("failed to record click")
	}

	if err := uc.clickRepo.Save(ctx, click); err != nil {
		uc.logger.Errorw("failed to record click, redirecting anyway",
			"slug", cmd.Slug, "link_id", link.ID(), "error", err)
	}

	if err := uc.linkRepo.IncrementClicks(ctx, link.ID(), click.ClickedAt()); err != nil {
		uc.logger.Errorw("failed to bump link counters, redirecting anyway",
			"slug", cmd.Slug, "link_id", link.ID(), "error", err)
	}

	return &RecordClickResult{
		TargetURL:    link.TargetURL(),
		VisitorToken: token,
		NewVisitor:   newVisitor,
	}, nil
}

func (uc *RecordClickUseCase) hashVisitor(token string) string {
	sum := sha256.Sum256([]byte(uc.visitorSalt + token))
	return hex.EncodeToString(sum[:])
}
