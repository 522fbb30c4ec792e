package usecases

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/stripe/stripe-go/v81"

	"leadloft/internal/domain/agency"
	"leadloft/internal/domain/plan"
	"leadloft/internal/infrastructure/billing"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type HandleWebhookCommand struct {
	Payload   []byte
	Signature string
}

type HandleWebhookUseCase struct {
	agencyRepo agency.Repository
	gateway    billing.Gateway
	logger     logger.Interface
}

func NewHandleWebhookUseCase(
	agencyRepo agency.Repository,
	gateway billing.Gateway,
	logger logger.Interface,
) *HandleWebhookUseCase {
	return &HandleWebhookUseCase{
		agencyRepo: agencyRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

// Execute verifies and dispatches a Stripe webhook. A completed checkout
// upgrades the agency to PRO; a deleted subscription drops it back to
// FREE. Unhandled event types are acknowledged and ignored.
func (uc *HandleWebhookUseCase) Execute(ctx context.Context, cmd HandleWebhookCommand) error {
	event, err := uc.gateway.VerifyWebhook(cmd.Payload, cmd.Signature)
	if err != nil {
		uc.logger.Warnw("webhook signature verification failed", "error", err)
		return errors.NewUnauthorizedError("invalid webhook signature")
	}

	switch event.Type {
	case "checkout.session.completed":
		return uc.handleCheckoutCompleted(ctx, event)
	case "customer.subscription.deleted":
		return uc.handleSubscriptionDeleted(ctx, event)
	default:
		uc.logger.Debugw("ignoring webhook event", "type", event.Type)
		return nil
	}
}

func (uc *HandleWebhookUseCase) handleCheckoutCompleted(ctx context.Context, event stripe.Event) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		uc.logger.Errorw("failed to parse checkout session", "event_id", event.ID, "error", err)
		return errors.NewValidationError("malformed checkout session payload")
	}

	agencyID, err := strconv.ParseUint(session.Metadata["agency_id"], 10, 64)
	if err != nil || agencyID == 0 {
		uc.logger.Errorw("checkout session missing agency metadata", "event_id", event.ID)
		return errors.NewValidationError("checkout session missing agency_id metadata")
	}

	return uc.changePlan(ctx, uint(agencyID), plan.SlugPro)
}

func (uc *HandleWebhookUseCase) handleSubscriptionDeleted(ctx context.Context, event stripe.Event) error {
	var sub stripe.Subscription
	if err := json.Unmarshal(event.Data.Raw, &sub); err != nil {
		uc.logger.Errorw("failed to parse subscription", "event_id", event.ID, "error", err)
		return errors.NewValidationError("malformed subscription payload")
	}
	if sub.Customer == nil || sub.Customer.ID == "" {
		uc.logger.Errorw("subscription event missing customer", "event_id", event.ID)
		return errors.NewValidationError("subscription missing customer")
	}

	ag, err := uc.agencyRepo.FindByStripeCustomerID(ctx, sub.Customer.ID)
	if err != nil {
		uc.logger.Errorw("failed to look up agency by customer", "customer_id", sub.Customer.ID, "error", err)
		return errors.NewInternalError("failed to look up agency")
	}
	if ag == nil {
		// Unknown customer: likely an environment mismatch. Acknowledge so
		// Stripe stops retrying.
		uc.logger.Warnw("no agency for stripe customer", "customer_id", sub.Customer.ID)
		return nil
	}

	return uc.applyPlan(ctx, ag, plan.SlugFree)
}

func (uc *HandleWebhookUseCase) changePlan(ctx context.Context, agencyID uint, slug plan.Slug) error {
	ag, err := uc.agencyRepo.FindByID(ctx, agencyID)
	if err != nil {
		uc.logger.Errorw("failed to load agency", "agency_id", agencyID, "error", err)
		return errors.NewInternalError("failed to load agency")
	}
	if ag == nil {
		uc.logger.Warnw("webhook references unknown agency", "agency_id", agencyID)
		return nil
	}

	return uc.applyPlan(ctx, ag, slug)
}

func (uc *HandleWebhookUseCase) applyPlan(ctx context.Context, ag *agency.Agency, slug plan.Slug) error {
	if err := ag.ChangePlan(slug); err != nil {
		return errors.NewInternalError("failed to change plan")
	}

	if err := uc.agencyRepo.Update(ctx, ag); err != nil {
		uc.logger.Errorw("failed to persist plan change", "agency_id", ag.ID(), "error", err)
		return errors.NewInternalError("failed to change plan")
	}

	uc.logger.Infow("agency plan changed", "agency_id", ag.ID(), "plan", slug)

	return nil
}
