package usecases

import (
	"context"
	"fmt"

	"leadloft/internal/domain/agency"
	"leadloft/internal/infrastructure/billing"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
)

type CreateCheckoutCommand struct {
	AgencyID   uint
	ActorEmail string
}

type CreateCheckoutResult struct {
	CheckoutURL string `json:"checkout_url"`
}

type CreateCheckoutUseCase struct {
	agencyRepo agency.Repository
	gateway    billing.Gateway
	logger     logger.Interface
}

func NewCreateCheckoutUseCase(
	agencyRepo agency.Repository,
	gateway billing.Gateway,
	logger logger.Interface,
) *CreateCheckoutUseCase {
	return &CreateCheckoutUseCase{
		agencyRepo: agencyRepo,
		gateway:    gateway,
		logger:     logger,
	}
}

// Execute opens a PRO subscription checkout. A Stripe customer is created
// lazily on the first checkout and kept on the agency for later webhooks.
func (uc *CreateCheckoutUseCase) Execute(ctx context.Context, cmd CreateCheckoutCommand) (*CreateCheckoutResult, error) {
	if cmd.AgencyID == 0 {
		return nil, errors.NewValidationError("agency ID is required")
	}

	ag, err := uc.agencyRepo.FindByID(ctx, cmd.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to load agency", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to load agency")
	}
	if ag == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("agency %d not found", cmd.AgencyID))
	}

	customerID := ag.StripeCustomerID()
	if customerID == "" {
		customerID, err = uc.gateway.CreateCustomer(ag.Name(), cmd.ActorEmail)
		if err != nil {
			uc.logger.Errorw("failed to create stripe customer", "agency_id", cmd.AgencyID, "error", err)
			return nil, errors.NewInternalError("failed to start checkout")
		}

		if err := ag.AttachStripeCustomer(customerID); err != nil {
			return nil, errors.NewInternalError("failed to start checkout")
		}
		if err := uc.agencyRepo.Update(ctx, ag); err != nil {
			uc.logger.Errorw("failed to persist stripe customer", "agency_id", cmd.AgencyID, "error", err)
			return nil, errors.NewInternalError("failed to start checkout")
		}
	}

	url, err := uc.gateway.CreateCheckoutSession(customerID, cmd.AgencyID)
	if err != nil {
		uc.logger.Errorw("failed to create checkout session", "agency_id", cmd.AgencyID, "error", err)
		return nil, errors.NewInternalError("failed to start checkout")
	}

	uc.logger.Infow("checkout session created", "agency_id", cmd.AgencyID)

	return &CreateCheckoutResult{CheckoutURL: url}, nil
}
