package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/billing/usecases"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type BillingHandler struct {
	createCheckoutUC *usecases.CreateCheckoutUseCase
	handleWebhookUC  *usecases.HandleWebhookUseCase
	getPlanUC        *usecases.GetPlanUseCase
	logger           logger.Interface
}

func NewBillingHandler(
	createCheckoutUC *usecases.CreateCheckoutUseCase,
	handleWebhookUC *usecases.HandleWebhookUseCase,
	getPlanUC *usecases.GetPlanUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		createCheckoutUC: createCheckoutUC,
		handleWebhookUC:  handleWebhookUC,
		getPlanUC:        getPlanUC,
		logger:           logger,
	}
}

type createCheckoutRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateCheckout handles POST /billing/checkout. Owner only.
func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	var req createCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.createCheckoutUC.Execute(c.Request.Context(), usecases.CreateCheckoutCommand{
		AgencyID:   middleware.AgencyID(c),
		ActorEmail: req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetPlan handles GET /billing/plan. Any member can see the current plan
// and how much of it is used.
func (h *BillingHandler) GetPlan(c *gin.Context) {
	dto, err := h.getPlanUC.Execute(c.Request.Context(), usecases.GetPlanQuery{
		AgencyID: middleware.AgencyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Webhook handles POST /webhooks/stripe. Unauthenticated; the Stripe
// signature header is the credential.
func (h *BillingHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "failed to read webhook payload")
		return
	}

	err = h.handleWebhookUC.Execute(c.Request.Context(), usecases.HandleWebhookCommand{
		Payload:   payload,
		Signature: c.GetHeader("Stripe-Signature"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Status(http.StatusOK)
}
