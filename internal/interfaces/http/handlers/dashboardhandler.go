package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/engagement"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/biztime"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type DashboardHandler struct {
	engagementSvc *engagement.Service
	logger        logger.Interface
}

func NewDashboardHandler(engagementSvc *engagement.Service, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		engagementSvc: engagementSvc,
		logger:        logger,
	}
}

// Engagement handles GET /dashboard/engagement: the trailing-week click
// rollup behind the "relances" widget.
func (h *DashboardHandler) Engagement(c *gin.Context) {
	result, err := h.engagementSvc.Compute(c.Request.Context(), middleware.AgencyID(c), biztime.NowUTC())
	if err != nil {
		h.logger.Errorw("failed to compute engagement", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
