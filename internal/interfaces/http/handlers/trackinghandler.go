package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/tracking/usecases"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/constants"
	"leadloft/internal/shared/errors"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type TrackingHandler struct {
	createLinkUC  *usecases.CreateLinkUseCase
	deleteLinkUC  *usecases.DeleteLinkUseCase
	listLinksUC   *usecases.ListLinksUseCase
	recordClickUC *usecases.RecordClickUseCase
	logger        logger.Interface
}

func NewTrackingHandler(
	createLinkUC *usecases.CreateLinkUseCase,
	deleteLinkUC *usecases.DeleteLinkUseCase,
	listLinksUC *usecases.ListLinksUseCase,
	recordClickUC *usecases.RecordClickUseCase,
	logger logger.Interface,
) *TrackingHandler {
	return &TrackingHandler{
		createLinkUC:  createLinkUC,
		deleteLinkUC:  deleteLinkUC,
		listLinksUC:   listLinksUC,
		recordClickUC: recordClickUC,
		logger:        logger,
	}
}

type createLinkRequest struct {
	OpportunityID uint   `json:"opportunity_id" binding:"required"`
	TargetURL     string `json:"target_url" binding:"required,url"`
	Label         string `json:"label"`
}

// CreateLink handles POST /tracking/links.
func (h *TrackingHandler) CreateLink(c *gin.Context) {
	var req createLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.createLinkUC.Execute(c.Request.Context(), usecases.CreateLinkCommand{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: req.OpportunityID,
		TargetURL:     req.TargetURL,
		Label:         req.Label,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

// DeleteLink handles DELETE /tracking/links/:id.
func (h *TrackingHandler) DeleteLink(c *gin.Context) {
	linkID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid link ID")
		return
	}

	err = h.deleteLinkUC.Execute(c.Request.Context(), usecases.DeleteLinkCommand{
		AgencyID: middleware.AgencyID(c),
		LinkID:   linkID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListLinks handles GET /tracking/links with an optional opportunity_id
// filter.
func (h *TrackingHandler) ListLinks(c *gin.Context) {
	var opportunityID uint
	if raw := c.Query("opportunity_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid opportunity_id filter")
			return
		}
		opportunityID = uint(parsed)
	}

	result, err := h.listLinksUC.Execute(c.Request.Context(), usecases.ListLinksQuery{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: opportunityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Redirect handles GET /t/:slug, the public prospect-facing endpoint.
// It records the click, refreshes the visitor cookie and sends a 302 to
// the target URL.
func (h *TrackingHandler) Redirect(c *gin.Context) {
	token, _ := c.Cookie(constants.VisitorCookieName)

	result, err := h.recordClickUC.Execute(c.Request.Context(), usecases.RecordClickCommand{
		Slug:         c.Param("slug"),
		VisitorToken: token,
		UserAgent:    c.Request.UserAgent(),
		Referer:      c.Request.Referer(),
	})
	if err != nil {
		if errors.IsNotFoundError(err) {
			c.String(http.StatusNotFound, "link not found")
			return
		}
		h.logger.Errorw("failed to handle tracking redirect", "slug", c.Param("slug"), "error", err)
		c.String(http.StatusInternalServerError, "something went wrong")
		return
	}

	c.SetCookie(constants.VisitorCookieName, result.VisitorToken,
		constants.VisitorCookieMaxAge, "/", "", false, true)

	c.Redirect(http.StatusFound, result.TargetURL)
}
