package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/opportunity/usecases"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type OpportunityHandler struct {
	createOpportunityUC *usecases.CreateOpportunityUseCase
	updateOpportunityUC *usecases.UpdateOpportunityUseCase
	listOpportunitiesUC *usecases.ListOpportunitiesUseCase
	getTimelineUC       *usecases.GetTimelineUseCase
	addNoteUC           *usecases.AddNoteUseCase
	summarizeUC         *usecases.SummarizeUseCase
	logger              logger.Interface
}

func NewOpportunityHandler(
	createOpportunityUC *usecases.CreateOpportunityUseCase,
	updateOpportunityUC *usecases.UpdateOpportunityUseCase,
	listOpportunitiesUC *usecases.ListOpportunitiesUseCase,
	getTimelineUC *usecases.GetTimelineUseCase,
	addNoteUC *usecases.AddNoteUseCase,
	summarizeUC *usecases.SummarizeUseCase,
	logger logger.Interface,
) *OpportunityHandler {
	return &OpportunityHandler{
		createOpportunityUC: createOpportunityUC,
		updateOpportunityUC: updateOpportunityUC,
		listOpportunitiesUC: listOpportunitiesUC,
		getTimelineUC:       getTimelineUC,
		addNoteUC:           addNoteUC,
		summarizeUC:         summarizeUC,
		logger:              logger,
	}
}

type createOpportunityRequest struct {
	CompanyID    uint   `json:"company_id" binding:"required"`
	Title        string `json:"title" binding:"required"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	AmountCents  int64  `json:"amount_cents"`
}

// Create handles POST /opportunities.
func (h *OpportunityHandler) Create(c *gin.Context) {
	var req createOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.createOpportunityUC.Execute(c.Request.Context(), usecases.CreateOpportunityCommand{
		AgencyID:     middleware.AgencyID(c),
		CompanyID:    req.CompanyID,
		ActorID:      middleware.UserID(c),
		Title:        req.Title,
		ContactName:  req.ContactName,
		ContactEmail: req.ContactEmail,
		AmountCents:  req.AmountCents,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

type updateOpportunityRequest struct {
	Title        *string `json:"title"`
	ContactName  *string `json:"contact_name"`
	ContactEmail *string `json:"contact_email"`
	AmountCents  *int64  `json:"amount_cents"`
	Status       *string `json:"status" binding:"omitempty,oppstatus"`
}

// Update handles PATCH /opportunities/:id. Absent fields are left
// untouched; each effective update logs exactly one timeline event.
func (h *OpportunityHandler) Update(c *gin.Context) {
	opportunityID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid opportunity ID")
		return
	}

	var req updateOpportunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.updateOpportunityUC.Execute(c.Request.Context(), usecases.UpdateOpportunityCommand{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: opportunityID,
		ActorID:       middleware.UserID(c),
		Title:         req.Title,
		ContactName:   req.ContactName,
		ContactEmail:  req.ContactEmail,
		AmountCents:   req.AmountCents,
		Status:        req.Status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /opportunities.
func (h *OpportunityHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	var companyID uint
	if raw := c.Query("company_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid company_id filter")
			return
		}
		companyID = uint(parsed)
	}

	result, err := h.listOpportunitiesUC.Execute(c.Request.Context(), usecases.ListOpportunitiesQuery{
		AgencyID:  middleware.AgencyID(c),
		CompanyID: companyID,
		Status:    c.Query("status"),
		Offset:    pagination.Offset(),
		Limit:     pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Opportunities, result.Total, pagination.Page, pagination.PageSize)
}

// GetTimeline handles GET /opportunities/:id/timeline.
func (h *OpportunityHandler) GetTimeline(c *gin.Context) {
	opportunityID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid opportunity ID")
		return
	}

	pagination := utils.ParsePagination(c)

	result, err := h.getTimelineUC.Execute(c.Request.Context(), usecases.GetTimelineQuery{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: opportunityID,
		Offset:        pagination.Offset(),
		Limit:         pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Events, result.Total, pagination.Page, pagination.PageSize)
}

type addNoteRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddNote handles POST /opportunities/:id/notes.
func (h *OpportunityHandler) AddNote(c *gin.Context) {
	opportunityID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid opportunity ID")
		return
	}

	var req addNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), usecases.AddNoteCommand{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: opportunityID,
		ActorID:       middleware.UserID(c),
		Text:          req.Text,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// Summarize handles POST /opportunities/:id/summary. PRO only.
func (h *OpportunityHandler) Summarize(c *gin.Context) {
	opportunityID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid opportunity ID")
		return
	}

	result, err := h.summarizeUC.Execute(c.Request.Context(), usecases.SummarizeCommand{
		AgencyID:      middleware.AgencyID(c),
		OpportunityID: opportunityID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
