package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/agency/usecases"
	"leadloft/internal/infrastructure/auth"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/constants"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type AgencyHandler struct {
	registerAgencyUC *usecases.RegisterAgencyUseCase
	getAgencyUC      *usecases.GetAgencyUseCase
	inviteMemberUC   *usecases.InviteMemberUseCase
	removeMemberUC   *usecases.RemoveMemberUseCase
	listMembersUC    *usecases.ListMembersUseCase
	jwtService       *auth.JWTService
	logger           logger.Interface
}

func NewAgencyHandler(
	registerAgencyUC *usecases.RegisterAgencyUseCase,
	getAgencyUC *usecases.GetAgencyUseCase,
	inviteMemberUC *usecases.InviteMemberUseCase,
	removeMemberUC *usecases.RemoveMemberUseCase,
	listMembersUC *usecases.ListMembersUseCase,
	jwtService *auth.JWTService,
	logger logger.Interface,
) *AgencyHandler {
	return &AgencyHandler{
		registerAgencyUC: registerAgencyUC,
		getAgencyUC:      getAgencyUC,
		inviteMemberUC:   inviteMemberUC,
		removeMemberUC:   removeMemberUC,
		listMembersUC:    listMembersUC,
		jwtService:       jwtService,
		logger:           logger,
	}
}

type registerAgencyRequest struct {
	Name       string `json:"name" binding:"required"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
	OwnerName  string `json:"owner_name" binding:"required"`
}

// Register handles POST /agencies. It is the only unauthenticated write
// endpoint; the response carries an access token for the new owner.
func (h *AgencyHandler) Register(c *gin.Context) {
	var req registerAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.registerAgencyUC.Execute(c.Request.Context(), usecases.RegisterAgencyCommand{
		Name:       req.Name,
		OwnerEmail: req.OwnerEmail,
		OwnerName:  req.OwnerName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	token, err := h.jwtService.Generate(result.OwnerID, result.AgencyID, constants.RoleOwner)
	if err != nil {
		h.logger.Errorw("failed to issue token after registration", "agency_id", result.AgencyID, "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to issue access token")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"agency":       result,
		"access_token": token,
	})
}

// Get handles GET /agency. It returns the caller's own agency.
func (h *AgencyHandler) Get(c *gin.Context) {
	dto, err := h.getAgencyUC.Execute(c.Request.Context(), usecases.GetAgencyQuery{
		AgencyID: middleware.AgencyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

type inviteMemberRequest struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name" binding:"required"`
}

// InviteMember handles POST /agency/members.
func (h *AgencyHandler) InviteMember(c *gin.Context) {
	var req inviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	member, err := h.inviteMemberUC.Execute(c.Request.Context(), usecases.InviteMemberCommand{
		AgencyID:  middleware.AgencyID(c),
		InviterID: middleware.UserID(c),
		Email:     req.Email,
		Name:      req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, member)
}

// RemoveMember handles DELETE /agency/members/:id.
func (h *AgencyHandler) RemoveMember(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid member ID")
		return
	}

	err = h.removeMemberUC.Execute(c.Request.Context(), usecases.RemoveMemberCommand{
		AgencyID: middleware.AgencyID(c),
		MemberID: uint(memberID),
		ActorID:  middleware.UserID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListMembers handles GET /agency/members.
func (h *AgencyHandler) ListMembers(c *gin.Context) {
	result, err := h.listMembersUC.Execute(c.Request.Context(), usecases.ListMembersQuery{
		AgencyID: middleware.AgencyID(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
