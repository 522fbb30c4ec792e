package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/project/usecases"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC  *usecases.CreateProjectUseCase
	getProjectUC     *usecases.GetProjectUseCase
	listProjectsUC   *usecases.ListProjectsUseCase
	updateProjectUC  *usecases.UpdateProjectUseCase
	archiveProjectUC *usecases.ArchiveProjectUseCase
	logger           logger.Interface
}

func NewProjectHandler(
	createProjectUC *usecases.CreateProjectUseCase,
	getProjectUC *usecases.GetProjectUseCase,
	listProjectsUC *usecases.ListProjectsUseCase,
	updateProjectUC *usecases.UpdateProjectUseCase,
	archiveProjectUC *usecases.ArchiveProjectUseCase,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC:  createProjectUC,
		getProjectUC:     getProjectUC,
		listProjectsUC:   listProjectsUC,
		updateProjectUC:  updateProjectUC,
		archiveProjectUC: archiveProjectUC,
		logger:           logger,
	}
}

type createProjectRequest struct {
	CompanyID uint   `json:"company_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
}

// Create handles POST /projects. Creation is gated by the plan's project
// limit; a denial comes back as 403 with the plan reason.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.createProjectUC.Execute(c.Request.Context(), usecases.CreateProjectCommand{
		AgencyID:  middleware.AgencyID(c),
		CompanyID: req.CompanyID,
		Name:      req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	dto, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		AgencyID:  middleware.AgencyID(c),
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

type updateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// Update handles PUT /projects/:id.
func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.updateProjectUC.Execute(c.Request.Context(), usecases.UpdateProjectCommand{
		AgencyID:  middleware.AgencyID(c),
		ProjectID: projectID,
		Name:      req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// List handles GET /projects.
func (h *ProjectHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{
		AgencyID: middleware.AgencyID(c),
		Offset:   pagination.Offset(),
		Limit:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Projects, result.Total, pagination.Page, pagination.PageSize)
}

// Archive handles POST /projects/:id/archive. Archived projects stop
// counting toward the plan limit.
func (h *ProjectHandler) Archive(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid project ID")
		return
	}

	dto, err := h.archiveProjectUC.Execute(c.Request.Context(), usecases.ArchiveProjectCommand{
		AgencyID:  middleware.AgencyID(c),
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
