package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"leadloft/internal/application/company/usecases"
	"leadloft/internal/interfaces/http/middleware"
	"leadloft/internal/shared/logger"
	"leadloft/internal/shared/utils"
)

type CompanyHandler struct {
	createCompanyUC *usecases.CreateCompanyUseCase
	updateCompanyUC *usecases.UpdateCompanyUseCase
	deleteCompanyUC *usecases.DeleteCompanyUseCase
	getCompanyUC    *usecases.GetCompanyUseCase
	listCompaniesUC *usecases.ListCompaniesUseCase
	logger          logger.Interface
}

func NewCompanyHandler(
	createCompanyUC *usecases.CreateCompanyUseCase,
	updateCompanyUC *usecases.UpdateCompanyUseCase,
	deleteCompanyUC *usecases.DeleteCompanyUseCase,
	getCompanyUC *usecases.GetCompanyUseCase,
	listCompaniesUC *usecases.ListCompaniesUseCase,
	logger logger.Interface,
) *CompanyHandler {
	return &CompanyHandler{
		createCompanyUC: createCompanyUC,
		updateCompanyUC: updateCompanyUC,
		deleteCompanyUC: deleteCompanyUC,
		getCompanyUC:    getCompanyUC,
		listCompaniesUC: listCompaniesUC,
		logger:          logger,
	}
}

type createCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	var req createCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.createCompanyUC.Execute(c.Request.Context(), usecases.CreateCompanyCommand{
		AgencyID: middleware.AgencyID(c),
		Name:     req.Name,
		Website:  req.Website,
		Industry: req.Industry,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto)
}

type updateCompanyRequest struct {
	Name     string `json:"name" binding:"required"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
	Notes    string `json:"notes"`
}

// Update handles PUT /companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid company ID")
		return
	}

	var req updateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	dto, err := h.updateCompanyUC.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		AgencyID:  middleware.AgencyID(c),
		CompanyID: companyID,
		Name:      req.Name,
		Website:   req.Website,
		Industry:  req.Industry,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// Delete handles DELETE /companies/:id.
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid company ID")
		return
	}

	err = h.deleteCompanyUC.Execute(c.Request.Context(), usecases.DeleteCompanyCommand{
		AgencyID:  middleware.AgencyID(c),
		CompanyID: companyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Get handles GET /companies/:id.
func (h *CompanyHandler) Get(c *gin.Context) {
	companyID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid company ID")
		return
	}

	dto, err := h.getCompanyUC.Execute(c.Request.Context(), usecases.GetCompanyQuery{
		AgencyID:  middleware.AgencyID(c),
		CompanyID: companyID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// List handles GET /companies.
func (h *CompanyHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listCompaniesUC.Execute(c.Request.Context(), usecases.ListCompaniesQuery{
		AgencyID: middleware.AgencyID(c),
		Offset:   pagination.Offset(),
		Limit:    pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Companies, result.Total, pagination.Page, pagination.PageSize)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
