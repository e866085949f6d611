package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogUC "modportal/internal/application/catalog/usecases"
	"modportal/internal/domain/catalog"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

type CatalogHandler struct {
	addTypeUC        *catalogUC.AddTypeUseCase
	deleteTypeUC     *catalogUC.DeleteTypeUseCase
	listTypesUC      *catalogUC.ListTypesUseCase
	upsertAssigneeUC *catalogUC.UpsertAssigneeUseCase
	deleteAssigneeUC *catalogUC.DeleteAssigneeUseCase
	listAssigneesUC  *catalogUC.ListAssigneesUseCase
	logger           logger.Interface
}

func NewCatalogHandler(
	addTypeUC *catalogUC.AddTypeUseCase,
	deleteTypeUC *catalogUC.DeleteTypeUseCase,
	listTypesUC *catalogUC.ListTypesUseCase,
	upsertAssigneeUC *catalogUC.UpsertAssigneeUseCase,
	deleteAssigneeUC *catalogUC.DeleteAssigneeUseCase,
	listAssigneesUC *catalogUC.ListAssigneesUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		addTypeUC:        addTypeUC,
		deleteTypeUC:     deleteTypeUC,
		listTypesUC:      listTypesUC,
		upsertAssigneeUC: upsertAssigneeUC,
		deleteAssigneeUC: deleteAssigneeUC,
		listAssigneesUC:  listAssigneesUC,
		logger:           logger.NewLogger(),
	}
}

type AddTypeRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	AdminSecret string `json:"admin_secret" binding:"required"`
}

type UpsertAssigneeRequest struct {
	Name        string `json:"name" binding:"required,max=120"`
	Email       string `json:"email" binding:"omitempty,email"`
	AdminSecret string `json:"admin_secret" binding:"required"`
}

type AdminSecretRequest struct {
	AdminSecret string `json:"admin_secret" binding:"required"`
}

type TypeResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type AssigneeResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func toTypeResponses(types []*catalog.ModernizationType) []TypeResponse {
	out := make([]TypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, TypeResponse{ID: t.ID(), Name: t.Name()})
	}
	return out
}

func toAssigneeResponses(assignees []*catalog.Assignee) []AssigneeResponse {
	out := make([]AssigneeResponse, 0, len(assignees))
	for _, a := range assignees {
		out = append(out, AssigneeResponse{ID: a.ID(), Name: a.Name(), Email: a.Email()})
	}
	return out
}

// ListTypes handles GET /admin/types
func (h *CatalogHandler) ListTypes(c *gin.Context) {
	types, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toTypeResponses(types))
}

// AddType handles POST /admin/types
func (h *CatalogHandler) AddType(c *gin.Context) {
	var req AddTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.addTypeUC.Execute(c.Request.Context(), catalogUC.AddTypeCommand{
		Name:        req.Name,
		AdminSecret: req.AdminSecret,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, TypeResponse{ID: result.TypeID, Name: result.Name}, "type added")
}

// DeleteType handles POST /admin/types/delete/:id
func (h *CatalogHandler) DeleteType(c *gin.Context) {
	id, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdminSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("admin secret is required"))
		return
	}

	if err := h.deleteTypeUC.Execute(c.Request.Context(), catalogUC.DeleteTypeCommand{
		TypeID:      id,
		AdminSecret: req.AdminSecret,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "type deleted", nil)
}

// ListAssignees handles GET /admin/assignees
func (h *CatalogHandler) ListAssignees(c *gin.Context) {
	assignees, err := h.listAssigneesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", toAssigneeResponses(assignees))
}

// UpsertAssignee handles POST /admin/assignees
func (h *CatalogHandler) UpsertAssignee(c *gin.Context) {
	var req UpsertAssigneeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.upsertAssigneeUC.Execute(c.Request.Context(), catalogUC.UpsertAssigneeCommand{
		Name:        req.Name,
		Email:       req.Email,
		AdminSecret: req.AdminSecret,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignee saved", AssigneeResponse{
		ID:    result.AssigneeID,
		Name:  result.Name,
		Email: result.Email,
	})
}

// DeleteAssignee handles POST /admin/assignees/delete/:id
func (h *CatalogHandler) DeleteAssignee(c *gin.Context) {
	id, err := parseCatalogID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AdminSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("admin secret is required"))
		return
	}

	if err := h.deleteAssigneeUC.Execute(c.Request.Context(), catalogUC.DeleteAssigneeCommand{
		AssigneeID:  id,
		AdminSecret: req.AdminSecret,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "assignee deleted", nil)
}

func parseCatalogID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid id")
	}
	return uint(id), nil
}
