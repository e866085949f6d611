package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogUC "modportal/internal/application/catalog/usecases"
	vo "modportal/internal/domain/ticket/valueobjects"
	"modportal/internal/shared/utils"
)

// FormHandler serves the reference data the ticket creation form needs:
// catalog types, assignees and the fixed priority list.
type FormHandler struct {
	listTypesUC     *catalogUC.ListTypesUseCase
	listAssigneesUC *catalogUC.ListAssigneesUseCase
}

func NewFormHandler(listTypesUC *catalogUC.ListTypesUseCase, listAssigneesUC *catalogUC.ListAssigneesUseCase) *FormHandler {
	return &FormHandler{
		listTypesUC:     listTypesUC,
		listAssigneesUC: listAssigneesUC,
	}
}

type TicketFormResponse struct {
	Types      []TypeResponse     `json:"types"`
	Assignees  []AssigneeResponse `json:"assignees"`
	Priorities []string           `json:"priorities"`
}

// GetTicketForm handles GET /tickets/new
func (h *FormHandler) GetTicketForm(c *gin.Context) {
	types, err := h.listTypesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	assignees, err := h.listAssigneesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	priorities := make([]string, 0, len(vo.Priorities()))
	for _, p := range vo.Priorities() {
		priorities = append(priorities, p.String())
	}

	utils.SuccessResponse(c, http.StatusOK, "", TicketFormResponse{
		Types:      toTypeResponses(types),
		Assignees:  toAssigneeResponses(assignees),
		Priorities: priorities,
	})
}
