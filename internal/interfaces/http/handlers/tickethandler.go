package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	ticketUC "modportal/internal/application/ticket/usecases"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC  *ticketUC.CreateTicketUseCase
	closeTicketUC   *ticketUC.CloseTicketUseCase
	deleteTicketUC  *ticketUC.DeleteTicketUseCase
	getTicketUC     *ticketUC.GetTicketUseCase
	searchTicketsUC *ticketUC.SearchTicketsUseCase
	logger          logger.Interface
}

func NewTicketHandler(
	createTicketUC *ticketUC.CreateTicketUseCase,
	closeTicketUC *ticketUC.CloseTicketUseCase,
	deleteTicketUC *ticketUC.DeleteTicketUseCase,
	getTicketUC *ticketUC.GetTicketUseCase,
	searchTicketsUC *ticketUC.SearchTicketsUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:  createTicketUC,
		closeTicketUC:   closeTicketUC,
		deleteTicketUC:  deleteTicketUC,
		getTicketUC:     getTicketUC,
		searchTicketsUC: searchTicketsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateTicketForm struct {
	SiteName     string `form:"site_name" binding:"required,max=255"`
	TypeID       *uint  `form:"modernization_type_id"`
	RequestDate  string `form:"request_date" binding:"required"`
	Priority     string `form:"priority" binding:"required"`
	AssigneeID   uint   `form:"assignee_id" binding:"required"`
	CreatorEmail string `form:"creator_email" binding:"required,email"`
}

type CloseTicketRequest struct {
	ExternalCaseNumber string `json:"external_case_number" binding:"max=120"`
	ExternalCaseLink   string `json:"external_case_link" binding:"omitempty,url,max=500"`
}

type DeleteTicketRequest struct {
	AdminSecret string `json:"admin_secret" binding:"required"`
}

// CreateTicket handles POST /tickets/new. The form is multipart: ticket
// fields plus the engineering document under "document".
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var form CreateTicketForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid create ticket form", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	fileHeader, err := c.FormFile("document")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("engineering document is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("failed to read uploaded document"))
		return
	}
	defer file.Close()

	result, err := h.createTicketUC.Execute(c.Request.Context(), ticketUC.CreateTicketCommand{
		SiteName:     form.SiteName,
		TypeID:       form.TypeID,
		RequestDate:  form.RequestDate,
		Priority:     form.Priority,
		AssigneeID:   form.AssigneeID,
		CreatorEmail: form.CreatorEmail,
		DocumentName: fileHeader.Filename,
		Document:     file,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.NotificationSent {
		utils.SuccessResponseWithWarning(c, http.StatusCreated,
			"ticket created",
			"the creation notification could not be delivered",
			result)
		return
	}
	utils.CreatedResponse(c, result, "ticket created")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), ticketUC.GetTicketQuery{TicketID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ToTicketDetailResponse(result.View, result.DaysPassed))
}

// CloseTicket handles POST /tickets/:id/close
func (h *TicketHandler) CloseTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CloseTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.closeTicketUC.Execute(c.Request.Context(), ticketUC.CloseTicketCommand{
		TicketID:           id,
		ExternalCaseNumber: req.ExternalCaseNumber,
		ExternalCaseLink:   req.ExternalCaseLink,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.NotificationSent {
		utils.SuccessResponseWithWarning(c, http.StatusOK,
			"ticket closed",
			"the closure notification could not be delivered",
			result)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "ticket closed", result)
}

// DeleteTicket handles POST /tickets/:id/delete
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req DeleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("admin secret is required"))
		return
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), ticketUC.DeleteTicketCommand{
		TicketID:    id,
		AdminSecret: req.AdminSecret,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", result)
}

// SearchTickets handles GET /search
func (h *TicketHandler) SearchTickets(c *gin.Context) {
	query := ticketUC.SearchTicketsQuery{
		FreeText: c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid assignee id"))
			return
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}

	result, err := h.searchTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]TicketResponse, 0, len(result.Tickets))
	for i := range result.Tickets {
		responses = append(responses, ToTicketResponse(&result.Tickets[i]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", responses)
}

func parseTicketID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket id")
	}
	return uint(id), nil
}
