package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	ticketUC "modportal/internal/application/ticket/usecases"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC *ticketUC.GetDashboardUseCase
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC *ticketUC.GetDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

type DashboardResponse struct {
	Open   int64            `json:"open"`
	Closed int64            `json:"closed"`
	Total  int64            `json:"total"`
	Recent []TicketResponse `json:"recent"`
}

// GetDashboard handles GET /
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp := DashboardResponse{
		Open:   result.Stats.Open,
		Closed: result.Stats.Closed,
		Total:  result.Stats.Total,
		Recent: make([]TicketResponse, 0, len(result.Recent)),
	}
	for i := range result.Recent {
		resp.Recent = append(resp.Recent, ToTicketResponse(&result.Recent[i]))
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}
