package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"modportal/internal/application/export"
	ticketUC "modportal/internal/application/ticket/usecases"
	"modportal/internal/domain/ticket"
	"modportal/internal/shared/errors"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportHandler serves the filtered listing as a CSV or XLSX download. The
// filters mirror the search endpoint so the export always matches what the
// operator sees.
type ExportHandler struct {
	searchTicketsUC *ticketUC.SearchTicketsUseCase
	exporter        *export.Exporter
	logger          logger.Interface
}

func NewExportHandler(searchTicketsUC *ticketUC.SearchTicketsUseCase, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{
		searchTicketsUC: searchTicketsUC,
		exporter:        exporter,
		logger:          logger.NewLogger(),
	}
}

// ExportCSV handles GET /export.csv
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	views, ok := h.filteredViews(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteCSV(&buf, views); err != nil {
		h.logger.Errorw("csv export failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("export failed"))
		return
	}

	h.sendAttachment(c, csvContentType, h.exporter.CSVFilename(time.Now()), buf.Bytes())
}

// ExportXLSX handles GET /export.xlsx
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	views, ok := h.filteredViews(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.exporter.WriteXLSX(&buf, views); err != nil {
		h.logger.Errorw("xlsx export failed", "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("export failed"))
		return
	}

	h.sendAttachment(c, xlsxContentType, h.exporter.XLSXFilename(time.Now()), buf.Bytes())
}

func (h *ExportHandler) filteredViews(c *gin.Context) ([]ticket.View, bool) {
	query := ticketUC.SearchTicketsQuery{
		FreeText: c.Query("q"),
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
	}

	if raw := c.Query("assignee_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid assignee id"))
			return nil, false
		}
		assigneeID := uint(id)
		query.AssigneeID = &assigneeID
	}

	result, err := h.searchTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return nil, false
	}
	return result.Tickets, true
}

func (h *ExportHandler) sendAttachment(c *gin.Context, contentType, filename string, payload []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}
