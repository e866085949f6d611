package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modportal/internal/infrastructure/storage"
	"modportal/internal/shared/logger"
	"modportal/internal/shared/utils"
)

// UploadsHandler serves the stored engineering documents back to logged-in
// operators.
type UploadsHandler struct {
	store  *storage.DocumentStore
	logger logger.Interface
}

func NewUploadsHandler(store *storage.DocumentStore) *UploadsHandler {
	return &UploadsHandler{
		store:  store,
		logger: logger.NewLogger(),
	}
}

// Download handles GET /uploads/:filename
func (h *UploadsHandler) Download(c *gin.Context) {
	ref := c.Param("filename")

	path, err := h.store.Path(ref)
	if err != nil {
		h.logger.Warnw("rejected document reference", "ref", ref, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid document reference")
		return
	}
	if !h.store.Exists(ref) {
		utils.ErrorResponse(c, http.StatusNotFound, "document not found")
		return
	}

	c.FileAttachment(path, ref)
}
