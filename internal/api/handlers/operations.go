package handlers

import (
	"net/http"

	"field-optimizer/internal/model"

	"github.com/gin-gonic/gin"
)

// OperationsHandler serves the read-only operation catalog.
type OperationsHandler struct {
	catalog *model.Catalog
}

// NewOperationsHandler creates a new operations handler.
func NewOperationsHandler(catalog *model.Catalog) *OperationsHandler {
	return &OperationsHandler{catalog: catalog}
}

// ListOperations handles GET /api/v1/operations
func (h *OperationsHandler) ListOperations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"operations": h.catalog.Profiles()})
}

// GetOperation handles GET /api/v1/operations/:key
func (h *OperationsHandler) GetOperation(c *gin.Context) {
	key := c.Param("key")
	p, err := h.catalog.Profile(key)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
