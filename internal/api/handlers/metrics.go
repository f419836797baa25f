package handlers

import (
	"net/http"

	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"

	"github.com/gin-gonic/gin"
)

// MetricsHandler serves full-day farm metrics at a fixed speed.
type MetricsHandler struct {
	catalog *model.Catalog
}

// NewMetricsHandler creates a new metrics handler.
func NewMetricsHandler(catalog *model.Catalog) *MetricsHandler {
	return &MetricsHandler{catalog: catalog}
}

// ComputeMetrics handles POST /api/v1/metrics
func (h *MetricsHandler) ComputeMetrics(c *gin.Context) {
	var req models.MetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	params, err := farmFromRequest(h.catalog, req.Farm)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	// The metrics view is a whole-day summary; speed bounds are irrelevant
	// but validation wants a sane range, so pin them to the queried speed.
	params.MinSpeedKmh = req.SpeedKmh
	params.MaxSpeedKmh = req.SpeedKmh

	m, err := model.ComputeFarmMetrics(params, req.SpeedKmh)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.MetricsResponse{
		HourlyCapacityPerTractor: m.HourlyCapacityPerTractor,
		DailyCapacityPerTractor:  m.DailyCapacityPerTractor,
		TotalDailyCapacity:       m.TotalDailyCapacity,
		FuelPerHectare:           m.FuelPerHectare,
		TotalFuelLiters:          m.TotalFuelLiters,
		TotalFuelCost:            m.TotalFuelCost,
		CostPerHectare:           m.CostPerHectare,
	})
}
