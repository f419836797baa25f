package handlers

import (
	"net/http"

	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"

	"github.com/gin-gonic/gin"
)

// FleetHandler handles fleet-sizing requests.
type FleetHandler struct {
	catalog *model.Catalog
}

// NewFleetHandler creates a new fleet handler.
func NewFleetHandler(catalog *model.Catalog) *FleetHandler {
	return &FleetHandler{catalog: catalog}
}

// SizeFleet handles POST /api/v1/fleet
func (h *FleetHandler) SizeFleet(c *gin.Context) {
	var req models.FleetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	params, err := farmFromRequest(h.catalog, req.Farm)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	res, err := optimize.MinimumFleetForSpeed(req.TargetHectares, req.SpeedKmh, params)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.FleetResponse{
		TractorsNeeded:           res.TractorsNeeded,
		TimeRequiredHours:        res.TimeRequiredHours,
		FuelRequired:             res.FuelRequired,
		TotalFuelCost:            res.TotalFuelCost,
		FuelPerHectare:           res.FuelPerHectare,
		HourlyCapacityPerTractor: res.HourlyCapacityPerTractor,
		TotalHourlyCapacity:      res.TotalHourlyCapacity,
	})
}
