package handlers

import (
	"net/http"

	"field-optimizer/internal/analysis"
	"field-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler serves fuel projections and operational-day estimates.
type ProjectionHandler struct{}

// NewProjectionHandler creates a new projection handler.
func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{}
}

// Project handles POST /api/v1/projection
func (h *ProjectionHandler) Project(c *gin.Context) {
	var req models.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	fuel := analysis.ProjectFuel(req.TractorCount, req.TargetHectares)
	plan := analysis.EstimatePlan(analysis.ImplementCounts{
		Ploughs:    req.Ploughs,
		Harrows:    req.Harrows,
		Ridgers:    req.Ridgers,
		Harvesters: req.Harvesters,
	}, req.TargetHectares)

	c.JSON(http.StatusOK, models.ProjectionResponse{
		DailyFuelLiters:    fuel.DailyLiters,
		WeeklyFuelLiters:   fuel.WeeklyLiters,
		MonthlyFuelLiters:  fuel.MonthlyLiters,
		PloughingHaPerDay:  plan.PloughingHaPerDay,
		HarrowingHaPerDay:  plan.HarrowingHaPerDay,
		RidgingHaPerDay:    plan.RidgingHaPerDay,
		HarvestingHaPerDay: plan.HarvestingHaPerDay,
		TotalHaPerDay:      plan.TotalHaPerDay,
		EstimatedDays:      plan.EstimatedDays,
	})
}
