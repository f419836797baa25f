package handlers

import (
	"net/http"

	"field-optimizer/internal/api/models"
	"field-optimizer/internal/optimize"

	"github.com/gin-gonic/gin"
)

// LPHandler handles fleet LP requests.
type LPHandler struct{}

// NewLPHandler creates a new LP handler.
func NewLPHandler() *LPHandler {
	return &LPHandler{}
}

// Solve handles POST /api/v1/lp
func (h *LPHandler) Solve(c *gin.Context) {
	var req models.LPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	sol, err := optimize.SolveFleetLP(
		req.FuelCost,
		req.MaxFuel,
		req.MaxTractors,
		req.CoveragePerTractor,
		req.FuelPerTractor,
	)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	resp := models.LPResponse{Status: string(sol.Status)}
	if sol.Status == optimize.StatusOptimal {
		resp.FuelUsed = sol.FuelUsed
		resp.HectaresCovered = sol.HectaresCovered
		resp.TractorsUsed = sol.TractorsUsed
		resp.Objective = sol.Objective
	}
	c.JSON(http.StatusOK, resp)
}
