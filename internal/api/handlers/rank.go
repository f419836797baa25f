package handlers

import (
	"net/http"

	"field-optimizer/internal/analysis"
	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"

	"github.com/gin-gonic/gin"
)

// RankHandler ranks catalog operations by optimized cost.
type RankHandler struct {
	catalog *model.Catalog
}

// NewRankHandler creates a new rank handler.
func NewRankHandler(catalog *model.Catalog) *RankHandler {
	return &RankHandler{catalog: catalog}
}

// RankOperations handles GET /api/v1/rank
func (h *RankHandler) RankOperations(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	params := model.FarmParameters{
		TractorCount:      req.TractorCount,
		TargetHectares:    req.TargetHectares,
		WorkingHours:      req.WorkingHours,
		ImplementWidthM:   req.ImplementWidthM,
		FieldEfficiency:   req.FieldEfficiency,
		FuelCostPerLiter:  req.FuelCostPerLiter,
		MinSpeedKmh:       req.MinSpeedKmh,
		MaxSpeedKmh:       req.MaxSpeedKmh,
		SpeedIncrementKmh: req.SpeedIncrementKmh,
	}.WithDefaults()

	ranked, err := analysis.RankOperationsByCost(h.catalog, params)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	rankings := make([]models.Ranking, len(ranked))
	for i, r := range ranked {
		rankings[i] = models.Ranking{
			Rank:           i + 1,
			Operation:      r.Operation.Key,
			Name:           r.Operation.Name,
			Status:         string(r.Outcome.Status),
			SpeedKmh:       r.Outcome.Best.SpeedKmh,
			TotalCost:      r.Outcome.Best.TotalCost,
			CostPerHectare: r.Outcome.Best.CostPerHectare,
		}
	}
	c.JSON(http.StatusOK, models.RankResponse{Rankings: rankings})
}
