package handlers

import (
	"net/http"

	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"

	"github.com/gin-gonic/gin"
)

// OptimizeHandler handles speed-sweep requests.
type OptimizeHandler struct {
	catalog *model.Catalog
}

// NewOptimizeHandler creates a new optimize handler.
func NewOptimizeHandler(catalog *model.Catalog) *OptimizeHandler {
	return &OptimizeHandler{catalog: catalog}
}

// RunOptimize handles POST /api/v1/optimize
func (h *OptimizeHandler) RunOptimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	params, err := farmFromRequest(h.catalog, req.Farm)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	outcome, err := optimize.OptimizeSpeed(params)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.buildResponse(outcome, req.Options))
}

// CompareOptimizations handles POST /api/v1/optimize/compare
func (h *OptimizeHandler) CompareOptimizations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := mergeFarmParams(req.BaseFarm, variation.Farm)

		params, err := farmFromRequest(h.catalog, merged)
		if err != nil {
			continue // Skip invalid variations
		}
		outcome, err := optimize.OptimizeSpeed(params)
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:   variation.Name,
			Status: string(outcome.Status),
			Best:   candidateToDTO(outcome.Best),
		})
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

func (h *OptimizeHandler) buildResponse(outcome *optimize.Outcome, opts models.OptimizeOptions) models.OptimizeResponse {
	resp := models.OptimizeResponse{
		Status: string(outcome.Status),
		Best:   candidateToDTO(outcome.Best),
	}
	if opts.IncludeCandidates {
		candidates := outcome.Candidates
		if opts.LimitCandidates > 0 && opts.LimitCandidates < len(candidates) {
			candidates = candidates[:opts.LimitCandidates]
		}
		resp.Candidates = make([]models.SpeedCandidate, len(candidates))
		for i, cand := range candidates {
			resp.Candidates[i] = candidateToDTO(cand)
		}
	}
	return resp
}
