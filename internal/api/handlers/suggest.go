package handlers

import (
	"net/http"

	"field-optimizer/internal/advisor"
	"field-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

// SuggestHandler turns computed summaries into AI advisory text. The advisor
// is a best-effort collaborator; its failures never reach the core routines.
type SuggestHandler struct {
	endpoint string
	model    string

	// newClient builds an advisor per request from the caller's API key.
	// Overridable in tests.
	newClient func(apiKey string) advisor.Client
}

// NewSuggestHandler creates a new suggest handler. endpoint and modelName
// may be empty to use the advisor defaults.
func NewSuggestHandler(endpoint, modelName string) *SuggestHandler {
	h := &SuggestHandler{endpoint: endpoint, model: modelName}
	h.newClient = func(apiKey string) advisor.Client {
		return advisor.NewDeepSeekClient(apiKey, h.endpoint, h.model)
	}
	return h
}

// Suggest handles POST /api/v1/suggest
func (h *SuggestHandler) Suggest(c *gin.Context) {
	var req models.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	client := h.newClient(req.APIKey)
	text, err := client.Suggest(c.Request.Context(), advisor.Summary{
		OperationName:     req.Summary.OperationName,
		Status:            req.Summary.Status,
		TractorCount:      req.Summary.TractorCount,
		TargetHectares:    req.Summary.TargetHectares,
		WorkingHours:      req.Summary.WorkingHours,
		OptimalSpeedKmh:   req.Summary.OptimalSpeedKmh,
		TimeRequiredHours: req.Summary.TimeRequiredHours,
		FuelRequired:      req.Summary.FuelRequired,
		FuelPerHectare:    req.Summary.FuelPerHectare,
		TotalCost:         req.Summary.TotalCost,
		CostPerHectare:    req.Summary.CostPerHectare,
		DailyFuelLiters:   req.Summary.DailyFuelLiters,
		WeeklyFuelLiters:  req.Summary.WeeklyFuelLiters,
		MonthlyFuelLiters: req.Summary.MonthlyFuelLiters,
		EstimatedDays:     req.Summary.EstimatedDays,
	})
	if err != nil {
		if advErr, ok := err.(*advisor.AdvisorError); ok {
			status := http.StatusBadGateway
			if advErr.StatusCode == http.StatusUnauthorized || advErr.StatusCode == http.StatusForbidden {
				status = http.StatusUnauthorized
			} else if advErr.StatusCode == http.StatusTooManyRequests {
				status = http.StatusTooManyRequests
			}
			c.JSON(status, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    advErr.Code,
					Message: advErr.Message,
					Details: map[string]interface{}{
						"status_code": advErr.StatusCode,
					},
				},
			})
			return
		}
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SUGGESTION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.SuggestResponse{Suggestion: text})
}
