package handlers

import (
	"net/http"

	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"
	"field-optimizer/internal/optimize"

	"github.com/gin-gonic/gin"
)

// farmFromRequest resolves the operation key and builds the core parameter
// aggregate. Numeric validation is left to the core so the error points at
// the offending field.
func farmFromRequest(catalog *model.Catalog, req models.FarmParams) (model.FarmParameters, error) {
	op, err := catalog.Profile(req.Operation)
	if err != nil {
		return model.FarmParameters{}, err
	}
	return model.FarmParameters{
		TractorCount:      req.TractorCount,
		TargetHectares:    req.TargetHectares,
		WorkingHours:      req.WorkingHours,
		ImplementWidthM:   req.ImplementWidthM,
		FieldEfficiency:   req.FieldEfficiency,
		FuelCostPerLiter:  req.FuelCostPerLiter,
		Operation:         op,
		MinSpeedKmh:       req.MinSpeedKmh,
		MaxSpeedKmh:       req.MaxSpeedKmh,
		SpeedIncrementKmh: req.SpeedIncrementKmh,
	}.WithDefaults(), nil
}

// mergeFarmParams overlays non-zero fields from override onto base.
func mergeFarmParams(base, override models.FarmParams) models.FarmParams {
	out := base
	if override.Operation != "" {
		out.Operation = override.Operation
	}
	if override.TractorCount != 0 {
		out.TractorCount = override.TractorCount
	}
	if override.TargetHectares != 0 {
		out.TargetHectares = override.TargetHectares
	}
	if override.WorkingHours != 0 {
		out.WorkingHours = override.WorkingHours
	}
	if override.ImplementWidthM != 0 {
		out.ImplementWidthM = override.ImplementWidthM
	}
	if override.FieldEfficiency != 0 {
		out.FieldEfficiency = override.FieldEfficiency
	}
	if override.FuelCostPerLiter != 0 {
		out.FuelCostPerLiter = override.FuelCostPerLiter
	}
	if override.MinSpeedKmh != 0 {
		out.MinSpeedKmh = override.MinSpeedKmh
	}
	if override.MaxSpeedKmh != 0 {
		out.MaxSpeedKmh = override.MaxSpeedKmh
	}
	if override.SpeedIncrementKmh != 0 {
		out.SpeedIncrementKmh = override.SpeedIncrementKmh
	}
	return out
}

// respondBindingError reports a malformed request body.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_REQUEST",
			Message: err.Error(),
		},
	})
}

// respondCoreError maps DomainErrors to 400 and everything else to 500.
func respondCoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	if model.IsDomainError(err) {
		status = http.StatusBadRequest
		code = "INVALID_PARAMETERS"
	}
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func candidateToDTO(c optimize.SpeedCandidate) models.SpeedCandidate {
	return models.SpeedCandidate{
		Index:               c.Index,
		SpeedKmh:            c.SpeedKmh,
		Feasible:            c.Feasible,
		TimeRequiredHours:   c.TimeRequiredHours,
		FuelRequired:        c.FuelRequired,
		TotalCost:           c.TotalCost,
		CostPerHectare:      c.CostPerHectare,
		TotalHourlyCapacity: c.TotalHourlyCapacity,
		TotalDailyCapacity:  c.TotalDailyCapacity,
		FuelPerHectare:      c.FuelPerHectare,
		AchievableHectares:  c.AchievableHectares,
	}
}
