package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"field-optimizer/internal/advisor"
	"field-optimizer/internal/api/models"
	"field-optimizer/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := model.DefaultCatalog()
	optimizeHandler := NewOptimizeHandler(catalog)
	fleetHandler := NewFleetHandler(catalog)
	lpHandler := NewLPHandler()
	operationsHandler := NewOperationsHandler(catalog)
	rankHandler := NewRankHandler(catalog)
	metricsHandler := NewMetricsHandler(catalog)
	projectionHandler := NewProjectionHandler()

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/optimize", optimizeHandler.RunOptimize)
	api.POST("/optimize/compare", optimizeHandler.CompareOptimizations)
	api.POST("/fleet", fleetHandler.SizeFleet)
	api.POST("/lp", lpHandler.Solve)
	api.POST("/metrics", metricsHandler.ComputeMetrics)
	api.POST("/projection", projectionHandler.Project)
	api.GET("/operations", operationsHandler.ListOperations)
	api.GET("/operations/:key", operationsHandler.GetOperation)
	api.GET("/rank", rankHandler.RankOperations)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func baseFarm() models.FarmParams {
	return models.FarmParams{
		Operation:        "ploughing",
		TractorCount:     5,
		TargetHectares:   15,
		WorkingHours:     8,
		ImplementWidthM:  1.8,
		FieldEfficiency:  0.75,
		FuelCostPerLiter: 1379,
		MinSpeedKmh:      3,
		MaxSpeedKmh:      10,
	}
}

func TestRunOptimize(t *testing.T) {
	r := testRouter(t)

	t.Run("feasible sweep", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/optimize", models.OptimizeRequest{Farm: baseFarm()})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.OptimizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "optimal", resp.Status)
		assert.InDelta(t, 3.0, resp.Best.SpeedKmh, 1e-9)
		assert.Empty(t, resp.Candidates)
	})

	t.Run("candidates on request, limited", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/optimize", models.OptimizeRequest{
			Farm:    baseFarm(),
			Options: models.OptimizeOptions{IncludeCandidates: true, LimitCandidates: 10},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.OptimizeResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Candidates, 10)
	})

	t.Run("missing operation", func(t *testing.T) {
		farm := baseFarm()
		farm.Operation = ""
		w := doJSON(t, r, http.MethodPost, "/api/v1/optimize", models.OptimizeRequest{Farm: farm})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PARAMETERS", resp.Error.Code)
	})

	t.Run("malformed body is a binding error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/optimize", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_REQUEST", resp.Error.Code)
	})

	t.Run("unknown operation", func(t *testing.T) {
		farm := baseFarm()
		farm.Operation = "mowing"
		w := doJSON(t, r, http.MethodPost, "/api/v1/optimize", models.OptimizeRequest{Farm: farm})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PARAMETERS", resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "mowing")
	})

	t.Run("invalid numbers", func(t *testing.T) {
		farm := baseFarm()
		farm.FieldEfficiency = 1.5
		w := doJSON(t, r, http.MethodPost, "/api/v1/optimize", models.OptimizeRequest{Farm: farm})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "INVALID_PARAMETERS", resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "field_efficiency")
	})
}

func TestCompareOptimizations(t *testing.T) {
	r := testRouter(t)

	req := models.CompareRequest{
		BaseFarm: baseFarm(),
		Variations: []models.FarmVariation{
			{Name: "baseline"},
			{Name: "bigger implement", Farm: models.FarmParams{ImplementWidthM: 3.6}},
			{Name: "broken", Farm: models.FarmParams{Operation: "mowing"}},
		},
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/optimize/compare", req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// The invalid variation is skipped, not fatal.
	require.Len(t, resp.Comparison, 2)
	assert.Equal(t, "baseline", resp.Comparison[0].Name)
	assert.Equal(t, "bigger implement", resp.Comparison[1].Name)
	// Same fuel model, same target: the wider implement changes time, not cost.
	assert.InDelta(t, resp.Comparison[0].Best.TotalCost, resp.Comparison[1].Best.TotalCost, 1e-6)
	assert.Less(t, resp.Comparison[1].Best.TimeRequiredHours, resp.Comparison[0].Best.TimeRequiredHours)
}

func TestSizeFleet(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/fleet", models.FleetRequest{
		TargetHectares: 100,
		SpeedKmh:       5,
		Farm:           baseFarm(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.FleetResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 19, resp.TractorsNeeded)

	t.Run("zero speed", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/fleet", models.FleetRequest{
			TargetHectares: 100,
			Farm:           baseFarm(),
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSolveLP(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/lp", models.LPRequest{
		FuelCost:           1379,
		MaxFuel:            1000,
		MaxTractors:        5,
		CoveragePerTractor: 5.4,
		FuelPerTractor:     25,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.LPResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "optimal", resp.Status)

	t.Run("infeasible", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/v1/lp", models.LPRequest{
			FuelCost:           1379,
			MaxFuel:            -1,
			MaxTractors:        5,
			CoveragePerTractor: 5.4,
			FuelPerTractor:     25,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp models.LPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "infeasible", resp.Status)
	})
}

func TestOperationsEndpoints(t *testing.T) {
	r := testRouter(t)

	t.Run("list", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/operations", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Operations []model.OperationProfile `json:"operations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.Operations, 9)
	})

	t.Run("get one", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/operations/harvesting", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var p model.OperationProfile
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
		assert.Equal(t, 22.5, p.BaseLitersPerHectare)
	})

	t.Run("unknown key", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/operations/mowing", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/metrics", models.MetricsRequest{
		SpeedKmh: 5,
		Farm:     baseFarm(),
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.MetricsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 0.675, resp.HourlyCapacityPerTractor, 1e-9)
	assert.InDelta(t, 27.0, resp.TotalDailyCapacity, 1e-9)
	assert.InDelta(t, 35.0, resp.FuelPerHectare, 1e-9)
}

func TestProjectionEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/projection", models.ProjectionRequest{
		TractorCount:   5,
		TargetHectares: 10,
		Ploughs:        2,
		Harrows:        1,
		Ridgers:        1,
		Harvesters:     1,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 100, resp.DailyFuelLiters, 1e-9)
	assert.InDelta(t, 2500, resp.MonthlyFuelLiters, 1e-9)
	assert.InDelta(t, 34.35, resp.TotalHaPerDay, 1e-9)
	assert.Greater(t, resp.EstimatedDays, 0.0)
}

func TestRankEndpoint(t *testing.T) {
	r := testRouter(t)

	w := doJSON(t, r, http.MethodGet,
		"/api/v1/rank?tractor_count=5&target_hectares=15&working_hours=8&implement_width_m=1.8&field_efficiency=0.75&fuel_cost_per_liter=1379&min_speed_kmh=3&max_speed_kmh=10&limit=3",
		nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp models.RankResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rankings, 3)
	assert.Equal(t, 1, resp.Rankings[0].Rank)
	assert.LessOrEqual(t, resp.Rankings[0].TotalCost, resp.Rankings[1].TotalCost)

	t.Run("missing params", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/v1/rank?tractor_count=5", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type stubAdvisor struct {
	text string
	err  error
}

func (s stubAdvisor) Suggest(context.Context, advisor.Summary) (string, error) {
	return s.text, s.err
}

func TestSuggestEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(client advisor.Client) *gin.Engine {
		h := NewSuggestHandler("", "")
		h.newClient = func(string) advisor.Client { return client }
		r := gin.New()
		r.POST("/api/v1/suggest", h.Suggest)
		return r
	}

	body := models.SuggestRequest{
		APIKey: "test-key",
		Summary: models.SuggestSummary{
			OperationName:  "Ploughing (Moldboard/Disc)",
			Status:         "optimal",
			TractorCount:   5,
			TargetHectares: 15,
			WorkingHours:   8,
		},
	}

	t.Run("success", func(t *testing.T) {
		r := newRouter(stubAdvisor{text: "Run at 3 km/h."})
		w := doJSON(t, r, http.MethodPost, "/api/v1/suggest", body)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var resp models.SuggestResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Run at 3 km/h.", resp.Suggestion)
	})

	t.Run("missing api key", func(t *testing.T) {
		r := newRouter(stubAdvisor{text: "unused"})
		noKey := body
		noKey.APIKey = ""
		w := doJSON(t, r, http.MethodPost, "/api/v1/suggest", noKey)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("advisor errors map to HTTP statuses", func(t *testing.T) {
		cases := []struct {
			advisorStatus int
			code          string
			wantHTTP      int
		}{
			{http.StatusUnauthorized, "INVALID_API_KEY", http.StatusUnauthorized},
			{http.StatusTooManyRequests, "RATE_LIMITED", http.StatusTooManyRequests},
			{http.StatusBadGateway, "UPSTREAM_ERROR", http.StatusBadGateway},
		}
		for _, tc := range cases {
			r := newRouter(stubAdvisor{err: &advisor.AdvisorError{
				StatusCode: tc.advisorStatus,
				Code:       tc.code,
				Message:    "upstream said no",
			}})
			w := doJSON(t, r, http.MethodPost, "/api/v1/suggest", body)
			require.Equal(t, tc.wantHTTP, w.Code, tc.code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.code, resp.Error.Code)
		}
	})
}
