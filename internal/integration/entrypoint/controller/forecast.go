// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/salon-pulse/backend/internal/application/usecase/forecast"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/dto"
)

// ForecastController handles forecast endpoints.
type ForecastController struct {
	getForecastUseCase *forecast.GetForecastUseCase
}

// NewForecastController creates a new forecast controller instance.
func NewForecastController(getForecastUseCase *forecast.GetForecastUseCase) *ForecastController {
	return &ForecastController{
		getForecastUseCase: getForecastUseCase,
	}
}

// GetForecast handles GET /analytics/forecast requests.
func (c *ForecastController) GetForecast(ctx *gin.Context) {
	// Parse query parameters
	horizonStr := ctx.DefaultQuery("horizon", strconv.Itoa(int(entity.HorizonYear)))
	scenario := ctx.DefaultQuery("scenario", string(entity.ScenarioBaseline))
	metric := ctx.DefaultQuery("metric", string(entity.MetricRevenue))
	locationIDStr := ctx.Query("location")

	horizon, err := strconv.Atoi(horizonStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "horizon must be: 3, 6, or 12",
			Code:  string(domainerror.ErrCodeInvalidHorizon),
		})
		return
	}

	var locationID *string
	if locationIDStr != "" {
		locationID = &locationIDStr
	}

	// Execute use case
	input := forecast.GetForecastInput{
		Horizon:    entity.Horizon(horizon),
		Scenario:   entity.Scenario(scenario),
		Metric:     entity.Metric(metric),
		LocationID: locationID,
	}

	output, err := c.getForecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleForecastError(ctx, err)
		return
	}

	// Transform to response DTO
	response := dto.ToForecastResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleForecastError handles forecast errors and returns appropriate HTTP responses.
func (c *ForecastController) handleForecastError(ctx *gin.Context, err error) {
	var forecastErr *domainerror.ForecastError
	if errors.As(err, &forecastErr) {
		statusCode := c.getStatusCodeForForecastError(forecastErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: forecastErr.Message,
			Code:  string(forecastErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForForecastError maps forecast error codes to HTTP status codes.
func (c *ForecastController) getStatusCodeForForecastError(code domainerror.ForecastErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidHorizon,
		domainerror.ErrCodeInvalidScenario,
		domainerror.ErrCodeInvalidForecastMetric:
		return http.StatusBadRequest
	case domainerror.ErrCodeForecastUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
