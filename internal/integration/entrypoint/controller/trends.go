// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-pulse/backend/internal/application/usecase/trends"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/dto"
)

// TrendsController handles trend comparison endpoints.
type TrendsController struct {
	getTrendComparisonUseCase *trends.GetTrendComparisonUseCase
}

// NewTrendsController creates a new trends controller instance.
func NewTrendsController(getTrendComparisonUseCase *trends.GetTrendComparisonUseCase) *TrendsController {
	return &TrendsController{
		getTrendComparisonUseCase: getTrendComparisonUseCase,
	}
}

// GetComparison handles GET /analytics/trends/comparison requests.
func (c *TrendsController) GetComparison(ctx *gin.Context) {
	// Parse query parameters
	rangeSelector := ctx.DefaultQuery("range", string(entity.RangeLast30Days))
	mode := ctx.DefaultQuery("mode", string(entity.ComparisonMonthOverMonth))
	metric := ctx.DefaultQuery("metric", string(entity.MetricRevenue))
	locationIDStr := ctx.Query("location")

	var locationID *string
	if locationIDStr != "" {
		locationID = &locationIDStr
	}

	// Execute use case
	input := trends.GetTrendComparisonInput{
		Selector:   entity.RangeSelector(rangeSelector),
		Mode:       entity.ComparisonMode(mode),
		Metric:     entity.Metric(metric),
		LocationID: locationID,
	}

	output, err := c.getTrendComparisonUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTrendsError(ctx, err)
		return
	}

	// Transform to response DTO
	response := dto.ToTrendComparisonResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleTrendsError handles trends errors and returns appropriate HTTP responses.
func (c *TrendsController) handleTrendsError(ctx *gin.Context, err error) {
	var trendsErr *domainerror.TrendsError
	if errors.As(err, &trendsErr) {
		statusCode := c.getStatusCodeForTrendsError(trendsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: trendsErr.Message,
			Code:  string(trendsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTrendsError maps trends error codes to HTTP status codes.
func (c *TrendsController) getStatusCodeForTrendsError(code domainerror.TrendsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidRangeSelector,
		domainerror.ErrCodeInvalidComparisonMode,
		domainerror.ErrCodeInvalidTrendMetric:
		return http.StatusBadRequest
	case domainerror.ErrCodeSeriesUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
