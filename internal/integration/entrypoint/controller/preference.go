// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-pulse/backend/internal/application/usecase/preference"
	"github.com/salon-pulse/backend/internal/domain/entity"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/dto"
)

// ClientIDHeader identifies the dashboard client owning the preferences.
const ClientIDHeader = "X-Client-ID"

// PreferenceController handles display preference endpoints.
type PreferenceController struct {
	getPreferencesUseCase    *preference.GetPreferencesUseCase
	updatePreferencesUseCase *preference.UpdatePreferencesUseCase
}

// NewPreferenceController creates a new preference controller instance.
func NewPreferenceController(
	getPreferencesUseCase *preference.GetPreferencesUseCase,
	updatePreferencesUseCase *preference.UpdatePreferencesUseCase,
) *PreferenceController {
	return &PreferenceController{
		getPreferencesUseCase:    getPreferencesUseCase,
		updatePreferencesUseCase: updatePreferencesUseCase,
	}
}

// GetPreferences handles GET /preferences requests.
func (c *PreferenceController) GetPreferences(ctx *gin.Context) {
	input := preference.GetPreferencesInput{
		ClientID: ctx.GetHeader(ClientIDHeader),
	}

	output, err := c.getPreferencesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	response := dto.ToPreferencesResponse(output.Preferences)
	ctx.JSON(http.StatusOK, response)
}

// UpdatePreferences handles PUT /preferences requests.
func (c *PreferenceController) UpdatePreferences(ctx *gin.Context) {
	var request dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := preference.UpdatePreferencesInput{
		ClientID:   ctx.GetHeader(ClientIDHeader),
		ChartStyle: entity.ChartStyle(request.ChartStyle),
		Range:      entity.RangeSelector(request.Range),
		ViewMode:   entity.ViewMode(request.ViewMode),
		Horizon:    entity.Horizon(request.Horizon),
	}

	output, err := c.updatePreferencesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handlePreferenceError(ctx, err)
		return
	}

	response := dto.ToPreferencesResponse(output.Preferences)
	ctx.JSON(http.StatusOK, response)
}

// handlePreferenceError handles preference errors and returns appropriate HTTP responses.
func (c *PreferenceController) handlePreferenceError(ctx *gin.Context, err error) {
	var prefErr *domainerror.PreferenceError
	if errors.As(err, &prefErr) {
		statusCode := http.StatusInternalServerError
		if prefErr.Code == domainerror.ErrCodeMissingClientID {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: prefErr.Message,
			Code:  string(prefErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
