package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salon-pulse/backend/internal/application/usecase/digest"
	domainerror "github.com/salon-pulse/backend/internal/domain/error"
	"github.com/salon-pulse/backend/internal/integration/entrypoint/dto"
)

// DigestController handles weekly digest endpoints.
type DigestController struct {
	queueWeeklyDigestUseCase *digest.QueueWeeklyDigestUseCase
}

// NewDigestController creates a new digest controller instance.
func NewDigestController(queueWeeklyDigestUseCase *digest.QueueWeeklyDigestUseCase) *DigestController {
	return &DigestController{
		queueWeeklyDigestUseCase: queueWeeklyDigestUseCase,
	}
}

// QueueWeekly handles POST /digests/weekly requests.
func (c *DigestController) QueueWeekly(ctx *gin.Context) {
	var request dto.QueueWeeklyDigestRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := digest.QueueWeeklyDigestInput{
		RecipientEmail: request.RecipientEmail,
		RecipientName:  request.RecipientName,
		SalonName:      request.SalonName,
		LocationID:     request.Location,
	}

	if err := c.queueWeeklyDigestUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleDigestError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.QueueWeeklyDigestResponse{
		Data: dto.QueueWeeklyDigestData{Status: "queued"},
	})
}

// handleDigestError handles digest errors and returns appropriate HTTP responses.
func (c *DigestController) handleDigestError(ctx *gin.Context, err error) {
	var digestErr *domainerror.DigestError
	if errors.As(err, &digestErr) {
		statusCode := http.StatusInternalServerError
		if digestErr.Code == domainerror.ErrCodeInvalidDigestRecipient {
			statusCode = http.StatusBadRequest
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: digestErr.Message,
			Code:  string(digestErr.Code),
		})
		return
	}

	var trendsErr *domainerror.TrendsError
	if errors.As(err, &trendsErr) {
		statusCode := http.StatusInternalServerError
		if trendsErr.Code == domainerror.ErrCodeSeriesUnavailable {
			statusCode = http.StatusServiceUnavailable
		}
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
