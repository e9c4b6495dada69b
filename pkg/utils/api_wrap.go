package utils

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"guidechat/internal/models/response_models"
)

const (
	MsgInvalidInput   = "Invalid input"
	MsgRateLimited    = "Rate limit exceeded. Please try again later."
	MsgServiceFailure = "Sorry, something went wrong with the AI service. Please try again later."
	MsgSessionFull    = "Your answers no longer fit in this session. Please start over with shorter answers."
)

func TraceID(c *gin.Context) string {
	return c.GetString("trace_id")
}

func RespondSuccess(c *gin.Context, body response_models.ChatResponse) {
	body.TraceID = TraceID(c)
	c.JSON(http.StatusOK, body)
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, response_models.ChatResponse{
		Error:   message,
		TraceID: TraceID(c),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, MsgInvalidInput)
	case errors.Is(err, ErrAssistantLimit):
		slog.Warn("Assistant rate limited", "trace_id", TraceID(c), "error", err)
		RespondError(c, http.StatusTooManyRequests, MsgRateLimited)
	case errors.Is(err, ErrAssistantFailed):
		slog.Error("Assistant API error", "trace_id", TraceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, MsgServiceFailure)
	case errors.Is(err, ErrSessionTooLarge):
		slog.Error("Session not saved", "trace_id", TraceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, MsgSessionFull)
	default:
		slog.Error("Unknown error", "trace_id", TraceID(c), "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
