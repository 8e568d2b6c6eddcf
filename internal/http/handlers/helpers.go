// README: HTTP helper utilities for JSON and error mapping.
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/planner"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, errorResponse{Error: msg})
}

// writePlannerError maps planner validation errors to HTTP statuses.
func writePlannerError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, planner.ErrNegativeBudget),
		errors.Is(err, planner.ErrInvalidDuration),
		errors.Is(err, planner.ErrNoDestination):
		writeError(c, http.StatusBadRequest, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
