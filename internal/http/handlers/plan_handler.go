// README: Trip planning handler.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/planner"
)

type PlanHandler struct {
	planner *planner.Driver
}

func NewPlanHandler(driver *planner.Driver) *PlanHandler {
	return &PlanHandler{planner: driver}
}

type planRequest struct {
	Destination  string  `json:"destination"`
	Budget       float64 `json:"budget"`
	DurationDays int     `json:"duration_days"`
}

// Create handles POST /api/plans. The response is the completed planning
// record; exactly one of itinerary, alternatives, and error is populated.
func (h *PlanHandler) Create(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	req.Destination = strings.TrimSpace(req.Destination)

	rec, err := h.planner.Run(c.Request.Context(), planner.Request{
		Destination:  req.Destination,
		Budget:       req.Budget,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		writePlannerError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}
