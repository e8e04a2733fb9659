package handlers

import (
	"net/http"

	"grid-scenarios/internal/lcoe"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// LCOEHandler serves the levelized cost estimates
type LCOEHandler struct {
	calc *profile.Calculator
}

// NewLCOEHandler creates a new LCOE handler
func NewLCOEHandler(calc *profile.Calculator) *LCOEHandler {
	return &LCOEHandler{calc: calc}
}

// GetEstimate handles GET /api/v1/lcoe
func (h *LCOEHandler) GetEstimate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lcoe": lcoe.Calculate(h.calc.Params().LCOE)})
}

// GetSweep handles GET /api/v1/lcoe/sweep
func (h *LCOEHandler) GetSweep(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sweep": lcoe.AdoptionSweep(h.calc.Params().LCOE)})
}
