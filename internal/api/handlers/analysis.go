package handlers

import (
	"net/http"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves the dashboard's derived views
type AnalysisHandler struct {
	calc *profile.Calculator
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(calc *profile.Calculator) *AnalysisHandler {
	return &AnalysisHandler{calc: calc}
}

// LoadShifting handles GET /api/v1/analysis/load-shifting?cooking_shift=30
func (h *AnalysisHandler) LoadShifting(c *gin.Context) {
	shift, ok := percentQuery(c, "cooking_shift", profile.DefaultCookingShift)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis.ShiftLoad(h.calc, shift))
}

// ShiftingPotential handles GET /api/v1/analysis/shifting-potential
func (h *AnalysisHandler) ShiftingPotential(c *gin.Context) {
	c.JSON(http.StatusOK, analysis.ComputeShiftingPotential(h.calc.Params().Tariff))
}

// TOURevenue handles GET /api/v1/analysis/tou-revenue
func (h *AnalysisHandler) TOURevenue(c *gin.Context) {
	res := analysis.TOURevenue(h.calc.Params().Tariff)
	c.JSON(http.StatusOK, gin.H{"title": res.Title(), "result": res})
}

// VPPPerformance handles GET /api/v1/analysis/vpp-performance?thermal=40
func (h *AnalysisHandler) VPPPerformance(c *gin.Context) {
	thermal, ok := percentQuery(c, "thermal", profile.DefaultThermalDisplacement)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, analysis.ComputeVPPPerformance(h.calc, thermal))
}

// RevenueStages handles GET /api/v1/analysis/revenue-stages
func (h *AnalysisHandler) RevenueStages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stages": analysis.RevenueStages()})
}
