package handlers

import (
	"fmt"
	"log"
	"net/http"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/api/middleware"
	"grid-scenarios/internal/api/models"
	"grid-scenarios/internal/cache"
	"grid-scenarios/internal/config"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles performance report requests
type ReportHandler struct {
	calc      *profile.Calculator
	cache     *cache.ReportCache
	presetDir string
}

// NewReportHandler creates a new report handler. presetDir may be empty, in which
// case only the builtin presets can be referenced by compare requests.
func NewReportHandler(calc *profile.Calculator, reports *cache.ReportCache, presetDir string) *ReportHandler {
	if reports == nil {
		reports = cache.New(cache.DefaultTTL)
	}
	return &ReportHandler{calc: calc, cache: reports, presetDir: presetDir}
}

// GetReport handles GET /api/v1/report?cooking_shift=30&thermal=40
func (h *ReportHandler) GetReport(c *gin.Context) {
	shift, ok := percentQuery(c, "cooking_shift", profile.DefaultCookingShift)
	if !ok {
		return
	}
	thermal, ok := percentQuery(c, "thermal", profile.DefaultThermalDisplacement)
	if !ok {
		return
	}

	report := analysis.Build(h.calc, analysis.Inputs{CookingShiftPercent: shift, ThermalDisplacement: thermal})
	middleware.RecordReport(report)

	c.JSON(http.StatusOK, models.ReportResponse{Status: "completed", Report: report})
}

// CreateReport handles POST /api/v1/report. The report is cached and can be fetched
// again through GET /api/v1/report/:id until it expires.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var req models.ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("ReportHandler: Invalid request body: %v", err)
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	in := analysis.DefaultInputs()
	if req.CookingShiftPercent != nil {
		in.CookingShiftPercent = *req.CookingShiftPercent
	}
	if req.ThermalDisplacement != nil {
		in.ThermalDisplacement = *req.ThermalDisplacement
	}

	report := analysis.Build(h.calc, in)
	middleware.RecordReport(report)
	entry := h.cache.Put(report)
	log.Printf("ReportHandler: cached report %s (shift=%.1f thermal=%.1f)", entry.ID, in.CookingShiftPercent, in.ThermalDisplacement)

	c.JSON(http.StatusOK, models.ReportResponse{
		ID:        entry.ID,
		Status:    "completed",
		ExpiresAt: &entry.ExpiresAt,
		Report:    entry.Report,
	})
}

// GetCachedReport handles GET /api/v1/report/:id
func (h *ReportHandler) GetCachedReport(c *gin.Context) {
	id := c.Param("id")
	entry, ok := h.cache.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", fmt.Sprintf("report %s not found or expired", id)))
		return
	}
	c.JSON(http.StatusOK, models.ReportResponse{
		ID:        entry.ID,
		Status:    "completed",
		ExpiresAt: &entry.ExpiresAt,
		Report:    entry.Report,
	})
}

// CompareReports handles POST /api/v1/report/compare
func (h *ReportHandler) CompareReports(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	presets, err := config.Presets(h.presetDir)
	if err != nil {
		log.Printf("ReportHandler: failed to load presets from %s: %v", h.presetDir, err)
		c.JSON(http.StatusInternalServerError, models.NewError("PRESET_ERROR", err.Error()))
		return
	}

	scenarios := make([]analysis.Scenario, 0, len(req.Variations))
	for _, v := range req.Variations {
		s, err := resolveVariation(v, presets)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_PRESET", err.Error()))
			return
		}
		scenarios = append(scenarios, s)
	}

	rankings := analysis.Compare(h.calc, scenarios)
	for _, r := range rankings {
		middleware.RecordReport(r.Report)
	}
	c.JSON(http.StatusOK, models.CompareResponse{Rankings: rankings})
}

// resolveVariation starts from the named preset (or the slider defaults) and applies
// the explicit percentages on top.
func resolveVariation(v models.ScenarioVariation, presets []config.Preset) (analysis.Scenario, error) {
	in := analysis.DefaultInputs()
	if v.Preset != "" {
		p, ok := config.FindPreset(presets, v.Preset)
		if !ok {
			return analysis.Scenario{}, fmt.Errorf("unknown preset %q", v.Preset)
		}
		in = p.Inputs
	}
	if v.CookingShiftPercent != nil {
		in.CookingShiftPercent = *v.CookingShiftPercent
	}
	if v.ThermalDisplacement != nil {
		in.ThermalDisplacement = *v.ThermalDisplacement
	}
	return analysis.Scenario{Name: v.Name, Inputs: in}, nil
}
