package handlers

import (
	"fmt"
	"log"
	"net/http"

	"grid-scenarios/internal/analysis"
	"grid-scenarios/internal/api/middleware"
	"grid-scenarios/internal/api/models"
	"grid-scenarios/internal/config"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// ScenarioHandler handles scenario preset requests
type ScenarioHandler struct {
	calc      *profile.Calculator
	presetDir string
}

// NewScenarioHandler creates a new scenario handler. Preset YAML files are read from
// presetDir on every request so edits show up without a restart.
func NewScenarioHandler(calc *profile.Calculator, presetDir string) *ScenarioHandler {
	return &ScenarioHandler{calc: calc, presetDir: presetDir}
}

// ListScenarios handles GET /api/v1/scenarios
func (h *ScenarioHandler) ListScenarios(c *gin.Context) {
	presets, err := config.Presets(h.presetDir)
	if err != nil {
		log.Printf("ScenarioHandler: Failed to read scenario directory %s: %v", h.presetDir, err)
		c.JSON(http.StatusInternalServerError, models.NewError("PRESET_ERROR", err.Error()))
		return
	}
	log.Printf("ScenarioHandler: Returning %d scenarios", len(presets))
	c.JSON(http.StatusOK, gin.H{"scenarios": presets})
}

// ScenarioReport handles GET /api/v1/scenarios/:id/report
func (h *ScenarioHandler) ScenarioReport(c *gin.Context) {
	presets, err := config.Presets(h.presetDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewError("PRESET_ERROR", err.Error()))
		return
	}
	id := c.Param("id")
	p, ok := config.FindPreset(presets, id)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", fmt.Sprintf("scenario %s not found", id)))
		return
	}

	report := analysis.Build(h.calc, p.Inputs)
	middleware.RecordReport(report)
	c.JSON(http.StatusOK, gin.H{"scenario": p, "report": report})
}
