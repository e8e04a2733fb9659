package handlers

import (
	"log"
	"net/http"

	"grid-scenarios/internal/api/models"
	"grid-scenarios/internal/dispatch"
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the hourly and yearly profile generators
type ProfileHandler struct {
	calc *profile.Calculator
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(calc *profile.Calculator) *ProfileHandler {
	return &ProfileHandler{calc: calc}
}

// BaseLoad handles GET /api/v1/profiles/base-load
func (h *ProfileHandler) BaseLoad(c *gin.Context) {
	c.JSON(http.StatusOK, hourly("base_load", "MW", h.calc.BaseLoad(), nil))
}

// Cooking handles GET /api/v1/profiles/cooking?shift=30
func (h *ProfileHandler) Cooking(c *gin.Context) {
	shift, ok := percentQuery(c, "shift", profile.DefaultCookingShift)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, hourly("cooking", "MW", h.calc.Cooking(shift), map[string]float64{"shift": shift}))
}

// EVCharging handles GET /api/v1/profiles/ev
func (h *ProfileHandler) EVCharging(c *gin.Context) {
	c.JSON(http.StatusOK, hourly("ev_charging", "MWh", h.calc.EVCharging(), nil))
}

// Battery handles GET /api/v1/profiles/battery (?ledger=true adds the dispatch ledger)
func (h *ProfileHandler) Battery(c *gin.Context) {
	res, err := h.calc.BatteryDispatch()
	if err != nil {
		log.Printf("ProfileHandler: battery dispatch failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.NewError("DISPATCH_ERROR", err.Error()))
		return
	}
	resp := hourly("battery_soc", "%", res.SOCPercent(), nil)
	if c.Query("ledger") == "true" {
		resp.Ledger = convertLedger(res.Ledger)
	}
	c.JSON(http.StatusOK, resp)
}

// VPP handles GET /api/v1/profiles/vpp?thermal=40
func (h *ProfileHandler) VPP(c *gin.Context) {
	thermal, ok := percentQuery(c, "thermal", profile.DefaultThermalDisplacement)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, hourly("vpp_contribution", "MWh", h.calc.VPPContribution(thermal), map[string]float64{"thermal": thermal}))
}

// Emissions handles GET /api/v1/profiles/emissions?thermal=40 (&unit=t for tonnes)
func (h *ProfileHandler) Emissions(c *gin.Context) {
	thermal, ok := percentQuery(c, "thermal", profile.DefaultThermalDisplacement)
	if !ok {
		return
	}
	values := h.calc.EmissionReduction(thermal)
	unit := "kgCO2/year"
	if c.Query("unit") == "t" {
		values = profile.ToTonnes(values)
		unit = "tCO2/year"
	}
	c.JSON(http.StatusOK, models.ProfileResponse{
		Name:       "emission_reduction",
		Unit:       unit,
		Labels:     profile.YearLabels(),
		Values:     values,
		Parameters: map[string]float64{"thermal": thermal},
	})
}

func hourly(name, unit string, values model.Profile, params map[string]float64) models.ProfileResponse {
	return models.ProfileResponse{
		Name:       name,
		Unit:       unit,
		Labels:     model.HourLabels(),
		Values:     values,
		Parameters: params,
	}
}

func convertLedger(ledger []dispatch.LedgerRow) []models.LedgerRow {
	result := make([]models.LedgerRow, len(ledger))
	for i, row := range ledger {
		result[i] = models.LedgerRow{
			Hour:         row.Hour,
			Window:       row.Window,
			Action:       string(row.Action),
			RequestedMWh: row.RequestedMWh,
			AppliedMWh:   row.AppliedMWh,
			SOCStart:     row.SOCStart,
			SOCEnd:       row.SOCEnd,
			ChargeMWh:    row.ChargeMWh,
		}
	}
	return result
}
