package handlers

import (
	"log"
	"net/http"

	"grid-scenarios/internal/api/models"
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"
	"grid-scenarios/internal/strategy"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler describes the BESS dispatch schedule
type ScheduleHandler struct {
	calc *profile.Calculator
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(calc *profile.Calculator) *ScheduleHandler {
	return &ScheduleHandler{calc: calc}
}

// GetSchedule handles GET /api/v1/bess/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	log.Printf("ScheduleHandler: GetSchedule called")
	bess := h.calc.Params().BESS
	sched := strategy.DefaultBESSSchedule()

	windows := make([]models.WindowInfo, 0, len(sched.Windows))
	for _, w := range sched.Windows {
		energy := w.CapacityFraction * bess.CapacityMWh
		windows = append(windows, models.WindowInfo{
			Name:             w.Name,
			StartHour:        w.StartHour,
			EndHour:          w.EndHour,
			Action:           string(model.ActionFromEnergyMWh(energy)),
			CapacityFraction: w.CapacityFraction,
			EnergyMWh:        energy,
		})
	}

	c.JSON(http.StatusOK, gin.H{"schedule": models.ScheduleInfo{
		Name:        sched.Name(),
		Description: "Fixed daily hour windows. Hours outside every window are idle; the state of charge is clamped to [0, capacity].",
		CapacityMWh: bess.CapacityMWh,
		InitialSOC:  profile.InitialSOC,
		Windows:     windows,
	}})
}
