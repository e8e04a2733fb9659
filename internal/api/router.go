// Package api wires the HTTP handlers into a gin router.
package api

import (
	"net/http"
	"time"

	"grid-scenarios/internal/api/handlers"
	"grid-scenarios/internal/api/middleware"
	"grid-scenarios/internal/cache"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

// Options configures NewRouter.
type Options struct {
	Calculator  *profile.Calculator
	ScenarioDir string
	CORSOrigins []string
	ReportTTL   time.Duration
	// Quiet drops the per-request log line (tests).
	Quiet bool
}

// NewRouter builds the engine with middleware and every /api/v1 route registered.
func NewRouter(opts Options) *gin.Engine {
	calc := opts.Calculator
	if calc == nil {
		calc = profile.Default()
	}

	router := gin.New()
	router.Use(middleware.CORS(opts.CORSOrigins))
	if !opts.Quiet {
		router.Use(middleware.Logger())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Metrics())

	paramsHandler := handlers.NewParamsHandler(calc.Params())
	profileHandler := handlers.NewProfileHandler(calc)
	scheduleHandler := handlers.NewScheduleHandler(calc)
	lcoeHandler := handlers.NewLCOEHandler(calc)
	reportHandler := handlers.NewReportHandler(calc, cache.New(opts.ReportTTL), opts.ScenarioDir)
	scenarioHandler := handlers.NewScenarioHandler(calc, opts.ScenarioDir)
	analysisHandler := handlers.NewAnalysisHandler(calc)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api/v1")
	{
		api.GET("/params", paramsHandler.GetParams)

		profiles := api.Group("/profiles")
		profiles.GET("/base-load", profileHandler.BaseLoad)
		profiles.GET("/cooking", profileHandler.Cooking)
		profiles.GET("/ev", profileHandler.EVCharging)
		profiles.GET("/battery", profileHandler.Battery)
		profiles.GET("/vpp", profileHandler.VPP)
		profiles.GET("/emissions", profileHandler.Emissions)

		api.GET("/bess/schedule", scheduleHandler.GetSchedule)

		api.GET("/lcoe", lcoeHandler.GetEstimate)
		api.GET("/lcoe/sweep", lcoeHandler.GetSweep)

		api.GET("/report", reportHandler.GetReport)
		api.POST("/report", reportHandler.CreateReport)
		api.GET("/report/:id", reportHandler.GetCachedReport)
		api.POST("/report/compare", reportHandler.CompareReports)

		api.GET("/scenarios", scenarioHandler.ListScenarios)
		api.GET("/scenarios/:id/report", scenarioHandler.ScenarioReport)

		an := api.Group("/analysis")
		an.GET("/load-shifting", analysisHandler.LoadShifting)
		an.GET("/shifting-potential", analysisHandler.ShiftingPotential)
		an.GET("/tou-revenue", analysisHandler.TOURevenue)
		an.GET("/vpp-performance", analysisHandler.VPPPerformance)
		an.GET("/revenue-stages", analysisHandler.RevenueStages)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	return router
}
