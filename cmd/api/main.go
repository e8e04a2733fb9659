package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"grid-scenarios/internal/api"
	"grid-scenarios/internal/cache"
	"grid-scenarios/internal/config"
	"grid-scenarios/internal/model"
	"grid-scenarios/internal/profile"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	params := model.DefaultParams()
	if cfgPath := os.Getenv("CONFIG_FILE"); cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", cfgPath, err)
		}
		params = cfg.ToModelParams()
		log.Printf("Loaded parameter tables from %s", cfgPath)
	}

	scenarioDir := os.Getenv("SCENARIO_DIR")
	if scenarioDir == "" {
		if wd, err := os.Getwd(); err == nil {
			scenarioDir = filepath.Join(wd, "examples", "scenarios")
		}
	}
	if info, err := os.Stat(scenarioDir); err == nil && info.IsDir() {
		log.Printf("Scenario directory found: %s", scenarioDir)
	} else {
		log.Printf("Scenario directory not found at: %s, serving builtin presets only", scenarioDir)
	}

	ttl := cache.DefaultTTL
	if raw := os.Getenv("REPORT_CACHE_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("Invalid REPORT_CACHE_TTL %q: %v", raw, err)
		}
		ttl = d
	}

	router := api.NewRouter(api.Options{
		Calculator:  profile.New(params),
		ScenarioDir: scenarioDir,
		CORSOrigins: splitOrigins(os.Getenv("CORS_ORIGINS")),
		ReportTTL:   ttl,
	})

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func splitOrigins(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
