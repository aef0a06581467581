package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventcrew/rollcall/internal/api"
	"eventcrew/rollcall/internal/config"
	"eventcrew/rollcall/internal/db"
	"eventcrew/rollcall/internal/logging"
	"eventcrew/rollcall/internal/metrics"
	"eventcrew/rollcall/internal/routes"
	"eventcrew/rollcall/internal/seed"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Rollcall starting up",
		"environment", cfg.AppEnv,
		"store", cfg.StoreBackend,
		"auth", cfg.AuthMode,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	if cfg.StoreBackend == "postgres" {
		if err := db.InitPostgres(cfg); err != nil {
			logging.Error("Failed to connect to Postgres", "error", err.Error())
			log.Fatalf("failed to connect to Postgres: %v", err)
		}
		logging.Info("Connected to Postgres (sqlx)")

		if err := db.Migrate(cfg.PostgresDSN()); err != nil {
			logging.Error("Failed to run migrations", "error", err.Error())
			log.Fatalf("failed to run migrations: %v", err)
		}
		logging.Info("Schema migrations applied (GORM)")
	}

	metricsReg := metrics.NewMetricsRegistry()

	deps, err := api.InitDependencies(cfg, metricsReg)
	if err != nil {
		logging.Error("Failed to initialize dependencies", "error", err.Error())
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	if cfg.DemoSeed {
		if err := seed.Run(context.Background(), deps.Store); err != nil {
			logging.Error("Seeding failed", "error", err.Error())
			log.Fatalf("seeding failed: %v", err)
		}
	}

	router := routes.RegisterRoutes(deps)

	// metrics endpoint lives outside the Chi router so it skips the
	// API middleware chain
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := ":" + cfg.Port
	logging.Info("Server starting", "addr", addr, "environment", cfg.AppEnv)
	log.Fatal(http.ListenAndServe(addr, mux))
}
