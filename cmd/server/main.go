package main

import (
	"log"

	"github.com/sehatmap/planner-backend-go/internal/api"
	"github.com/sehatmap/planner-backend-go/internal/cache"
	"github.com/sehatmap/planner-backend-go/internal/config"
	"github.com/sehatmap/planner-backend-go/internal/database"
	"github.com/sehatmap/planner-backend-go/internal/handler"
	"github.com/sehatmap/planner-backend-go/internal/repository"
	"github.com/sehatmap/planner-backend-go/internal/service"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	resultCache := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer resultCache.Close()

	regionRepo := repository.NewRegionRepository(db)
	populationRepo := repository.NewPopulationRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	simulationRepo := repository.NewSimulationRepository(db)

	regionService := service.NewRegionService(regionRepo, facilityRepo)
	simulationService := service.NewSimulationService(
		regionRepo, populationRepo, facilityRepo, simulationRepo,
		cfg.MaxClusters, cfg.ClusterSeed)
	analysisService := service.NewAnalysisService(regionRepo, populationRepo, facilityRepo, resultCache)

	router := api.SetupRouter(cfg, api.Handlers{
		Region:     handler.NewRegionHandler(regionService),
		Simulation: handler.NewSimulationHandler(simulationService),
		Analysis:   handler.NewAnalysisHandler(analysisService),
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
