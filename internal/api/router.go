package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sehatmap/planner-backend-go/internal/config"
	"github.com/sehatmap/planner-backend-go/internal/handler"
	"github.com/sehatmap/planner-backend-go/internal/middleware"
)

// Handlers bundles the handlers wired into the router
type Handlers struct {
	Region     *handler.RegionHandler
	Simulation *handler.SimulationHandler
	Analysis   *handler.AnalysisHandler
}

// SetupRouter configures routes and middleware
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(cfg.RateLimit, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Facility Planner API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		regions := api.Group("/regions")
		{
			regions.GET("", h.Region.ListRegencies)
			regions.GET("/:id", h.Region.GetRegency)
			regions.GET("/:id/subdistricts", h.Region.ListSubdistricts)
			regions.GET("/:id/facilities", h.Region.ListFacilities)
		}

		// running and reading simulations requires a valid token
		simulations := api.Group("/simulations", middleware.JWTAuth(cfg.JWTSecret))
		{
			simulations.POST("", h.Simulation.RunSimulation)
			simulations.GET("", h.Simulation.ListSimulations)
			simulations.GET("/:id", h.Simulation.GetSimulation)
		}

		analysis := api.Group("/analysis", middleware.JWTAuth(cfg.JWTSecret))
		{
			analysis.GET("/priority/:id", h.Analysis.GetPriorityScores)
			analysis.GET("/heatmap/:id", h.Analysis.GetHeatmap)
		}
	}

	return r
}
