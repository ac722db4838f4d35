package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sehatmap/planner-backend-go/internal/service"
	"github.com/sehatmap/planner-backend-go/pkg/response"
)

// AnalysisHandler handles HTTP requests for regional analysis
type AnalysisHandler struct {
	analysisService *service.AnalysisService
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(analysisService *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
	}
}

// GetPriorityScores handles GET /api/v1/analysis/priority/:id
func (h *AnalysisHandler) GetPriorityScores(c *gin.Context) {
	data, err := h.analysisService.PriorityScores(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, data)
}

// GetHeatmap handles GET /api/v1/analysis/heatmap/:id
func (h *AnalysisHandler) GetHeatmap(c *gin.Context) {
	radiusKm := 0.0
	if raw := c.Query("service_radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			response.BadRequest(c, "Invalid service_radius_km parameter")
			return
		}
		radiusKm = parsed
	}

	data, err := h.analysisService.Heatmap(c.Request.Context(), c.Param("id"), radiusKm)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, data)
}
