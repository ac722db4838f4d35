package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sehatmap/planner-backend-go/internal/models"
	"github.com/sehatmap/planner-backend-go/internal/optimizer"
	"github.com/sehatmap/planner-backend-go/internal/repository"
	"github.com/sehatmap/planner-backend-go/internal/service"
	"github.com/sehatmap/planner-backend-go/pkg/response"
)

// SimulationHandler handles HTTP requests for placement simulations
type SimulationHandler struct {
	simulationService *service.SimulationService
}

// NewSimulationHandler creates a new simulation handler
func NewSimulationHandler(simulationService *service.SimulationService) *SimulationHandler {
	return &SimulationHandler{
		simulationService: simulationService,
	}
}

// RunSimulation handles POST /api/v1/simulations
func (h *SimulationHandler) RunSimulation(c *gin.Context) {
	var req models.SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.simulationService.RunSimulation(req)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}

// GetSimulation handles GET /api/v1/simulations/:id
func (h *SimulationHandler) GetSimulation(c *gin.Context) {
	result, err := h.simulationService.GetSimulation(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, result)
}

// ListSimulations handles GET /api/v1/simulations
func (h *SimulationHandler) ListSimulations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil {
		response.BadRequest(c, "Invalid limit parameter")
		return
	}

	results, err := h.simulationService.ListSimulations(c.Query("regency_id"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, results)
}

// respondError maps domain errors onto HTTP statuses: unresolvable
// identifiers are 404, optimizer configuration errors are 400, everything
// else is 500
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, optimizer.ErrEmptyCatalog),
		errors.Is(err, optimizer.ErrInvalidCatalog),
		errors.Is(err, optimizer.ErrNegativeBudget):
		response.BadRequest(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}
