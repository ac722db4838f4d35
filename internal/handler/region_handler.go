package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sehatmap/planner-backend-go/internal/service"
	"github.com/sehatmap/planner-backend-go/pkg/response"
)

// RegionHandler handles HTTP requests for administrative regions
type RegionHandler struct {
	regionService *service.RegionService
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(regionService *service.RegionService) *RegionHandler {
	return &RegionHandler{
		regionService: regionService,
	}
}

// ListRegencies handles GET /api/v1/regions
func (h *RegionHandler) ListRegencies(c *gin.Context) {
	regencies, err := h.regionService.GetRegencies()
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, regencies)
}

// GetRegency handles GET /api/v1/regions/:id
func (h *RegionHandler) GetRegency(c *gin.Context) {
	regency, err := h.regionService.GetRegencyByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, regency)
}

// ListSubdistricts handles GET /api/v1/regions/:id/subdistricts
func (h *RegionHandler) ListSubdistricts(c *gin.Context) {
	subdistricts, err := h.regionService.GetSubdistricts(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, subdistricts)
}

// ListFacilities handles GET /api/v1/regions/:id/facilities
func (h *RegionHandler) ListFacilities(c *gin.Context) {
	facilities, err := h.regionService.GetFacilities(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, facilities)
}
