package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mealbridge/mealbridge/internal/services"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

type Handler struct {
	foodSrv     *services.FoodService
	providerSrv *services.ProviderService
	reportSrv   *services.ReportService
}

func New(foodSrv *services.FoodService, providerSrv *services.ProviderService, reportSrv *services.ReportService) *Handler {
	return &Handler{
		foodSrv:     foodSrv,
		providerSrv: providerSrv,
		reportSrv:   reportSrv,
	}
}

// RegisterRoutes attaches all API routes to the given group.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/overview", h.GetOverview)
	router.GET("/facets", h.GetFacets)

	router.GET("/foods", h.ListFoods)
	router.GET("/foods/summary", h.GetFoodSummary)
	router.POST("/foods", h.AddFood)
	router.PATCH("/foods/:id/quantity", h.UpdateFoodQuantity)
	router.DELETE("/foods/:id", h.DeleteFood)

	router.GET("/providers", h.ListProviders)
	router.POST("/providers", h.AddProvider)

	router.GET("/reports", h.ListReports)
	router.GET("/reports/:key", h.RunReport)
	router.GET("/reports/:key/export", h.ExportReport)
}

// respondError maps service errors to HTTP status codes. Store errors fall
// through as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err), srvErrors.IsReportNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
