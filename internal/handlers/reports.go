package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/services"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

// GetOverview returns the dashboard's headline counts
// (GET /overview)
func (h *Handler) GetOverview(c *gin.Context) {
	overview, err := h.reportSrv.Overview(c.Request.Context())
	if err != nil {
		zap.S().Named("report_handler").Errorw("failed to load overview", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"providers":    overview.Providers,
		"receivers":    overview.Receivers,
		"foodListings": overview.FoodListings,
		"claims":       overview.Claims,
	})
}

// ListReports returns the report catalog
// (GET /reports)
func (h *Handler) ListReports(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reports": h.reportSrv.List()})
}

// RunReport executes one report and returns its rows
// (GET /reports/:key)
func (h *Handler) RunReport(c *gin.Context) {
	key := c.Param("key")
	result, err := h.reportSrv.Run(c.Request.Context(), key, c.Query("city"))
	if err != nil {
		if !srvErrors.IsValidationError(err) && !srvErrors.IsReportNotFoundError(err) {
			zap.S().Named("report_handler").Errorw("failed to run report", "report", key, "error", err)
		}
		respondError(c, err)
		return
	}

	if result.Rows == nil {
		result.Rows = [][]any{}
	}
	c.JSON(http.StatusOK, result)
}

// ExportReport executes one report and returns it as an xlsx attachment
// (GET /reports/:key/export)
func (h *Handler) ExportReport(c *gin.Context) {
	key := c.Param("key")
	result, err := h.reportSrv.Run(c.Request.Context(), key, c.Query("city"))
	if err != nil {
		if !srvErrors.IsValidationError(err) && !srvErrors.IsReportNotFoundError(err) {
			zap.S().Named("report_handler").Errorw("failed to export report", "report", key, "error", err)
		}
		respondError(c, err)
		return
	}

	data, err := services.ExportXLSX(result)
	if err != nil {
		zap.S().Named("report_handler").Errorw("failed to render workbook", "report", key, "error", err)
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", key+".xlsx"))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
