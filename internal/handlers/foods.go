package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/services"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

func browseParams(c *gin.Context) services.BrowseParams {
	return services.BrowseParams{
		Cities:        c.QueryArray("city"),
		ProviderTypes: c.QueryArray("provider_type"),
		FoodTypes:     c.QueryArray("food_type"),
		MealTypes:     c.QueryArray("meal_type"),
	}
}

type listedFood struct {
	FoodID       int64  `json:"foodId"`
	FoodName     string `json:"foodName"`
	Quantity     int    `json:"quantity"`
	ExpiryDate   string `json:"expiryDate"`
	ProviderID   int64  `json:"providerId"`
	ProviderName string `json:"providerName"`
	ProviderType string `json:"providerType"`
	Location     string `json:"location"`
	FoodType     string `json:"foodType"`
	MealType     string `json:"mealType"`
}

// ListFoods returns the filtered browse view
// (GET /foods)
func (h *Handler) ListFoods(c *gin.Context) {
	foods, err := h.foodSrv.Browse(c.Request.Context(), browseParams(c))
	if err != nil {
		zap.S().Named("food_handler").Errorw("failed to list foods", "error", err)
		respondError(c, err)
		return
	}

	out := make([]listedFood, 0, len(foods))
	for _, f := range foods {
		out = append(out, listedFood{
			FoodID:       f.ID,
			FoodName:     f.FoodName,
			Quantity:     f.Quantity,
			ExpiryDate:   f.ExpiryDate,
			ProviderID:   f.ProviderID,
			ProviderName: f.ProviderName,
			ProviderType: f.ProviderType,
			Location:     f.Location,
			FoodType:     f.FoodType,
			MealType:     f.MealType,
		})
	}

	c.JSON(http.StatusOK, gin.H{"foods": out, "total": len(out)})
}

// GetFoodSummary returns listing counts per food type under the active
// filters
// (GET /foods/summary)
func (h *Handler) GetFoodSummary(c *gin.Context) {
	counts, err := h.foodSrv.SummarizeByFoodType(c.Request.Context(), browseParams(c))
	if err != nil {
		zap.S().Named("food_handler").Errorw("failed to summarize foods", "error", err)
		respondError(c, err)
		return
	}

	type bar struct {
		FoodType string `json:"foodType"`
		Count    int    `json:"count"`
	}
	out := make([]bar, 0, len(counts))
	for _, ct := range counts {
		out = append(out, bar{FoodType: ct.FoodType, Count: ct.Count})
	}

	c.JSON(http.StatusOK, gin.H{"byFoodType": out})
}

// GetFacets returns the distinct values for each browse filter
// (GET /facets)
func (h *Handler) GetFacets(c *gin.Context) {
	facets, err := h.foodSrv.Facets(c.Request.Context())
	if err != nil {
		zap.S().Named("food_handler").Errorw("failed to load facets", "error", err)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cities":        emptyIfNil(facets.Cities),
		"providerTypes": emptyIfNil(facets.ProviderTypes),
		"foodTypes":     emptyIfNil(facets.FoodTypes),
		"mealTypes":     emptyIfNil(facets.MealTypes),
	})
}

type addFoodRequest struct {
	ProviderID int64  `json:"providerId"`
	FoodName   string `json:"foodName"`
	Quantity   int    `json:"quantity"`
	ExpiryDate string `json:"expiryDate"`
	Location   string `json:"location"`
	FoodType   string `json:"foodType"`
	MealType   string `json:"mealType"`
}

// AddFood creates a new food listing
// (POST /foods)
func (h *Handler) AddFood(c *gin.Context) {
	var req addFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.foodSrv.Add(c.Request.Context(), services.AddFoodParams{
		ProviderID: req.ProviderID,
		FoodName:   req.FoodName,
		Quantity:   req.Quantity,
		ExpiryDate: req.ExpiryDate,
		Location:   req.Location,
		FoodType:   req.FoodType,
		MealType:   req.MealType,
	})
	if err != nil {
		if !srvErrors.IsValidationError(err) && !srvErrors.IsResourceNotFoundError(err) {
			zap.S().Named("food_handler").Errorw("failed to add food listing", "error", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"foodId": id})
}

type updateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// UpdateFoodQuantity overwrites a listing's quantity
// (PATCH /foods/:id/quantity)
func (h *Handler) UpdateFoodQuantity(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}

	if err := h.foodSrv.UpdateQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		if !srvErrors.IsValidationError(err) {
			zap.S().Named("food_handler").Errorw("failed to update quantity", "food_id", id, "error", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"foodId": id, "quantity": *req.Quantity})
}

// DeleteFood removes a listing
// (DELETE /foods/:id)
func (h *Handler) DeleteFood(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid food id"})
		return
	}

	if err := h.foodSrv.Delete(c.Request.Context(), id); err != nil {
		zap.S().Named("food_handler").Errorw("failed to delete food listing", "food_id", id, "error", err)
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
