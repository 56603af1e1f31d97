package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mealbridge/mealbridge/internal/services"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

type addProviderRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Address string `json:"address"`
	City    string `json:"city"`
	Contact string `json:"contact"`
}

// AddProvider creates a new provider
// (POST /providers)
func (h *Handler) AddProvider(c *gin.Context) {
	var req addProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	id, err := h.providerSrv.Add(c.Request.Context(), services.AddProviderParams{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		City:    req.City,
		Contact: req.Contact,
	})
	if err != nil {
		if !srvErrors.IsValidationError(err) {
			zap.S().Named("provider_handler").Errorw("failed to add provider", "error", err)
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"providerId": id})
}

// ListProviders returns providers in picker form, ordered by name
// (GET /providers)
func (h *Handler) ListProviders(c *gin.Context) {
	refs, err := h.providerSrv.ListRefs(c.Request.Context())
	if err != nil {
		zap.S().Named("provider_handler").Errorw("failed to list providers", "error", err)
		respondError(c, err)
		return
	}

	type provider struct {
		ProviderID int64  `json:"providerId"`
		Name       string `json:"name"`
		Type       string `json:"type"`
	}
	out := make([]provider, 0, len(refs))
	for _, r := range refs {
		out = append(out, provider{ProviderID: r.ID, Name: r.Name, Type: r.Type})
	}

	c.JSON(http.StatusOK, gin.H{"providers": out})
}
