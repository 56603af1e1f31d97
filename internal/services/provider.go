package services

import (
	"context"
	"strings"

	"github.com/mealbridge/mealbridge/internal/models"
	"github.com/mealbridge/mealbridge/internal/store"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

type ProviderService struct {
	store *store.Store
}

func NewProviderService(st *store.Store) *ProviderService {
	return &ProviderService{store: st}
}

type AddProviderParams struct {
	Name    string
	Type    string
	Address string
	City    string
	Contact string
}

// Add validates and inserts a new provider. Name, Type and City are
// required; nothing is written when validation fails.
func (s *ProviderService) Add(ctx context.Context, params AddProviderParams) (int64, error) {
	if strings.TrimSpace(params.Name) == "" {
		return 0, srvErrors.NewValidationError("name", "is required")
	}
	if strings.TrimSpace(params.Type) == "" {
		return 0, srvErrors.NewValidationError("type", "is required")
	}
	if strings.TrimSpace(params.City) == "" {
		return 0, srvErrors.NewValidationError("city", "is required")
	}

	return s.store.Provider().Insert(ctx, models.Provider{
		Name:    params.Name,
		Type:    params.Type,
		Address: params.Address,
		City:    params.City,
		Contact: params.Contact,
	})
}

// ListRefs returns providers in picker form, ordered by name.
func (s *ProviderService) ListRefs(ctx context.Context) ([]models.ProviderRef, error) {
	return s.store.Provider().ListRefs(ctx)
}
