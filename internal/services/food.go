package services

import (
	"context"
	"strings"
	"time"

	"github.com/mealbridge/mealbridge/internal/models"
	"github.com/mealbridge/mealbridge/internal/store"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

const expiryDateLayout = "2006-01-02"

type FoodService struct {
	store *store.Store
}

func NewFoodService(st *store.Store) *FoodService {
	return &FoodService{store: st}
}

// BrowseParams holds the facet selections of the filtered browse view.
// Every field may be empty; an empty facet applies no restriction.
type BrowseParams struct {
	Cities        []string
	ProviderTypes []string
	FoodTypes     []string
	MealTypes     []string
}

// Browse returns the food listings matching all selected facets, ordered by
// expiry date ascending.
func (s *FoodService) Browse(ctx context.Context, params BrowseParams) ([]models.ListedFood, error) {
	return s.store.Food().List(ctx, s.buildListOptions(params)...)
}

// SummarizeByFoodType counts the listings matching the same facets per food
// type.
func (s *FoodService) SummarizeByFoodType(ctx context.Context, params BrowseParams) ([]models.FoodTypeCount, error) {
	return s.store.Food().CountByFoodType(ctx, s.buildListOptions(params)...)
}

// Facet order determines the WHERE clause order: city, provider type, food
// type, meal type.
func (s *FoodService) buildListOptions(params BrowseParams) []store.ListOption {
	var opts []store.ListOption

	if len(params.Cities) > 0 {
		opts = append(opts, store.ByCities(params.Cities...))
	}
	if len(params.ProviderTypes) > 0 {
		opts = append(opts, store.ByProviderTypes(params.ProviderTypes...))
	}
	if len(params.FoodTypes) > 0 {
		opts = append(opts, store.ByFoodTypes(params.FoodTypes...))
	}
	if len(params.MealTypes) > 0 {
		opts = append(opts, store.ByMealTypes(params.MealTypes...))
	}

	return opts
}

// Facets returns the distinct values available for each browse filter.
func (s *FoodService) Facets(ctx context.Context) (*models.FacetValues, error) {
	cities, err := s.store.Provider().Cities(ctx)
	if err != nil {
		return nil, err
	}
	providerTypes, err := s.store.Provider().Types(ctx)
	if err != nil {
		return nil, err
	}
	foodTypes, err := s.store.Food().FoodTypes(ctx)
	if err != nil {
		return nil, err
	}
	mealTypes, err := s.store.Food().MealTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &models.FacetValues{
		Cities:        cities,
		ProviderTypes: providerTypes,
		FoodTypes:     foodTypes,
		MealTypes:     mealTypes,
	}, nil
}

type AddFoodParams struct {
	ProviderID int64
	FoodName   string
	Quantity   int
	ExpiryDate string
	Location   string
	FoodType   string
	MealType   string
}

// Add validates and inserts a new food listing. The provider must exist;
// its current Type is snapshotted into the listing's Provider_Type column.
// Quantity floors at 1, the expiry date defaults to today, and food/meal
// type default to the first value already in use (or the built-in fallback).
func (s *FoodService) Add(ctx context.Context, params AddFoodParams) (int64, error) {
	if params.ProviderID <= 0 {
		return 0, srvErrors.NewValidationError("provider_id", "is required")
	}
	if strings.TrimSpace(params.FoodName) == "" {
		return 0, srvErrors.NewValidationError("food_name", "is required")
	}
	if strings.TrimSpace(params.Location) == "" {
		return 0, srvErrors.NewValidationError("location", "is required")
	}

	provider, err := s.store.Provider().Get(ctx, params.ProviderID)
	if err != nil {
		return 0, err
	}

	quantity := params.Quantity
	if quantity < 1 {
		quantity = 1
	}

	expiry := time.Now()
	if params.ExpiryDate != "" {
		expiry, err = time.Parse(expiryDateLayout, params.ExpiryDate)
		if err != nil {
			return 0, srvErrors.NewValidationError("expiry_date", "must be YYYY-MM-DD")
		}
	}

	foodType := params.FoodType
	if foodType == "" {
		foodType, err = s.defaultFacetValue(ctx, s.store.Food().FoodTypes, models.DefaultFoodTypes)
		if err != nil {
			return 0, err
		}
	}
	mealType := params.MealType
	if mealType == "" {
		mealType, err = s.defaultFacetValue(ctx, s.store.Food().MealTypes, models.DefaultMealTypes)
		if err != nil {
			return 0, err
		}
	}

	return s.store.Food().Insert(ctx, models.FoodListing{
		FoodName:     params.FoodName,
		Quantity:     quantity,
		ExpiryDate:   expiry,
		ProviderID:   provider.ID,
		ProviderType: provider.Type,
		Location:     params.Location,
		FoodType:     foodType,
		MealType:     mealType,
	})
}

func (s *FoodService) defaultFacetValue(ctx context.Context, existing func(context.Context) ([]string, error), fallback []string) (string, error) {
	values, err := existing(ctx)
	if err != nil {
		return "", err
	}
	if len(values) > 0 {
		return values[0], nil
	}
	return fallback[0], nil
}

// UpdateQuantity overwrites a listing's quantity. A negative quantity is a
// validation error; an unknown ID affects zero rows and succeeds.
func (s *FoodService) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	if quantity < 0 {
		return srvErrors.NewValidationError("quantity", "must be >= 0")
	}
	return s.store.Food().UpdateQuantity(ctx, id, quantity)
}

// Delete removes a listing. An unknown ID affects zero rows and succeeds.
func (s *FoodService) Delete(ctx context.Context, id int64) error {
	return s.store.Food().Delete(ctx, id)
}
