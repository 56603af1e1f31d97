package models

import "time"

// FoodListing is a batch of surplus food offered by a provider.
//
// ProviderType is a snapshot of the provider's Type taken when the listing is
// created. It is never re-synced, so it can diverge from the provider's current
// Type if the Providers table is edited outside this service.
type FoodListing struct {
	ID           int64
	FoodName     string
	Quantity     int
	ExpiryDate   time.Time
	ProviderID   int64
	ProviderType string
	Location     string
	FoodType     string
	MealType     string
}

// ListedFood is one row of the filtered browse view: a food listing joined
// with its provider. ProviderType and Location come from the provider side of
// the join, not from the listing's snapshot columns.
type ListedFood struct {
	ID           int64
	FoodName     string
	Quantity     int
	ExpiryDate   string
	ProviderID   int64
	ProviderName string
	ProviderType string
	Location     string
	FoodType     string
	MealType     string
}

// FacetValues holds the distinct values available for each browse filter.
type FacetValues struct {
	Cities        []string
	ProviderTypes []string
	FoodTypes     []string
	MealTypes     []string
}

// FoodTypeCount is one bar of the items-per-food-type summary.
type FoodTypeCount struct {
	FoodType string
	Count    int
}

// Overview holds the dashboard's headline counts.
type Overview struct {
	Providers    int
	Receivers    int
	FoodListings int
	Claims       int
}

// Fallbacks offered when the store holds no listings yet.
var (
	DefaultFoodTypes = []string{"Vegetarian", "Non-Vegetarian", "Vegan"}
	DefaultMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snacks"}
)
