package services

import (
	"context"

	"github.com/mealbridge/mealbridge/internal/models"
	"github.com/mealbridge/mealbridge/internal/store"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

// Report describes one entry of the catalog.
type Report struct {
	Key          string `json:"key"`
	Title        string `json:"title"`
	RequiresCity bool   `json:"requiresCity"`
}

// ReportResult is a report's tabular output in rendering order.
type ReportResult struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Report keys, in catalog order.
const (
	ReportCityParticipation        = "city-participation"
	ReportProviderTypeContribution = "provider-type-contribution"
	ReportProviderContacts         = "provider-contacts"
	ReportTopReceivers             = "top-receivers"
	ReportTotalQuantity            = "total-quantity"
	ReportTopCity                  = "top-city"
	ReportFoodTypeFrequency        = "food-type-frequency"
	ReportClaimsPerFood            = "claims-per-food"
	ReportTopProvider              = "top-provider"
	ReportStatusDistribution       = "claim-status-distribution"
	ReportAvgQuantityPerReceiver   = "avg-quantity-per-receiver"
	ReportMealTypeClaims           = "meal-type-claims"
	ReportProviderDonations        = "provider-donations"
)

var catalog = []Report{
	{Key: ReportCityParticipation, Title: "Providers & Receivers per City"},
	{Key: ReportProviderTypeContribution, Title: "Food Contribution by Provider Type"},
	{Key: ReportProviderContacts, Title: "Contact Info of Providers by City", RequiresCity: true},
	{Key: ReportTopReceivers, Title: "Receivers with Most Claims"},
	{Key: ReportTotalQuantity, Title: "Total Quantity of Food Available"},
	{Key: ReportTopCity, Title: "City with Highest Number of Food Listings"},
	{Key: ReportFoodTypeFrequency, Title: "Most Common Food Types"},
	{Key: ReportClaimsPerFood, Title: "Claims per Food Item"},
	{Key: ReportTopProvider, Title: "Provider with Most Completed Claims"},
	{Key: ReportStatusDistribution, Title: "Claim Status Distribution (%)"},
	{Key: ReportAvgQuantityPerReceiver, Title: "Average Quantity per Receiver"},
	{Key: ReportMealTypeClaims, Title: "Most Claimed Meal Type"},
	{Key: ReportProviderDonations, Title: "Total Quantity Donated by Each Provider"},
}

type ReportService struct {
	store *store.Store
}

func NewReportService(st *store.Store) *ReportService {
	return &ReportService{store: st}
}

// List returns the catalog in its fixed order.
func (s *ReportService) List() []Report {
	out := make([]Report, len(catalog))
	copy(out, catalog)
	return out
}

// Get returns the catalog entry for a key.
func (s *ReportService) Get(key string) (*Report, error) {
	for _, r := range catalog {
		if r.Key == key {
			return &r, nil
		}
	}
	return nil, srvErrors.NewReportNotFoundError(key)
}

// Overview returns the dashboard's headline counts.
func (s *ReportService) Overview(ctx context.Context) (*models.Overview, error) {
	return s.store.Report().Overview(ctx)
}

// Run executes a report. The provider-contacts report refuses to run
// without its city argument; no query is issued in that case.
func (s *ReportService) Run(ctx context.Context, key, city string) (*ReportResult, error) {
	report, err := s.Get(key)
	if err != nil {
		return nil, err
	}
	if report.RequiresCity && city == "" {
		return nil, srvErrors.NewValidationError("city", "is required for this report")
	}

	r := s.store.Report()
	switch key {
	case ReportCityParticipation:
		rows, err := r.CityParticipation(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"City", "Providers", "Receivers"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.City, row.Providers, row.Receivers})
		}
		return result, nil

	case ReportProviderTypeContribution:
		rows, err := r.ProviderTypeContribution(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Provider_Type", "Total_Food_Items"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.ProviderType, row.TotalFoodItems})
		}
		return result, nil

	case ReportProviderContacts:
		rows, err := r.ProviderContacts(ctx, city)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Name", "Type", "City", "Contact"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.Name, row.Type, row.City, row.Contact})
		}
		return result, nil

	case ReportTopReceivers:
		rows, err := r.TopReceivers(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Receiver_ID", "Receiver_Name", "Total_Claims"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.ReceiverID, row.ReceiverName, row.TotalClaims})
		}
		return result, nil

	case ReportTotalQuantity:
		total, err := r.TotalQuantity(ctx)
		if err != nil {
			return nil, err
		}
		return &ReportResult{
			Columns: []string{"Total_Food_Quantity"},
			Rows:    [][]any{{total}},
		}, nil

	case ReportTopCity:
		row, err := r.TopCity(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"City", "Total_Listings"}}
		if row != nil {
			result.Rows = append(result.Rows, []any{row.City, row.TotalListings})
		}
		return result, nil

	case ReportFoodTypeFrequency:
		rows, err := r.FoodTypeFrequency(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Food_Type", "Count"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.FoodType, row.Count})
		}
		return result, nil

	case ReportClaimsPerFood:
		rows, err := r.ClaimsPerFood(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Food_ID", "Food_Name", "Total_Claims"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.FoodID, row.FoodName, row.TotalClaims})
		}
		return result, nil

	case ReportTopProvider:
		row, err := r.TopProvider(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Provider_ID", "Provider_Name", "Successful_Claims"}}
		if row != nil {
			result.Rows = append(result.Rows, []any{row.ProviderID, row.ProviderName, row.SuccessfulClaims})
		}
		return result, nil

	case ReportStatusDistribution:
		rows, err := r.StatusDistribution(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Status", "Percentage"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.Status, row.Percentage})
		}
		return result, nil

	case ReportAvgQuantityPerReceiver:
		rows, err := r.AvgQuantityPerReceiver(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Receiver_Name", "Approx_Avg_Quantity"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.ReceiverName, row.ApproxAvgQuantity})
		}
		return result, nil

	case ReportMealTypeClaims:
		rows, err := r.MealTypeClaims(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Meal_Type", "Total_Claims"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.MealType, row.TotalClaims})
		}
		return result, nil

	case ReportProviderDonations:
		rows, err := r.ProviderDonations(ctx)
		if err != nil {
			return nil, err
		}
		result := &ReportResult{Columns: []string{"Provider_ID", "Provider_Name", "Total_Quantity"}}
		for _, row := range rows {
			result.Rows = append(result.Rows, []any{row.ProviderID, row.ProviderName, row.TotalQuantity})
		}
		return result, nil
	}

	return nil, srvErrors.NewReportNotFoundError(key)
}
