package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mealbridge/mealbridge/internal/models"
)

// ReportStore runs the canned aggregation reports. Reports never mutate
// state; each maps one-to-one onto a query in queries.go.
type ReportStore struct {
	db *sql.DB
}

func NewReportStore(db *sql.DB) *ReportStore {
	return &ReportStore{db: db}
}

// Overview returns the dashboard's headline counts.
func (s *ReportStore) Overview(ctx context.Context) (*models.Overview, error) {
	var o models.Overview
	err := s.db.QueryRowContext(ctx, queryOverview).
		Scan(&o.Providers, &o.Receivers, &o.FoodListings, &o.Claims)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CityParticipation counts providers and receivers per city.
func (s *ReportStore) CityParticipation(ctx context.Context) ([]models.CityParticipation, error) {
	rows, err := s.db.QueryContext(ctx, queryCityParticipation)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.CityParticipation
	for rows.Next() {
		var r models.CityParticipation
		if err := rows.Scan(&r.City, &r.Providers, &r.Receivers); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ProviderTypeContribution counts listings per provider-type snapshot.
func (s *ReportStore) ProviderTypeContribution(ctx context.Context) ([]models.ProviderTypeContribution, error) {
	rows, err := s.db.QueryContext(ctx, queryProviderTypeContribution)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProviderTypeContribution
	for rows.Next() {
		var r models.ProviderTypeContribution
		if err := rows.Scan(&r.ProviderType, &r.TotalFoodItems); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ProviderContacts lists contact details for every provider in a city.
// An unknown city yields an empty result, not an error.
func (s *ReportStore) ProviderContacts(ctx context.Context, city string) ([]models.ProviderContact, error) {
	rows, err := s.db.QueryContext(ctx, queryProviderContacts, city)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProviderContact
	for rows.Next() {
		var r models.ProviderContact
		var contact sql.NullString
		if err := rows.Scan(&r.Name, &r.Type, &r.City, &contact); err != nil {
			return nil, err
		}
		r.Contact = contact.String
		result = append(result, r)
	}
	return result, rows.Err()
}

// TopReceivers returns the ten receivers with the most claims.
func (s *ReportStore) TopReceivers(ctx context.Context) ([]models.ReceiverClaimCount, error) {
	rows, err := s.db.QueryContext(ctx, queryTopReceivers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ReceiverClaimCount
	for rows.Next() {
		var r models.ReceiverClaimCount
		if err := rows.Scan(&r.ReceiverID, &r.ReceiverName, &r.TotalClaims); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// TotalQuantity sums the quantity across all listings. Zero when there are
// no listings.
func (s *ReportStore) TotalQuantity(ctx context.Context) (int64, error) {
	var total sql.NullInt64
	if err := s.db.QueryRowContext(ctx, queryTotalQuantity).Scan(&total); err != nil {
		return 0, err
	}
	return total.Int64, nil
}

// TopCity returns the city with the most listings, nil when there are none.
func (s *ReportStore) TopCity(ctx context.Context) (*models.CityListingCount, error) {
	var r models.CityListingCount
	err := s.db.QueryRowContext(ctx, queryTopCity).Scan(&r.City, &r.TotalListings)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// FoodTypeFrequency counts listings per food type, most common first.
func (s *ReportStore) FoodTypeFrequency(ctx context.Context) ([]models.FoodTypeFrequency, error) {
	rows, err := s.db.QueryContext(ctx, queryFoodTypeFrequency)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.FoodTypeFrequency
	for rows.Next() {
		var r models.FoodTypeFrequency
		if err := rows.Scan(&r.FoodType, &r.Count); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ClaimsPerFood counts claims per food item.
func (s *ReportStore) ClaimsPerFood(ctx context.Context) ([]models.FoodClaimCount, error) {
	rows, err := s.db.QueryContext(ctx, queryClaimsPerFood)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.FoodClaimCount
	for rows.Next() {
		var r models.FoodClaimCount
		if err := rows.Scan(&r.FoodID, &r.FoodName, &r.TotalClaims); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// TopProvider returns the provider with the most completed claims, nil when
// no claim has completed.
func (s *ReportStore) TopProvider(ctx context.Context) (*models.TopProvider, error) {
	var r models.TopProvider
	err := s.db.QueryRowContext(ctx, queryTopProvider).
		Scan(&r.ProviderID, &r.ProviderName, &r.SuccessfulClaims)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// StatusDistribution returns the percentage of claims per status, rounded to
// two decimals. The shares sum to 100 modulo rounding.
func (s *ReportStore) StatusDistribution(ctx context.Context) ([]models.StatusShare, error) {
	rows, err := s.db.QueryContext(ctx, queryStatusDistribution)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.StatusShare
	for rows.Next() {
		var r models.StatusShare
		if err := rows.Scan(&r.Status, &r.Percentage); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// AvgQuantityPerReceiver approximates the average claimed quantity per
// receiver via the listing quantities.
func (s *ReportStore) AvgQuantityPerReceiver(ctx context.Context) ([]models.ReceiverAvgQuantity, error) {
	rows, err := s.db.QueryContext(ctx, queryAvgQuantityPerReceiver)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ReceiverAvgQuantity
	for rows.Next() {
		var r models.ReceiverAvgQuantity
		if err := rows.Scan(&r.ReceiverName, &r.ApproxAvgQuantity); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// MealTypeClaims counts claims per meal type, most claimed first.
func (s *ReportStore) MealTypeClaims(ctx context.Context) ([]models.MealTypeClaimCount, error) {
	rows, err := s.db.QueryContext(ctx, queryMealTypeClaims)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.MealTypeClaimCount
	for rows.Next() {
		var r models.MealTypeClaimCount
		if err := rows.Scan(&r.MealType, &r.TotalClaims); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}

// ProviderDonations sums the donated quantity per provider.
func (s *ReportStore) ProviderDonations(ctx context.Context) ([]models.ProviderDonationTotal, error) {
	rows, err := s.db.QueryContext(ctx, queryProviderDonations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.ProviderDonationTotal
	for rows.Next() {
		var r models.ProviderDonationTotal
		if err := rows.Scan(&r.ProviderID, &r.ProviderName, &r.TotalQuantity); err != nil {
			return nil, err
		}
		result = append(result, r)
	}
	return result, rows.Err()
}
