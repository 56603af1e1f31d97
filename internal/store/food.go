package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/mealbridge/mealbridge/internal/models"
)

// FoodStore handles Food_Listing rows and the filtered browse view.
type FoodStore struct {
	db *sql.DB
}

func NewFoodStore(db *sql.DB) *FoodStore {
	return &FoodStore{db: db}
}

// ListOption narrows the browse view. Options are conjunctive: every
// returned row matches all applied options.
type ListOption func(sq.SelectBuilder) sq.SelectBuilder

// ByCities filters on the provider's city.
func ByCities(cities ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(cities) == 0 {
			return b
		}
		return b.Where(sq.Eq{"P.City": cities})
	}
}

// ByProviderTypes filters on the provider's current type, not the
// listing's snapshot column.
func ByProviderTypes(types ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(types) == 0 {
			return b
		}
		return b.Where(sq.Eq{"P.Type": types})
	}
}

func ByFoodTypes(types ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(types) == 0 {
			return b
		}
		return b.Where(sq.Eq{"F.Food_Type": types})
	}
}

func ByMealTypes(types ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(types) == 0 {
			return b
		}
		return b.Where(sq.Eq{"F.Meal_Type": types})
	}
}

// List returns food listings joined with their providers, ordered by expiry
// date ascending. With no options it returns the full join.
func (s *FoodStore) List(ctx context.Context, opts ...ListOption) ([]models.ListedFood, error) {
	builder := sq.Select(
		"F.Food_ID",
		"F.Food_Name",
		"F.Quantity",
		"F.Expiry_Date",
		"F.Provider_ID",
		"P.Name AS Provider_Name",
		"P.Type AS Provider_Type",
		"P.City AS Location",
		"F.Food_Type",
		"F.Meal_Type",
	).From("Food_Listings F").
		Join("Providers P ON F.Provider_ID = P.Provider_ID").
		OrderBy("F.Expiry_Date")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []models.ListedFood
	for rows.Next() {
		var f models.ListedFood
		err := rows.Scan(
			&f.ID,
			&f.FoodName,
			&f.Quantity,
			&f.ExpiryDate,
			&f.ProviderID,
			&f.ProviderName,
			&f.ProviderType,
			&f.Location,
			&f.FoodType,
			&f.MealType,
		)
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}

	return foods, rows.Err()
}

// CountByFoodType returns the number of listings per food type under the
// same filters as List.
func (s *FoodStore) CountByFoodType(ctx context.Context, opts ...ListOption) ([]models.FoodTypeCount, error) {
	builder := sq.Select("F.Food_Type", "COUNT(F.Food_ID) AS Count").
		From("Food_Listings F").
		Join("Providers P ON F.Provider_ID = P.Provider_ID").
		GroupBy("F.Food_Type").
		OrderBy("Count DESC")

	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.FoodTypeCount
	for rows.Next() {
		var c models.FoodTypeCount
		if err := rows.Scan(&c.FoodType, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

// Insert creates a new food listing and returns its generated ID. The
// ProviderType field must already hold the provider's current type; the
// store writes it as-is.
func (s *FoodStore) Insert(ctx context.Context, f models.FoodListing) (int64, error) {
	res, err := s.db.ExecContext(ctx, queryInsertFood,
		f.FoodName,
		f.Quantity,
		f.ExpiryDate.Format("2006-01-02"),
		f.ProviderID,
		f.ProviderType,
		f.Location,
		f.FoodType,
		f.MealType,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateQuantity overwrites the quantity of a listing. A missing Food_ID
// affects zero rows and is not an error.
func (s *FoodStore) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	_, err := s.db.ExecContext(ctx, queryUpdateFoodQuantity, quantity, id)
	return err
}

// Delete removes a listing. A missing Food_ID affects zero rows and is not
// an error.
func (s *FoodStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, queryDeleteFood, id)
	return err
}

// FoodTypes returns the distinct food types among listings, ascending.
func (s *FoodStore) FoodTypes(ctx context.Context) ([]string, error) {
	return scanStrings(ctx, s.db, queryFoodTypes)
}

// MealTypes returns the distinct meal types among listings, ascending.
func (s *FoodStore) MealTypes(ctx context.Context) ([]string, error) {
	return scanStrings(ctx, s.db, queryMealTypes)
}
