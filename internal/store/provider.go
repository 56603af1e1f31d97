package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mealbridge/mealbridge/internal/models"
	srvErrors "github.com/mealbridge/mealbridge/pkg/errors"
)

// ProviderStore handles Provider rows.
type ProviderStore struct {
	db *sql.DB
}

func NewProviderStore(db *sql.DB) *ProviderStore {
	return &ProviderStore{db: db}
}

// Insert creates a new provider and returns its generated ID.
func (s *ProviderStore) Insert(ctx context.Context, p models.Provider) (int64, error) {
	res, err := s.db.ExecContext(ctx, queryInsertProvider,
		p.Name, p.Type, p.Address, p.City, p.Contact)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Get retrieves a provider by ID.
func (s *ProviderStore) Get(ctx context.Context, id int64) (*models.Provider, error) {
	row := s.db.QueryRowContext(ctx, queryGetProvider, id)

	var p models.Provider
	var address, contact sql.NullString
	err := row.Scan(&p.ID, &p.Name, &p.Type, &address, &p.City, &contact)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewProviderNotFoundError(id)
	}
	if err != nil {
		return nil, err
	}
	p.Address = address.String
	p.Contact = contact.String
	return &p, nil
}

// ListRefs returns all providers in picker form, ordered by name.
func (s *ProviderStore) ListRefs(ctx context.Context) ([]models.ProviderRef, error) {
	rows, err := s.db.QueryContext(ctx, queryListProviderRefs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []models.ProviderRef
	for rows.Next() {
		var r models.ProviderRef
		if err := rows.Scan(&r.ID, &r.Name, &r.Type); err != nil {
			return nil, err
		}
		refs = append(refs, r)
	}
	return refs, rows.Err()
}

// Cities returns the distinct provider cities, ascending.
func (s *ProviderStore) Cities(ctx context.Context) ([]string, error) {
	return scanStrings(ctx, s.db, queryProviderCities)
}

// Types returns the distinct provider types, ascending.
func (s *ProviderStore) Types(ctx context.Context) ([]string, error) {
	return scanStrings(ctx, s.db, queryProviderTypes)
}

func scanStrings(ctx context.Context, db *sql.DB, query string) ([]string, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}
