package store

import "database/sql"

// Store provides access to all storage repositories. It owns the single
// shared database handle: opened once at startup, closed on shutdown.
type Store struct {
	db       *sql.DB
	provider *ProviderStore
	food     *FoodStore
	report   *ReportStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:       db,
		provider: NewProviderStore(db),
		food:     NewFoodStore(db),
		report:   NewReportStore(db),
	}
}

func (s *Store) Provider() *ProviderStore {
	return s.provider
}

func (s *Store) Food() *FoodStore {
	return s.food
}

func (s *Store) Report() *ReportStore {
	return s.report
}

func (s *Store) Close() error {
	return s.db.Close()
}
