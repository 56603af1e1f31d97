// Package store implements the data access layer for mealbridge.
//
// Storage is a single SQLite database file (modernc.org/sqlite, pure Go)
// holding the four dashboard tables. The schema is created by embedded goose
// migrations (internal/store/migrations).
//
// # Architecture Overview
//
//	┌─────────────────────────────────────────────────────────────────┐
//	│                         Store (facade)                          │
//	├───────────────────┬──────────────────────┬──────────────────────┤
//	│   ProviderStore   │      FoodStore       │     ReportStore      │
//	│        ▼          │          ▼           │          ▼           │
//	│    Providers      │    Food_Listings     │   all four tables    │
//	└───────────────────┴──────────────────────┴──────────────────────┘
//
// # Tables
//
//	┌────────────────┬──────────────────────────────────────────────────┐
//	│  Table         │  Purpose                                         │
//	├────────────────┼──────────────────────────────────────────────────┤
//	│  Providers     │  Food donors (name, type, address, city, contact)│
//	│  Receivers     │  Claimants (read-only for this service)          │
//	│  Food_Listings │  Surplus food batches with expiry and facets     │
//	│  Claims        │  Receiver claims on listings (read-only)         │
//	└────────────────┴──────────────────────────────────────────────────┘
//
// # Filtered Browse
//
// FoodStore.List composes its WHERE clause from ListOption values built with
// squirrel. Each option adds one column IN (...) predicate; options combine
// conjunctively and an empty selection applies no predicate at all, so the
// unfiltered browse is the full Food_Listings ⋈ Providers join ordered by
// expiry date.
//
// # Reports
//
// ReportStore exposes the thirteen canned aggregation reports as one method
// each. The SQL lives in queries.go; only ProviderContacts takes a runtime
// parameter (the city). Reports never write.
//
// # Connection Lifecycle
//
// NewDB opens the file once (WAL, busy_timeout, foreign keys on) and the
// handle is shared process-wide through the Store facade. There is no retry
// and no multi-statement transaction: every write is a single statement that
// commits immediately, and store-level errors propagate to the caller
// untranslated.
package store
