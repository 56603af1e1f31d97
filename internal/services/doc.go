// Package services implements the business layer between the HTTP handlers
// and the store.
//
// # Services
//
//	┌─────────────────┬───────────────────────────────────────────────────┐
//	│ Service         │ Responsibility                                    │
//	├─────────────────┼───────────────────────────────────────────────────┤
//	│ FoodService     │ Filtered browse, facet values, listing CRUD       │
//	│ ProviderService │ Provider creation and picker listing              │
//	│ ReportService   │ Report catalog, report execution, overview counts │
//	└─────────────────┴───────────────────────────────────────────────────┘
//
// Services own the validation contract: required-field checks happen here,
// before any statement reaches the store, and fail with a typed
// ValidationError from pkg/errors. Store errors pass through untranslated.
//
// FoodService translates BrowseParams into store.ListOption values in facet
// order (city, provider type, food type, meal type); conjunction across
// facets, disjunction within one.
//
// ReportService holds the fixed thirteen-entry catalog. Exactly one report
// (provider-contacts) takes a runtime parameter; Run rejects it with a
// ValidationError when the city is missing, without touching the store.
// ExportXLSX renders any report result as an xlsx workbook.
package services
