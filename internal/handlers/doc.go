// Package handlers implements the HTTP API layer for mealbridge.
//
// Handlers delegate business logic to the services layer and focus on
// parameter parsing, error mapping and response formatting.
//
// # API Endpoints
//
//	┌────────┬───────────────────────────┬───────────────────────────────────────┐
//	│ Method │ Endpoint                  │ Description                           │
//	├────────┼───────────────────────────┼───────────────────────────────────────┤
//	│ GET    │ /overview                 │ Headline counts (metric cards)        │
//	│ GET    │ /facets                   │ Distinct values per browse filter     │
//	│ GET    │ /foods                    │ Filtered browse (facet query params)  │
//	│ GET    │ /foods/summary            │ Listing counts per food type          │
//	│ POST   │ /foods                    │ Add a food listing                    │
//	│ PATCH  │ /foods/:id/quantity       │ Update a listing's quantity           │
//	│ DELETE │ /foods/:id                │ Delete a listing                      │
//	│ GET    │ /providers                │ Provider picker list                  │
//	│ POST   │ /providers                │ Add a provider                        │
//	│ GET    │ /reports                  │ Report catalog                        │
//	│ GET    │ /reports/:key             │ Run a report (?city= where required)  │
//	│ GET    │ /reports/:key/export      │ Report as xlsx attachment             │
//	└────────┴───────────────────────────┴───────────────────────────────────────┘
//
// Browse filters repeat as query parameters, e.g.
//
//	GET /api/v1/foods?city=Chennai&city=Delhi&meal_type=Lunch
//
// # Error Mapping
//
//	ValidationError        → 400
//	ResourceNotFoundError  → 404
//	ReportNotFoundError    → 404
//	anything else          → 500 (logged, body says "internal error")
package handlers
