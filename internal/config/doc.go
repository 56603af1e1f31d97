// Package config defines the configuration structure for mealbridge.
//
// Configuration values come from struct defaults (creasty/defaults), an
// optional YAML config file and MEALBRIDGE_* environment variables, in that
// precedence order.
//
// # Server Configuration
//
//	┌───────────┬─────────┬────────────────────────────────────┐
//	│ Field     │ Default │ Description                        │
//	├───────────┼─────────┼────────────────────────────────────┤
//	│ Mode      │ "dev"   │ Server mode: "prod" or "dev"       │
//	│ HTTPPort  │ 8080    │ HTTP server listen port            │
//	└───────────┴─────────┴────────────────────────────────────┘
//
// # Database Configuration
//
//	┌───────┬─────────────────┬────────────────────────────────┐
//	│ Field │ Default         │ Description                    │
//	├───────┼─────────────────┼────────────────────────────────┤
//	│ Path  │ "mealbridge.db" │ SQLite database file path      │
//	└───────┴─────────────────┴────────────────────────────────┘
//
// # Logging
//
//	┌───────────┬───────────┬──────────────────────────────────┐
//	│ Field     │ Default   │ Description                      │
//	├───────────┼───────────┼──────────────────────────────────┤
//	│ LogLevel  │ "info"    │ debug, info, warn, error         │
//	│ LogFormat │ "console" │ "console" or "json"              │
//	└───────────┴───────────┴──────────────────────────────────┘
//
// Environment variables map dotted keys with underscores, e.g.
// MEALBRIDGE_SERVER_HTTP_PORT=9000. All fields are tagged
// `debugmap:"visible"` and DebugMap() returns a map suitable for structured
// logging of the effective configuration.
package config
