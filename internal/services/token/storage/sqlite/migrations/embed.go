package migrations

import "embed"

// FS contains embedded SQLite migrations for token storage.
//
//go:embed *.sql
var FS embed.FS
