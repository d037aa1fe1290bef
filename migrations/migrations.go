// Package migrations embeds the report database schema.
package migrations

import "embed"

// FS holds the golang-migrate up/down SQL files.
//
//go:embed *.sql
var FS embed.FS
