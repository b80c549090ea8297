// Package migrations embeds the SQL migrations applied at startup.
package migrations

import "embed"

// FS holds the golang-migrate compatible *.up.sql and *.down.sql files.
//
//go:embed *.sql
var FS embed.FS
