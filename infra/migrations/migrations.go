// Package migrations embeds the versioned SQL schema for PostgreSQL.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
