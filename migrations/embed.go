// Package migrations embeds the goose schema migrations applied at boot
package migrations

import "embed"

// FS holds the versioned SQL files
//
//go:embed *.sql
var FS embed.FS
