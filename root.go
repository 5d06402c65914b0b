// Package root exposes build-time embedded assets to the rest of the module.
package root

import "embed"

// Migrations contains the embedded goose SQL migrations.
//
//go:embed migrations/*.sql
var Migrations embed.FS
