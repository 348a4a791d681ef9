// Package migrations embeds the goose migrations for the SDK's local
// sqlite database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
