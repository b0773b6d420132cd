// Package migrations embeds the goose SQL migrations applied to the
// on-device database at open.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
