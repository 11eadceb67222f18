// Package migrations embeds the SQL migrations for the client-local
// metadata database.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
