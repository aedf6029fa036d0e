// Package migrations embeds the SQL schema migrations for each supported database.
package migrations

import "embed"

// FS holds one directory of migrations per driver: postgresql and mysql.
//
//go:embed postgresql/*.sql mysql/*.sql
var FS embed.FS
