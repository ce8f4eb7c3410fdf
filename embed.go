package embedded

import "embed"

//go:embed "migrations"
var ServerMigrations embed.FS
