package migrations

import "embed"

// FS contains the goose SQL migrations, applied in filename order.
//
//go:embed *.sql
var FS embed.FS
