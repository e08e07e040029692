// migrations хранит SQL-миграции схемы quiz-service (формат goose),
// встроенные в бинарник через embed.FS.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
