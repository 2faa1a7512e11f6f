// Package schemas содержит JSON-схемы контрактов six-cities API,
// встроенные в бинарник.
package schemas

import "embed"

//go:embed documents
var SchemasFS embed.FS
