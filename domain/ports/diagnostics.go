package ports

import "github.com/typegate-dev/typegate/domain/entities"

// Diagnostics receives policy-violation reports tied to a declaration.
// Reports are fire-and-forget; the engine never inspects the sink's state
// or the count of prior reports.
type Diagnostics interface {
	Report(message string, decl *entities.Declaration)
}
