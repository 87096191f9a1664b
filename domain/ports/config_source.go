// Package ports defines the interfaces the engine's host supplies.
package ports

import "github.com/typegate-dev/typegate/domain/entities"

// ConfigSource yields the external policy configuration, or nil when none
// exists. The engine treats a returned error the same as a nil result:
// enforcement must never fail a build over configuration I/O.
type ConfigSource interface {
	Lookup() (*entities.RawConfig, error)
}
