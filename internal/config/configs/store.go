package configs

import "fmt"

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Store selects the ledger storage backend.
type Store struct {
	// Driver is "postgres" (default) or "memory". The memory store keeps
	// everything in process and is meant for local runs and demos.
	Driver string `env:"DRIVER" envDefault:"postgres"`
}

// Validate rejects unknown drivers.
func (c Store) Validate() error {
	switch c.Driver {
	case StoreDriverPostgres, StoreDriverMemory:
		return nil
	default:
		return fmt.Errorf("unknown store driver %q", c.Driver)
	}
}
