// Package store provides data persistence interfaces and implementations.
package store

import (
	"context"
	"time"

	"github.com/1cbyc/mt5-risk-calculator/internal/simulation"
)

// Scenario is a named, saved set of simulation parameters.
type Scenario struct {
	Name      string                `json:"name"`
	Params    simulation.Parameters `json:"params"`
	Notes     string                `json:"notes,omitempty"`
	CreatedAt time.Time             `json:"created_at"`
}

// ScenarioStore defines the interface for scenario persistence.
type ScenarioStore interface {
	// SaveScenario inserts a scenario. If overwrite is false and a scenario
	// with the same name exists, it fails with ErrScenarioExists.
	SaveScenario(ctx context.Context, scenario *Scenario, overwrite bool) error
	GetScenario(ctx context.Context, name string) (*Scenario, error)
	ListScenarios(ctx context.Context) ([]Scenario, error)
	DeleteScenario(ctx context.Context, name string) error

	// Lifecycle
	Close() error
}
