// ABOUTME: Process-level gate for unstable terminal-control capabilities
// ABOUTME: Closed by default; opened once at startup from config or the -unstable flag

package feature

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrDisabled is returned when an unstable capability is used while the
// gate is closed.
var ErrDisabled = errors.New("unstable feature gate is closed")

// Gate guards unstable capabilities. The zero value is a closed gate.
type Gate struct {
	enabled atomic.Bool
}

// NewGate creates a closed gate.
func NewGate() *Gate {
	return &Gate{}
}

// Enable opens the gate for all unstable capabilities.
func (g *Gate) Enable() {
	g.enabled.Store(true)
}

// Enabled reports whether the gate is open.
func (g *Gate) Enabled() bool {
	return g.enabled.Load()
}

// Check returns an error naming the capability when the gate is closed,
// and nil when it is open. Callers must check before touching any
// platform state.
func (g *Gate) Check(capability string) error {
	if g.enabled.Load() {
		return nil
	}
	return fmt.Errorf("%s: %w", capability, ErrDisabled)
}
