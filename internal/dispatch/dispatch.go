// ABOUTME: Op dispatcher: routes named host requests to terminal control handlers
// ABOUTME: Decodes JSON arguments, runs the op, encodes the structured result

package dispatch

import (
	"errors"
	"fmt"

	easyjson "github.com/mailru/easyjson"

	"github.com/mauromedda/termctl-go/internal/log"
	"github.com/mauromedda/termctl-go/internal/ops/tty"
)

// ErrUnknownOp is returned when no handler is registered for a name.
var ErrUnknownOp = errors.New("unknown op")

// Handler executes one op. args is the raw JSON argument payload; the
// returned bytes are the JSON-encoded result.
type Handler func(args []byte) ([]byte, error)

// Dispatcher maps op names to handlers. Handlers are registered at
// startup; Dispatch is safe for concurrent use afterwards.
type Dispatcher struct {
	ops map[string]Handler
}

// New creates a Dispatcher with the terminal control ops registered.
func New(t *tty.Ops) *Dispatcher {
	d := &Dispatcher{ops: make(map[string]Handler)}
	d.Register("set_raw", setRawHandler(t))
	d.Register("isatty", isattyHandler(t))
	d.Register("console_size", consoleSizeHandler(t))
	return d
}

// Register adds a handler, replacing any existing handler with the same name.
func (d *Dispatcher) Register(name string, h Handler) {
	d.ops[name] = h
}

// Dispatch runs the named op with the given argument payload.
func (d *Dispatcher) Dispatch(name string, args []byte) ([]byte, error) {
	h, ok := d.ops[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOp, name)
	}
	log.Debug("dispatching op %s", name)
	return h(args)
}

func setRawHandler(t *tty.Ops) Handler {
	return func(args []byte) ([]byte, error) {
		var a SetRawArgs
		if err := easyjson.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decoding set_raw args: %w", err)
		}
		if err := t.SetRaw(a.Rid, a.Mode); err != nil {
			return nil, err
		}
		return easyjson.Marshal(AckResult{})
	}
}

func isattyHandler(t *tty.Ops) Handler {
	return func(args []byte) ([]byte, error) {
		var a RidArgs
		if err := easyjson.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decoding isatty args: %w", err)
		}
		isatty, err := t.Isatty(a.Rid)
		if err != nil {
			return nil, err
		}
		return easyjson.Marshal(IsattyResult{Isatty: isatty})
	}
}

func consoleSizeHandler(t *tty.Ops) Handler {
	return func(args []byte) ([]byte, error) {
		var a RidArgs
		if err := easyjson.Unmarshal(args, &a); err != nil {
			return nil, fmt.Errorf("decoding console_size args: %w", err)
		}
		columns, rows, err := t.ConsoleSize(a.Rid)
		if err != nil {
			return nil, err
		}
		return easyjson.Marshal(ConsoleSizeResult{Columns: columns, Rows: rows})
	}
}
