// ABOUTME: Terminal control ops: raw-mode toggling, interactivity probe, console size query
// ABOUTME: State machine per resource is {cooked} or {raw, saved mode}; never a torn intermediate

package tty

import (
	"github.com/mauromedda/termctl-go/internal/console"
	"github.com/mauromedda/termctl-go/internal/feature"
	"github.com/mauromedda/termctl-go/internal/registry"
)

// Console abstracts the platform terminal syscalls so tests can
// substitute a fake. console.System is the real implementation.
type Console interface {
	GetMode(fd uintptr) (*console.State, error)
	SetMode(fd uintptr, state *console.State) error
	Raw(state *console.State) *console.State
	IsTerminal(fd uintptr) bool
	StdinIsTerminal() bool
	Size(fd uintptr) (columns, rows uint32, err error)
	ValidHandle(fd uintptr) bool
}

var _ Console = console.System{}

// Ops executes terminal control operations against resources in a
// shared registry. All methods run synchronously on the calling
// goroutine and hold no state of their own; raw-mode state lives with
// the resource.
type Ops struct {
	reg  *registry.Table
	con  Console
	gate *feature.Gate
}

// New creates an Ops over the given registry, console adapter, and
// unstable feature gate.
func New(reg *registry.Table, con Console, gate *feature.Gate) *Ops {
	return &Ops{reg: reg, con: con, gate: gate}
}

// SetRaw switches the resource in or out of raw input mode. Enabling is
// idempotent: a resource already in raw mode keeps its saved snapshot
// untouched. Disabling restores the mode captured before the transition
// into raw mode and consumes the snapshot exactly once, even when the
// restore syscall fails.
func (o *Ops) SetRaw(rid uint32, raw bool) error {
	if err := o.gate.Check("setRaw"); err != nil {
		return err
	}

	return o.withTerminal(rid, func(fd uintptr, meta *registry.TTYMeta) error {
		if raw {
			return o.enableRaw(fd, meta)
		}
		return o.disableRaw(fd, meta)
	})
}

func (o *Ops) enableRaw(fd uintptr, meta *registry.TTYMeta) error {
	if meta.Mode != nil {
		// Already raw; trust the existing snapshot.
		return nil
	}

	saved, err := o.con.GetMode(fd)
	if err != nil {
		return err
	}
	if err := o.con.SetMode(fd, o.con.Raw(saved)); err != nil {
		// Nothing was saved, so the resource stays cooked.
		return err
	}
	meta.Mode = saved
	return nil
}

func (o *Ops) disableRaw(fd uintptr, meta *registry.TTYMeta) error {
	if meta.Mode == nil {
		return nil
	}

	// Consume the snapshot before attempting the restore so a failed
	// syscall is never retried with a stale capture.
	saved := meta.Mode
	meta.Mode = nil
	return o.con.SetMode(fd, saved)
}

// Isatty reports whether the resource is attached to an interactive
// terminal. Non-terminal-capable kinds answer false without error.
func (o *Ops) Isatty(rid uint32) (bool, error) {
	entry, ok := o.reg.Lookup(rid)
	if !ok {
		return false, ErrUnknownResource
	}

	switch entry.Kind() {
	case registry.KindStdin:
		return o.con.StdinIsTerminal(), nil
	case registry.KindFile:
		var isatty bool
		err := o.withFileFd(entry, func(fd uintptr) error {
			isatty = o.con.IsTerminal(fd)
			return nil
		})
		if err != nil {
			return false, err
		}
		return isatty, nil
	default:
		return false, nil
	}
}

// ConsoleSize returns the column and row count of the terminal backing
// the resource. Only standard input and file resources are supported.
func (o *Ops) ConsoleSize(rid uint32) (columns, rows uint32, err error) {
	if err := o.gate.Check("consoleSize"); err != nil {
		return 0, 0, err
	}

	entry, ok := o.reg.Lookup(rid)
	if !ok {
		return 0, 0, ErrUnknownResource
	}

	switch entry.Kind() {
	case registry.KindStdin:
		fd := stdinFd()
		if !o.con.ValidHandle(fd) {
			return 0, 0, ErrInvalidHandle
		}
		return o.con.Size(fd)
	case registry.KindFile:
		if err := o.withFileFd(entry, func(fd uintptr) error {
			var sizeErr error
			columns, rows, sizeErr = o.con.Size(fd)
			return sizeErr
		}); err != nil {
			return 0, 0, err
		}
		return columns, rows, nil
	default:
		return 0, 0, ErrBadResource
	}
}
