// ABOUTME: Platform-neutral surface of the terminal syscall adapter
// ABOUTME: System implements the per-platform primitives; see console_unix.go and console_windows.go

package console

import (
	"os"

	"golang.org/x/term"
)

// System is the host platform's terminal syscall adapter. The mode,
// interactivity, and size primitives are defined per platform in this
// package's build-tagged files; this type exists so callers can depend
// on an interface and substitute a fake in tests.
type System struct{}

// StdinIsTerminal reports whether the process's standard input is
// attached to a terminal. This is a dedicated probe, separate from the
// per-handle IsTerminal check, because standard streams can be
// redirected independently of any registered file handle.
func (System) StdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
