// ABOUTME: Windows terminal syscall adapter built on console-mode APIs
// ABOUTME: State wraps the console input mode DWORD; raw mode clears the line/echo/processed bits

//go:build windows

package console

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// rawModeMask is the set of console input flags cleared in raw mode:
// line buffering, echo, and control-key processing.
const rawModeMask = windows.ENABLE_LINE_INPUT |
	windows.ENABLE_ECHO_INPUT |
	windows.ENABLE_PROCESSED_INPUT

// State is an opaque snapshot of a console's input mode, sufficient to
// restore the console exactly as it was when the snapshot was taken.
type State struct {
	mode uint32
}

// Equal reports whether both snapshots capture identical attributes.
func (s *State) Equal(other *State) bool {
	return other != nil && s.mode == other.mode
}

// ValidHandle reports whether fd is a usable console handle. This is a
// sentinel check only; it does not probe the console subsystem.
func (System) ValidHandle(fd uintptr) bool {
	h := windows.Handle(fd)
	return h != windows.InvalidHandle && h != 0
}

// GetMode reads the console input mode of fd.
func (System) GetMode(fd uintptr) (*State, error) {
	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(fd), &mode); err != nil {
		return nil, fmt.Errorf("reading console mode: %w", err)
	}
	return &State{mode: mode}, nil
}

// SetMode applies a previously captured or constructed snapshot to fd.
func (System) SetMode(fd uintptr, state *State) error {
	if err := windows.SetConsoleMode(windows.Handle(fd), state.mode); err != nil {
		return fmt.Errorf("applying console mode: %w", err)
	}
	return nil
}

// Raw returns a copy of state with raw input semantics.
func (System) Raw(state *State) *State {
	return &State{mode: state.mode &^ rawModeMask}
}

// IsTerminal reports whether fd supports console-mode queries. A handle
// that does not is simply not a console; this never fails.
func (System) IsTerminal(fd uintptr) bool {
	var mode uint32
	return windows.GetConsoleMode(windows.Handle(fd), &mode) == nil
}

// Size returns the console's current column and row count.
func (System) Size(fd uintptr) (columns, rows uint32, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, fmt.Errorf("querying console buffer info: %w", err)
	}
	return uint32(info.Size.X), uint32(info.Size.Y), nil
}
