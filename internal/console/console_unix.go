// ABOUTME: POSIX terminal syscall adapter built on termios ioctls
// ABOUTME: State wraps a full termios capture so restores are bit-for-bit

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// State is an opaque snapshot of a terminal's attributes, sufficient to
// restore the terminal exactly as it was when the snapshot was taken.
type State struct {
	termios unix.Termios
}

// Equal reports whether both snapshots capture identical attributes.
func (s *State) Equal(other *State) bool {
	return other != nil && s.termios == other.termios
}

// invalidFd is what os.File.Fd returns for a closed or invalid file.
const invalidFd = ^uintptr(0)

// ValidHandle reports whether fd is a usable descriptor. This is a
// sentinel check only; it does not probe the kernel.
func (System) ValidHandle(fd uintptr) bool {
	return fd != invalidFd
}

// GetMode reads the terminal attributes of fd.
func (System) GetMode(fd uintptr) (*State, error) {
	termios, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}
	return &State{termios: *termios}, nil
}

// SetMode applies a previously captured or constructed snapshot to fd.
func (System) SetMode(fd uintptr, state *State) error {
	termios := state.termios
	if err := unix.IoctlSetTermios(int(fd), ioctlWriteTermios, &termios); err != nil {
		return fmt.Errorf("applying terminal attributes: %w", err)
	}
	return nil
}

// Raw returns a copy of state with raw input semantics: no canonical
// line buffering, no echo, no signal keys, no input translation or flow
// control, and reads that return as soon as a single byte is available.
func (System) Raw(state *State) *State {
	termios := state.termios
	termios.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	termios.Cflag |= unix.CS8
	termios.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	termios.Cc[unix.VMIN] = 1
	termios.Cc[unix.VTIME] = 0
	return &State{termios: termios}
}

// IsTerminal reports whether fd refers to a terminal. A descriptor that
// does not support termios queries is simply not a terminal; this never
// fails.
func (System) IsTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), ioctlReadTermios)
	return err == nil
}

// Size returns the terminal's current column and row count.
func (System) Size(fd uintptr) (columns, rows uint32, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}
	return uint32(ws.Col), uint32(ws.Row), nil
}
