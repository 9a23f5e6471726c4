// ABOUTME: Tests for the POSIX adapter: raw flag policy, snapshot equality, non-terminal probes
// ABOUTME: In-package so the termios payload of State can be inspected directly

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package console

import (
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestRaw_FlagPolicy(t *testing.T) {
	t.Parallel()

	before := &State{termios: unix.Termios{
		Iflag: unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON | unix.IGNPAR,
		Lflag: unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG | unix.ECHOE,
	}}
	before.termios.Cc[unix.VMIN] = 0
	before.termios.Cc[unix.VTIME] = 5

	after := System{}.Raw(before)

	if after.termios.Iflag&(unix.BRKINT|unix.ICRNL|unix.INPCK|unix.ISTRIP|unix.IXON) != 0 {
		t.Error("input translation/flow-control flags not cleared")
	}
	if after.termios.Lflag&(unix.ECHO|unix.ICANON|unix.IEXTEN|unix.ISIG) != 0 {
		t.Error("echo/canonical/signal flags not cleared")
	}
	if after.termios.Cflag&unix.CS8 == 0 {
		t.Error("CS8 not set")
	}
	if after.termios.Cc[unix.VMIN] != 1 || after.termios.Cc[unix.VTIME] != 0 {
		t.Errorf("read policy = VMIN %d VTIME %d, want 1 and 0",
			after.termios.Cc[unix.VMIN], after.termios.Cc[unix.VTIME])
	}

	// Unrelated bits survive so the snapshot stays restorable.
	if after.termios.Iflag&unix.IGNPAR == 0 {
		t.Error("unrelated input flag clobbered")
	}
	if after.termios.Lflag&unix.ECHOE == 0 {
		t.Error("unrelated local flag clobbered")
	}

	// The source snapshot is untouched.
	if before.termios.Lflag&unix.ECHO == 0 {
		t.Error("Raw mutated its input snapshot")
	}
}

func TestState_Equal(t *testing.T) {
	t.Parallel()

	a := &State{termios: unix.Termios{Lflag: unix.ECHO}}
	b := &State{termios: unix.Termios{Lflag: unix.ECHO}}
	c := &State{termios: unix.Termios{Lflag: unix.ECHO | unix.ICANON}}

	if !a.Equal(b) {
		t.Error("identical snapshots compare unequal")
	}
	if a.Equal(c) {
		t.Error("different snapshots compare equal")
	}
	if a.Equal(nil) {
		t.Error("snapshot equals nil")
	}
}

func TestValidHandle(t *testing.T) {
	t.Parallel()

	sys := System{}
	if !sys.ValidHandle(0) {
		t.Error("fd 0 reported invalid")
	}
	if sys.ValidHandle(^uintptr(0)) {
		t.Error("sentinel fd reported valid")
	}
}

func TestNonTerminalProbes(t *testing.T) {
	t.Parallel()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	sys := System{}
	if sys.IsTerminal(r.Fd()) {
		t.Error("IsTerminal(pipe) = true")
	}
	if _, err := sys.GetMode(r.Fd()); err == nil {
		t.Error("GetMode succeeded on a pipe")
	}
	if _, _, err := sys.Size(r.Fd()); err == nil {
		t.Error("Size succeeded on a pipe")
	}
}
