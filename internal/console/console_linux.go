// ABOUTME: Linux termios ioctl request numbers
// ABOUTME: Linux uses the TCGETS/TCSETS family rather than TIOCGETA/TIOCSETA

//go:build linux

package console

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TCGETS
	ioctlWriteTermios = unix.TCSETS
)
