// ABOUTME: BSD-family termios ioctl request numbers (includes darwin)
// ABOUTME: BSDs use TIOCGETA/TIOCSETA rather than the Linux TCGETS family

//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package console

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios  = unix.TIOCGETA
	ioctlWriteTermios = unix.TIOCSETA
)
