//go:build linux

package logger

import (
	"syscall"
	"unsafe"
)

// tcgets is Linux's ioctl request number for "get termios", distinct
// from the BSD/macOS TIOCGETA used in terminal.go.
const tcgets = 0x5401

func isTerminal(fd uintptr) bool {
	var termios syscall.Termios
	_, _, errno := syscall.Syscall6(
		syscall.SYS_IOCTL,
		fd,
		tcgets,
		uintptr(unsafe.Pointer(&termios)),
		0, 0, 0,
	)
	return errno == 0
}
