//go:build windows

package cli

import (
	"os"

	"golang.org/x/sys/windows"
)

func EnableANSI(f *os.File) {
	stdout := windows.Handle(f.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(stdout, &mode); err != nil {
		return
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	_ = windows.SetConsoleMode(stdout, mode)
}
