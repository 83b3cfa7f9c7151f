//go:build !windows

package cli

import "os"

func EnableANSI(*os.File) {}
