//go:build !linux && !windows

package oscommand

import "syscall"

func setPdeathsig(*syscall.SysProcAttr) {}
