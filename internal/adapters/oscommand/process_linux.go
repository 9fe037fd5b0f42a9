//go:build linux

package oscommand

import "syscall"

// setPdeathsig kills the child if this process dies first.
func setPdeathsig(attr *syscall.SysProcAttr) {
	attr.Pdeathsig = syscall.SIGKILL
}
