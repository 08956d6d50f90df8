//go:build windows

package player

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}

// Windows has no graceful terminate signal for GUI-less processes; both
// paths use TerminateProcess via os.Process.Kill.
func (p *proc) signalTerm() error {
	return p.cmd.Process.Kill()
}

func (p *proc) signalKill() error {
	return p.cmd.Process.Kill()
}
