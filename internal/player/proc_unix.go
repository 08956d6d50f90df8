//go:build !windows

package player

import "syscall"

// sysProcAttr puts the player in its own process group so termination
// signals reach VLC and any children it forks.
func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}

func (p *proc) signalTerm() error {
	return syscall.Kill(-p.pid, syscall.SIGTERM)
}

func (p *proc) signalKill() error {
	return syscall.Kill(-p.pid, syscall.SIGKILL)
}
