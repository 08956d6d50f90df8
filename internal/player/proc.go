package player

import (
	"io"
	"os/exec"
	"time"
)

// proc wraps one spawned player process. The manager holds at most one live
// proc; the supervisor goroutine is the only caller of cmd.Wait and closes
// done once the exit status is reaped.
type proc struct {
	cmd    *exec.Cmd
	pid    int
	stderr *tailBuffer
	done   chan struct{}
	// waitErr is written by the supervisor before done is closed and must
	// only be read after done.
	waitErr error
	// closers for rotating capture files; closed once by the supervisor
	// after the exit status is reaped.
	closers []io.Closer
}

func (p *proc) closeCapture() {
	for _, c := range p.closers {
		_ = c.Close()
	}
	p.closers = nil
}

func newProc(cmd *exec.Cmd, stderr *tailBuffer) *proc {
	return &proc{
		cmd:    cmd,
		pid:    cmd.Process.Pid,
		stderr: stderr,
		done:   make(chan struct{}),
	}
}

// exited reports whether the process has been reaped, and its exit code.
func (p *proc) exited() (bool, int) {
	select {
	case <-p.done:
		return true, exitCode(p.waitErr)
	default:
		return false, 0
	}
}

// terminate asks the process to exit, waits up to grace for the supervisor
// to reap it, then escalates to a forced kill. It returns the signalling
// error, not the process exit status.
func (p *proc) terminate(grace time.Duration) error {
	if done, _ := p.exited(); done {
		return nil
	}
	if err := p.signalTerm(); err != nil {
		// The process may have exited between the check and the signal.
		if done, _ := p.exited(); done {
			return nil
		}
		return err
	}
	select {
	case <-p.done:
		return nil
	case <-time.After(grace):
	}
	if err := p.signalKill(); err != nil {
		if done, _ := p.exited(); done {
			return nil
		}
		return err
	}
	select {
	case <-p.done:
	case <-time.After(500 * time.Millisecond):
		// best-effort; the supervisor will still reap it
	}
	return nil
}

// exitCode extracts the child's exit code from cmd.Wait's error.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	if ee, ok := err.(*exec.ExitError); ok {
		return ee.ExitCode()
	}
	return -1
}
