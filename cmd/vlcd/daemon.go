package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
)

// daemonize re-executes the current binary in the background and exits
// the parent. The child runs with --daemonize stripped from its args so
// it falls through to the foreground serve path.
func daemonize(pidFile string, logFile string) error {
	if os.Getppid() == 1 {
		// Already detached
		return nil
	}

	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}

	var newArgs []string
	skipNext := false
	for _, arg := range os.Args[1:] {
		if skipNext {
			skipNext = false
			continue
		}
		if arg == "--daemonize" {
			continue
		}
		if arg == "--pidfile" || arg == "--logfile" {
			skipNext = true
			continue
		}
		newArgs = append(newArgs, arg)
	}

	if pidFile != "" {
		newArgs = append(newArgs, "--pidfile", pidFile)
	}
	if logFile != "" {
		newArgs = append(newArgs, "--logfile", logFile)
	}

	// #nosec 204
	cmd := exec.Command(executable, newArgs...)
	configureDaemonAttrs(cmd)
	cmd.Stdin = nil

	if logFile != "" {
		// #nosec 304
		logF, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		cmd.Stdout = logF
		cmd.Stderr = logF
	} else {
		cmd.Stdout = nil
		cmd.Stderr = nil
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start daemon process: %w", err)
	}

	if pidFile != "" {
		if err := writePidFile(pidFile, cmd.Process.Pid); err != nil {
			return fmt.Errorf("failed to write PID file: %w", err)
		}
	}

	fmt.Printf("Daemon started with PID %d\n", cmd.Process.Pid)

	os.Exit(0)
	return nil
}

// writePidFile writes the daemon PID to a file
func writePidFile(pidFile string, pid int) error {
	// #nosec 302
	f, err := os.OpenFile(pidFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(strconv.Itoa(pid))
	return err
}

// removePidFile removes the PID file
func removePidFile(pidFile string) error {
	if pidFile == "" {
		return nil
	}
	return os.Remove(pidFile)
}
