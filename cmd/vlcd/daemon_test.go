package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestPidFileRoundTrip(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "vlcd.pid")

	if err := writePidFile(pidFile, os.Getpid()); err != nil {
		t.Fatalf("writePidFile: %v", err)
	}
	b, err := os.ReadFile(pidFile)
	if err != nil {
		t.Fatalf("read pid file: %v", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(b)))
	if err != nil || pid != os.Getpid() {
		t.Fatalf("pid mismatch: %q (%v)", b, err)
	}

	if err := removePidFile(pidFile); err != nil {
		t.Fatalf("removePidFile: %v", err)
	}
	if _, err := os.Stat(pidFile); !os.IsNotExist(err) {
		t.Fatalf("pid file not removed")
	}
}

func TestRemovePidFileEmptyPath(t *testing.T) {
	if err := removePidFile(""); err != nil {
		t.Fatalf("empty path should be a no-op: %v", err)
	}
}
