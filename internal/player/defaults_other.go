//go:build !windows && !darwin

package player

const (
	defaultBinPath = "/usr/bin/cvlc"
	quietFlag      = "--quiet"
)
