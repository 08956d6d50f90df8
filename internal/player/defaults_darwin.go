//go:build darwin

package player

const (
	defaultBinPath = "/Applications/VLC.app/Contents/MacOS/VLC"
	quietFlag      = "--quiet"
)
