//go:build windows

package player

// VLC has no console-quiet mode on Windows; --dummy-quiet silences the dummy
// interface window instead.
const (
	defaultBinPath = `C:\Program Files\VideoLAN\VLC\vlc.exe`
	quietFlag      = "--dummy-quiet"
)
