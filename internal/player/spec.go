package player

import "strings"

// Spec describes how the player binary is invoked. The zero value uses the
// platform default VLC binary and the stock kiosk argument template.
type Spec struct {
	BinPath   string   `json:"bin_path"`   // player binary; platform default when empty
	ExtraArgs []string `json:"extra_args"` // appended after the template, before the video path
}

// Bin returns the effective player binary path.
func (s Spec) Bin() string {
	if s.BinPath != "" {
		return s.BinPath
	}
	return defaultBinPath
}

// baseArgs returns the fixed argument template: no on-screen display,
// fullscreen, looping, no title overlay, no subtitle auto-detection, quiet,
// and frame-drop tolerant. cvlc is already a headless interface, so
// "--intf dummy" is only added for other binaries.
func (s Spec) baseArgs() []string {
	var args []string
	if !strings.HasSuffix(s.Bin(), "cvlc") {
		args = append(args, "--intf", "dummy")
	}
	args = append(args,
		"--no-osd",
		"--fullscreen",
		"--loop",
		"--no-video-title-show",
		"--no-sub-autodetect-file",
		quietFlag,
		"--drop-late-frames",
		"--skip-frames",
	)
	return args
}

// Command builds the full argv for playing videoPath. loop=false removes
// exactly the loop flag and fullscreen=false exactly the fullscreen flag;
// the video path is always the final argument.
func (s Spec) Command(videoPath string, loop, fullscreen bool) []string {
	args := s.baseArgs()
	if !loop {
		args = removeArg(args, "--loop")
	}
	if !fullscreen {
		args = removeArg(args, "--fullscreen")
	}
	args = append(args, s.ExtraArgs...)

	argv := make([]string, 0, len(args)+2)
	argv = append(argv, s.Bin())
	argv = append(argv, args...)
	argv = append(argv, videoPath)
	return argv
}

func removeArg(args []string, flag string) []string {
	out := args[:0]
	for _, a := range args {
		if a != flag {
			out = append(out, a)
		}
	}
	return out
}
