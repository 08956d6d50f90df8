package player

import (
	"slices"
	"testing"
)

func TestSpecBinDefault(t *testing.T) {
	if got := (Spec{}).Bin(); got != defaultBinPath {
		t.Fatalf("default bin: got %q want %q", got, defaultBinPath)
	}
	if got := (Spec{BinPath: "/opt/vlc"}).Bin(); got != "/opt/vlc" {
		t.Fatalf("explicit bin not used: got %q", got)
	}
}

func TestCommandTemplateOrder(t *testing.T) {
	s := Spec{BinPath: "/usr/bin/vlc"}
	argv := s.Command("/media/a.mp4", true, true)

	if argv[0] != "/usr/bin/vlc" {
		t.Fatalf("argv[0]: got %q", argv[0])
	}
	if argv[len(argv)-1] != "/media/a.mp4" {
		t.Fatalf("video path must be last, got %q", argv[len(argv)-1])
	}
	for _, want := range []string{"--intf", "dummy", "--no-osd", "--fullscreen", "--loop", "--no-video-title-show", "--no-sub-autodetect-file", "--drop-late-frames", "--skip-frames"} {
		if !slices.Contains(argv, want) {
			t.Fatalf("missing %q in %v", want, argv)
		}
	}
}

func TestCommandCvlcSkipsDummyInterface(t *testing.T) {
	s := Spec{BinPath: "/usr/bin/cvlc"}
	argv := s.Command("/media/a.mp4", true, true)
	if slices.Contains(argv, "--intf") || slices.Contains(argv, "dummy") {
		t.Fatalf("cvlc must not get --intf dummy: %v", argv)
	}
}

func TestCommandFlagRemoval(t *testing.T) {
	s := Spec{BinPath: "/usr/bin/vlc"}

	argv := s.Command("/media/a.mp4", false, true)
	if slices.Contains(argv, "--loop") {
		t.Fatalf("loop flag not removed: %v", argv)
	}
	if !slices.Contains(argv, "--fullscreen") {
		t.Fatalf("fullscreen flag should remain: %v", argv)
	}

	argv = s.Command("/media/a.mp4", true, false)
	if slices.Contains(argv, "--fullscreen") {
		t.Fatalf("fullscreen flag not removed: %v", argv)
	}
	if !slices.Contains(argv, "--loop") {
		t.Fatalf("loop flag should remain: %v", argv)
	}
}

func TestCommandExtraArgsBeforeVideoPath(t *testing.T) {
	s := Spec{BinPath: "/usr/bin/vlc", ExtraArgs: []string{"--verbose", "2"}}
	argv := s.Command("/media/a.mp4", true, true)

	i := slices.Index(argv, "--verbose")
	if i < 0 {
		t.Fatalf("extra args not present: %v", argv)
	}
	if argv[i+1] != "2" || argv[i+2] != "/media/a.mp4" {
		t.Fatalf("extra args must come right before the video path: %v", argv)
	}
}
