package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	root := buildRoot()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildRoot() *cobra.Command {
	serveFlags := &ServeFlags{}
	playFlags := &PlayFlags{}
	stopFlags := &RemoteFlags{}
	restartFlags := &RemoteFlags{}
	statusFlags := &RemoteFlags{}
	healthFlags := &RemoteFlags{}
	videosFlags := &VideosFlags{}

	root := &cobra.Command{
		Use:   "vlcd",
		Short: "HTTP control surface for a fullscreen VLC kiosk player",
		Long: `vlcd runs a single fullscreen VLC process and exposes start, stop,
restart and status over HTTP for a browser console.

Examples:
  vlcd serve --config=vlcd.toml       # Start the daemon
  vlcd play --video=/media/loop.mp4   # Start playback via the daemon
  vlcd status                         # Poll the player status`,
	}

	root.AddCommand(
		createServeCommand(serveFlags),
		createPlayCommand(playFlags),
		createStopCommand(stopFlags),
		createRestartCommand(restartFlags),
		createStatusCommand(statusFlags),
		createHealthCommand(healthFlags),
		createVideosCommand(videosFlags),
	)
	return root
}

func addRemoteFlags(cmd *cobra.Command, flags *RemoteFlags) {
	cmd.Flags().StringVar(&flags.APIUrl, "api-url", "http://localhost:8000", "daemon URL")
	cmd.Flags().StringVar(&flags.APIKey, "api-key", "", "API key when the daemon requires one")
	cmd.Flags().DurationVar(&flags.APITimeout, "api-timeout", 10*time.Second, "request timeout")
}

func createServeCommand(flags *ServeFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [config.toml]",
		Short: "Start the vlcd daemon",
		Long: `Start the vlcd daemon server. Without a config file it listens on
0.0.0.0:8000 with the platform default VLC binary.

Examples:
  vlcd serve
  vlcd serve vlcd.toml
  vlcd serve --config=vlcd.toml --daemonize`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServeCommand(flags, args)
		},
	}
	cmd.Flags().StringVar(&flags.ConfigPath, "config", "", "path to TOML config file (optional)")
	cmd.Flags().BoolVar(&flags.Daemonize, "daemonize", false, "run as daemon in background")
	cmd.Flags().StringVar(&flags.PidFile, "pidfile", "", "write the daemon PID to this file")
	cmd.Flags().StringVar(&flags.LogFile, "logfile", "", "redirect daemon output to file")
	return cmd
}

func createPlayCommand(flags *PlayFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start playback of a video",
		Long: `Ask the daemon to play a video file. Playback loops fullscreen unless
disabled.

Examples:
  vlcd play --video=/media/loop.mp4
  vlcd play --video=/media/demo.mp4 --no-loop --windowed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayCommand(flags)
		},
	}
	cmd.Flags().StringVar(&flags.Video, "video", "", "path to the video file on the daemon host (required)")
	cmd.Flags().BoolVar(&flags.NoLoop, "no-loop", false, "play once instead of looping")
	cmd.Flags().BoolVar(&flags.Windowed, "windowed", false, "play windowed instead of fullscreen")
	addRemoteFlags(cmd, &flags.RemoteFlags)
	if err := cmd.MarkFlagRequired("video"); err != nil {
		panic(err)
	}
	return cmd
}

func createStopCommand(flags *RemoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stop",
		Short: "Stop playback",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStopCommand(flags)
		},
	}
	addRemoteFlags(cmd, flags)
	return cmd
}

func createRestartCommand(flags *RemoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restart the current video from the beginning",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestartCommand(flags)
		},
	}
	addRemoteFlags(cmd, flags)
	return cmd
}

func createStatusCommand(flags *RemoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the player status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusCommand(flags)
		},
	}
	addRemoteFlags(cmd, flags)
	return cmd
}

func createHealthCommand(flags *RemoteFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check daemon health",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealthCommand(flags)
		},
	}
	addRemoteFlags(cmd, flags)
	return cmd
}

func createVideosCommand(flags *VideosFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "videos",
		Short: "List playable files in a directory on the daemon host",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVideosCommand(flags)
		},
	}
	cmd.Flags().StringVar(&flags.Directory, "directory", "", "directory to list (required)")
	addRemoteFlags(cmd, &flags.RemoteFlags)
	if err := cmd.MarkFlagRequired("directory"); err != nil {
		panic(err)
	}
	return cmd
}
