package main

import "time"

// ServeFlags holds flags for the serve command.
type ServeFlags struct {
	ConfigPath string
	Daemonize  bool
	PidFile    string
	LogFile    string
}

// RemoteFlags holds daemon connection flags shared by the remote commands.
type RemoteFlags struct {
	APIUrl     string
	APIKey     string
	APITimeout time.Duration
}

// PlayFlags holds flags for the play command.
type PlayFlags struct {
	RemoteFlags
	Video    string
	NoLoop   bool
	Windowed bool
}

// VideosFlags holds flags for the videos command.
type VideosFlags struct {
	RemoteFlags
	Directory string
}
