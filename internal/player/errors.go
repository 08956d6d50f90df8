package player

import "errors"

// ErrVideoNotFound is returned by Start when the requested path does not
// refer to an existing file. The HTTP layer maps it to 404.
var ErrVideoNotFound = errors.New("video file not found")

// ErrNothingToRestart is returned by Restart when no video path is recorded.
// The HTTP layer maps it to 400.
var ErrNothingToRestart = errors.New("no video currently associated with the player")
