// Package library lists playable files for the browser console's picker.
package library

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrDirNotFound is returned when the requested directory does not exist.
var ErrDirNotFound = errors.New("directory not found")

var videoExtensions = map[string]bool{
	".mp4":  true,
	".mkv":  true,
	".avi":  true,
	".mov":  true,
	".webm": true,
	".m4v":  true,
}

// ListVideos returns full paths of video files directly inside dir, sorted.
func ListVideos(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return nil, ErrDirNotFound
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if videoExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
