package tui

import (
	"time"

	"github.com/young1lin/consolegrid/internal/watch"
	"github.com/young1lin/consolegrid/table"
)

// GridLoadedMsg is sent when the grid has been (re)built from its source
type GridLoadedMsg struct {
	Grid *table.Grid
	Time time.Time
}

// ErrorMsg is sent when loading or rendering fails
type ErrorMsg struct {
	Err error
}

// FileChangedMsg is sent when a watched input file changes
type FileChangedMsg struct {
	Event watch.Event
}

// WatcherStartedMsg is sent when the file watcher starts
type WatcherStartedMsg struct{}

// WatcherFailedMsg is sent when the file watcher reports an error
type WatcherFailedMsg struct {
	Err error
}

// WatcherStoppedMsg is sent when the file watcher's channels close
type WatcherStoppedMsg struct{}
