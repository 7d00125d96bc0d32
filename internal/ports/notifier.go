package ports

import (
	"context"
	"time"
)

// Level classifies a Notice.
type Level int

// Notice levels.
const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Display hints how prominently a Notice should be shown.
type Display int

// Display hints.
const (
	// DisplayConsole appends the notice to a scrolling log.
	DisplayConsole Display = iota
	// DisplayAlert interrupts the user until dismissed.
	DisplayAlert
)

// Notice is one user-visible outcome of an action.
type Notice struct {
	Action  string
	Level   Level
	Display Display
	Title   string
	// Payload is rendered as structured data (json or yaml) when set.
	Payload any
	Err     error
	At      time.Time
}

// Notifier receives every outcome the application layer produces.
// Implementations must be safe for concurrent use: subscription channels
// notify from their own goroutines.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}
