// Package progress carries user-facing status messages from long-running
// operations to the CLI or TUI.
//
//	gen := book.NewGenerator(fs, settings, logger, func(e progress.Event) {
//	    fmt.Println(e.Message)
//	})
package progress

import (
	"fmt"

	"go.uber.org/zap"
)

// Level indicates the severity/type of a progress message.
type Level int

const (
	LevelInfo Level = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// String returns the lowercase level name.
func (l Level) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// Event represents a progress update.
type Event struct {
	Message string
	Level   Level
}

// Func receives progress events. A nil Func discards them.
type Func func(Event)

// Send delivers a formatted message at level.
func (f Func) Send(level Level, format string, args ...any) {
	if f == nil {
		return
	}
	f(Event{Message: fmt.Sprintf(format, args...), Level: level})
}

// Log returns a Func that writes events to logger.
// Verbose events are logged at debug level.
func Log(logger *zap.Logger) Func {
	return func(e Event) {
		switch e.Level {
		case LevelVerbose:
			logger.Debug(e.Message)
		case LevelWarning:
			logger.Warn(e.Message)
		case LevelError:
			logger.Error(e.Message)
		default:
			logger.Info(e.Message, zap.Stringer("level", e.Level))
		}
	}
}
