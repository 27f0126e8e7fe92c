package logx

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var callerOnce sync.Once

// shortCaller trims the caller path to the file name and pads it to a fixed width.
func shortCaller(pc uintptr, file string, line int) string {
	short := file
	for i := len(file) - 1; i > 0; i-- {
		if file[i] == '/' {
			short = file[i+1:]
			break
		}
	}
	return fmt.Sprintf("%-16s", fmt.Sprintf("%s:%d", short, line))
}

// NewConsoleLogger writes human-readable lines to w at level and above. The first
// call installs the short caller format in zerolog's global settings.
func NewConsoleLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	callerOnce.Do(func() { zerolog.CallerMarshalFunc = shortCaller })
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Caller().Logger()
}

// ParseLevel maps a flag value such as "debug" to a level, defaulting to info.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}
