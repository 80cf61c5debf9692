package astilibav

import (
	"strings"

	"github.com/asticode/go-astiav"
	"github.com/asticode/go-astikit"
)

// HandleLogs forwards libav logs to the logger
func HandleLogs(i astikit.StdLogger, lvl astiav.LogLevel) {
	// Set log level
	astiav.SetLogLevel(lvl)

	// Set log callback
	c := logCallback(astikit.AdaptStdLogger(i))
	astiav.SetLogCallback(func(_ astiav.Classer, l astiav.LogLevel, _, msg string) { c(l, msg) })
}

func logCallback(l astikit.CompleteLogger) func(lvl astiav.LogLevel, msg string) {
	return func(lvl astiav.LogLevel, msg string) {
		// Sanitize
		msg = strings.TrimSpace(msg)
		if msg == "" {
			return
		}

		// Add prefix
		msg = "astilibav: " + msg

		// Add level
		switch lvl {
		case astiav.LogLevelDebug, astiav.LogLevelVerbose:
			l.Debug(msg)
		case astiav.LogLevelInfo:
			l.Info(msg)
		case astiav.LogLevelError, astiav.LogLevelFatal, astiav.LogLevelPanic:
			if lvl == astiav.LogLevelFatal {
				msg = "FATAL! " + msg
			} else if lvl == astiav.LogLevelPanic {
				msg = "PANIC! " + msg
			}
			l.Error(msg)
		case astiav.LogLevelWarning:
			l.Warn(msg)
		}
	}
}
