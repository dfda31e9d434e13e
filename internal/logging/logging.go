// Package logging configures the process-wide logger.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup applies the configured level to the default logger. The debug flag
// wins over the configured level. Unknown levels fall back to warn.
func Setup(level string, debug bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	if debug {
		log.SetLevel(log.DebugLevel)
		return
	}
	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.WarnLevel
	}
	log.SetLevel(parsed)
}
