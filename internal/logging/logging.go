// Package logging configures the shared application logger. The TUI owns
// the terminal while running, so log output never goes to stderr: it goes
// to the file named by ENVY_TUI_LOG, or nowhere when the variable is unset.
package logging

import (
	"fmt"
	"io"
	"os"

	clog "github.com/charmbracelet/log"
)

// EnvLogFile names the environment variable holding the debug log path.
const EnvLogFile = "ENVY_TUI_LOG"

// Logger is the shared application logger. It discards everything until
// Setup points it at a file.
var Logger = clog.NewWithOptions(io.Discard, clog.Options{
	ReportTimestamp: true,
})

// Setup redirects Logger to the file named by ENVY_TUI_LOG and returns a
// close function. When the variable is unset, logging stays off and the
// returned function is a no-op.
func Setup() (func(), error) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return func() {}, fmt.Errorf("open log file %s: %w", path, err)
	}
	Logger = clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		Level:           clog.DebugLevel,
	})
	return func() { _ = f.Close() }, nil
}
