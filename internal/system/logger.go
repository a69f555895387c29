package system

import (
	"os"

	clog "github.com/charmbracelet/log"
)

// Logger is the shared application logger. It prints to stderr so log
// output never interleaves with the terminal screen on stdout.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

