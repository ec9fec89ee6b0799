package cmd

import (
	"os"
	"syscall"
)

// TerminationSignals are those signals which blockpi considers to be requesting
// termination. SIGTERM is emulated on Windows for console close and shutdown
// events.
var TerminationSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
}
