package blockpi

import (
	"os"
)

// DebugEnabled controls whether or not debugging is enabled for blockpi. It is
// set automatically based on the BLOCKPI_DEBUG environment variable.
var DebugEnabled bool

func init() {
	// Check whether or not debugging should be enabled.
	DebugEnabled = os.Getenv("BLOCKPI_DEBUG") == "1"
}
