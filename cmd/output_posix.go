//go:build !windows

package cmd

const (
	// statusLineFormat is the format string used for status line printing. The
	// content is truncated and padded to exactly 80 characters, the minimum
	// width of a VT100 terminal.
	statusLineFormat = "\r%-80.80s"
	// statusLineClearFormat is the format string used to clear the status line.
	statusLineClearFormat = statusLineFormat + "\r"
)
