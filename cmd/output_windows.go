package cmd

const (
	// statusLineFormat is the format string used for status line printing. The
	// content is limited to 79 characters because carriage return wipes don't
	// work on Windows once the last column of the console has been written.
	statusLineFormat = "\r%-79.79s"
	// statusLineClearFormat is the format string used to clear the status line.
	statusLineClearFormat = statusLineFormat + "\r"
)
