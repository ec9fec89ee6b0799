package report

// Format identifies a report output format.
type Format uint8

const (
	// FormatText indicates a human-readable text report.
	FormatText Format = iota
	// FormatJSON indicates a single-line JSON report.
	FormatJSON
)

// NameToFormat converts a format name to the corresponding Format value. An
// empty name selects FormatText. It returns a boolean indicating whether or not
// the name was valid.
func NameToFormat(name string) (Format, bool) {
	switch name {
	case "", "text":
		return FormatText, true
	case "json":
		return FormatJSON, true
	default:
		return FormatText, false
	}
}

// String provides a human-readable representation of a format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}
