package ports

// LineSource supplies command lines in input order.
type LineSource interface {
	// ReadLines returns every line with its terminator preserved.
	ReadLines() ([]string, error)
	GetSourceIdentifier() string
}
