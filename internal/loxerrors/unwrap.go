package loxerrors

// unwrapper matches what errors.Is and errors.As look for on single-cause errors.
type unwrapper interface {
	Unwrap() error
}

var (
	_ unwrapper = (*ScannerError)(nil)
	_ unwrapper = (*ParserError)(nil)
)
