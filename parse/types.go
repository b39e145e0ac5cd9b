package parse

import "errors"

// Format names a peak-list file format.
type Format string

// Supported peak-list formats.
const (
	Sparky     Format = "sparky"
	AutoAssign Format = "autoassign"
	JSON       Format = "json"
	CSTable    Format = "cstable"
)

var (
	// ErrUnknownFormat indicates a format name outside the supported set.
	ErrUnknownFormat = errors.New("parse: unknown peak list format")

	// ErrFormat indicates malformed peak list content.
	ErrFormat = errors.New("parse: malformed peak list")
)
