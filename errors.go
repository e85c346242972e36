package pgpframe

import "fmt"

var (
	// ErrPrematureEOF is returned when the input runs out in the middle
	// of a header field or before a declared content length is satisfied.
	ErrPrematureEOF = fmt.Errorf("pgpframe: premature end of input")

	// ErrFirstBitZero is returned when a tag byte has its top bit clear.
	// Every valid OpenPGP tag byte has the top bit set.
	ErrFirstBitZero = fmt.Errorf("pgpframe: first bit of the tag byte is zero")

	// ErrBadTag is returned when the decoded tag is 0, which RFC 4880
	// reserves and never assigns.
	ErrBadTag = fmt.Errorf("pgpframe: packet tag is zero (reserved)")

	// ErrPartialLength is returned for the length encodings this package
	// deliberately does not support: new-format partial body lengths
	// (keybytes 224-254) and the old-format indefinite-length selector.
	ErrPartialLength = fmt.Errorf("pgpframe: partial and indefinite lengths are not supported")
)
