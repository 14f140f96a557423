package translate

import "errors"

var (
	ErrNotTagged       = errors.New("not a tagged block")
	ErrUnrecognizedTag = errors.New("unrecognized tag")
	ErrMissingField    = errors.New("missing field")
	ErrBadField        = errors.New("bad field")
)
