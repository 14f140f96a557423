package curve

import "errors"

var (
	ErrNoKeys          = errors.New("no keys")
	ErrUnorderedKeys   = errors.New("unordered keys")
	ErrChannelMismatch = errors.New("channel mismatch")
	ErrBadColor        = errors.New("bad color")
)
