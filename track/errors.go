package track

import "errors"

var (
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidWeight    = errors.New("invalid weight")
	ErrNoCurve          = errors.New("no curve")
	ErrResourceNotFound = errors.New("resource not found")
)
