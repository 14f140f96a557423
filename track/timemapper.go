package track

import (
	"time"
)

type Loop int

const (
	LoopOnce Loop = iota
	LoopForever
)

type CurveTime int

const (
	// CurveTimeAbsolute expects curve keys between 0 and the duration,
	// in seconds.
	CurveTimeAbsolute CurveTime = iota
	// CurveTimeRelative expects curve keys between 0 and 1.
	CurveTimeRelative
)

// TimeMapper converts elapsed playback time into the scalar parameter a
// curve expects, handling offset, looping and absolute/relative scaling.
// Immutable once built.
type TimeMapper struct {
	offset    time.Duration
	duration  time.Duration
	loop      Loop
	curveTime CurveTime
}

func NewTimeMapper(offset, duration time.Duration, loop Loop, curveTime CurveTime) (TimeMapper, error) {
	if duration <= 0 {
		return TimeMapper{}, ErrInvalidDuration
	}

	return TimeMapper{
		offset:    offset,
		duration:  duration,
		loop:      loop,
		curveTime: curveTime,
	}, nil
}

// Map returns ok=false once a LoopOnce mapper runs past its duration.
// Looping wraps on whole milliseconds so long runtimes do not drift.
func (m TimeMapper) Map(elapsed time.Duration) (param float32, ok bool) {
	local := elapsed - m.offset

	if local > m.duration {
		if m.loop == LoopOnce {
			return
		}

		local = time.Duration(local.Milliseconds()%m.duration.Milliseconds()) * time.Millisecond
	}

	switch m.curveTime {
	case CurveTimeRelative:
		param = float32(local.Milliseconds()) / float32(m.duration.Milliseconds())
	default:
		param = float32(local.Milliseconds()) / 1000.0
	}

	ok = true

	return
}
