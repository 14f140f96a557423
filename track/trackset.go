package track

import (
	"time"
)

// NewTrackSet evaluates its sub tracks in declaration order and
// concatenates their results. Duplicate properties across sub tracks are
// all emitted; resolving them is the consumer's concern.
func NewTrackSet(tracks ...Track) Track {
	return &trackSet{tracks: tracks}
}

type trackSet struct {
	tracks []Track
}

func (impl *trackSet) ValueAt(elapsed time.Duration) []PropValue {
	var vs []PropValue

	for _, t := range impl.tracks {
		vs = append(vs, t.ValueAt(elapsed)...)
	}

	return vs
}
