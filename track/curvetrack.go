package track

import (
	"time"

	"github.com/sgostarter/libanimation/curve"
)

// NewCurveTrack couples a curve, a time mapper and a target property
// into a leaf track.
func NewCurveTrack(c curve.Curve[curve.Animatable], mapper TimeMapper, property PropRef) (Track, error) {
	if c == nil {
		return nil, ErrNoCurve
	}

	return &curveTrack{
		curve:    c,
		mapper:   mapper,
		property: property,
	}, nil
}

// NewFixedValueTrack is a curve track that holds one value forever.
func NewFixedValueTrack(property PropRef, value curve.Animatable) Track {
	mapper, _ := NewTimeMapper(0, 7*24*time.Hour, LoopForever, CurveTimeAbsolute)

	return &curveTrack{
		curve:    curve.NewFixedValue(value),
		mapper:   mapper,
		property: property,
	}
}

type curveTrack struct {
	curve    curve.Curve[curve.Animatable]
	mapper   TimeMapper
	property PropRef
}

func (impl *curveTrack) ValueAt(elapsed time.Duration) []PropValue {
	param, ok := impl.mapper.Map(elapsed)
	if !ok {
		return nil
	}

	return []PropValue{
		{
			Property: impl.property,
			Value:    impl.curve.Value(param),
		},
	}
}
