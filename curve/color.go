package curve

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorKey anchors an "#rrggbb" color at a point on a curve.
type ColorKey struct {
	Time float32
	Hex  string
}

// NewColorKeyFrame builds a curve that blends between authored hex colors
// and emits them as 3-channel RGB Animatable values.
func NewColorKeyFrame(keys []ColorKey) (Curve[Animatable], error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}

	cks := make([]Key[colorKeyValue], 0, len(keys))

	for idx, key := range keys {
		if idx > 0 && keys[idx-1].Time >= key.Time {
			return nil, ErrUnorderedKeys
		}

		c, err := colorful.Hex(key.Hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrBadColor, key.Hex)
		}

		cks = append(cks, Key[colorKeyValue]{
			Time:  key.Time,
			Value: colorKeyValue{c: c},
		})
	}

	inner, err := NewLinearKeyFrame(cks)
	if err != nil {
		return nil, err
	}

	return &colorKeyFrameCurve{inner: inner}, nil
}

type colorKeyValue struct {
	c colorful.Color
}

func (v colorKeyValue) Lerp(to colorKeyValue, t float32) colorKeyValue {
	return colorKeyValue{c: v.c.BlendRgb(to.c, float64(t))}
}

type colorKeyFrameCurve struct {
	inner Curve[colorKeyValue]
}

func (impl *colorKeyFrameCurve) Value(t float32) Animatable {
	c := impl.inner.Value(t).c

	return NewChannels(float32(c.R), float32(c.G), float32(c.B))
}
