package curve

// EaseFunc shapes the interpolation parameter inside a key pair, e.g.
// one of the github.com/fogleman/ease functions.
type EaseFunc func(t float64) float64

func NewFixedValue[V Lerpable[V]](value V) Curve[V] {
	return &fixedValueCurve[V]{value: value}
}

type fixedValueCurve[V Lerpable[V]] struct {
	value V
}

func (impl *fixedValueCurve[V]) Value(_ float32) V {
	return impl.value
}

// NewLinearKeyFrame builds a piecewise-linear curve over the given keys.
// Keys must be non-empty and strictly ascending in time; composite values
// must carry the same channel count on every key.
func NewLinearKeyFrame[V Lerpable[V]](keys []Key[V]) (Curve[V], error) {
	return NewEasedKeyFrame(keys, nil)
}

// NewEasedKeyFrame is NewLinearKeyFrame with an easing function shaping
// the interpolation parameter inside each key pair. A nil function means
// linear.
func NewEasedKeyFrame[V Lerpable[V]](keys []Key[V], fn EaseFunc) (Curve[V], error) {
	if err := checkKeys(keys); err != nil {
		return nil, err
	}

	return &keyFrameCurve[V]{
		keys:   keys,
		easeFn: fn,
	}, nil
}

func checkKeys[V Lerpable[V]](keys []Key[V]) error {
	if len(keys) == 0 {
		return ErrNoKeys
	}

	channels := -1

	for idx, key := range keys {
		if idx > 0 && keys[idx-1].Time >= key.Time {
			return ErrUnorderedKeys
		}

		cc, ok := any(key.Value).(channelCounter)
		if !ok {
			continue
		}

		if channels < 0 {
			channels = cc.ChannelCount()

			continue
		}

		if cc.ChannelCount() != channels {
			return ErrChannelMismatch
		}
	}

	return nil
}

type keyFrameCurve[V Lerpable[V]] struct {
	keys   []Key[V]
	easeFn EaseFunc
}

func (impl *keyFrameCurve[V]) Value(t float32) V {
	keys := impl.keys

	if t <= keys[0].Time {
		return keys[0].Value
	}

	if t >= keys[len(keys)-1].Time {
		return keys[len(keys)-1].Value
	}

	for idx := 0; idx < len(keys)-1; idx++ {
		k1 := keys[idx]
		k2 := keys[idx+1]

		if t >= k2.Time {
			continue
		}

		s := (t - k1.Time) / (k2.Time - k1.Time)
		if impl.easeFn != nil {
			s = float32(impl.easeFn(float64(s)))
		}

		return k1.Value.Lerp(k2.Value, s)
	}

	return keys[len(keys)-1].Value
}
