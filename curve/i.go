package curve

// Lerpable is the minimal shape a curve value must support: a
// componentwise linear interpolation towards another value of the same
// shape.
type Lerpable[V any] interface {
	Lerp(to V, t float32) V
}

// Curve produces a value for a scalar parameter. The implementation set
// is closed: fixed value, linear key frame, eased key frame and color
// key frame.
type Curve[V Lerpable[V]] interface {
	Value(t float32) V
}
