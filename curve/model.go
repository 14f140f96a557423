package curve

// Scalar is a single-channel curve value.
type Scalar float32

func (s Scalar) Lerp(to Scalar, t float32) Scalar {
	return s + (to-s)*Scalar(t)
}

// Animatable is a group of numeric channels animated as one unit, e.g.
// the components of a vector or quaternion.
type Animatable struct {
	Channels []float32
}

func NewFloat(v float32) Animatable {
	return Animatable{Channels: []float32{v}}
}

func NewChannels(vs ...float32) Animatable {
	return Animatable{Channels: vs}
}

func (a Animatable) Float() (v float32) {
	if len(a.Channels) > 0 {
		v = a.Channels[0]
	}

	return
}

func (a Animatable) ChannelCount() int {
	return len(a.Channels)
}

func (a Animatable) Lerp(to Animatable, t float32) Animatable {
	n := len(a.Channels)
	if len(to.Channels) < n {
		n = len(to.Channels)
	}

	vs := make([]float32, n)
	for idx := 0; idx < n; idx++ {
		vs[idx] = a.Channels[idx] + (to.Channels[idx]-a.Channels[idx])*t
	}

	return Animatable{Channels: vs}
}

// Key is an authored (time, value) anchor point on a key frame curve.
type Key[V Lerpable[V]] struct {
	Time  float32
	Value V
}

type channelCounter interface {
	ChannelCount() int
}
