package curve

import (
	"testing"

	"github.com/fogleman/ease"
	"github.com/stretchr/testify/assert"
)

func TestLinearKeyFrame(t *testing.T) {
	c, err := NewLinearKeyFrame([]Key[Scalar]{
		{Time: 0, Value: 0},
		{Time: 1, Value: 1},
	})
	assert.Nil(t, err)

	assert.EqualValues(t, 0.25, c.Value(0.25))
	assert.EqualValues(t, 0, c.Value(-1))
	assert.EqualValues(t, 1, c.Value(2))
	assert.EqualValues(t, 0, c.Value(0))
	assert.EqualValues(t, 1, c.Value(1))
}

func TestLinearKeyFrameSegments(t *testing.T) {
	c, err := NewLinearKeyFrame([]Key[Scalar]{
		{Time: 0, Value: 0},
		{Time: 1, Value: 1},
		{Time: 2, Value: 0},
	})
	assert.Nil(t, err)

	assert.EqualValues(t, 0.5, c.Value(0.5))
	assert.EqualValues(t, 1, c.Value(1))
	assert.EqualValues(t, 0.5, c.Value(1.5))
	assert.EqualValues(t, 0, c.Value(3))
}

func TestLinearKeyFrameAnimatable(t *testing.T) {
	c, err := NewLinearKeyFrame([]Key[Animatable]{
		{Time: 0, Value: NewChannels(0, 10)},
		{Time: 1, Value: NewChannels(1, 20)},
	})
	assert.Nil(t, err)

	assert.Equal(t, NewChannels(0.5, 15), c.Value(0.5))
	assert.Equal(t, NewChannels(0, 10), c.Value(-1))
	assert.Equal(t, NewChannels(1, 20), c.Value(2))
}

func TestKeyFrameErrors(t *testing.T) {
	_, err := NewLinearKeyFrame([]Key[Scalar]{})
	assert.ErrorIs(t, err, ErrNoKeys)

	_, err = NewLinearKeyFrame([]Key[Scalar]{
		{Time: 1, Value: 0},
		{Time: 0, Value: 1},
	})
	assert.ErrorIs(t, err, ErrUnorderedKeys)

	_, err = NewLinearKeyFrame([]Key[Scalar]{
		{Time: 0, Value: 0},
		{Time: 0, Value: 1},
	})
	assert.ErrorIs(t, err, ErrUnorderedKeys)

	_, err = NewLinearKeyFrame([]Key[Animatable]{
		{Time: 0, Value: NewChannels(0, 0)},
		{Time: 1, Value: NewFloat(1)},
	})
	assert.ErrorIs(t, err, ErrChannelMismatch)
}

func TestEasedKeyFrame(t *testing.T) {
	keys := []Key[Scalar]{
		{Time: 0, Value: 0},
		{Time: 1, Value: 1},
	}

	c, err := NewEasedKeyFrame(keys, ease.InQuad)
	assert.Nil(t, err)

	assert.EqualValues(t, 0.25, c.Value(0.5))
	assert.EqualValues(t, 0, c.Value(0))
	assert.EqualValues(t, 1, c.Value(1))

	c, err = NewEasedKeyFrame(keys, ease.InOutQuad)
	assert.Nil(t, err)

	assert.EqualValues(t, 0.5, c.Value(0.5))
}

func TestFixedValue(t *testing.T) {
	c := NewFixedValue(Scalar(3))

	assert.EqualValues(t, 3, c.Value(0))
	assert.EqualValues(t, 3, c.Value(-100))
	assert.EqualValues(t, 3, c.Value(1e9))
}

func TestColorKeyFrame(t *testing.T) {
	c, err := NewColorKeyFrame([]ColorKey{
		{Time: 0, Hex: "#ff0000"},
		{Time: 1, Hex: "#0000ff"},
	})
	assert.Nil(t, err)

	v := c.Value(0)
	assert.Equal(t, 3, v.ChannelCount())
	assert.InDelta(t, 1, v.Channels[0], 1e-6)
	assert.InDelta(t, 0, v.Channels[1], 1e-6)
	assert.InDelta(t, 0, v.Channels[2], 1e-6)

	v = c.Value(0.5)
	assert.InDelta(t, 0.5, v.Channels[0], 1e-6)
	assert.InDelta(t, 0, v.Channels[1], 1e-6)
	assert.InDelta(t, 0.5, v.Channels[2], 1e-6)

	v = c.Value(2)
	assert.InDelta(t, 1, v.Channels[2], 1e-6)
}

func TestColorKeyFrameErrors(t *testing.T) {
	_, err := NewColorKeyFrame(nil)
	assert.ErrorIs(t, err, ErrNoKeys)

	_, err = NewColorKeyFrame([]ColorKey{
		{Time: 0, Hex: "#ff0000"},
		{Time: 1, Hex: "notacolor"},
	})
	assert.ErrorIs(t, err, ErrBadColor)

	_, err = NewColorKeyFrame([]ColorKey{
		{Time: 1, Hex: "#ff0000"},
		{Time: 0, Hex: "#00ff00"},
	})
	assert.ErrorIs(t, err, ErrUnorderedKeys)
}
