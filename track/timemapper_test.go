package track

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeMapperInvalidDuration(t *testing.T) {
	_, err := NewTimeMapper(0, 0, LoopOnce, CurveTimeAbsolute)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = NewTimeMapper(0, -time.Second, LoopForever, CurveTimeAbsolute)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestTimeMapperAbsolute(t *testing.T) {
	m, err := NewTimeMapper(0, time.Second, LoopOnce, CurveTimeAbsolute)
	assert.Nil(t, err)

	param, ok := m.Map(100 * time.Millisecond)
	assert.True(t, ok)
	assert.EqualValues(t, 0.1, param)

	param, ok = m.Map(time.Second)
	assert.True(t, ok)
	assert.EqualValues(t, 1, param)

	_, ok = m.Map(1500 * time.Millisecond)
	assert.False(t, ok)
}

func TestTimeMapperForever(t *testing.T) {
	m, err := NewTimeMapper(0, time.Second, LoopForever, CurveTimeAbsolute)
	assert.Nil(t, err)

	p1, ok := m.Map(1500 * time.Millisecond)
	assert.True(t, ok)

	p2, ok := m.Map(500 * time.Millisecond)
	assert.True(t, ok)

	assert.Equal(t, p2, p1)

	// evaluate(d + x) == evaluate(x) holds far from the first cycle too
	p3, ok := m.Map(500*time.Millisecond + 1000*time.Second)
	assert.True(t, ok)
	assert.Equal(t, p2, p3)
}

func TestTimeMapperRelative(t *testing.T) {
	m, err := NewTimeMapper(0, 2*time.Second, LoopOnce, CurveTimeRelative)
	assert.Nil(t, err)

	param, ok := m.Map(time.Second)
	assert.True(t, ok)
	assert.EqualValues(t, 0.5, param)
}

func TestTimeMapperOffset(t *testing.T) {
	m, err := NewTimeMapper(500*time.Millisecond, time.Second, LoopOnce, CurveTimeAbsolute)
	assert.Nil(t, err)

	param, ok := m.Map(600 * time.Millisecond)
	assert.True(t, ok)
	assert.EqualValues(t, 0.1, param)

	// before the offset the parameter goes negative and the curve's edge
	// clamp takes over
	param, ok = m.Map(0)
	assert.True(t, ok)
	assert.EqualValues(t, -0.5, param)
}
