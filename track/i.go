package track

import (
	"time"

	"github.com/sgostarter/libanimation/curve"
)

// PropRef addresses a property on an entity. The engine never inspects
// it beyond equality.
type PropRef struct {
	Entity   string
	Property string
}

func NewPropRef(entity, property string) PropRef {
	return PropRef{
		Entity:   entity,
		Property: property,
	}
}

type PropValue struct {
	Property PropRef
	Value    curve.Animatable
}

// Track evaluates the value of every addressed property at a point in
// playback time. An empty result means the track produced nothing this
// tick, e.g. it finished under Once looping. The implementation set is
// closed: curve track, track set, weighted tracks and resource track.
type Track interface {
	ValueAt(elapsed time.Duration) []PropValue
}

// Resolver looks up a named, externally owned track resource. A resolved
// track must never be mutated in place once handed out, only replaced
// wholesale by its owner.
type Resolver interface {
	Resolve(id string) (Track, bool)
}
