package track

import (
	"time"
)

type WeightedTrack struct {
	Weight float32
	Track  Track
}

// NewWeightedTracks blends the outputs of its sub tracks: a property
// emitted by several of them is combined by weight-normalized
// interpolation, with the weights normalized over the sub tracks that
// actually produced the property this tick. Output order follows first
// appearance.
func NewWeightedTracks(tracks ...WeightedTrack) (Track, error) {
	for _, wt := range tracks {
		if wt.Weight <= 0 {
			return nil, ErrInvalidWeight
		}

		if wt.Track == nil {
			return nil, ErrNoCurve
		}
	}

	return &weightedTracks{tracks: tracks}, nil
}

type weightedTracks struct {
	tracks []WeightedTrack
}

func (impl *weightedTracks) ValueAt(elapsed time.Duration) []PropValue {
	type blendState struct {
		idx    int
		weight float32
	}

	var vs []PropValue

	states := make(map[PropRef]*blendState)

	for _, wt := range impl.tracks {
		for _, pv := range wt.Track.ValueAt(elapsed) {
			state, ok := states[pv.Property]
			if !ok {
				states[pv.Property] = &blendState{
					idx:    len(vs),
					weight: wt.Weight,
				}

				vs = append(vs, pv)

				continue
			}

			total := state.weight + wt.Weight
			vs[state.idx].Value = vs[state.idx].Value.Lerp(pv.Value, wt.Weight/total)
			state.weight = total
		}
	}

	return vs
}
