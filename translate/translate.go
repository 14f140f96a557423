// Package translate is the construction boundary of the animation
// engine: it turns declarative, tagged configuration blocks into track
// values, validating everything up front so an invalid track can never
// reach evaluation.
package translate

import (
	"fmt"
	"time"

	"github.com/fogleman/ease"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libanimation/curve"
	"github.com/sgostarter/libanimation/track"
	"github.com/sgostarter/libeasygo/cuserror"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Track translates one tagged block, a single-entry map keyed by one of
// key_framed, fixed_value, track_set, weighted_tracks or
// track_set_from_resource. resolver may be nil if the block contains no
// resource references.
func Track(node interface{}, resolver track.Resolver, logger l.Wrapper) (track.Track, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return translateNode(node, resolver, logger.WithFields(l.StringField(l.ClsKey, "translate")))
}

// TrackFromYAML translates a YAML document holding one tagged block.
func TrackFromYAML(src []byte, resolver track.Resolver, logger l.Wrapper) (track.Track, error) {
	var node interface{}

	if err := yaml.Unmarshal(src, &node); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTagged, err)
	}

	return Track(node, resolver, logger)
}

func translateNode(node interface{}, resolver track.Resolver, logger l.Wrapper) (track.Track, error) {
	tag, body, err := splitTagged(node)
	if err != nil {
		return nil, err
	}

	switch tag {
	case "key_framed":
		return keyFramed(body)
	case "fixed_value":
		return fixedValue(body)
	case "track_set":
		return trackSet(body, resolver, logger)
	case "weighted_tracks":
		return weightedTracks(body, resolver, logger)
	case "track_set_from_resource":
		id, err := cast.ToStringE(body)
		if err != nil {
			return nil, fmt.Errorf("%w: track_set_from_resource", ErrBadField)
		}

		t, err := track.NewResourceTrack(id, resolver)
		if err != nil {
			logger.WithFields(l.ErrorField(err), l.StringField("resourceID", id)).Error("resolve resource failed")

			return nil, err
		}

		return t, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedTag, tag)
	}
}

func splitTagged(node interface{}) (tag string, body interface{}, err error) {
	m, ok := node.(map[string]interface{})
	if !ok || len(m) != 1 {
		err = ErrNotTagged

		return
	}

	for k, v := range m {
		tag = k
		body = v
	}

	return
}

func taggedBody(body interface{}, tag string) (map[string]interface{}, error) {
	m, ok := body.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s body", ErrBadField, tag)
	}

	return m, nil
}

var easeFns = map[string]curve.EaseFunc{
	"linear":         nil,
	"in_quad":        ease.InQuad,
	"out_quad":       ease.OutQuad,
	"in_out_quad":    ease.InOutQuad,
	"in_cubic":       ease.InCubic,
	"out_cubic":      ease.OutCubic,
	"in_out_cubic":   ease.InOutCubic,
	"in_out_sine":    ease.InOutSine,
	"in_out_elastic": ease.InOutElastic,
}

// nolint: cyclop
func keyFramed(body interface{}) (track.Track, error) {
	m, err := taggedBody(body, "key_framed")
	if err != nil {
		return nil, err
	}

	property, err := propertyField(m)
	if err != nil {
		return nil, err
	}

	durationSecs, err := floatFieldOr(m, "duration", 1.0)
	if err != nil {
		return nil, err
	}

	if durationSecs <= 0 {
		return nil, fmt.Errorf("%w: %v", track.ErrInvalidDuration, durationSecs)
	}

	offsetSecs, err := floatFieldOr(m, "offset", 0)
	if err != nil {
		return nil, err
	}

	loop, err := loopField(m)
	if err != nil {
		return nil, err
	}

	curveTime, err := curveTimeField(m)
	if err != nil {
		return nil, err
	}

	c, err := curveField(m)
	if err != nil {
		return nil, err
	}

	mapper, err := track.NewTimeMapper(secondsToDuration(offsetSecs), secondsToDuration(durationSecs),
		loop, curveTime)
	if err != nil {
		return nil, err
	}

	return track.NewCurveTrack(c, mapper, property)
}

func curveField(m map[string]interface{}) (curve.Curve[curve.Animatable], error) {
	keysNode, hasKeys := m["keys"]
	colorsNode, hasColors := m["color_keys"]

	switch {
	case hasKeys && hasColors:
		return nil, fmt.Errorf("%w: keys and color_keys are exclusive", ErrBadField)
	case hasColors:
		colorKeys, err := colorKeyNodes(colorsNode)
		if err != nil {
			return nil, err
		}

		return curve.NewColorKeyFrame(colorKeys)
	case hasKeys:
		keys, err := keyNodes(keysNode)
		if err != nil {
			return nil, err
		}

		easeFn, err := easeField(m)
		if err != nil {
			return nil, err
		}

		return curve.NewEasedKeyFrame(keys, easeFn)
	default:
		return nil, fmt.Errorf("%w: keys", ErrMissingField)
	}
}

func easeField(m map[string]interface{}) (curve.EaseFunc, error) {
	i, ok := m["ease"]
	if !ok {
		return nil, nil
	}

	name, err := cast.ToStringE(i)
	if err != nil {
		return nil, fmt.Errorf("%w: ease", ErrBadField)
	}

	fn, ok := easeFns[name]
	if !ok {
		return nil, fmt.Errorf("%w: ease %q", ErrBadField, name)
	}

	return fn, nil
}

func keyNodes(node interface{}) ([]curve.Key[curve.Animatable], error) {
	items, ok := node.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: keys", ErrBadField)
	}

	keys := make([]curve.Key[curve.Animatable], 0, len(items))

	for _, item := range items {
		key, err := keyNode(item)
		if err != nil {
			return nil, err
		}

		keys = append(keys, key)
	}

	return keys, nil
}

// keyNode accepts either the object form { time: t, value: v } or the
// compact two-element array form [t, v].
func keyNode(node interface{}) (key curve.Key[curve.Animatable], err error) {
	switch n := node.(type) {
	case map[string]interface{}:
		keyTime, ok := n["time"]
		if !ok {
			err = fmt.Errorf("%w: keys[].time", ErrMissingField)

			return
		}

		keyValue, ok := n["value"]
		if !ok {
			err = fmt.Errorf("%w: keys[].value", ErrMissingField)

			return
		}

		return buildKey(keyTime, keyValue)
	case []interface{}:
		if len(n) != 2 {
			err = cuserror.NewWithErrorMsg(fmt.Sprintf("unrecognized key: %v", node))

			return
		}

		return buildKey(n[0], n[1])
	default:
		err = cuserror.NewWithErrorMsg(fmt.Sprintf("unrecognized key: %v", node))

		return
	}
}

func buildKey(timeNode, valueNode interface{}) (key curve.Key[curve.Animatable], err error) {
	t, err := cast.ToFloat64E(timeNode)
	if err != nil {
		err = fmt.Errorf("%w: keys[].time", ErrBadField)

		return
	}

	value, err := animatableNode(valueNode)
	if err != nil {
		return
	}

	key = curve.Key[curve.Animatable]{
		Time:  float32(t),
		Value: value,
	}

	return
}

// animatableNode accepts a scalar or a list of floats (a multi-channel
// value, e.g. a vector).
func animatableNode(node interface{}) (v curve.Animatable, err error) {
	if items, ok := node.([]interface{}); ok {
		channels := make([]float32, 0, len(items))

		for _, item := range items {
			f, e := cast.ToFloat64E(item)
			if e != nil {
				err = fmt.Errorf("%w: value channel %v", ErrBadField, item)

				return
			}

			channels = append(channels, float32(f))
		}

		if len(channels) == 0 {
			err = fmt.Errorf("%w: empty value", ErrBadField)

			return
		}

		v = curve.NewChannels(channels...)

		return
	}

	f, err := cast.ToFloat64E(node)
	if err != nil {
		err = fmt.Errorf("%w: value %v", ErrBadField, node)

		return
	}

	v = curve.NewFloat(float32(f))

	return
}

func colorKeyNodes(node interface{}) ([]curve.ColorKey, error) {
	items, ok := node.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: color_keys", ErrBadField)
	}

	keys := make([]curve.ColorKey, 0, len(items))

	for _, item := range items {
		arr, ok := item.([]interface{})
		if !ok || len(arr) != 2 {
			return nil, fmt.Errorf("%w: color_keys entry %v", ErrBadField, item)
		}

		t, err := cast.ToFloat64E(arr[0])
		if err != nil {
			return nil, fmt.Errorf("%w: color_keys[].time", ErrBadField)
		}

		hex, err := cast.ToStringE(arr[1])
		if err != nil {
			return nil, fmt.Errorf("%w: color_keys[].color", ErrBadField)
		}

		keys = append(keys, curve.ColorKey{
			Time: float32(t),
			Hex:  hex,
		})
	}

	return keys, nil
}

func fixedValue(body interface{}) (track.Track, error) {
	m, err := taggedBody(body, "fixed_value")
	if err != nil {
		return nil, err
	}

	property, err := propertyField(m)
	if err != nil {
		return nil, err
	}

	valueNode, ok := m["value"]
	if !ok {
		return nil, fmt.Errorf("%w: value", ErrMissingField)
	}

	value, err := animatableNode(valueNode)
	if err != nil {
		return nil, err
	}

	return track.NewFixedValueTrack(property, value), nil
}

func trackSet(body interface{}, resolver track.Resolver, logger l.Wrapper) (track.Track, error) {
	items, ok := body.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: track_set body", ErrBadField)
	}

	tracks := make([]track.Track, 0, len(items))

	for _, item := range items {
		t, err := translateNode(item, resolver, logger)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, t)
	}

	return track.NewTrackSet(tracks...), nil
}

func weightedTracks(body interface{}, resolver track.Resolver, logger l.Wrapper) (track.Track, error) {
	items, ok := body.([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: weighted_tracks body", ErrBadField)
	}

	wts := make([]track.WeightedTrack, 0, len(items))

	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%w: weighted_tracks entry %v", ErrBadField, item)
		}

		weightNode, ok := m["weight"]
		if !ok {
			return nil, fmt.Errorf("%w: weighted_tracks[].weight", ErrMissingField)
		}

		weight, err := cast.ToFloat64E(weightNode)
		if err != nil {
			return nil, fmt.Errorf("%w: weighted_tracks[].weight", ErrBadField)
		}

		trackNode, ok := m["track"]
		if !ok {
			return nil, fmt.Errorf("%w: weighted_tracks[].track", ErrMissingField)
		}

		t, err := translateNode(trackNode, resolver, logger)
		if err != nil {
			return nil, err
		}

		wts = append(wts, track.WeightedTrack{
			Weight: float32(weight),
			Track:  t,
		})
	}

	return track.NewWeightedTracks(wts...)
}

func loopField(m map[string]interface{}) (track.Loop, error) {
	i, ok := m["loop"]
	if !ok {
		return track.LoopOnce, nil
	}

	s, err := cast.ToStringE(i)
	if err != nil {
		return track.LoopOnce, fmt.Errorf("%w: loop", ErrBadField)
	}

	switch s {
	case "forever":
		return track.LoopForever, nil
	case "once":
		return track.LoopOnce, nil
	default:
		return track.LoopOnce, fmt.Errorf("%w: loop %q", ErrBadField, s)
	}
}

func curveTimeField(m map[string]interface{}) (track.CurveTime, error) {
	i, ok := m["curve_time"]
	if !ok {
		return track.CurveTimeAbsolute, nil
	}

	s, err := cast.ToStringE(i)
	if err != nil {
		return track.CurveTimeAbsolute, fmt.Errorf("%w: curve_time", ErrBadField)
	}

	switch s {
	case "absolute":
		return track.CurveTimeAbsolute, nil
	case "relative":
		return track.CurveTimeRelative, nil
	default:
		return track.CurveTimeAbsolute, fmt.Errorf("%w: curve_time %q", ErrBadField, s)
	}
}

func floatFieldOr(m map[string]interface{}, field string, def float64) (float64, error) {
	i, ok := m[field]
	if !ok {
		return def, nil
	}

	f, err := cast.ToFloat64E(i)
	if err != nil {
		return def, fmt.Errorf("%w: %s", ErrBadField, field)
	}

	return f, nil
}

func secondsToDuration(secs float64) time.Duration {
	return time.Duration(secs*1000) * time.Millisecond
}
