package translate

import (
	"fmt"
	"strings"

	"github.com/sgostarter/libanimation/track"
	"github.com/spf13/cast"
)

// ParsePropRef parses an "entity.property" reference string.
func ParsePropRef(s string) (ref track.PropRef, err error) {
	entity, property, ok := strings.Cut(s, ".")
	if !ok || entity == "" || property == "" {
		err = fmt.Errorf("%w: property reference %q", ErrBadField, s)

		return
	}

	ref = track.NewPropRef(entity, property)

	return
}

func propertyField(body map[string]interface{}) (ref track.PropRef, err error) {
	i, ok := body["property"]
	if !ok {
		err = fmt.Errorf("%w: property", ErrMissingField)

		return
	}

	s, err := cast.ToStringE(i)
	if err != nil {
		err = fmt.Errorf("%w: property", ErrBadField)

		return
	}

	return ParsePropRef(s)
}
