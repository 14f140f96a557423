package track

import (
	"fmt"
	"time"
)

// NewResourceTrack resolves a named shared track resource once, at
// construction, and delegates evaluation to it. The resolved handle
// stays valid even if the resolver later replaces or drops the entry.
func NewResourceTrack(id string, resolver Resolver) (Track, error) {
	if resolver == nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}

	resource, ok := resolver.Resolve(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, id)
	}

	return &resourceTrack{resource: resource}, nil
}

type resourceTrack struct {
	resource Track
}

func (impl *resourceTrack) ValueAt(elapsed time.Duration) []PropValue {
	return impl.resource.ValueAt(elapsed)
}
