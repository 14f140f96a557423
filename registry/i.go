package registry

import (
	"github.com/sgostarter/libanimation/track"
)

// Registry owns named track resources. Published tracks are immutable;
// updating a name means publishing a replacement whole, existing handles
// keep evaluating the track they resolved.
type Registry interface {
	track.Resolver

	Publish(id string, t track.Track) (rev uint64, err error)
	Remove(id string)
	IDs() []string
}

// DefinitionStore persists declarative track definition documents by
// name and can build the track a stored document describes.
type DefinitionStore interface {
	SaveDefinition(name, source string) error
	LoadDefinition(name string) (source string, err error)
	RemoveDefinition(name string) error

	BuildTrack(name string, resolver track.Resolver) (track.Track, error)
}
