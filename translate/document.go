package translate

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libanimation/track"
	"gopkg.in/yaml.v3"
)

// Publisher is where a document's named resources are published so later
// blocks can reference them.
type Publisher interface {
	track.Resolver

	Publish(id string, t track.Track) (rev uint64, err error)
}

type documentModel struct {
	Resources yaml.Node   `yaml:"resources"`
	Tracks    []yaml.Node `yaml:"tracks"`
}

// Document translates a full YAML document of the form
//
//	resources:
//	  <name>: <tagged block>
//	tracks:
//	  - <tagged block>
//
// Resources are translated and published in document order, so a
// resource may reference one declared above it. The root tracks are
// returned in declaration order.
func Document(src []byte, pub Publisher, logger l.Wrapper) ([]track.Track, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "translateDocument"))

	var doc documentModel

	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotTagged, err)
	}

	if !doc.Resources.IsZero() {
		if doc.Resources.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: resources", ErrBadField)
		}

		if pub == nil {
			return nil, fmt.Errorf("%w: resources need a publisher", ErrBadField)
		}

		for idx := 0; idx+1 < len(doc.Resources.Content); idx += 2 {
			name := doc.Resources.Content[idx].Value

			var node interface{}

			if err := doc.Resources.Content[idx+1].Decode(&node); err != nil {
				return nil, fmt.Errorf("%w: resource %s", ErrBadField, name)
			}

			t, err := translateNode(node, pub, logger)
			if err != nil {
				return nil, err
			}

			if _, err = pub.Publish(name, t); err != nil {
				logger.WithFields(l.ErrorField(err), l.StringField("resourceID", name)).Error("publish failed")

				return nil, err
			}
		}
	}

	tracks := make([]track.Track, 0, len(doc.Tracks))

	for _, trackDoc := range doc.Tracks {
		var node interface{}

		if err := trackDoc.Decode(&node); err != nil {
			return nil, fmt.Errorf("%w: tracks entry", ErrBadField)
		}

		t, err := translateNode(node, pub, logger)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, t)
	}

	return tracks, nil
}
