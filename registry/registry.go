package registry

import (
	"github.com/godruoyi/go-snowflake"
	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libanimation/track"
)

func NewMemRegistry(logger l.Wrapper) Registry {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "trackRegistry"))

	return &memRegistry{
		logger: logger,
		tracks: cache.New(cache.NoExpiration, cache.NoExpiration),
	}
}

type memRegistry struct {
	logger l.Wrapper
	tracks *cache.Cache
}

type resourceEntry struct {
	rev uint64
	t   track.Track
}

func (impl *memRegistry) Publish(id string, t track.Track) (rev uint64, err error) {
	if id == "" || t == nil {
		err = commerr.ErrReject

		return
	}

	rev = snowflake.ID()

	impl.tracks.Set(id, &resourceEntry{
		rev: rev,
		t:   t,
	}, cache.NoExpiration)

	impl.logger.WithFields(l.StringField("resourceID", id),
		l.UInt64Field("rev", rev)).Debug("published")

	return
}

func (impl *memRegistry) Resolve(id string) (t track.Track, ok bool) {
	i, ok := impl.tracks.Get(id)
	if !ok {
		return
	}

	entry, ok := i.(*resourceEntry)
	if !ok {
		return
	}

	t = entry.t

	return
}

func (impl *memRegistry) Remove(id string) {
	impl.tracks.Delete(id)
}

func (impl *memRegistry) IDs() []string {
	items := impl.tracks.Items()

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}

	return ids
}
