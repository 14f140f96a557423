package redisdefstore

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libanimation/registry"
	"github.com/sgostarter/libanimation/track"
	"github.com/sgostarter/libanimation/translate"
)

func NewRedisDefinitionStore(preKey string, redisCli *redis.Client, logger l.Wrapper) registry.DefinitionStore {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "trackDefStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &defStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type defStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *defStorage) defsKey() string {
	return impl.preKey + ":trackdefs"
}

func (impl *defStorage) SaveDefinition(name, source string) error {
	return impl.redisCli.HSet(context.Background(), impl.defsKey(), name, source).Err()
}

func (impl *defStorage) LoadDefinition(name string) (source string, err error) {
	source, err = impl.redisCli.HGet(context.Background(), impl.defsKey(), name).Result()
	if errors.Is(err, redis.Nil) {
		err = commerr.ErrNotFound
	}

	return
}

func (impl *defStorage) RemoveDefinition(name string) (err error) {
	n, err := impl.redisCli.HDel(context.Background(), impl.defsKey(), name).Result()
	if err != nil {
		return
	}

	if n == 0 {
		err = commerr.ErrNotFound
	}

	return
}

func (impl *defStorage) BuildTrack(name string, resolver track.Resolver) (track.Track, error) {
	source, err := impl.LoadDefinition(name)
	if err != nil {
		return nil, err
	}

	return translate.TrackFromYAML([]byte(source), resolver, impl.logger)
}
