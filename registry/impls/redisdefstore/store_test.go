// nolint
package redisdefstore

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libanimation/curve"
	"github.com/sgostarter/libanimation/registry"
	"github.com/sgostarter/libanimation/track"
	"github.com/sgostarter/libconfig/ut"
	"github.com/stretchr/testify/assert"
)

func initRedis(dsn string) (cli *redis.Client, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli = redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	err = cli.Ping(ctx).Err()
	if err != nil {
		return
	}

	return
}

func TestRedisDefinitionStore(t *testing.T) {
	cfg := ut.SetupUTConfig4Redis(t)
	redisCli, err := initRedis(cfg.RedisDSN)
	assert.Nil(t, err)

	redisCli.Del(context.Background(), "x:trackdefs")

	stg := NewRedisDefinitionStore("x", redisCli, nil)

	_, err = stg.LoadDefinition("wave")
	assert.ErrorIs(t, err, commerr.ErrNotFound)

	err = stg.SaveDefinition("wave", `
track_set_from_resource: base
`)
	assert.Nil(t, err)

	reg := registry.NewMemRegistry(nil)

	_, err = reg.Publish("base", track.NewFixedValueTrack(track.NewPropRef("this", "x"), curve.NewFloat(3)))
	assert.Nil(t, err)

	kf, err := stg.BuildTrack("wave", reg)
	assert.Nil(t, err)
	assert.Equal(t, curve.NewFloat(3), kf.ValueAt(time.Second)[0].Value)

	err = stg.RemoveDefinition("wave")
	assert.Nil(t, err)

	err = stg.RemoveDefinition("wave")
	assert.ErrorIs(t, err, commerr.ErrNotFound)
}
