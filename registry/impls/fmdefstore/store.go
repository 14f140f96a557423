package fmdefstore

import (
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libanimation/registry"
	"github.com/sgostarter/libanimation/track"
	"github.com/sgostarter/libanimation/translate"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

func NewFMDefinitionStore(root string, storage stg.FileStorage) registry.DefinitionStore {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &fsDefinitionStoreImpl{
		defStorage: mwf.NewMemWithFile[map[string]string, mwf.Serial, mwf.Lock](
			make(map[string]string), &mwf.JSONSerial{}, &sync.RWMutex{},
			filepath.Join(root, "trackDefs.json"), storage),
	}
}

type fsDefinitionStoreImpl struct {
	defStorage *mwf.MemWithFile[map[string]string, mwf.Serial, mwf.Lock]
}

func (impl *fsDefinitionStoreImpl) SaveDefinition(name, source string) error {
	return impl.defStorage.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]string)
		}

		newM[name] = source

		return
	})
}

func (impl *fsDefinitionStoreImpl) LoadDefinition(name string) (source string, err error) {
	impl.defStorage.Read(func(m map[string]string) {
		if s, ok := m[name]; ok {
			source = s
		} else {
			err = commerr.ErrNotFound
		}
	})

	return
}

func (impl *fsDefinitionStoreImpl) RemoveDefinition(name string) error {
	return impl.defStorage.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM

		if _, ok := newM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		delete(newM, name)

		return
	})
}

func (impl *fsDefinitionStoreImpl) BuildTrack(name string, resolver track.Resolver) (track.Track, error) {
	source, err := impl.LoadDefinition(name)
	if err != nil {
		return nil, err
	}

	return translate.TrackFromYAML([]byte(source), resolver, nil)
}
