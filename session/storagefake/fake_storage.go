package storagefake

import (
	"sync"

	"github.com/gpiedrahita-hub/infinite-herbs-admin/session"
)

var _ session.Storage = (*FakeStorage)(nil)

// FakeStorage is an in-memory session.Storage for tests
type FakeStorage struct {
	values map[string]string
	lock   sync.RWMutex
}

func New() *FakeStorage {
	return &FakeStorage{values: make(map[string]string)}
}

func (fs *FakeStorage) Get(key string) (string, bool) {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	value, ok := fs.values[key]
	return value, ok
}

func (fs *FakeStorage) Set(key, value string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.values[key] = value
}

func (fs *FakeStorage) Delete(key string) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	delete(fs.values, key)
}

// Len reports how many keys are stored
func (fs *FakeStorage) Len() int {
	fs.lock.RLock()
	defer fs.lock.RUnlock()
	return len(fs.values)
}
