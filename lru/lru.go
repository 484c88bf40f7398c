package lru

import (
	"container/list"
	"sync"

	"github.com/joeycumines/logiface"
)

type (
	// Config models optional configuration, for New.
	Config[K comparable, V any] struct {
		// New constructs the value for a key, and is required by Cache.Get.
		New func(key K) V

		// OnEvict is called for each entry evicted, to make room for another.
		// It is called while the cache is locked, and must not use the cache.
		OnEvict func(key K, value V)

		// Logger receives a debug event for each eviction. Optional.
		Logger *logiface.Logger[logiface.Event]

		// Unsynchronized disables locking, for single-goroutine use.
		Unsynchronized bool
	}

	// Cache is a bounded key-value cache, which evicts the least recently
	// used entry, when at capacity.
	//
	// Instances must be initialized using New.
	Cache[K comparable, V any] struct {
		newValue       func(key K) V
		onEvict        func(key K, value V)
		logger         *logiface.Logger[logiface.Event]
		items          map[K]*list.Element
		order          *list.List // front is most recent
		maximum        int
		mu             sync.Mutex
		unsynchronized bool
	}

	entry[K comparable, V any] struct {
		key   K
		value V
	}
)

// New initializes a new Cache, holding at most maximum entries. The provided
// config may be nil. A panic will occur if maximum is not positive.
func New[K comparable, V any](maximum int, config *Config[K, V]) *Cache[K, V] {
	if maximum <= 0 {
		panic(`lru: maximum must be positive`)
	}
	x := Cache[K, V]{
		items:   make(map[K]*list.Element, maximum),
		order:   list.New(),
		maximum: maximum,
	}
	if config != nil {
		x.newValue = config.New
		x.onEvict = config.OnEvict
		x.logger = config.Logger
		x.unsynchronized = config.Unsynchronized
	}
	return &x
}

// Get returns the value for key, constructing it using Config.New, if it is
// not cached. A panic will occur if Config.New was not provided.
func (x *Cache[K, V]) Get(key K) V {
	if x.newValue == nil {
		panic(`lru: get: config New is nil`)
	}
	return x.GetOrCreate(key, func() V { return x.newValue(key) })
}

// GetOrCreate returns the value for key, calling create to construct it, if
// it is not cached. The entry becomes the most recently used. If the cache is
// full, the least recently used entry is evicted first.
//
// The create function is called with the cache locked, and must not use the
// cache.
func (x *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	if create == nil {
		panic(`lru: get: nil create`)
	}

	x.lock()
	defer x.unlock()

	if elem, ok := x.items[key]; ok {
		x.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value
	}

	value := create()
	if x.order.Len() >= x.maximum {
		x.evict()
	}
	x.items[key] = x.order.PushFront(&entry[K, V]{key: key, value: value})
	return value
}

// Contains reports whether key is cached, without changing its recency.
func (x *Cache[K, V]) Contains(key K) bool {
	x.lock()
	defer x.unlock()
	_, ok := x.items[key]
	return ok
}

// Len returns the number of cached entries.
func (x *Cache[K, V]) Len() int {
	x.lock()
	defer x.unlock()
	return x.order.Len()
}

// Keys returns the cached keys, most recently used first.
func (x *Cache[K, V]) Keys() []K {
	x.lock()
	defer x.unlock()
	keys := make([]K, 0, x.order.Len())
	for elem := x.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[K, V]).key)
	}
	return keys
}

func (x *Cache[K, V]) evict() {
	elem := x.order.Back()
	if elem == nil {
		return
	}
	e := x.order.Remove(elem).(*entry[K, V])
	delete(x.items, e.key)
	x.logger.Debug().
		Interface(`key`, e.key).
		Int(`size`, x.order.Len()).
		Log(`lru evicted`)
	if x.onEvict != nil {
		x.onEvict(e.key, e.value)
	}
}

func (x *Cache[K, V]) lock() {
	if !x.unsynchronized {
		x.mu.Lock()
	}
}

func (x *Cache[K, V]) unlock() {
	if !x.unsynchronized {
		x.mu.Unlock()
	}
}
