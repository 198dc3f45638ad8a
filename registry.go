package mongy

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*Schema)
	registryMu sync.RWMutex
)

// SchemaOf returns the schema declared by T's struct tags.
// The schema is built once per type and cached.
//
//	type Post struct {
//	    Title   string    `bson:"title" serialize:"string"`
//	    Created time.Time `bson:"created_date" serialize:"datetime" serialize.datetimeformat:"%Y-%m-%d %H:%M:%S"`
//	    Author  bson.M    `bson:"author" serialize:"mapping" serialize.maxdepth:"2"`
//	}
func SchemaOf[T any]() (*Schema, error) {
	typ := reflect.TypeFor[T]()

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[typ]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	if cached, ok := registry[typ]; ok {
		return cached, nil
	}

	schema, err := buildSchema[T]()
	if err != nil {
		return nil, err
	}

	registry[typ] = schema
	return schema, nil
}

// Reset clears the schema registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*Schema)
}
