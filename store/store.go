// Package store persists named blobs.
//
// A Store maps a key to an opaque value; the tillbook repository keeps one
// key per collection. Backends are selected with [Open] from a location:
//
//	.tillbook                  a directory, one file per key
//	file:///var/lib/tillbook   same, as a URL
//	mem:                       an in-memory map
//	badger:///var/lib/tb-db    a badger key-value database (badger:// alone is in-memory)
//	redis://localhost:6379/0   a redis server
//	mongodb://localhost:27017  a mongodb collection, one document per key
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Store is a keyed blob store.
type Store interface {
	// Get returns the value of key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put replaces the value of key.
	Put(ctx context.Context, key string, value []byte) error
	// Close releases the underlying resources.
	Close() error
}

// Open returns the Store for location, see the package documentation for the
// supported forms.
func Open(ctx context.Context, location string, log logrus.FieldLogger) (Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	scheme, rest, hasScheme := strings.Cut(location, ":")
	if !hasScheme || len(scheme) == 1 { // windows drive letters are not schemes
		return OpenDir(location, log)
	}
	switch scheme {
	case "mem":
		return NewMemory(), nil
	case "file":
		return OpenDir(strings.TrimPrefix(rest, "//"), log)
	case "badger":
		return OpenBadger(strings.TrimPrefix(rest, "//"), log)
	case "redis", "rediss":
		return OpenRedis(ctx, location, log)
	case "mongodb", "mongodb+srv":
		return OpenMongo(ctx, location, log)
	default:
		return nil, fmt.Errorf("unsupported store %q", location)
	}
}
