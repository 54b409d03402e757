package coll

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher maps keys to 64-bit hash values. Equal keys must hash equally.
type Hasher[K any] interface {
	Hash(key K) uint64
}

// HasherFunc adapts a plain function to Hasher.
type HasherFunc[K any] func(key K) uint64

// Hash calls f(key).
func (f HasherFunc[K]) Hash(key K) uint64 { return f(key) }

// processSeed is chosen once per process so hash values, and therefore
// iteration order, differ between runs.
var processSeed = maphash.MakeSeed()

// processSeed64 derives a 64-bit key for StringHasher from processSeed.
var processSeed64 = maphash.Comparable(processSeed, uint64(0x9e3779b97f4a7c15))

// ComparableHasher hashes any comparable key with the runtime's keyed hash,
// seeded per process. It is the default hasher of Map and Set.
type ComparableHasher[K comparable] struct {
	seed maphash.Seed
}

// NewComparableHasher returns a ComparableHasher using the process seed.
func NewComparableHasher[K comparable]() ComparableHasher[K] {
	return ComparableHasher[K]{seed: processSeed}
}

// Hash returns the keyed hash of key.
func (h ComparableHasher[K]) Hash(key K) uint64 {
	return maphash.Comparable(h.seed, key)
}

// StringHasher hashes string keys with seeded xxHash64.
type StringHasher struct {
	seed uint64
}

// NewStringHasher returns a StringHasher with a fixed seed, which makes
// bucket placement reproducible across runs.
func NewStringHasher(seed uint64) StringHasher {
	return StringHasher{seed: seed}
}

// DefaultStringHasher returns a StringHasher keyed by the process seed.
func DefaultStringHasher() StringHasher {
	return StringHasher{seed: processSeed64}
}

// Hash returns the xxHash64 of key under the hasher's seed.
func (h StringHasher) Hash(key string) uint64 {
	if h.seed == 0 {
		return xxhash.Sum64String(key)
	}
	var d xxhash.Digest
	d.ResetWithSeed(h.seed)
	_, _ = d.WriteString(key)
	return d.Sum64()
}
