// Package multimap provides a map from keys to multiple values.
package multimap

// Multimap associates each key with an ordered list of values.
// Not safe for concurrent use.
type Multimap[K comparable, V any] struct {
	m    map[K][]V
	size int
}

// New creates an empty Multimap.
func New[K comparable, V any]() *Multimap[K, V] {
	return &Multimap[K, V]{m: make(map[K][]V)}
}

// Add appends v to the values of k.
func (mm *Multimap[K, V]) Add(k K, v V) {
	mm.m[k] = append(mm.m[k], v)
	mm.size++
}

// Get returns the values of k in insertion order. The returned slice is
// owned by the map and must not be mutated.
func (mm *Multimap[K, V]) Get(k K) []V {
	return mm.m[k]
}

// Has reports whether k has at least one value.
func (mm *Multimap[K, V]) Has(k K) bool {
	return len(mm.m[k]) > 0
}

// Count returns the number of values of k.
func (mm *Multimap[K, V]) Count(k K) int {
	return len(mm.m[k])
}

// Len returns the total number of values across all keys.
func (mm *Multimap[K, V]) Len() int {
	return mm.size
}

// Delete removes k and all its values, returning how many were removed.
func (mm *Multimap[K, V]) Delete(k K) int {
	n := len(mm.m[k])
	delete(mm.m, k)
	mm.size -= n
	return n
}

// DeleteFunc removes the values of k for which del returns true, returning
// how many were removed. The key itself is removed when no values remain.
func (mm *Multimap[K, V]) DeleteFunc(k K, del func(V) bool) int {
	vals := mm.m[k]
	kept := vals[:0]
	for _, v := range vals {
		if !del(v) {
			kept = append(kept, v)
		}
	}
	removed := len(vals) - len(kept)
	if len(kept) == 0 {
		delete(mm.m, k)
	} else {
		mm.m[k] = kept
	}
	mm.size -= removed
	return removed
}

// Keys returns all keys with at least one value, in unspecified order.
func (mm *Multimap[K, V]) Keys() []K {
	keys := make([]K, 0, len(mm.m))
	for k := range mm.m {
		keys = append(keys, k)
	}
	return keys
}
