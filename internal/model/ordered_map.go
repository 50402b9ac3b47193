package model

// OrderedMap is a string-keyed mapping that preserves insertion order on
// iteration. The domain model requires this throughout (§3: "ordered
// non-empty mapping of section id -> Section", etc.) since plain Go maps
// make no iteration-order guarantee and several invariants (choice-row
// order, SELECT option numbering) depend on a deterministic order.
type OrderedMap[V any] struct {
	keys []string
	vals map[string]V
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{vals: make(map[string]V)}
}

// Set inserts or updates the value for key. The key's position in
// iteration order is fixed the first time it is set.
func (m *OrderedMap[V]) Set(key string, val V) {
	if _, exists := m.vals[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = val
}

// Get looks up the value for key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	return m.keys
}

// Values returns the values in insertion order.
func (m *OrderedMap[V]) Values() []V {
	out := make([]V, len(m.keys))
	for i, k := range m.keys {
		out[i] = m.vals[k]
	}
	return out
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	return len(m.keys)
}
