package format

// grouping collects values per key while remembering the order keys were
// first seen. Plain map iteration would make section ordering depend on hash
// order; deterministic output requires first-seen order here.
type grouping[K comparable, V any] struct {
	keys   []K
	values map[K][]V
}

func newGrouping[K comparable, V any]() *grouping[K, V] {
	return &grouping[K, V]{values: make(map[K][]V)}
}

func (g *grouping[K, V]) add(key K, value V) {
	if _, seen := g.values[key]; !seen {
		g.keys = append(g.keys, key)
	}
	g.values[key] = append(g.values[key], value)
}

// each visits groups in first-seen key order and stops on the first error.
func (g *grouping[K, V]) each(fn func(key K, values []V) error) error {
	for _, key := range g.keys {
		if err := fn(key, g.values[key]); err != nil {
			return err
		}
	}
	return nil
}
