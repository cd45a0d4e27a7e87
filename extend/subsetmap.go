package extend

import (
	"fmt"
	"slices"

	"sassext/selector"
)

type subsetEntry struct {
	key   *selector.Compound
	index int
}

// SubsetMap maps compound selectors to values and finds all values whose key
// is a subset of a query compound. Keys are indexed by each of their simple
// selectors so a lookup only scans keys sharing at least one simple with the
// query.
type SubsetMap[V any] struct {
	buckets map[string][]subsetEntry
	values  []V
}

func NewSubsetMap[V any]() *SubsetMap[V] {
	return &SubsetMap[V]{buckets: make(map[string][]subsetEntry)}
}

// Put associates value with key. Values are numbered in insertion order.
func (m *SubsetMap[V]) Put(key *selector.Compound, value V) error {
	if key.IsEmpty() {
		return fmt.Errorf("subset map: %w", ErrEmptyKey)
	}
	index := len(m.values)
	m.values = append(m.values, value)
	seen := make(map[string]bool, key.Len())
	for _, s := range key.Components {
		k := s.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		m.buckets[k] = append(m.buckets[k], subsetEntry{key: key, index: index})
	}
	return nil
}

// Get returns the values whose keys are subsets of query, each once, in the
// order they were put.
func (m *SubsetMap[V]) Get(query *selector.Compound) []V {
	if query.IsEmpty() {
		return nil
	}
	lookup := make(map[string]bool, query.Len())
	for _, s := range query.Components {
		lookup[s.Key()] = true
	}

	var (
		indices []int
		found   = make(map[int]bool)
	)
	for k := range lookup {
		for _, entry := range m.buckets[k] {
			if found[entry.index] || !isSubset(entry.key, lookup) {
				continue
			}
			found[entry.index] = true
			indices = append(indices, entry.index)
		}
	}
	slices.Sort(indices)

	result := make([]V, len(indices))
	for i, index := range indices {
		result[i] = m.values[index]
	}
	return result
}

// Len returns the number of values stored.
func (m *SubsetMap[V]) Len() int {
	return len(m.values)
}

func isSubset(key *selector.Compound, lookup map[string]bool) bool {
	for _, s := range key.Components {
		if !lookup[s.Key()] {
			return false
		}
	}
	return true
}
