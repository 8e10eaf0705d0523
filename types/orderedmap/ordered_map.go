// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import (
	"container/list"
)

// OrderedMap stores key/value pairs and iterates them in insertion order.
// Overwriting an existing key keeps its original position.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// Iterator walks an OrderedMap. Value is the current element.
type Iterator[K comparable, V any] struct {
	Value V
	elem  *list.Element
}

// NewOrderedMap creates an empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores val under key. An existing key is updated in place.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = entry[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(entry[K, V]{key: key, value: val})
}

// Get returns the value stored under key and whether it was found
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		var zero V
		return zero, false
	}

	return e.Value.(entry[K, V]).value, true
}

// Len returns the number of stored keys
func (o *OrderedMap[K, V]) Len() int {
	if o == nil {
		return 0
	}

	return o.keys.Len()
}

// Values returns all values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	out := make([]V, 0, o.Len())
	for it := o.Front(); it != nil; it = it.Next() {
		out = append(out, it.Value)
	}

	return out
}

// Front returns an iterator positioned on the oldest entry, or nil when empty
func (o *OrderedMap[K, V]) Front() *Iterator[K, V] {
	if o == nil {
		return nil
	}

	return newIterator[K, V](o.keys.Front())
}

// Next advances the iterator and returns nil once the end is reached
func (it *Iterator[K, V]) Next() *Iterator[K, V] {
	if it == nil || it.elem == nil {
		return nil
	}

	return newIterator[K, V](it.elem.Next())
}

func newIterator[K comparable, V any](e *list.Element) *Iterator[K, V] {
	if e == nil {
		return nil
	}
	return &Iterator[K, V]{Value: e.Value.(entry[K, V]).value, elem: e}
}
