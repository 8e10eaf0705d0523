package orderedmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	t.Run("basic operations", func(t *testing.T) {
		om := NewOrderedMap[string, int]()

		om.Set("one", 1)
		om.Set("two", 2)
		om.Set("three", 3)

		val, exists := om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 2, val)

		om.Set("two", 22)
		val, exists = om.Get("two")
		assert.True(t, exists)
		assert.Equal(t, 22, val)

		val, exists = om.Get("four")
		assert.False(t, exists)
		assert.Equal(t, 0, val)
	})

	t.Run("insertion order survives overwrite", func(t *testing.T) {
		om := NewOrderedMap[string, string]()
		om.Set("c", "3")
		om.Set("a", "1")
		om.Set("b", "2")
		om.Set("c", "33")

		var walked []string
		for it := om.Front(); it != nil; it = it.Next() {
			walked = append(walked, it.Value)
		}
		assert.Equal(t, []string{"33", "1", "2"}, walked)
		assert.Equal(t, walked, om.Values())
		assert.Equal(t, 3, om.Len())
	})

	t.Run("empty and nil maps", func(t *testing.T) {
		om := NewOrderedMap[string, int]()
		require.Nil(t, om.Front())
		assert.Empty(t, om.Values())

		var nilMap *OrderedMap[string, int]
		assert.Equal(t, 0, nilMap.Len())
		assert.Nil(t, nilMap.Front())
	})
}
