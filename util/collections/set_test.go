package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := make(Set[int])
	set.Add(1)
	set.Add(2)
	set.Add(2)

	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(3))
	assert.ElementsMatch(t, []int{1, 2}, set.Items())

	set.Remove(1)
	set.Remove(5)
	assert.False(t, set.Contains(1))
	assert.Equal(t, 1, set.Len())
}

func TestSetRelations(t *testing.T) {
	small := Set[string]{"a": {}}
	large := Set[string]{"a": {}, "b": {}}

	assert.True(t, small.IsSubsetOf(large))
	assert.False(t, large.IsSubsetOf(small))

	assert.True(t, large.Difference(small).Equal(Set[string]{"b": {}}))
	assert.True(t, small.Difference(large).Equal(Set[string]{}))
	assert.False(t, small.Equal(large))
}
