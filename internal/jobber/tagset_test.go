package jobber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTagSetDropsDuplicatesAndBlanks(t *testing.T) {
	ts := NewTagSet("a", "b", "a", " ", "b", "c")
	assert.Equal(t, TagSet{"a", "b", "c"}, ts)
}

func TestTagSetEqualIgnoresOrder(t *testing.T) {
	assert.True(t, NewTagSet("a", "b").Equal(NewTagSet("b", "a")))
	assert.False(t, NewTagSet("a", "b").Equal(NewTagSet("a")))
}

func TestTagSetIntersects(t *testing.T) {
	assert.True(t, NewTagSet("a", "b").Intersects(NewTagSet("b", "c")))
	assert.False(t, NewTagSet("a").Intersects(NewTagSet("b")))
}

func TestTagSetModify(t *testing.T) {
	t.Run("bare delta replaces wholesale", func(t *testing.T) {
		ts := NewTagSet("a", "b")
		got := ts.Modify([]string{"c", "d"})
		assert.Equal(t, NewTagSet("c", "d"), got)
	})

	t.Run("plus adds, minus removes", func(t *testing.T) {
		ts := NewTagSet("a", "b")
		got := ts.Modify([]string{"+c", "-a"})
		assert.Equal(t, NewTagSet("b", "c"), got)
	})

	t.Run("mixed delta treats bare entries as additions", func(t *testing.T) {
		ts := NewTagSet("a")
		got := ts.Modify([]string{"-a", "b"})
		assert.Equal(t, NewTagSet("b"), got)
	})

	t.Run("empty delta replaces the set with the empty set", func(t *testing.T) {
		ts := NewTagSet("a")
		got := ts.Modify([]string{})
		assert.Equal(t, TagSet(nil), got)
	})
}

func TestParseTagList(t *testing.T) {
	assert.Equal(t, []string{"a", "+b", "-c"}, ParseTagList("a, +b ,-c"))
	assert.Nil(t, ParseTagList(""))
	assert.Nil(t, ParseTagList("  "))
}

func TestTagSetString(t *testing.T) {
	assert.Equal(t, "a,b", NewTagSet("a", "b").String())
	assert.Equal(t, "", TagSet(nil).String())
}
