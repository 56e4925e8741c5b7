package jobber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagIndexPopulateOrdersByInputSet(t *testing.T) {
	idx := NewTagIndex()
	idx.Populate(NewTagSet("dev", "ops"))
	assert.Equal(t, 0, idx.positionOf("dev"))
	assert.Equal(t, 1, idx.positionOf("ops"))
}

func TestTagIndexColorForIsStable(t *testing.T) {
	idx := NewTagIndex()
	first := idx.ColorFor("dev")
	second := idx.ColorFor("dev")
	assert.Equal(t, first, second)
}

func TestTagIndexColorForExtendsOnNewTag(t *testing.T) {
	idx := NewTagIndex()
	idx.ColorFor("dev")
	assert.Equal(t, 1, idx.positionOf("ops"))
}

func TestTagIndexColorWrapsPalette(t *testing.T) {
	idx := NewTagIndex()
	for i := 0; i < len(tagPalette); i++ {
		idx.positionOf(string(rune('a' + i)))
	}
	wrapped := idx.ColorFor(string(rune('a' + len(tagPalette))))
	first := idx.ColorFor("a")
	assert.Equal(t, first, wrapped)
}
