package jobber

import "github.com/fatih/color"

// TagIndex is the process-wide, presentation-only mapping from tag name to a
// stable display color slot. It is populated from the loaded database at
// startup and extended the first time a new tag name is seen; nothing in
// the engine consults it to make a correctness decision.
type TagIndex struct {
	order []string
	pos   map[string]int
}

// NewTagIndex returns an empty index.
func NewTagIndex() *TagIndex {
	return &TagIndex{pos: map[string]int{}}
}

// Populate seeds the index from a known tag set, in the set's order.
func (t *TagIndex) Populate(tags TagSet) {
	for _, tag := range tags {
		t.positionOf(tag)
	}
}

func (t *TagIndex) positionOf(tag string) int {
	if p, ok := t.pos[tag]; ok {
		return p
	}
	p := len(t.order)
	t.order = append(t.order, tag)
	t.pos[tag] = p
	return p
}

var tagPalette = []color.Attribute{
	color.FgCyan, color.FgGreen, color.FgYellow, color.FgMagenta, color.FgBlue, color.FgRed,
}

// ColorFor returns the color assigned to tag, extending the index if tag has
// not been seen before.
func (t *TagIndex) ColorFor(tag string) *color.Color {
	p := t.positionOf(tag)
	return color.New(tagPalette[p%len(tagPalette)])
}
