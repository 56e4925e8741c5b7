package jobber

import "strings"

// TagSet is an ordered, duplicate-free sequence of tag names. Order reflects
// insertion order; equality is set equality, not sequence equality.
type TagSet []string

// NewTagSet builds a TagSet from raw names, preserving first-seen order and
// dropping duplicates and blanks.
func NewTagSet(names ...string) TagSet {
	var t TagSet
	for _, n := range names {
		t = t.add(n)
	}
	return t
}

func (t TagSet) add(name string) TagSet {
	name = strings.TrimSpace(name)
	if name == "" || t.Contains(name) {
		return t
	}
	return append(t, name)
}

func (t TagSet) remove(name string) TagSet {
	out := make(TagSet, 0, len(t))
	for _, n := range t {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// Contains reports whether name is a member.
func (t TagSet) Contains(name string) bool {
	for _, n := range t {
		if n == name {
			return true
		}
	}
	return false
}

// Equal reports set equality, ignoring order.
func (t TagSet) Equal(other TagSet) bool {
	if len(t) != len(other) {
		return false
	}
	for _, n := range t {
		if !other.Contains(n) {
			return false
		}
	}
	return true
}

// Intersects reports whether the two sets share any member.
func (t TagSet) Intersects(other TagSet) bool {
	for _, n := range t {
		if other.Contains(n) {
			return true
		}
	}
	return false
}

// Modify applies a delta list to the set. Each entry prefixed with "+" adds a
// tag, "-" removes one, and a bare entry list (no +/- prefixes used anywhere
// in delta) replaces the set wholesale. A delta mixing bare entries with
// +/- entries is treated as a pure add/remove delta; bare entries add.
func (t TagSet) Modify(delta []string) TagSet {
	hasDelta := false
	for _, d := range delta {
		if strings.HasPrefix(d, "+") || strings.HasPrefix(d, "-") {
			hasDelta = true
			break
		}
	}
	if !hasDelta {
		return NewTagSet(delta...)
	}
	out := t
	for _, d := range delta {
		switch {
		case strings.HasPrefix(d, "+"):
			out = out.add(strings.TrimPrefix(d, "+"))
		case strings.HasPrefix(d, "-"):
			out = out.remove(strings.TrimPrefix(d, "-"))
		default:
			out = out.add(d)
		}
	}
	return out
}

// String renders the set as a comma-joined list in its stored order.
func (t TagSet) String() string {
	return strings.Join(t, ",")
}

// ParseTagList splits a "+a,-b,c" style flag value into delta entries.
func ParseTagList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
