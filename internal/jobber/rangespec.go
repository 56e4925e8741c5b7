package jobber

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// RangeKind discriminates which selection rule a Range applies.
type RangeKind int

const (
	// RangeAll selects every non-deleted job; used when no range text is given.
	RangeAll RangeKind = iota
	// RangeCount selects the last N non-deleted jobs by position.
	RangeCount
	// RangeAt selects a single 0-based position.
	RangeAt
	// RangePositions selects an inclusive 0-based position span.
	RangePositions
	// RangeFromPosition selects everything from a 0-based position onward.
	RangeFromPosition
	// RangeTime selects jobs intersecting [Start, End).
	RangeTime
	// RangeSince selects jobs intersecting [Start, +inf).
	RangeSince
	// RangeDay selects jobs intersecting the local calendar day containing Day.
	RangeDay
)

// Range describes which jobs a list/report/export/delete call should include.
type Range struct {
	Kind  RangeKind
	Count int
	At    int
	From  int
	To    int
	Start time.Time
	End   time.Time
	Day   time.Time
}

var (
	reRangeCount    = regexp.MustCompile(`^~(\d+)$`)
	reRangeAt       = regexp.MustCompile(`^(\d+)$`)
	reRangePosSpan  = regexp.MustCompile(`^(\d+)-(\d+)$`)
	reRangeFromPos  = regexp.MustCompile(`^(\d+)-$`)
)

var epoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.Local)

// ParseRange recognizes "~N", "N", "A-B", "A-", a time range ("X..Y" /
// "X...Y" / "X.."), or anything parseable as a PartialDateTime (a single
// day), in that order.
func ParseRange(s string, ctx Context) (Range, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Range{Kind: RangeAll}, nil
	}
	if m := reRangeCount.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Kind: RangeCount, Count: n}, nil
	}
	if m := reRangeAt.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		return Range{Kind: RangeAt, At: n - 1}, nil
	}
	if m := reRangePosSpan.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		b, _ := strconv.Atoi(m[2])
		return Range{Kind: RangePositions, From: a - 1, To: b - 1}, nil
	}
	if m := reRangeFromPos.FindStringSubmatch(s); m != nil {
		a, _ := strconv.Atoi(m[1])
		return Range{Kind: RangeFromPosition, From: a - 1}, nil
	}
	if strings.Contains(s, "...") {
		parts := strings.SplitN(s, "...", 2)
		left := parts[0] + "."
		right := parts[1]
		return parseTimeRange(left, right, ctx)
	}
	if strings.Contains(s, "..") {
		parts := strings.SplitN(s, "..", 2)
		if parts[1] == "" {
			pdt, err := ParsePartialDateTime(parts[0])
			if err != nil {
				return Range{}, errRangeFormat(s)
			}
			return Range{Kind: RangeSince, Start: pdt.Resolve(ctx.Now())}, nil
		}
		return parseTimeRange(parts[0], parts[1], ctx)
	}
	pdt, err := ParsePartialDateTime(s)
	if err != nil || pdt.IsNone() {
		return Range{}, errRangeFormat(s)
	}
	resolved := pdt.Resolve(ctx.Now())
	local := resolved.Local()
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
	return Range{Kind: RangeDay, Day: day}, nil
}

func parseTimeRange(left, right string, ctx Context) (Range, error) {
	var start, end time.Time
	if strings.TrimSpace(left) == "" {
		start = epoch
	} else {
		pdt, err := ParsePartialDateTime(left)
		if err != nil {
			return Range{}, errRangeFormat(left)
		}
		start = pdt.Resolve(ctx.Now())
	}
	if strings.TrimSpace(right) == "" {
		end = ctx.Now()
	} else {
		pdt, err := ParsePartialDateTime(right)
		if err != nil {
			return Range{}, errRangeFormat(right)
		}
		end = pdt.Resolve(ctx.Now())
	}
	return Range{Kind: RangeTime, Start: start, End: end}, nil
}

// Matches reports whether the job at pos falls within the range, for every
// kind except RangeCount, which is handled by the caller since it requires
// comparing against the full non-deleted set.
func (r Range) Matches(pos int, job Job, ctx Context) bool {
	switch r.Kind {
	case RangeAll:
		return true
	case RangeAt:
		return pos == r.At
	case RangePositions:
		return pos >= r.From && pos <= r.To
	case RangeFromPosition:
		return pos >= r.From
	case RangeTime:
		return job.Start.Before(r.End) && job.EffectiveEnd(ctx).After(r.Start)
	case RangeSince:
		return job.EffectiveEnd(ctx).After(r.Start)
	case RangeDay:
		dayEnd := r.Day.AddDate(0, 0, 1)
		return job.Start.Before(dayEnd) && job.EffectiveEnd(ctx).After(r.Day)
	default:
		return false
	}
}
