package jobber

import (
	"regexp"
	"strconv"
	"time"
)

// PartialKind discriminates which components of a PartialDateTime were
// actually supplied by the user; the rest are inherited from a base instant
// when Resolve is called.
type PartialKind int

const (
	// PKNone is the result of parsing the empty string: no components given.
	PKNone PartialKind = iota
	// PKTime carries only an hour/minute; date is inherited.
	PKTime
	// PKFullDate carries an absolute year/month/day/hour/minute.
	PKFullDate
	// PKMonthDay carries month/day/hour/minute; year is inherited.
	PKMonthDay
	// PKOffsetTime carries a day offset from the base plus an explicit time.
	PKOffsetTime
	// PKOffset carries only a day offset; time-of-day is inherited.
	PKOffset
)

// PartialDateTime is a user-supplied time expression, not yet anchored to a
// concrete instant. Resolve anchors it against a base timestamp.
type PartialDateTime struct {
	Kind    PartialKind
	Year    int
	Month   int
	Day     int
	Hour    int
	Minute  int
	Offset  int
}

var (
	reTime        = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})$`)
	reGermanDate  = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.(\d{4}),(\d{1,2}):(\d{1,2})$`)
	reTimeGerman  = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),(\d{1,2})\.(\d{1,2})\.(\d{4})$`)
	reUSDate      = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4}),(\d{1,2}):(\d{1,2})$`)
	reTimeUS      = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),(\d{1,2})/(\d{1,2})/(\d{4})$`)
	reISODate     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2}),(\d{1,2}):(\d{1,2})$`)
	reTimeISO     = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),(\d{4})-(\d{1,2})-(\d{1,2})$`)
	reGermanMD    = regexp.MustCompile(`^(\d{1,2})\.(\d{1,2})\.,(\d{1,2}):(\d{1,2})$`)
	reTimeGermanMD = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),(\d{1,2})\.(\d{1,2})\.$`)
	reUSMD        = regexp.MustCompile(`^(\d{1,2})/(\d{1,2}),(\d{1,2}):(\d{1,2})$`)
	reTimeUSMD    = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),(\d{1,2})/(\d{1,2})$`)
	reOffsetTime  = regexp.MustCompile(`^([+-]?\d+),(\d{1,2}):(\d{1,2})$`)
	reTimeOffset  = regexp.MustCompile(`^(\d{1,2}):(\d{1,2}),([+-]?\d+)$`)
	reOffset      = regexp.MustCompile(`^([+-]\d+)$`)
)

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

// ParsePartialDateTime recognizes the grammars in order and returns the
// first match; the empty string yields PKNone.
func ParsePartialDateTime(s string) (PartialDateTime, error) {
	if s == "" {
		return PartialDateTime{Kind: PKNone}, nil
	}
	if m := reTime.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKTime, Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reGermanDate.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[3]), Month: atoi(m[2]), Day: atoi(m[1]), Hour: atoi(m[4]), Minute: atoi(m[5])}, nil
	}
	if m := reTimeGerman.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[5]), Month: atoi(m[4]), Day: atoi(m[3]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reUSDate.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[3]), Month: atoi(m[1]), Day: atoi(m[2]), Hour: atoi(m[4]), Minute: atoi(m[5])}, nil
	}
	if m := reTimeUS.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[5]), Month: atoi(m[3]), Day: atoi(m[4]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reISODate.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[1]), Month: atoi(m[2]), Day: atoi(m[3]), Hour: atoi(m[4]), Minute: atoi(m[5])}, nil
	}
	if m := reTimeISO.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKFullDate, Year: atoi(m[3]), Month: atoi(m[4]), Day: atoi(m[5]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reGermanMD.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKMonthDay, Month: atoi(m[2]), Day: atoi(m[1]), Hour: atoi(m[3]), Minute: atoi(m[4])}, nil
	}
	if m := reTimeGermanMD.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKMonthDay, Month: atoi(m[4]), Day: atoi(m[3]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reUSMD.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKMonthDay, Month: atoi(m[1]), Day: atoi(m[2]), Hour: atoi(m[3]), Minute: atoi(m[4])}, nil
	}
	if m := reTimeUSMD.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKMonthDay, Month: atoi(m[3]), Day: atoi(m[4]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reOffsetTime.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKOffsetTime, Offset: atoi(m[1]), Hour: atoi(m[2]), Minute: atoi(m[3])}, nil
	}
	if m := reTimeOffset.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKOffsetTime, Offset: atoi(m[3]), Hour: atoi(m[1]), Minute: atoi(m[2])}, nil
	}
	if m := reOffset.FindStringSubmatch(s); m != nil {
		return PartialDateTime{Kind: PKOffset, Offset: atoi(m[1])}, nil
	}
	return PartialDateTime{}, errDateTimeParse(s)
}

// Resolve anchors the partial value against base (interpreted in base's
// location, normally local time), substituting any component the user did
// not supply.
func (p PartialDateTime) Resolve(base time.Time) time.Time {
	loc := base.Location()
	switch p.Kind {
	case PKNone:
		return base
	case PKTime:
		return time.Date(base.Year(), base.Month(), base.Day(), p.Hour, p.Minute, 0, 0, loc)
	case PKFullDate:
		return time.Date(p.Year, time.Month(p.Month), p.Day, p.Hour, p.Minute, 0, 0, loc)
	case PKMonthDay:
		return time.Date(base.Year(), time.Month(p.Month), p.Day, p.Hour, p.Minute, 0, 0, loc)
	case PKOffsetTime:
		shifted := base.AddDate(0, 0, p.Offset)
		return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), p.Hour, p.Minute, 0, 0, loc)
	case PKOffset:
		shifted := base.AddDate(0, 0, p.Offset)
		return time.Date(shifted.Year(), shifted.Month(), shifted.Day(), base.Hour(), base.Minute(), 0, 0, loc)
	default:
		return base
	}
}

// IsNone reports whether the value came from parsing the empty string.
func (p PartialDateTime) IsNone() bool { return p.Kind == PKNone }
