package jobber

import (
	"regexp"
	"strconv"
	"strings"
)

// Duration is a user-supplied span, stored as whole minutes.
type Duration struct {
	Minutes int
}

// ZeroDuration is the result of parsing the empty string.
var ZeroDuration = Duration{}

var (
	reDurHM   = regexp.MustCompile(`^(\d+):(\d+)$`)
	reDurFrac = regexp.MustCompile(`^(\d+)[.,](\d+)$`)
	reDurH    = regexp.MustCompile(`^(\d+)$`)
	reDurHhMm = regexp.MustCompile(`^(\d+)h(\d+)m$`)
	reDurM    = regexp.MustCompile(`^(\d+)m$`)
	reDurHOnly = regexp.MustCompile(`^(\d+)h$`)
)

// ParseDuration recognizes "HH:MM", "H.F"/"H,F" (fractional hours), "H",
// "HhMm", "Nm" and "Nh" in that order; the empty string yields ZeroDuration.
func ParseDuration(s string) (Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroDuration, nil
	}
	if m := reDurHM.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		return Duration{Minutes: h*60 + mi}, nil
	}
	if m := reDurFrac.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		frac, _ := strconv.ParseFloat("0."+m[2], 64)
		return Duration{Minutes: h*60 + int(frac*60)}, nil
	}
	if m := reDurH.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		return Duration{Minutes: h * 60}, nil
	}
	if m := reDurHhMm.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		mi, _ := strconv.Atoi(m[2])
		return Duration{Minutes: h*60 + mi}, nil
	}
	if m := reDurM.FindStringSubmatch(s); m != nil {
		mi, _ := strconv.Atoi(m[1])
		return Duration{Minutes: mi}, nil
	}
	if m := reDurHOnly.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		return Duration{Minutes: h * 60}, nil
	}
	return ZeroDuration, errDateTimeParse(s)
}

// Hours returns the duration as fractional hours.
func (d Duration) Hours() float64 {
	return float64(d.Minutes) / 60.0
}
