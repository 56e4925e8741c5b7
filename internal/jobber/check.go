package jobber

// Check names one independently selectable validator.
type Check int

const (
	CheckEndBeforeStart Check = iota
	CheckOverlaps
	CheckUnknownTags
	CheckCollidingTags
	CheckConfirmDeletion
)

// Checks is the active subset of checks for one process() call.
type Checks map[Check]bool

// AllChecks enables every check; the default for a first attempt.
func AllChecks() Checks {
	return Checks{
		CheckEndBeforeStart:   true,
		CheckOverlaps:         true,
		CheckUnknownTags:      true,
		CheckCollidingTags:    true,
		CheckConfirmDeletion:  true,
	}
}

// NoChecks disables everything; used to re-invoke process() after the user
// has confirmed past a warning bundle.
func NoChecks() Checks {
	return Checks{}
}

// Omit returns AllChecks with the given checks turned off.
func Omit(checks ...Check) Checks {
	c := AllChecks()
	for _, ch := range checks {
		delete(c, ch)
	}
	return c
}

// Has reports whether a check is active.
func (c Checks) Has(ch Check) bool {
	return c[ch]
}

// validatePending runs EndBeforeStart, Overlaps, UnknownTags and
// CollidingTags against a would-be job. excludePos excludes a position from
// the overlap scan (the job being edited); pass -1 for none.
func validatePending(db *Jobs, checks Checks, job Job, excludePos int, ctx Context) ([]Warning, error) {
	if checks.Has(CheckEndBeforeStart) && job.End != nil && !job.Start.Before(*job.End) {
		return nil, errEndBeforeStart(job.Start, *job.End)
	}

	var warnings []Warning

	if checks.Has(CheckOverlaps) {
		var positions []int
		for i, existing := range db.Jobs {
			if existing.IsDeleted() || i == excludePos {
				continue
			}
			if job.Overlaps(existing, ctx) {
				positions = append(positions, i)
			}
		}
		if len(positions) > 0 {
			warnings = append(warnings, Warning{Kind: WarningOverlaps, Positions: positions})
		}
	}

	if checks.Has(CheckUnknownTags) {
		known := db.KnownTags()
		var unknown TagSet
		for _, t := range job.Tags {
			if !known.Contains(t) {
				unknown = unknown.add(t)
			}
		}
		if len(unknown) > 0 {
			warnings = append(warnings, Warning{Kind: WarningUnknownTags, Tags: unknown})
		}
	}

	if checks.Has(CheckCollidingTags) {
		if _, err := db.Configuration.Resolve(job.Tags); err != nil {
			return nil, err
		}
	}

	return warnings, nil
}
