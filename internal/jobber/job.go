package jobber

import "time"

// Job is one recorded work interval.
type Job struct {
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end,omitempty"`
	Message string     `json:"message,omitempty"`
	Tags    TagSet     `json:"tags,omitempty"`
	Deleted *time.Time `json:"deleted,omitempty"`
}

// IsOpen reports whether the job has no end yet.
func (j Job) IsOpen() bool { return j.End == nil }

// IsDeleted reports whether the job is tombstoned.
func (j Job) IsDeleted() bool { return j.Deleted != nil }

// EffectiveEnd returns End, or ctx.Now() for an open job.
func (j Job) EffectiveEnd(ctx Context) time.Time {
	if j.End != nil {
		return *j.End
	}
	return ctx.Now()
}

// Minutes returns the job's raw duration in minutes, treating an open job as
// ending at ctx.Now().
func (j Job) Minutes(ctx Context) float64 {
	return j.EffectiveEnd(ctx).Sub(j.Start).Minutes()
}

// Overlaps reports whether j and other describe intersecting intervals, per
// the three-way rule: both closed compare start/end directly; one open
// compares against ctx.Now(); both open is an invariant violation the
// database never allows, so it is treated as no overlap.
func (j Job) Overlaps(other Job, ctx Context) bool {
	if j.IsOpen() && other.IsOpen() {
		return false
	}
	if !j.IsOpen() && !other.IsOpen() {
		return j.Start.Before(*other.End) && j.End.After(other.Start)
	}
	// exactly one of the two is open
	open, closed := j, other
	if !j.IsOpen() {
		open, closed = other, j
	}
	return open.Start.Before(*closed.End) && ctx.Now().After(closed.Start)
}

// Split cuts j into sub-jobs that together cover the same interval but never
// cross a local-midnight boundary. Each sub-job inherits message and tags.
func (j Job) Split(ctx Context) []Job {
	end := j.EffectiveEnd(ctx)
	var out []Job
	s := j.Start
	for {
		sLocal := s.Local()
		eLocal := end.Local()
		nextMidnight := time.Date(sLocal.Year(), sLocal.Month(), sLocal.Day(), 0, 0, 0, 0, sLocal.Location()).AddDate(0, 0, 1)
		if !nextMidnight.Before(eLocal) {
			e := end
			out = append(out, Job{Start: s, End: &e, Message: j.Message, Tags: j.Tags})
			break
		}
		e := nextMidnight
		out = append(out, Job{Start: s, End: &e, Message: j.Message, Tags: j.Tags})
		s = nextMidnight
	}
	return out
}
