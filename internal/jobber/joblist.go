package jobber

// PositionedJob pairs a Job with its stable 0-based position in the database.
type PositionedJob struct {
	Pos int
	Job Job
}

// JobList is a filtered, ordered view over the database, as produced by
// List/Report/ExportCSV/ListTags.
type JobList []PositionedJob

// Positions returns the 0-based positions in the list, in order.
func (l JobList) Positions() []int {
	out := make([]int, len(l))
	for i, pj := range l {
		out[i] = pj.Pos
	}
	return out
}

// Jobs returns the bare Job values, in order.
func (l JobList) Jobs() []Job {
	out := make([]Job, len(l))
	for i, pj := range l {
		out[i] = pj.Job
	}
	return out
}

// Tags returns the distinct union of tags used across the list, in
// first-seen order.
func (l JobList) Tags() TagSet {
	var tags TagSet
	for _, pj := range l {
		for _, t := range pj.Job.Tags {
			tags = tags.add(t)
		}
	}
	return tags
}
