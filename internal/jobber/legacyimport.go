package jobber

import (
	"os"
	"regexp"
	"strings"
	"time"
)

var legacyLineRe = regexp.MustCompile(`^"(.*)";"(.*)";"(.*)";"(.*)"$`)

// legacyImport reads a pre-jobber CSV export: each line is
// "<start>";"<end>";"<message>";"<tags>" with RFC 3339 timestamps and a
// comma-separated tag list. Lines that don't match the format are skipped
// silently; lines that match but carry an unparsable timestamp abort the
// whole import with DateTimeParse. Returns the number of appended jobs and
// the tag names introduced that were not already known to the database.
func (db *Jobs) legacyImport(path string) (int, TagSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, nil, errIO(err)
	}
	known := db.KnownTags()
	var newTags TagSet
	count := 0

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		m := legacyLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		startStr, endStr, msg, tagsStr := m[1], m[2], m[3], m[4]

		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return count, newTags, errDateTimeParse(startStr)
		}

		var endPtr *time.Time
		if strings.TrimSpace(endStr) != "" {
			end, err := time.Parse(time.RFC3339, endStr)
			if err != nil {
				return count, newTags, errDateTimeParse(endStr)
			}
			endUTC := end.UTC()
			endPtr = &endUTC
		}

		var tags TagSet
		if strings.TrimSpace(tagsStr) != "" {
			for _, t := range strings.Split(tagsStr, ",") {
				t = strings.TrimSpace(t)
				if t == "" {
					continue
				}
				tags = tags.add(t)
				if !known.Contains(t) {
					newTags = newTags.add(t)
				}
			}
		}

		db.Jobs = append(db.Jobs, Job{
			Start:   start.UTC(),
			End:     endPtr,
			Message: msg,
			Tags:    tags,
		})
		count++
	}

	return count, newTags, nil
}
