package jobber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Split cuts at local midnight; pin the process's local zone to UTC so the
// boundary the test asserts on doesn't depend on the machine running it.
func init() {
	time.Local = time.UTC
}

func endAt(h, m int, day int) *time.Time {
	t := time.Date(2023, time.February, day, h, m, 0, 0, time.UTC)
	return &t
}

func TestJobIsOpenAndMinutes(t *testing.T) {
	ctx := NewContextAt(time.Date(2023, time.February, 1, 14, 0, 0, 0, time.UTC))
	open := Job{Start: time.Date(2023, time.February, 1, 12, 0, 0, 0, time.UTC)}
	assert.True(t, open.IsOpen())
	assert.Equal(t, 120.0, open.Minutes(ctx))

	closed := Job{Start: time.Date(2023, time.February, 1, 12, 0, 0, 0, time.UTC), End: endAt(13, 0, 1)}
	assert.False(t, closed.IsOpen())
	assert.Equal(t, 60.0, closed.Minutes(ctx))
}

func TestJobOverlaps(t *testing.T) {
	ctx := NewContextAt(time.Date(2023, time.February, 1, 15, 0, 0, 0, time.UTC))

	t.Run("both open never overlap", func(t *testing.T) {
		a := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC)}
		b := Job{Start: time.Date(2023, time.February, 1, 10, 0, 0, 0, time.UTC)}
		assert.False(t, a.Overlaps(b, ctx))
	})

	t.Run("both closed, intersecting", func(t *testing.T) {
		a := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC), End: endAt(11, 0, 1)}
		b := Job{Start: time.Date(2023, time.February, 1, 10, 0, 0, 0, time.UTC), End: endAt(12, 0, 1)}
		assert.True(t, a.Overlaps(b, ctx))
	})

	t.Run("both closed, disjoint", func(t *testing.T) {
		a := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC), End: endAt(10, 0, 1)}
		b := Job{Start: time.Date(2023, time.February, 1, 11, 0, 0, 0, time.UTC), End: endAt(12, 0, 1)}
		assert.False(t, a.Overlaps(b, ctx))
	})

	t.Run("one open overlapping the closed job's interval", func(t *testing.T) {
		closedJob := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC), End: endAt(11, 0, 1)}
		openJob := Job{Start: time.Date(2023, time.February, 1, 10, 0, 0, 0, time.UTC)}
		assert.True(t, closedJob.Overlaps(openJob, ctx))
		assert.True(t, openJob.Overlaps(closedJob, ctx))
	})

	t.Run("one open starting after the closed job ends", func(t *testing.T) {
		closedJob := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC), End: endAt(10, 0, 1)}
		openJob := Job{Start: time.Date(2023, time.February, 1, 11, 0, 0, 0, time.UTC)}
		assert.False(t, closedJob.Overlaps(openJob, ctx))
	})
}

func TestJobSplitAcrossMidnight(t *testing.T) {
	ctx := NewContext()
	j := Job{
		Start:   time.Date(2023, time.February, 1, 22, 0, 0, 0, time.UTC),
		End:     endAt(2, 0, 2),
		Message: "overnight",
		Tags:    NewTagSet("night"),
	}
	parts := j.Split(ctx)
	require := assert.New(t)
	require.Len(parts, 2)
	require.Equal(time.Date(2023, time.February, 1, 22, 0, 0, 0, time.UTC), parts[0].Start)
	require.Equal(time.Date(2023, time.February, 2, 0, 0, 0, 0, time.UTC), *parts[0].End)
	require.Equal(time.Date(2023, time.February, 2, 0, 0, 0, 0, time.UTC), parts[1].Start)
	require.Equal(time.Date(2023, time.February, 2, 2, 0, 0, 0, time.UTC), *parts[1].End)
	require.Equal("overnight", parts[1].Message)
	require.True(parts[1].Tags.Equal(NewTagSet("night")))
}

func TestJobSplitWithinOneDay(t *testing.T) {
	ctx := NewContext()
	j := Job{Start: time.Date(2023, time.February, 1, 9, 0, 0, 0, time.UTC), End: endAt(17, 0, 1)}
	parts := j.Split(ctx)
	assert.Len(t, parts, 1)
}
