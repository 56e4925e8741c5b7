package jobber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m, day int) time.Time {
	return time.Date(2023, time.February, day, h, m, 0, 0, time.UTC)
}

func TestProcessStartThenEnd(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))

	change, err := db.Process(StartCommand{
		Start:   at(9, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "morning work"},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangePushed, change.Kind)
	assert.True(t, db.Jobs[0].IsOpen())

	change, err = db.Process(EndCommand{End: at(13, 0, 1)}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangeModified, change.Kind)
	assert.False(t, db.Jobs[0].IsOpen())
	assert.Equal(t, at(13, 0, 1), *db.Jobs[0].End)
}

func TestProcessStartWhileOpenFails(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))
	_, err := db.Process(StartCommand{Start: at(9, 0, 1), Message: MessageArg{Kind: MsgGiven, Text: "a"}}, AllChecks(), ctx)
	require.NoError(t, err)

	_, err = db.Process(StartCommand{Start: at(10, 0, 1), Message: MessageArg{Kind: MsgGiven, Text: "b"}}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindOpenJob, jerr.Kind)
}

func TestProcessEndWithoutOpenJobFails(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))
	_, err := db.Process(EndCommand{End: at(13, 0, 1)}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindNoOpenJob, jerr.Kind)
}

func TestProcessAddRequiresMessage(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))
	_, err := db.Process(AddCommand{Start: at(9, 0, 1), End: at(10, 0, 1)}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindEnterMessage, jerr.Kind)
}

func TestProcessOverlapRaisesWarning(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(11, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "first"},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	_, err = db.Process(AddCommand{
		Start: at(10, 0, 1), End: at(12, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "second"},
	}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindWarnings, jerr.Kind)

	// retrying with checks omitted (as the CLI does after confirmation) succeeds
	change, err := db.Process(AddCommand{
		Start: at(10, 0, 1), End: at(12, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "second"},
	}, NoChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangePushed, change.Kind)
}

func TestBackOnEmptyDatabase(t *testing.T) {
	ctx := NewContextAt(at(12, 0, 1))

	t.Run("no message given fails", func(t *testing.T) {
		db := NewJobs()
		_, err := db.Process(BackCommand{Start: at(9, 0, 1)}, AllChecks(), ctx)
		jerr, ok := err.(*Error)
		require.True(t, ok)
		assert.Equal(t, KindDatabaseEmpty, jerr.Kind)
	})

	t.Run("message given succeeds with empty inherited tags", func(t *testing.T) {
		db := NewJobs()
		change, err := db.Process(BackCommand{
			Start:   at(9, 0, 1),
			Message: MessageArg{Kind: MsgGiven, Text: "first job ever"},
		}, AllChecks(), ctx)
		require.NoError(t, err)
		assert.Equal(t, ChangePushed, change.Kind)
		assert.Empty(t, change.Job.Tags)
	})
}

func TestBackInheritsMessageAndTags(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))

	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(12, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "writing code"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"dev"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	change, err := db.Process(BackCommand{Start: at(13, 0, 1)}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, "writing code", change.Job.Message)
	assert.True(t, change.Job.Tags.Equal(NewTagSet("dev")))
}

func TestBackWithTagDelta(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))

	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(12, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "writing code"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"dev"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	change, err := db.Process(BackCommand{
		Start: at(13, 0, 1),
		Tags:  TagsArg{Kind: TagsGiven, Delta: []string{"+meeting", "-dev"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.True(t, change.Job.Tags.Equal(NewTagSet("meeting")))
}

func TestProcessEditChangesEndViaDuration(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(10, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "short job"},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	change, err := db.Process(EditCommand{
		Pos:    0,
		EndDur: EndOrDuration{Kind: EODDuration, Duration: Duration{Minutes: 180}},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, at(12, 0, 1), *change.Job.End)
}

func TestProcessEditUnknownPositionFails(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(EditCommand{Pos: 5}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindJobNotFound, jerr.Kind)
}

func TestProcessDeleteRequiresConfirmationThenTombstones(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(10, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "to delete"},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	_, err = db.Process(DeleteCommand{RangeText: "1"}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindWarnings, jerr.Kind)

	change, err := db.Process(DeleteCommand{RangeText: "1"}, NoChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangeDeleted, change.Kind)
	assert.True(t, db.Jobs[0].IsDeleted())

	listed, err := db.Process(ListCommand{RangeText: ""}, NoChecks(), ctx)
	require.NoError(t, err)
	assert.Empty(t, listed.List)
}

func TestKnownTags(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(10, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "job"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"a", "b"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.True(t, db.KnownTags().Equal(NewTagSet("a", "b")))
}

func TestProcessListTagsReturnsDistinctTagsNotJobList(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(10, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "first"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"a", "b"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	_, err = db.Process(AddCommand{
		Start: at(11, 0, 1), End: at(12, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "second"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"b", "c"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	change, err := db.Process(ListTagsCommand{RangeText: ""}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangeListedTags, change.Kind)
	assert.True(t, change.Tags.Equal(NewTagSet("a", "b", "c")))
	assert.Empty(t, change.List)
}

func TestProcessListTagsEmptyDatabase(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	change, err := db.Process(ListTagsCommand{RangeText: ""}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Empty(t, change.Tags)
}

func TestProcessSetConfigurationMissingTagsErrors(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	r := 0.5
	_, err := db.Process(SetConfigurationCommand{
		Tags:   TagsArg{Kind: TagsGiven, Delta: nil},
		Update: Properties{Resolution: &r},
	}, AllChecks(), ctx)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindMissingTags, jerr.Kind)
}

func TestProcessSetConfigurationWithoutTagsTargetsBase(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	r := 0.5
	change, err := db.Process(SetConfigurationCommand{
		Tags:   TagsArg{Kind: TagsAbsent},
		Update: Properties{Resolution: &r},
	}, AllChecks(), ctx)
	require.NoError(t, err)
	assert.Equal(t, ChangeConfigured, change.Kind)
	assert.Equal(t, 0.5, *db.Configuration.Base.Resolution)
}
