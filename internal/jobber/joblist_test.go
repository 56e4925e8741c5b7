package jobber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobListTagsUnionsDistinctInFirstSeenOrder(t *testing.T) {
	list := JobList{
		{Pos: 0, Job: Job{Tags: NewTagSet("b", "a")}},
		{Pos: 1, Job: Job{Tags: NewTagSet("a", "c")}},
	}
	assert.Equal(t, NewTagSet("b", "a", "c"), list.Tags())
}

func TestJobListTagsEmptyForUntaggedJobs(t *testing.T) {
	list := JobList{{Pos: 0, Job: Job{}}}
	assert.Empty(t, list.Tags())
}

func TestJobListPositionsAndJobs(t *testing.T) {
	list := JobList{
		{Pos: 2, Job: Job{Message: "a"}},
		{Pos: 5, Job: Job{Message: "b"}},
	}
	assert.Equal(t, []int{2, 5}, list.Positions())
	assert.Equal(t, []Job{{Message: "a"}, {Message: "b"}}, list.Jobs())
}
