package jobber

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportGrandTotal(t *testing.T) {
	ctx := NewContextAt(at(18, 0, 1))
	end1 := at(11, 0, 1)
	end2 := at(15, 0, 2)
	list := JobList{
		{Pos: 0, Job: Job{Start: at(9, 0, 1), End: &end1}},
		{Pos: 1, Job: Job{Start: at(13, 0, 2), End: &end2}},
	}

	var b strings.Builder
	require.NoError(t, Report(&b, list, NewConfiguration(), ctx))
	out := b.String()
	assert.Contains(t, out, "Total: 2 job(s), 4 hours")
}

func TestReportShowsPayWhenConfigured(t *testing.T) {
	ctx := NewContextAt(at(18, 0, 1))
	end := at(11, 0, 1)
	cfg := NewConfiguration()
	cfg.Base.Pay = decp(10)
	list := JobList{{Pos: 0, Job: Job{Start: at(9, 0, 1), End: &end}}}

	var b strings.Builder
	require.NoError(t, Report(&b, list, cfg, ctx))
	assert.Contains(t, b.String(), "$20.00")
}

func TestReportSplitsOvernightJobAcrossDays(t *testing.T) {
	ctx := NewContext()
	end := at(2, 0, 2)
	list := JobList{{Pos: 0, Job: Job{Start: at(22, 0, 1), End: &end}}}

	var b strings.Builder
	require.NoError(t, Report(&b, list, NewConfiguration(), ctx))
	assert.Contains(t, b.String(), "Total: 1 job(s), 4 hours")
}
