package jobber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileYieldsEmptyDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")
	db, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, db.Jobs)
	assert.NotNil(t, db.Configuration.Base.Resolution)
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))
	_, err := Load(path)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindJSON, jerr.Kind)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobber.json")
	db := NewJobs()
	ctx := NewContextAt(at(12, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(11, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "round trip"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"dev"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	require.NoError(t, db.Save(path))
	assert.False(t, db.Modified)

	reloaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, reloaded.Jobs, 1)
	assert.Equal(t, "round trip", reloaded.Jobs[0].Message)
	assert.True(t, reloaded.Jobs[0].Tags.Equal(NewTagSet("dev")))
}

