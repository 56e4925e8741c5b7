package jobber

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeLegacyFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "legacy.csv")
	content := ""
	for _, l := range lines {
		content += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLegacyImportSkipsNonMatchingLines(t *testing.T) {
	db := NewJobs()
	path := writeLegacyFile(t,
		`"2023-02-01T09:00:00Z";"2023-02-01T11:00:00Z";"morning work";"dev"`,
		`this line does not match the format at all`,
		`"2023-02-01T13:00:00Z";"";"afternoon, still open";""`,
	)

	count, _, err := db.legacyImport(path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Len(t, db.Jobs, 2)
	assert.True(t, db.Jobs[1].IsOpen())
}

func TestLegacyImportNewTagsExcludesAlreadyKnown(t *testing.T) {
	db := NewJobs()
	ctx := NewContextAt(at(18, 0, 1))
	_, err := db.Process(AddCommand{
		Start: at(9, 0, 1), End: at(10, 0, 1),
		Message: MessageArg{Kind: MsgGiven, Text: "existing"},
		Tags:    TagsArg{Kind: TagsGiven, Delta: []string{"dev"}},
	}, AllChecks(), ctx)
	require.NoError(t, err)

	path := writeLegacyFile(t,
		`"2023-02-01T11:00:00Z";"2023-02-01T12:00:00Z";"imported";"dev,ops"`,
	)
	_, newTags, err := db.legacyImport(path)
	require.NoError(t, err)
	assert.True(t, newTags.Equal(NewTagSet("ops")))
}

func TestLegacyImportBadTimestampAborts(t *testing.T) {
	db := NewJobs()
	path := writeLegacyFile(t, `"not-a-timestamp";"2023-02-01T11:00:00Z";"bad";"tag"`)
	_, _, err := db.legacyImport(path)
	jerr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, KindDateTimeParse, jerr.Kind)
}
