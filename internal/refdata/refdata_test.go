package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSites(t *testing.T) {
	path := writeTemp(t, "sites.csv", "site_reference,court_name\nleeds,Leeds Crown Court\n,\nBHAM,Birmingham Crown Court\n")

	sites, err := LoadSites(path)
	require.NoError(t, err)
	assert.Len(t, sites, 2)
	assert.Equal(t, "Leeds Crown Court", sites["LEEDS"], "references are upper-cased")
	assert.Equal(t, "Birmingham Crown Court", sites["BHAM"])
}

func TestLoadSitesMissingFile(t *testing.T) {
	_, err := LoadSites(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadChannels(t *testing.T) {
	path := writeTemp(t, "channels.json", `[
		{"archive_name": "Leeds_200623_Smith", "contacts": [
			{"email": " Jo@Example.ORG ", "first_name": "Jo", "last_name": "Bloggs"},
			{"email": ""}
		]}
	]`)

	channels, err := LoadChannels(path)
	require.NoError(t, err)
	contacts := channels["leeds_200623_smith"]
	require.Len(t, contacts, 1, "blank emails are dropped")
	assert.Equal(t, "jo@example.org", contacts[0].Email)
	assert.Equal(t, "Jo", contacts[0].FirstName)
}

func TestLoadChannelsRejectsBadShape(t *testing.T) {
	path := writeTemp(t, "channels.json", `[{"contacts": []}]`)
	_, err := LoadChannels(path)
	assert.ErrorContains(t, err, "schema")
}

func TestLoadArchiveList(t *testing.T) {
	path := writeTemp(t, "archives.csv",
		"archive_id,archive_name,create_time,duration,file_name,file_size_mb\n"+
			"a1,Leeds_200623_Smith_ORIG.mp4,1600000000000,120,rec.mp4,512\n"+
			"a2,Other.mp4,23/06/2020 14:30,60,,\n")

	items, err := LoadArchiveList(path)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a1", items[0].ArchiveID)
	assert.Equal(t, 120, items[0].Duration)
	assert.Equal(t, "rec.mp4", items[0].FileName)
	assert.Equal(t, "512", items[0].FileSizeMB)
	assert.Equal(t, "23/06/2020 14:30", items[1].CreateTime)
}

func TestLoadArchiveListShortRow(t *testing.T) {
	path := writeTemp(t, "archives.csv", "archive_id,archive_name\na1,x\n")
	_, err := LoadArchiveList(path)
	assert.Error(t, err)
}
