package fieldnotes_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"news-cms/fieldnotes"
)

func TestLoadMissingFileIsEmpty(t *testing.T) {
	store := fieldnotes.NewStore(filepath.Join(t.TempDir(), "field-comments.json"))

	comments, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, comments)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field-comments.json")
	store := fieldnotes.NewStore(path)

	in := map[string]string{
		"weekday": "day of week the item was scraped",
		"week":    "iso week number",
	}
	assert.NoError(t, store.Save(in))

	out, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveOverwritesPreviousContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field-comments.json")
	store := fieldnotes.NewStore(path)

	assert.NoError(t, store.Save(map[string]string{"old": "gone after rewrite"}))
	assert.NoError(t, store.Save(map[string]string{"new": "only entry"}))

	out, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"new": "only entry"}, out)
}

func TestSaveNilMapWritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field-comments.json")
	store := fieldnotes.NewStore(path)

	assert.NoError(t, store.Save(nil))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"comments": {}`)

	out, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestLoadRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field-comments.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := fieldnotes.NewStore(path)
	_, err := store.Load()
	assert.Error(t, err)
}
