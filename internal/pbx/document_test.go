package pbx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "project.pbxproj"))
	assert.Error(t, err)
}

func TestDocumentLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, sampleManifest, doc.Text())
	assert.Equal(t, path, doc.Path())

	doc.SetText(doc.Text() + "// edited\n")
	require.NoError(t, doc.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, doc.Text(), string(data))

	// The temp file must not survive a successful save.
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestDocumentSaveKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.pbxproj")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o600))

	doc, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, doc.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
