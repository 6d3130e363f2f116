package nodespec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFile)
	content := `{
  "name": "left-pad",
  "version": "1.3.0",
  "dependencies": {"wcwidth": "^1.0.0"},
  "devDependencies": {"tape": "*"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := ReadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "left-pad", m.Name)
	assert.Equal(t, "1.3.0", m.Version)
	assert.Equal(t, "^1.0.0", m.Dependencies["wcwidth"])
	assert.Equal(t, "*", m.DevDependencies["tape"])
}

func TestReadManifest_Missing(t *testing.T) {
	_, err := ReadManifest(filepath.Join(t.TempDir(), ManifestFile))
	require.Error(t, err)
}

func TestReadManifest_Malformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadManifest(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
