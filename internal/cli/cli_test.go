package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depfetch/depfetch/internal/config"
	"github.com/depfetch/depfetch/internal/npm"
	"github.com/depfetch/depfetch/internal/resolver"
)

// execute runs the root command with args and returns combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Isolate from the developer's real config and environment.
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvLogFormat, "")
	t.Setenv(config.EnvNPMBinary, "")
	t.Setenv(resolver.AuxPathEnv, "")

	var buf bytes.Buffer
	root := NewRootCmd("test")
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

// writePackage creates root/node_modules/<name>/package.json.
func writePackage(t *testing.T, root, name, version string) string {
	t.Helper()
	pkgDir := filepath.Join(root, resolver.StoreDir, name)
	require.NoError(t, os.MkdirAll(pkgDir, 0755))
	manifest := fmt.Sprintf(`{"name": %q, "version": %q}`, name, version)
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "package.json"), []byte(manifest), 0644))
	return pkgDir
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	root := NewRootCmd("test")

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "fetch")
	assert.Contains(t, names, "remove")
	assert.Contains(t, names, "resolve")
	assert.Contains(t, names, "list")
}

func TestFetchCmd_SaveFlagsMutuallyExclusive(t *testing.T) {
	_, err := execute(t, "fetch", "left-pad", "--save", "--save-exact")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save")
}

func TestFetchCmd_FastPath(t *testing.T) {
	dest := t.TempDir()
	want := writePackage(t, dest, "left-pad", "1.3.0")

	out, err := execute(t, "fetch", "left-pad@^1.0.0", "--dest", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "Package ready")
	assert.Contains(t, out, want)
}

func TestResolveCmd(t *testing.T) {
	dest := t.TempDir()
	want := writePackage(t, dest, "left-pad", "1.3.0")

	out, err := execute(t, "resolve", "left-pad", "--dest", dest)
	require.NoError(t, err)
	assert.Contains(t, out, want)
	assert.Contains(t, out, "1.3.0")
}

func TestResolveCmd_NotFound(t *testing.T) {
	_, err := execute(t, "resolve", "ghost-pkg", "--dest", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, resolver.ErrPackageNotFound)
}

func TestListCmd(t *testing.T) {
	dest := t.TempDir()
	project := `{"name": "app", "version": "0.1.0",
  "dependencies": {"left-pad": "^1.0.0", "ghost": "^2.0.0"}}`
	require.NoError(t, os.WriteFile(filepath.Join(dest, "package.json"), []byte(project), 0644))
	writePackage(t, dest, "left-pad", "1.3.0")

	out, err := execute(t, "list", "--dest", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "left-pad ^1.0.0 (installed 1.3.0)")
	assert.Contains(t, out, "ghost ^2.0.0 (missing)")
}

func TestListCmd_NoManifest(t *testing.T) {
	_, err := execute(t, "list", "--dest", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no project manifest")
}

func TestRemoveCmd(t *testing.T) {
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, npm.DefaultBinary), []byte("#!/bin/sh\n"), 0755))

	m := &mockRunner{}
	orig := npm.Runner
	npm.Runner = m
	t.Cleanup(func() { npm.Runner = orig })

	dest := t.TempDir()
	t.Setenv("PATH", bin)
	out, err := execute(t, "remove", "left-pad", "--dest", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "left-pad removed")
	assert.Equal(t, []string{"uninstall", "left-pad", "--save"}, m.lastArgs)
}

func TestRemoveCmd_NoSave(t *testing.T) {
	bin := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(bin, npm.DefaultBinary), []byte("#!/bin/sh\n"), 0755))

	m := &mockRunner{}
	orig := npm.Runner
	npm.Runner = m
	t.Cleanup(func() { npm.Runner = orig })

	t.Setenv("PATH", bin)
	_, err := execute(t, "remove", "left-pad", "--dest", t.TempDir(), "--no-save")
	require.NoError(t, err)
	assert.Equal(t, []string{"uninstall", "left-pad", "--no-save"}, m.lastArgs)
}

// mockRunner implements npm.CommandRunner.
type mockRunner struct {
	lastArgs []string
}

func (m *mockRunner) Run(_ context.Context, _ string, _ string, args ...string) ([]byte, []byte, error) {
	m.lastArgs = args
	return nil, nil, nil
}
