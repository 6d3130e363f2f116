// Package resolver locates already-installed packages on disk. Given a
// package name and a starting directory it searches a chain of candidate
// dependency-store roots: the starting directory, each of its ancestors up
// to the filesystem root, then any NODE_PATH entries. The first directory
// whose node_modules holds the package's manifest wins.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/depfetch/depfetch/internal/logging"
	"github.com/depfetch/depfetch/internal/nodespec"
)

const (
	// StoreDir is the dependency-store directory name searched under each
	// chain entry.
	StoreDir = "node_modules"

	// AuxPathEnv is the environment variable holding a path-list of extra
	// directories to search after the ancestor walk.
	AuxPathEnv = "NODE_PATH"
)

// ErrPackageNotFound indicates the search chain was exhausted without
// finding the package's manifest.
var ErrPackageNotFound = errors.New("package not installed in any node_modules directory")

// ResolvedPackage is the result of a successful search.
type ResolvedPackage struct {
	Path     string // directory containing the package's package.json
	Manifest *nodespec.Manifest
}

// StoreChain builds the ordered, deduplicated list of directories to search
// for name: startDir first, then each ancestor up to the filesystem root,
// then auxPath entries in list order. Nearest-first is the precedence
// contract; auxiliary entries always rank below the ancestor walk. Empty
// auxPath segments are skipped.
func StoreChain(startDir, auxPath string) []string {
	var chain []string
	seen := make(map[string]bool)

	push := func(dir string) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return
		}
		abs = filepath.Clean(abs)
		if !seen[abs] {
			seen[abs] = true
			chain = append(chain, abs)
		}
	}

	current, err := filepath.Abs(startDir)
	if err != nil {
		current = startDir
	}
	for {
		push(current)
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	for _, entry := range strings.Split(auxPath, string(os.PathListSeparator)) {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		push(entry)
	}

	return chain
}

// Resolve searches the store chain rooted at startDir for name and returns
// the installed package directory along with its parsed manifest. NODE_PATH
// is read once per call. Chain entries that do not exist or hold an
// unreadable manifest are skipped; exhausting the chain returns
// ErrPackageNotFound.
func Resolve(ctx context.Context, name, startDir string) (*ResolvedPackage, error) {
	log := logging.FromContext(ctx)

	chain := StoreChain(startDir, os.Getenv(AuxPathEnv))
	for _, dir := range chain {
		// Scoped names (@scope/name) span two path segments under the store.
		pkgDir := filepath.Join(dir, StoreDir, filepath.FromSlash(name))
		manifest, err := nodespec.ReadManifest(filepath.Join(pkgDir, nodespec.ManifestFile))
		if err != nil {
			continue
		}

		log.Debug().
			Str("component", "resolver").
			Str("package", name).
			Str("path", pkgDir).
			Str("version", manifest.Version).
			Msg("package resolved")

		return &ResolvedPackage{Path: pkgDir, Manifest: manifest}, nil
	}

	log.Debug().
		Str("component", "resolver").
		Str("package", name).
		Str("start_dir", startDir).
		Int("chain_length", len(chain)).
		Msg("package not found in store chain")

	return nil, fmt.Errorf("%w: %s", ErrPackageNotFound, name)
}

// FindInstallationPath is the path-only variant of Resolve.
func FindInstallationPath(ctx context.Context, name, startDir string) (string, error) {
	resolved, err := Resolve(ctx, name, startDir)
	if err != nil {
		return "", err
	}
	return resolved.Path, nil
}
