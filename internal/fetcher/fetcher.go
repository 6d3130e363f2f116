// Package fetcher orchestrates fetching and removing packages. A fetch
// first checks whether a satisfying installation already exists on disk; if
// not it delegates to the npm CLI, parses the install output for the
// concrete version that landed, re-resolves the installation, and validates
// it against the requested range. Every failure is wrapped into a single
// *Error carrying the original cause.
package fetcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/depfetch/depfetch/internal/logging"
	"github.com/depfetch/depfetch/internal/nodespec"
	"github.com/depfetch/depfetch/internal/npm"
	"github.com/depfetch/depfetch/internal/resolver"
)

// dirPerm is the mode for created destination and store directories.
const dirPerm = 0o755

// Options configures a fetch.
type Options struct {
	Save      bool   // persist the dependency to the project manifest
	SaveExact bool   // pin the exact resolved version (wins over Save)
	Binary    string // package manager executable (default "npm")
}

// UninstallOptions configures an uninstall.
type UninstallOptions struct {
	Save   bool   // remove the dependency record from the project manifest
	Binary string // package manager executable (default "npm")
}

// IsPackageManagerAvailable reports whether the package manager binary is
// resolvable on PATH, returning its full path. An empty binary selects npm.
func IsPackageManagerAvailable(binary string) (string, error) {
	return npm.FindBinary(binary)
}

// Fetch installs specifier into dest's dependency store, or returns the
// existing installation when one already satisfies the request, and returns
// the absolute path of the installed package directory. Repeated fetches of
// an already-satisfying package are pure reads: no subprocess is spawned.
func Fetch(ctx context.Context, specifier, dest string, opts Options) (string, error) {
	const op = "fetch"

	if strings.TrimSpace(specifier) == "" || strings.TrimSpace(dest) == "" {
		return "", wrap(op, fmt.Errorf("%w: package specifier and destination directory", ErrMissingArgument))
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return "", wrap(op, fmt.Errorf("resolving destination: %w", err))
	}
	if err := os.MkdirAll(absDest, dirPerm); err != nil {
		return "", wrap(op, fmt.Errorf("creating destination: %w", err))
	}

	spec, err := nodespec.Parse(specifier, absDest)
	if err != nil {
		return "", wrap(op, err)
	}

	log := logging.FromContext(ctx)

	// Fast path: a prior installation that satisfies the request makes the
	// whole fetch a read. Only a derivable name can be checked; git and
	// local specifiers without one go straight to install.
	if spec.Name != "" {
		if resolved, rerr := resolver.Resolve(ctx, spec.Name, absDest); rerr == nil {
			ok, serr := nodespec.Satisfies(resolved.Manifest.Version, spec.Constraint)
			if serr == nil && ok {
				log.Info().
					Str("component", "fetcher").
					Str("package", spec.Name).
					Str("version", resolved.Manifest.Version).
					Str("path", resolved.Path).
					Msg("existing installation satisfies request, skipping install")
				return resolved.Path, nil
			}
			log.Debug().
				Str("component", "fetcher").
				Str("package", spec.Name).
				Str("installed", resolved.Manifest.Version).
				Str("requested", spec.Constraint).
				Msg("existing installation does not satisfy request")
		}
	}

	if _, err := npm.FindBinary(opts.Binary); err != nil {
		return "", wrap(op, err)
	}

	// A store directly under dest keeps npm from hoisting the install into
	// an ancestor's node_modules.
	if err := os.MkdirAll(filepath.Join(absDest, resolver.StoreDir), dirPerm); err != nil {
		return "", wrap(op, fmt.Errorf("creating dependency store: %w", err))
	}

	out, err := npm.Install(ctx, opts.Binary, spec.Raw, absDest, npm.InstallOptions{
		Save:      opts.Save,
		SaveExact: opts.SaveExact,
	})
	if err != nil {
		return "", wrap(op, err)
	}

	installed, err := npm.ExtractInstalledSpecifier(out)
	if err != nil {
		return "", wrap(op, err)
	}
	name, version, err := nodespec.ParseInstalled(installed)
	if err != nil {
		return "", wrap(op, err)
	}

	resolved, err := resolver.Resolve(ctx, name, absDest)
	if err != nil {
		return "", wrap(op, err)
	}

	// Validate the version npm reported against the requested range. A
	// non-semver constraint (dist-tag, git ref) has nothing to check.
	if spec.Constraint != "" {
		ok, serr := nodespec.Satisfies(version, spec.Constraint)
		if serr == nil && !ok {
			return "", wrap(op, fmt.Errorf("%w: %s@%s against %q",
				ErrVersionMismatch, name, version, spec.Constraint))
		}
	}

	log.Info().
		Str("component", "fetcher").
		Str("package", name).
		Str("version", version).
		Str("path", resolved.Path).
		Msg("package fetched")

	return resolved.Path, nil
}

// Uninstall removes name from dest's dependency store via the package
// manager's removal command. Options.Save controls whether the dependency
// record is also removed from the project manifest.
func Uninstall(ctx context.Context, name, dest string, opts UninstallOptions) error {
	const op = "uninstall"

	if strings.TrimSpace(name) == "" || strings.TrimSpace(dest) == "" {
		return wrap(op, fmt.Errorf("%w: package name and destination directory", ErrMissingArgument))
	}

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return wrap(op, fmt.Errorf("resolving destination: %w", err))
	}

	if _, err := npm.FindBinary(opts.Binary); err != nil {
		return wrap(op, err)
	}

	if err := npm.Uninstall(ctx, opts.Binary, name, absDest, npm.UninstallOptions{Save: opts.Save}); err != nil {
		return wrap(op, err)
	}

	logging.FromContext(ctx).Info().
		Str("component", "fetcher").
		Str("package", name).
		Str("dir", absDest).
		Msg("package removed")

	return nil
}
