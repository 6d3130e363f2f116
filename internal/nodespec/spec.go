// Package nodespec models npm package specifiers and manifests: parsing raw
// specifier strings into a name plus version constraint, reading package.json
// files, and checking installed versions against requested semver ranges.
package nodespec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Source identifies where a specifier points.
type Source int

const (
	// SourceRegistry is a plain or scoped registry name, optionally with a range.
	SourceRegistry Source = iota
	// SourceGit is a git URL, optionally with a #ref.
	SourceGit
	// SourceLocal is a filesystem path or file: URL.
	SourceLocal
)

// String returns the human-readable name of the source.
func (s Source) String() string {
	switch s {
	case SourceRegistry:
		return "registry"
	case SourceGit:
		return "git"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Specifier is a parsed package specifier.
//
// Name is best-effort for git and local sources: it is derived from the URL
// or path when possible and may be empty. Callers that require a name must
// check it and surface ErrNoName.
type Specifier struct {
	Raw        string // original input, never mutated
	Source     Source
	Name       string // npm name (@scope/name for scoped packages)
	Constraint string // semver range, dist-tag, or git ref; empty = any
	Path       string // git URL or absolute filesystem path
}

// Sentinel errors for specifier parsing.
var (
	// ErrEmptySpecifier indicates an empty specifier string.
	ErrEmptySpecifier = errors.New("package specifier is empty")

	// ErrNoName indicates a name could not be derived from a specifier at a
	// call site that requires one.
	ErrNoName = errors.New("package name cannot be derived from specifier")
)

// Parse parses a raw specifier into a Specifier. contextDir anchors relative
// local paths; it is unused for registry and git specifiers.
//
// Supported forms:
//   - registry: "name", "name@^1.2.0", "@scope/name", "@scope/name@1.x"
//   - git:      "https://host/user/repo", "git@host:user/repo.git", "github.com/user/repo#ref"
//   - local:    "./dir", "../dir", "/abs/dir", "file:../dir"
func Parse(raw, contextDir string) (Specifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Specifier{}, ErrEmptySpecifier
	}

	if isLocal(raw) {
		p := strings.TrimPrefix(raw, "file:")
		if !filepath.IsAbs(p) && contextDir != "" {
			p = filepath.Join(contextDir, p)
		}
		return Specifier{
			Raw:    raw,
			Source: SourceLocal,
			Name:   filepath.Base(p),
			Path:   p,
		}, nil
	}

	if isGitURL(raw) {
		name, ref, url := parseGit(raw)
		return Specifier{
			Raw:        raw,
			Source:     SourceGit,
			Name:       name,
			Constraint: ref,
			Path:       url,
		}, nil
	}

	name, rng := splitNameRange(raw)
	if name == "" {
		return Specifier{}, fmt.Errorf("%w: %q", ErrNoName, raw)
	}
	return Specifier{
		Raw:        raw,
		Source:     SourceRegistry,
		Name:       name,
		Constraint: rng,
	}, nil
}

// ParseInstalled splits a concrete "name@version" specifier, as reported by
// the package manager after install, into its name and version. Scoped names
// keep their leading @.
func ParseInstalled(installed string) (name, version string, err error) {
	installed = strings.TrimSpace(installed)
	if installed == "" {
		return "", "", ErrEmptySpecifier
	}
	name, version = splitNameRange(installed)
	if name == "" || version == "" {
		return "", "", fmt.Errorf("%w: %q", ErrNoName, installed)
	}
	return name, version, nil
}

// isLocal reports whether raw is a filesystem path or file: URL.
func isLocal(raw string) bool {
	return strings.HasPrefix(raw, ".") ||
		strings.HasPrefix(raw, "/") ||
		strings.HasPrefix(raw, "file:")
}

// isGitURL reports whether raw looks like a git repository reference.
func isGitURL(raw string) bool {
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "git@") {
		return true
	}
	for _, host := range []string{"github.com/", "gitlab.com/", "bitbucket.org/"} {
		if strings.HasPrefix(raw, host) {
			return true
		}
	}
	return false
}

// parseGit extracts a best-effort repo name and optional #ref from a git URL.
func parseGit(raw string) (name, ref, url string) {
	url = raw
	if before, after, ok := strings.Cut(raw, "#"); ok {
		url, ref = before, after
	}

	trimmed := strings.TrimSuffix(url, ".git")
	if idx := strings.LastIndex(trimmed, ":"); strings.HasPrefix(trimmed, "git@") && idx > 0 {
		trimmed = trimmed[idx+1:]
	}
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		trimmed = trimmed[idx+1:]
	}
	return trimmed, ref, url
}

// splitNameRange splits "name@range" handling scoped "@scope/name@range".
// Returns an empty range when no @ separator is present after the name.
func splitNameRange(raw string) (name, rng string) {
	if strings.HasPrefix(raw, "@") {
		rest := raw[1:]
		if idx := strings.Index(rest, "@"); idx >= 0 {
			return raw[:idx+1], rest[idx+1:]
		}
		return raw, ""
	}
	if before, after, ok := strings.Cut(raw, "@"); ok {
		return before, after
	}
	return raw, ""
}
