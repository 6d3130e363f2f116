package nodespec

import (
	"github.com/Masterminds/semver/v3"
)

// Satisfies reports whether version satisfies the node-style semver range.
// An empty range is satisfied by any version. A range that does not parse as
// semver (a dist-tag like "latest" or a git ref) returns an error; callers
// decide whether that means "reinstall" or "skip validation".
func Satisfies(version, rng string) (bool, error) {
	if rng == "" {
		return true, nil
	}

	c, err := semver.NewConstraint(rng)
	if err != nil {
		return false, err
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return false, err
	}

	return c.Check(v), nil
}
