package npm

import "strings"

// Dialect extracts the concrete installed specifier ("name@version") from
// one package manager's install output format. Format drift across manager
// versions is isolated here: supporting a new output format means appending
// a Dialect, not touching the extraction loop.
type Dialect interface {
	// ExtractInstalled returns the first installed specifier found in
	// output, or false when the output matches no line of this dialect.
	ExtractInstalled(output string) (string, bool)
}

// markerDialect matches lines that begin with a fixed marker and treats the
// remainder of the line as the installed specifier. npm 5+ and pnpm print
// newly added packages as "+ name@version".
type markerDialect struct {
	marker string
}

func (d markerDialect) ExtractInstalled(output string) (string, bool) {
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(line, d.marker)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest != "" {
			return rest, true
		}
	}
	return "", false
}

// Dialects lists the supported output formats, tried in order.
var Dialects = []Dialect{ //nolint:gochecknoglobals // Ordered dialect registry
	markerDialect{marker: "+ "},
}

// ExtractInstalledSpecifier scans install output for the first "newly
// added" line of any supported dialect and returns the concrete specifier
// after it. Unrelated lines (build-script chatter, progress noise) are
// skipped. When no dialect matches, ErrUnparseableOutput is returned
// carrying the full output text.
func ExtractInstalledSpecifier(output string) (string, error) {
	for _, d := range Dialects {
		if spec, ok := d.ExtractInstalled(output); ok {
			return spec, nil
		}
	}
	return "", UnparseableOutputError(output)
}
