// Package npm wraps the npm command-line tool: locating the binary,
// constructing install/uninstall invocations, running them as subprocesses,
// and parsing the install output for the concrete specifier that was
// actually installed.
package npm

import (
	"errors"
	"fmt"
	"strings"
)

// npmInstallURL is where to get npm when it is missing from PATH.
const npmInstallURL = "https://nodejs.org/en/download"

// Sentinel errors for structured handling across the npm boundary.
var (
	// ErrNPMNotFound indicates the npm binary is not in PATH.
	ErrNPMNotFound = fmt.Errorf("npm CLI not found in PATH; install from %s", npmInstallURL)

	// ErrInstallFailed indicates npm install returned a non-zero exit code.
	ErrInstallFailed = errors.New("npm install failed")

	// ErrUninstallFailed indicates npm uninstall returned a non-zero exit code.
	ErrUninstallFailed = errors.New("npm uninstall failed")

	// ErrUnparseableOutput indicates install output held no recognizable
	// "newly added" line, so the installed version cannot be trusted.
	ErrUnparseableOutput = errors.New("no installed package found in npm output")
)

// InstallError wraps ErrInstallFailed with the stderr output from npm.
func InstallError(stderr string) error {
	return fmt.Errorf("%w: %s", ErrInstallFailed, strings.TrimSpace(stderr))
}

// UninstallError wraps ErrUninstallFailed with the stderr output from npm.
func UninstallError(stderr string) error {
	return fmt.Errorf("%w: %s", ErrUninstallFailed, strings.TrimSpace(stderr))
}

// UnparseableOutputError wraps ErrUnparseableOutput with the full output
// text so the caller can report what npm actually printed.
func UnparseableOutputError(output string) error {
	return fmt.Errorf("%w: %q", ErrUnparseableOutput, strings.TrimSpace(output))
}
