package npm

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/depfetch/depfetch/internal/logging"
)

// DefaultBinary is the package manager executable looked up on PATH.
const DefaultBinary = "npm"

// InstallOptions controls dependency persistence for install. SaveExact and
// Save are mutually exclusive with SaveExact taking precedence; when neither
// is set the dependency is not persisted to the project manifest.
type InstallOptions struct {
	Save      bool // record the dependency with its range
	SaveExact bool // record the dependency pinned to the exact version
}

// UninstallOptions controls manifest persistence for uninstall.
type UninstallOptions struct {
	Save bool // remove the dependency record from the project manifest
}

// CommandRunner executes an external command and returns its stdout, stderr,
// and error. This interface enables testing without spawning real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) (stdout []byte, stderr []byte, err error)
}

// execRunner is the default CommandRunner that uses exec.CommandContext.
type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, dir string, name string, args ...string) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// Runner is the package-level CommandRunner. Replace in tests with a mock.
var Runner CommandRunner = &execRunner{} //nolint:gochecknoglobals // Required for test injection

// FindBinary locates the package manager binary in PATH. An empty binary
// name selects DefaultBinary. Returns the full path or ErrNPMNotFound.
func FindBinary(binary string) (string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", ErrNPMNotFound
	}
	return path, nil
}

// BuildInstallArgs constructs the npm install argument list for specifier.
// Exactly one persistence flag is emitted: --save-exact wins over --save,
// and --no-save is the default.
func BuildInstallArgs(specifier string, opts InstallOptions) []string {
	args := []string{"install", specifier}
	switch {
	case opts.SaveExact:
		args = append(args, "--save-exact")
	case opts.Save:
		args = append(args, "--save")
	default:
		args = append(args, "--no-save")
	}
	return args
}

// BuildUninstallArgs constructs the npm uninstall argument list for name.
// Exactly one persistence flag is emitted.
func BuildUninstallArgs(name string, opts UninstallOptions) []string {
	args := []string{"uninstall", name}
	if opts.Save {
		args = append(args, "--save")
	} else {
		args = append(args, "--no-save")
	}
	return args
}

// Install runs the package manager's install command with working directory
// dir and returns its stdout as text. A non-zero exit surfaces as
// ErrInstallFailed carrying stderr.
func Install(ctx context.Context, binary, specifier, dir string, opts InstallOptions) (string, error) {
	if binary == "" {
		binary = DefaultBinary
	}
	args := BuildInstallArgs(specifier, opts)

	log := logging.FromContext(ctx)
	log.Info().
		Str("component", "npm").
		Str("operation", "install").
		Str("specifier", specifier).
		Str("dir", dir).
		Strs("args", args).
		Msg("running npm install")

	stdout, stderr, err := Runner.Run(ctx, dir, binary, args...)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", InstallError(string(stderr))
	}

	log.Debug().
		Str("component", "npm").
		Int("output_bytes", len(stdout)).
		Msg("npm install completed")

	return string(stdout), nil
}

// Uninstall runs the package manager's uninstall command with working
// directory dir. A non-zero exit surfaces as ErrUninstallFailed carrying
// stderr.
func Uninstall(ctx context.Context, binary, name, dir string, opts UninstallOptions) error {
	if binary == "" {
		binary = DefaultBinary
	}
	args := BuildUninstallArgs(name, opts)

	log := logging.FromContext(ctx)
	log.Info().
		Str("component", "npm").
		Str("operation", "uninstall").
		Str("package", name).
		Str("dir", dir).
		Strs("args", args).
		Msg("running npm uninstall")

	_, stderr, err := Runner.Run(ctx, dir, binary, args...)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return UninstallError(string(stderr))
	}
	return nil
}
