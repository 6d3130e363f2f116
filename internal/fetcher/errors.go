package fetcher

import (
	"errors"
	"fmt"

	"github.com/depfetch/depfetch/internal/nodespec"
	"github.com/depfetch/depfetch/internal/npm"
	"github.com/depfetch/depfetch/internal/resolver"
)

// Kind classifies a fetch/uninstall failure. Callers see one error shape
// (*Error) regardless of which internal step failed; Kind preserves the
// taxonomy for callers that need to discriminate.
type Kind string

// Failure kinds.
const (
	KindMissingArgument        Kind = "missing_argument"
	KindPackageManagerNotFound Kind = "package_manager_not_found"
	KindPackageNotFound        Kind = "package_not_found"
	KindInvalidSpecifier       Kind = "invalid_specifier"
	KindVersionMismatch        Kind = "version_mismatch"
	KindUnparseableOutput      Kind = "unparseable_output"
	KindSubprocessFailure      Kind = "subprocess_failure"
	KindInternal               Kind = "internal"
)

// Sentinel errors raised by the orchestrator itself.
var (
	// ErrMissingArgument indicates a required specifier, name, or
	// destination was absent.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrVersionMismatch indicates the installed version does not satisfy
	// the requested range.
	ErrVersionMismatch = errors.New("installed version does not satisfy requested range")
)

// Error is the single outward-facing error type of this package. It wraps
// the original cause (reachable via errors.Is/As) and carries the operation
// that failed plus a Kind from the failure taxonomy.
type Error struct {
	Kind Kind
	Op   string // "fetch" or "uninstall"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("depfetch %s: %s", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap converts any internal failure into a *Error classified by cause.
// Context cancellation passes through unwrapped so callers can errors.Is
// against context.Canceled directly.
func wrap(op string, err error) error {
	var fe *Error
	if errors.As(err, &fe) {
		return err
	}
	return &Error{Kind: classify(err), Op: op, Err: err}
}

// classify maps a cause onto the failure taxonomy.
func classify(err error) Kind {
	switch {
	case errors.Is(err, ErrMissingArgument):
		return KindMissingArgument
	case errors.Is(err, npm.ErrNPMNotFound):
		return KindPackageManagerNotFound
	case errors.Is(err, resolver.ErrPackageNotFound):
		return KindPackageNotFound
	case errors.Is(err, nodespec.ErrEmptySpecifier), errors.Is(err, nodespec.ErrNoName):
		return KindInvalidSpecifier
	case errors.Is(err, ErrVersionMismatch):
		return KindVersionMismatch
	case errors.Is(err, npm.ErrUnparseableOutput):
		return KindUnparseableOutput
	case errors.Is(err, npm.ErrInstallFailed), errors.Is(err, npm.ErrUninstallFailed):
		return KindSubprocessFailure
	default:
		return KindInternal
	}
}
