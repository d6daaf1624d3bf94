// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code inspection helpers

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/bjk2k/red-panda/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "dependency_missing",
			code:    errors.ErrDependencyMissing,
			message: "stow is not installed",
			wantStr: "[DEPENDENCY_MISSING] stow is not installed",
		},
		{
			name:    "not_implemented",
			code:    errors.ErrNotImplemented,
			message: "secret keys",
			wantStr: "[NOT_IMPLEMENTED] secret keys",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnknownFeature, "unknown feature %q", "emacs")
	if err.Message != `unknown feature "emacs"` {
		t.Errorf("Newf() message = %q", err.Message)
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil_error_stays_nil", func(t *testing.T) {
		if got := errors.Wrap(nil, errors.ErrCloneFailed, "clone"); got != nil {
			t.Errorf("Wrap(nil) = %v, want nil", got)
		}
		if got := errors.Wrapf(nil, errors.ErrCloneFailed, "clone %s", "x"); got != nil {
			t.Errorf("Wrapf(nil) = %v, want nil", got)
		}
	})

	t.Run("wrapped_cause_is_reachable", func(t *testing.T) {
		cause := stderrors.New("repository not found")
		err := errors.Wrapf(cause, errors.ErrCloneFailed, "failed to clone %s", "neovim")

		if !stderrors.Is(err, cause) {
			t.Error("errors.Is should find the wrapped cause")
		}
		want := "[CLONE_FAILED] failed to clone neovim: repository not found"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})
}

func TestIs(t *testing.T) {
	err := errors.New(errors.ErrSourceUnset, "pubkeys has no source")
	target := errors.New(errors.ErrSourceUnset, "other message")

	if !stderrors.Is(err, target) {
		t.Error("errors with the same code should match")
	}
	if stderrors.Is(err, errors.New(errors.ErrCloneFailed, "")) {
		t.Error("errors with different codes should not match")
	}
}

func TestCodeHelpers(t *testing.T) {
	inner := errors.New(errors.ErrCommandSpawn, "bash not found")
	outer := errors.Wrap(inner, errors.ErrCloneFailed, "setup failed")
	plain := fmt.Errorf("context: %w", outer)

	if !errors.IsErrorCode(plain, errors.ErrCloneFailed) {
		t.Error("IsErrorCode should see the outermost coded error")
	}
	if errors.IsErrorCode(plain, errors.ErrCommandSpawn) {
		t.Error("IsErrorCode should only look at the outermost coded error")
	}
	if !errors.HasErrorCode(plain, errors.ErrCommandSpawn) {
		t.Error("HasErrorCode should walk the whole chain")
	}
	if errors.HasErrorCode(stderrors.New("plain"), errors.ErrUnknown) {
		t.Error("HasErrorCode on a plain error should be false")
	}
	if got := errors.GetErrorCode(stderrors.New("plain")); got != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want UNKNOWN", got)
	}

	detailed := errors.New(errors.ErrDestinationExists, "exists").WithDetail("path", "/tmp/x")
	if got := errors.GetErrorDetails(detailed)["path"]; got != "/tmp/x" {
		t.Errorf("GetErrorDetails()[path] = %v", got)
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails(plain) should be nil")
	}
}
