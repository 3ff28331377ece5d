package gostecc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mahdiidarabi/gost-ecc/internal/retry"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrSigFormat, "ErrSigFormat"},
		{ErrRetryExhausted, "ErrRetryExhausted"},
		{ErrInvalidParams, "ErrInvalidParams"},
		{ErrInvalidKey, "ErrInvalidKey"},
		{ErrPointNotOnCurve, "ErrPointNotOnCurve"},
		{ErrUnknownHash, "ErrUnknownHash"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		makeErrorf(ErrSigFormat, "malformed signature: got %d hex characters", 3),
		"malformed signature: got 3 hex characters",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as
// being a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrSigFormat == ErrSigFormat",
		err:       ErrSigFormat,
		target:    ErrSigFormat,
		wantMatch: true,
		wantAs:    ErrSigFormat,
	}, {
		name:      "Error.ErrSigFormat == ErrSigFormat",
		err:       makeError(ErrSigFormat, ""),
		target:    ErrSigFormat,
		wantMatch: true,
		wantAs:    ErrSigFormat,
	}, {
		name:      "wrapped Error.ErrInvalidKey == ErrInvalidKey",
		err:       fmt.Errorf("outer: %w", makeError(ErrInvalidKey, "")),
		target:    ErrInvalidKey,
		wantMatch: true,
		wantAs:    ErrInvalidKey,
	}, {
		name:      "ErrSigFormat != ErrInvalidKey",
		err:       ErrSigFormat,
		target:    ErrInvalidKey,
		wantMatch: false,
		wantAs:    ErrSigFormat,
	}, {
		name:      "Error.ErrPointNotOnCurve != ErrInvalidParams",
		err:       makeError(ErrPointNotOnCurve, ""),
		target:    ErrInvalidParams,
		wantMatch: false,
		wantAs:    ErrPointNotOnCurve,
	}}

	for _, test := range tests {
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
		}
	}
}

func TestExhaustedMatchesBothKinds(t *testing.T) {
	_, drawErr := retry.Draw(2, func(int) (int, bool, error) { return 0, false, nil })

	err := exhausted("sign", drawErr)
	if !errors.Is(err, ErrRetryExhausted) {
		t.Errorf("expected ErrRetryExhausted, got %v", err)
	}
	if !errors.Is(err, retry.ErrExhausted) {
		t.Errorf("expected retry.ErrExhausted, got %v", err)
	}

	other := errors.New("boom")
	if got := exhausted("sign", other); got != other {
		t.Errorf("unrelated errors must pass through, got %v", got)
	}
}
