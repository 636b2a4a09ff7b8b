package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	cause := stderrors.New("original error")
	err := Wrap(cause, CodeNoSpace, "write failed")

	require.NotNil(t, err)
	require.Equal(t, CodeNoSpace, err.Code())
	require.Equal(t, "write failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeNotFound, "test"))
}

func TestWrap_PreservesOp(t *testing.T) {
	inner := WithOp(New(CodeNotFound, "missing"), "copy_file", "src.txt")
	wrapped := Wrap(inner, CodeInternal, "copy aborted")

	require.Equal(t, CodeInternal, wrapped.Code())
	require.Equal(t, "copy_file", wrapped.Op())
	require.Equal(t, "src.txt", wrapped.Path())
}

func TestWrapf(t *testing.T) {
	cause := stderrors.New("invalid byte")
	err := Wrapf(cause, CodeEncoding, "%s is not valid UTF-8", "notes.txt")

	require.Equal(t, "notes.txt is not valid UTF-8", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWrapf_NilError(t *testing.T) {
	require.Nil(t, Wrapf(nil, CodeNotFound, "test %s", "arg"))
}

func TestWrapWithContext(t *testing.T) {
	ctx := map[string]interface{}{"charset": "ISO-8859-1"}
	err := WrapWithContext(stderrors.New("bad"), CodeEncoding, "not UTF-8", ctx)

	require.Equal(t, "ISO-8859-1", err.Context()["charset"])

	// Mutating the input map does not leak into the error
	ctx["charset"] = "changed"
	require.Equal(t, "ISO-8859-1", err.Context()["charset"])
}
