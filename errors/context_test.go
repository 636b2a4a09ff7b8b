package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	err := New(CodeNotFound, "missing")
	err = WithContext(err, "src", "a.txt")
	err = WithContext(err, "dst", "b.txt")

	ctx := err.Context()
	require.Equal(t, "a.txt", ctx["src"])
	require.Equal(t, "b.txt", ctx["dst"])
	require.Equal(t, CodeNotFound, err.Code())
}

func TestWithContext_NilError(t *testing.T) {
	require.Nil(t, WithContext(nil, "k", "v"))
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain")
	err := WithContext(cause, "k", "v")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain", err.Message())
	require.Equal(t, cause, err.Unwrap())
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContext(New(CodeInternal, "x"), "k", "old")
	err = WithContextMap(err, map[string]interface{}{"k": "new", "other": 1})

	require.Equal(t, "new", err.Context()["k"])
	require.Equal(t, 1, err.Context()["other"])
}

func TestWithContext_PreservesOp(t *testing.T) {
	err := WithOp(New(CodeNotFound, "missing"), "move_file", "a")
	err = WithContext(err, "dst", "b")

	require.Equal(t, "move_file", err.Op())
	require.Equal(t, "a", err.Path())
}
