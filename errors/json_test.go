package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON(t *testing.T) {
	err := WithOp(Wrap(stderrors.New("disk quota"), CodeNoSpace, "write failed"), "create_file", "/data/out.log")
	err = WithContext(err, "bytes", 42)

	resp := ToJSON(err)

	require.NotNil(t, resp)
	require.Equal(t, "NO_SPACE", resp.Code)
	require.Equal(t, "RESOURCE", resp.Category)
	require.Equal(t, "create_file", resp.Op)
	require.Equal(t, "/data/out.log", resp.Path)
	require.Equal(t, "write failed", resp.Message)
	require.Equal(t, "disk quota", resp.Cause)
	require.Equal(t, 42, resp.Context["bytes"])
}

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("something went wrong"))

	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "INTERNAL", resp.Category)
	require.Equal(t, "something went wrong", resp.Message)
	require.Empty(t, resp.Op)
}

func TestMarshalJSON(t *testing.T) {
	err := WithOp(New(CodeNotFound, "no such file"), "read_file", "a.txt")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.JSONEq(t,
		`{"code":"NOT_FOUND","category":"EXISTENCE","op":"read_file","path":"a.txt","message":"no such file"}`,
		string(data))
}
