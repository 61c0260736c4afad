package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeNotFound, "no entry at path")

	require.NotNil(t, err)
	require.Equal(t, CodeNotFound, err.Code())
	require.Equal(t, "no entry at path", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNew_AllErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidPath,
		CodeNotFound,
		CodeAlreadyExists,
		CodeNotDirectory,
		CodeOSFailure,
		CodeUnknown,
	}

	for _, code := range codes {
		t.Run(string(code), func(t *testing.T) {
			err := New(code, "test message")
			require.Equal(t, code, err.Code())
			require.NotEmpty(t, err.Classification())
			require.True(t, code.IsValid())
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeAlreadyExists, "destination %q exists", "/tmp/out")

	require.NotNil(t, err)
	require.Equal(t, CodeAlreadyExists, err.Code())
	require.Equal(t, `destination "/tmp/out" exists`, err.Message())
}

func TestErrorString(t *testing.T) {
	err := New(CodeInvalidPath, "path must be absolute")
	require.Equal(t, "[INVALID_PATH] path must be absolute", err.Error())

	cause := stderrors.New("permission denied")
	wrapped := Wrap(cause, CodeOSFailure, "chmod failed")
	require.Equal(t, "[OS_FAILURE] chmod failed: permission denied", wrapped.Error())
}

func TestClassificationDefaults(t *testing.T) {
	require.Equal(t, ClassificationRetryable, New(CodeOSFailure, "io error").Classification())
	require.Equal(t, ClassificationPermanent, New(CodeInvalidPath, "bad input").Classification())
	require.True(t, ClassificationRetryable.IsRetryable())
	require.False(t, ClassificationPermanent.IsRetryable())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("underlying failure")
	err := Wrap(cause, CodeOSFailure, "rename failed")

	require.Equal(t, CodeOSFailure, err.Code())
	require.Equal(t, "rename failed", err.Message())
	require.Equal(t, cause, err.Unwrap())
	require.True(t, stderrors.Is(err, cause))
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeOSFailure, "ignored"))
	require.Nil(t, Wrapf(nil, CodeOSFailure, "ignored %d", 1))
	require.Nil(t, WithContext(nil, "k", "v"))
}

func TestWrap_PreservesClassification(t *testing.T) {
	inner := New(CodeOSFailure, "transient io error")
	outer := Wrap(inner, CodeUnknown, "operation failed")

	// CodeUnknown defaults to permanent, but the inner retryable
	// classification carries through.
	require.Equal(t, ClassificationRetryable, outer.Classification())
}

func TestWithContext(t *testing.T) {
	err := New(CodeAlreadyExists, "destination exists")
	err = WithContext(err, "destination", "/tmp/out")
	err = WithContext(err, "operation", "move")

	ctx := err.Context()
	require.Equal(t, "/tmp/out", ctx["destination"])
	require.Equal(t, "move", ctx["operation"])
	require.Equal(t, CodeAlreadyExists, err.Code())
}

func TestWithContext_CopyIsDefensive(t *testing.T) {
	err := WithContext(New(CodeNotFound, "gone"), "path", "/a")
	ctx := err.Context()
	ctx["path"] = "/mutated"
	require.Equal(t, "/a", err.Context()["path"])
}

func TestWithContext_PlainError(t *testing.T) {
	plain := stderrors.New("plain failure")
	err := WithContext(plain, "k", 1)

	require.Equal(t, CodeUnknown, err.Code())
	require.True(t, stderrors.Is(err, plain))
}

func TestGetCode(t *testing.T) {
	require.Equal(t, CodeUnknown, GetCode(nil))
	require.Equal(t, CodeUnknown, GetCode(stderrors.New("plain")))
	require.Equal(t, CodeNotFound, GetCode(New(CodeNotFound, "gone")))

	// Extracts from the chain through plain wrapping.
	wrapped := Wrap(New(CodeNotFound, "gone"), CodeOSFailure, "stat failed")
	require.Equal(t, CodeOSFailure, GetCode(wrapped))
}

func TestHasCode(t *testing.T) {
	err := New(CodeAlreadyExists, "exists")
	require.True(t, HasCode(err, CodeAlreadyExists))
	require.False(t, HasCode(err, CodeNotFound))
	require.False(t, HasCode(nil, CodeNotFound))
}

func TestSwallow(t *testing.T) {
	require.NoError(t, Swallow(nil, CodeNotFound))
	require.NoError(t, Swallow(New(CodeNotFound, "gone"), CodeNotFound))
	require.NoError(t, Swallow(New(CodeNotFound, "gone"), CodeAlreadyExists, CodeNotFound))

	err := New(CodeOSFailure, "io error")
	require.Equal(t, err, Swallow(err, CodeNotFound))
}

func TestToJSON(t *testing.T) {
	require.Nil(t, ToJSON(nil))

	err := WithContext(New(CodeInvalidPath, "path must be absolute"), "input", "relative/path")
	resp := ToJSON(err)

	require.Equal(t, "INVALID_PATH", resp.Code)
	require.Equal(t, "path must be absolute", resp.Message)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "relative/path", resp.Context["input"])
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeNotFound, "no entry")
	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)

	var decoded ErrorResponse
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "NOT_FOUND", decoded.Code)
	require.Equal(t, "no entry", decoded.Message)
}
