package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOplError_Unwrap_PreservesOriginalError(t *testing.T) {
	// Given: an original error
	originalErr := errors.New("original error")

	// When: wrapping with OplError
	oplErr := New(ErrCodeFileNotFound, "file not found: test.txt", originalErr)

	// Then: unwrapping returns original error
	require.NotNil(t, oplErr)
	assert.Equal(t, originalErr, errors.Unwrap(oplErr))
	assert.True(t, errors.Is(oplErr, originalErr))
}

func TestOplError_Error_ReturnsFormattedMessage(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		message  string
		expected string
	}{
		{
			name:     "config error",
			code:     ErrCodeConfigNotFound,
			message:  "config file not found",
			expected: "[ERR_101_CONFIG_NOT_FOUND] config file not found",
		},
		{
			name:     "file error",
			code:     ErrCodeFileNotFound,
			message:  "lifters.csv not found",
			expected: "[ERR_201_FILE_NOT_FOUND] lifters.csv not found",
		},
		{
			name:     "validation error",
			code:     ErrCodeInvalidQuery,
			message:  "unknown ordering",
			expected: "[ERR_402_INVALID_QUERY] unknown ordering",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, nil)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestOplError_Is_MatchesByCode(t *testing.T) {
	// Given: two errors with same code
	err1 := New(ErrCodeFileNotFound, "file A not found", nil)
	err2 := New(ErrCodeFileNotFound, "file B not found", nil)

	// Then: they match by code
	assert.True(t, errors.Is(err1, err2))
}

func TestOplError_Is_DoesNotMatchDifferentCodes(t *testing.T) {
	// Given: two errors with different codes
	err1 := New(ErrCodeFileNotFound, "file not found", nil)
	err2 := New(ErrCodeConfigNotFound, "config not found", nil)

	// Then: they don't match
	assert.False(t, errors.Is(err1, err2))
}

func TestOplError_WithDetails_AddsContext(t *testing.T) {
	// Given: a base error
	err := New(ErrCodeFileNotFound, "file not found", nil)

	// When: adding details
	err = err.WithDetail("path", "/foo/bar.csv")
	err = err.WithDetail("size", "1024")

	// Then: details are available
	assert.Equal(t, "/foo/bar.csv", err.Details["path"])
	assert.Equal(t, "1024", err.Details["size"])
}

func TestOplError_WithSuggestion_AddsSuggestion(t *testing.T) {
	// Given: a config error
	err := New(ErrCodeConfigNotFound, "no config found", nil)

	// When: adding suggestion
	err = err.WithSuggestion("run 'opldb config init'")

	// Then: suggestion is available
	assert.Equal(t, "run 'opldb config init'", err.Suggestion)
}

func TestOplError_CategoryFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantCategory Category
	}{
		{ErrCodeConfigNotFound, CategoryConfig},
		{ErrCodeConfigInvalid, CategoryConfig},
		{ErrCodeFileNotFound, CategoryIO},
		{ErrCodeFilePermission, CategoryIO},
		{ErrCodeInvalidInput, CategoryValidation},
		{ErrCodeInvalidQuery, CategoryValidation},
		{ErrCodeInternal, CategoryInternal},
		{ErrCodeLoadFailed, CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "test message", nil)
			assert.Equal(t, tt.wantCategory, err.Category)
		})
	}
}

func TestOplError_SeverityFromCode(t *testing.T) {
	tests := []struct {
		code         string
		wantSeverity Severity
	}{
		{ErrCodeFileCorrupt, SeverityFatal},
		{ErrCodeLoadFailed, SeverityFatal},
		{ErrCodeFileNotFound, SeverityError},
		{ErrCodeInvalidInput, SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := New(tt.code, "test message", nil)
			assert.Equal(t, tt.wantSeverity, err.Severity)
		})
	}
}

func TestWrap_CreatesOplErrorFromError(t *testing.T) {
	// Given: a standard error
	originalErr := errors.New("something went wrong")

	// When: wrapping with a code
	oplErr := Wrap(ErrCodeInternal, originalErr)

	// Then: creates proper OplError
	require.NotNil(t, oplErr)
	assert.Equal(t, ErrCodeInternal, oplErr.Code)
	assert.Equal(t, "something went wrong", oplErr.Message)
	assert.Equal(t, originalErr, oplErr.Cause)
}

func TestWrap_NilErrorReturnsNil(t *testing.T) {
	assert.Nil(t, Wrap(ErrCodeInternal, nil))
}

func TestConfigError_CreatesConfigCategoryError(t *testing.T) {
	err := ConfigError("invalid yaml syntax", nil)

	assert.Equal(t, CategoryConfig, err.Category)
	assert.Contains(t, err.Code, "CONFIG")
}

func TestIOError_CreatesIOCategoryError(t *testing.T) {
	err := IOError("cannot read file", nil)

	assert.Equal(t, CategoryIO, err.Category)
}

func TestValidationError_CreatesValidationCategoryError(t *testing.T) {
	err := ValidationError("query cannot be empty", nil)

	assert.Equal(t, CategoryValidation, err.Category)
}

func TestInternalError_CreatesInternalCategoryError(t *testing.T) {
	err := InternalError("unexpected nil pointer", nil)

	assert.Equal(t, CategoryInternal, err.Category)
}

func TestIsFatal_ChecksFatalSeverity(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "corrupt file is fatal",
			err:      New(ErrCodeFileCorrupt, "entries.csv corrupt", nil),
			expected: true,
		},
		{
			name:     "load failure is fatal",
			err:      New(ErrCodeLoadFailed, "failed to load data", nil),
			expected: true,
		},
		{
			name:     "non-fatal error",
			err:      New(ErrCodeFileNotFound, "not found", nil),
			expected: false,
		},
		{
			name:     "standard error",
			err:      errors.New("standard error"),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsFatal(tt.err))
		})
	}
}

func TestGetCode_ExtractsCode(t *testing.T) {
	err := New(ErrCodeInvalidQuery, "bad query", nil)
	assert.Equal(t, ErrCodeInvalidQuery, GetCode(err))
}

func TestGetCode_EmptyForPlainError(t *testing.T) {
	assert.Equal(t, "", GetCode(errors.New("plain")))
}

func TestGetCategory_ExtractsCategory(t *testing.T) {
	err := New(ErrCodeConfigInvalid, "bad config", nil)
	assert.Equal(t, CategoryConfig, GetCategory(err))
}
