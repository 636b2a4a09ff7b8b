package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want Category
	}{
		{CodeNotFound, CategoryExistence},
		{CodeAlreadyExists, CategoryExistence},
		{CodePermission, CategoryPermission},
		{CodeInvalidPath, CategoryPath},
		{CodeNotDirectory, CategoryPath},
		{CodeNotRegular, CategoryPath},
		{CodeNoSpace, CategoryResource},
		{CodeTooManyFiles, CategoryResource},
		{CodeEncoding, CategoryEncoding},
		{CodeInvalidPattern, CategoryInternal},
		{CodeUnsupported, CategoryInternal},
		{CodeInternal, CategoryInternal},
		{CodeUnknown, CategoryInternal},
		{ErrorCode("SOMETHING_ELSE"), CategoryInternal},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			require.Equal(t, tt.want, CategoryOf(tt.code))
		})
	}
}

func TestCategoryOf_AllCodesMapped(t *testing.T) {
	for code := range defaultMessages {
		_, ok := defaultCategories[code]
		require.True(t, ok, "code %s has no category", code)
	}
}
