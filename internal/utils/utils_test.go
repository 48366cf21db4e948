package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDUniqueAndMonotonic(t *testing.T) {
	seen := make(map[string]bool)
	prev := ""
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		if prev != "" {
			assert.True(t, id > prev, "ids must be increasing: %s then %s", prev, id)
		}
		prev = id
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Great Course", "my-great-course"},
		{"  leading and   trailing  ", "leading-and-trailing"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"单词 测试", "单词-测试"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestValidateCourseCategory(t *testing.T) {
	type draft struct {
		Category string `validate:"required,course_category"`
	}

	for _, ok := range []string{"Newsletter", "Course", "E-Book", "Community"} {
		assert.NoError(t, ValidateStruct(&draft{Category: ok}), ok)
	}
	for _, bad := range []string{"Webinar", "course", ""} {
		assert.Error(t, ValidateStruct(&draft{Category: bad}), bad)
	}
}

func TestGetValidationErrors(t *testing.T) {
	type draft struct {
		Title string  `validate:"required"`
		Price float64 `validate:"min=0"`
	}

	err := ValidateStruct(&draft{Price: -1})
	errs := GetValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "title", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
}
