package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		token    string
		expected Form
	}{
		{"*", Wildcard},
		{"*/15", Interval},
		{"*/x", Interval},
		{"0", Single},
		{"59", Single},
		{"1-5", Range},
		{"a-b", Range},
		{"1,15", List},
		{"1/15", Unknown},
		{"", Unknown},
		{"-5", Range},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.token))
		})
	}
}

func TestExpand_Wildcard(t *testing.T) {
	tests := []struct {
		name     string
		min, max int
	}{
		{"minute", 0, 59},
		{"hour", 0, 23},
		{"day of month", 1, 31},
		{"month", 1, 12},
		{"day of week", 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := Expand("*", tt.min, tt.max)
			require.NoError(t, err)
			require.Len(t, values, tt.max-tt.min+1)
			assert.Equal(t, tt.min, values[0])
			assert.Equal(t, tt.max, values[len(values)-1])
			for i := 1; i < len(values); i++ {
				assert.Equal(t, values[i-1]+1, values[i])
			}
		})
	}
}

func TestExpand_Interval(t *testing.T) {
	values, err := Expand("*/15", 0, 59)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 15, 30, 45}, values)
}

func TestExpand_IntervalExcludesUpperBound(t *testing.T) {
	// max itself is never produced, even when the step lands on it
	values, err := Expand("*/23", 0, 23)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, values)
}

func TestExpand_IntervalInvalidStep(t *testing.T) {
	for _, token := range []string{"*/x", "*/", "*/0", "*/-5"} {
		t.Run(token, func(t *testing.T) {
			_, err := Expand(token, 0, 59)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestExpand_Single(t *testing.T) {
	values, err := Expand("30", 0, 59)
	require.NoError(t, err)
	assert.Equal(t, []int{30}, values)
}

func TestExpand_SingleOutOfRange(t *testing.T) {
	_, err := Expand("60", 0, 59)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = Expand("0", 1, 12)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestExpand_Range(t *testing.T) {
	values, err := Expand("1-5", 0, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, values)
}

func TestExpand_RangeSingleValue(t *testing.T) {
	values, err := Expand("3-3", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, values)
}

func TestExpand_RangeStartAfterEnd(t *testing.T) {
	_, err := Expand("1-0", 0, 7)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestExpand_RangeOutOfBounds(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		min, max int
		detail   string
	}{
		{"end above max", "1-45", 1, 31, "end value 45"},
		{"start below min", "0-5", 1, 31, "start value 0"},
		{"start reported before end", "0-45", 1, 31, "start value 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.token, tt.min, tt.max)
			require.ErrorIs(t, err, ErrOutOfRange)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}
}

func TestExpand_RangeMalformed(t *testing.T) {
	for _, token := range []string{"a-b", "1-", "-5", "1-2-3"} {
		t.Run(token, func(t *testing.T) {
			_, err := Expand(token, 0, 59)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestExpand_List(t *testing.T) {
	values, err := Expand("1,15", 1, 31)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 15}, values)
}

func TestExpand_ListPreservesOrderAndDuplicates(t *testing.T) {
	values, err := Expand("15,1,15", 1, 31)
	require.NoError(t, err)
	assert.Equal(t, []int{15, 1, 15}, values)
}

func TestExpand_ListOutOfRange(t *testing.T) {
	_, err := Expand("1,60", 0, 59)
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, err.Error(), "60")
}

func TestExpand_ListNonInteger(t *testing.T) {
	_, err := Expand("1,x,5", 0, 59)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestExpand_Unrecognized(t *testing.T) {
	for _, token := range []string{"1/15", "", "?"} {
		t.Run(token, func(t *testing.T) {
			_, err := Expand(token, 0, 59)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, []string{"0", "15", "30"}, Format([]int{0, 15, 30}))
	assert.Empty(t, Format(nil))
}
