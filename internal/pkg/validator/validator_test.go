package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:00", "10:59", "23:59"}
	for _, s := range valid {
		assert.True(t, IsValidClockTime(s), s)
	}

	invalid := []string{"", "9:00", "24:00", "09:60", "09:00:00", "0900", "aa:bb"}
	for _, s := range invalid {
		assert.False(t, IsValidClockTime(s), s)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-01")
	assert.True(t, ok)

	_, ok = IsValidDate("01-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-03-01T09:15:00Z")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-03-01T09:15:00+07:00")
	assert.True(t, ok)

	_, ok = IsValidDateTime("2024-03-01 09:15:00")
	assert.False(t, ok)
}

func TestParseWorkDays(t *testing.T) {
	days, err := ParseWorkDays("0,1,2,3,4")
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, days)

	days, err = ParseWorkDays("5, 6")
	assert.NoError(t, err)
	assert.Equal(t, []int{5, 6}, days)

	_, err = ParseWorkDays("")
	assert.Error(t, err)

	_, err = ParseWorkDays("0,7")
	assert.Error(t, err)

	_, err = ParseWorkDays("1,1")
	assert.Error(t, err)

	_, err = ParseWorkDays("mon,tue")
	assert.Error(t, err)
}

func TestFormatWorkDays(t *testing.T) {
	assert.Equal(t, "0,1,2,3,4", FormatWorkDays([]int{0, 1, 2, 3, 4}))
	assert.Equal(t, "", FormatWorkDays(nil))
}
