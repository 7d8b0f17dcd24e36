package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHireArgs(t *testing.T) {
	name, hourly, wage, err := parseHireArgs([]string{"Bob", "hourly", "30"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", name)
	assert.True(t, hourly)
	assert.Equal(t, 30, wage)

	name, hourly, wage, err = parseHireArgs([]string{"Mary", "Ann", "s", "100000"})
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", name)
	assert.False(t, hourly)
	assert.Equal(t, 100000, wage)

	for _, args := range [][]string{
		nil,
		{"Bob", "30"},
		{"Bob", "weekly", "30"},
		{"Bob", "hourly", "thirty"},
	} {
		_, _, _, err := parseHireArgs(args)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestParseNameAmount(t *testing.T) {
	name, amount, err := parseNameAmount([]string{"Mary", "Ann", "8"})
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", name)
	assert.Equal(t, 8, amount)

	_, _, err = parseNameAmount([]string{"8"})
	assert.ErrorIs(t, err, errUsage)
	_, _, err = parseNameAmount([]string{"Bob", "eight"})
	assert.ErrorIs(t, err, errUsage)
}

func TestParseRenameArgs(t *testing.T) {
	oldName, newName, err := parseRenameArgs("John Brian")
	require.NoError(t, err)
	assert.Equal(t, "John", oldName)
	assert.Equal(t, "Brian", newName)

	oldName, newName, err = parseRenameArgs(" Mary Ann | Mary Smith ")
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", oldName)
	assert.Equal(t, "Mary Smith", newName)

	for _, payload := range []string{"", "John", "a b c", "John |", "| Brian"} {
		_, _, err := parseRenameArgs(payload)
		assert.ErrorIs(t, err, errUsage, payload)
	}
}

func TestParseEditArgs(t *testing.T) {
	oldName, newName, hourly, wage, err := parseEditArgs("John | Brian salary 80000")
	require.NoError(t, err)
	assert.Equal(t, "John", oldName)
	assert.Equal(t, "Brian", newName)
	assert.False(t, hourly)
	assert.Equal(t, 80000, wage)

	oldName, newName, hourly, wage, err = parseEditArgs(" Mary Ann | Mary Smith h 42 ")
	require.NoError(t, err)
	assert.Equal(t, "Mary Ann", oldName)
	assert.Equal(t, "Mary Smith", newName)
	assert.True(t, hourly)
	assert.Equal(t, 42, wage)

	oldName, newName, hourly, wage, err = parseEditArgs("John Brian hourly 35")
	require.NoError(t, err)
	assert.Equal(t, "John", oldName)
	assert.Equal(t, "Brian", newName)
	assert.True(t, hourly)
	assert.Equal(t, 35, wage)

	for _, payload := range []string{
		"",
		"John Brian 35",
		"Mary Ann Brian hourly 35",
		"| Brian hourly 35",
		"John | hourly 35",
		"John | Brian weekly 35",
		"John | Brian hourly lots",
	} {
		_, _, _, _, err := parseEditArgs(payload)
		assert.ErrorIs(t, err, errUsage, payload)
	}
}

func TestParseAmount(t *testing.T) {
	n, err := parseAmount(" 40 ")
	require.NoError(t, err)
	assert.Equal(t, 40, n)

	_, err = parseAmount("-1")
	assert.ErrorIs(t, err, errUsage)
	_, err = parseAmount("forty")
	assert.ErrorIs(t, err, errUsage)
}
