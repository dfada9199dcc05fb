package util

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	from, limit := Calculate(1, 10)
	require.Equal(t, 0, from)
	require.Equal(t, 10, limit)

	from, limit = Calculate(3, 25)
	require.Equal(t, 50, from)
	require.Equal(t, 25, limit)

	from, limit = Calculate(0, 0)
	require.Equal(t, 0, from)
	require.Equal(t, DefaultPageSize, limit)

	_, limit = Calculate(1, 1000)
	require.Equal(t, DefaultPageSize, limit)
}

func TestParseIntDefault(t *testing.T) {
	require.Equal(t, 5, ParseIntDefault("", 5))
	require.Equal(t, 7, ParseIntDefault("7", 5))
	require.Equal(t, 5, ParseIntDefault("junk", 5))
}

func TestPageMeta(t *testing.T) {
	meta := PageMeta(2, 10, 10, 25)
	require.EqualValues(t, 3, meta["total_pages"])
	require.Equal(t, true, meta["has_prev"])
	require.Equal(t, true, meta["has_next"])

	last := PageMeta(3, 10, 20, 25)
	require.Equal(t, false, last["has_next"])
}
