package vals

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompact(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, Compact([]string{"", "a", "", "b", ""}))
	require.Equal(t, []int{3, 1}, Compact([]int{0, 3, 0, 1}))
	require.Empty(t, Compact([]string{"", ""}))
	require.Empty(t, Compact[string](nil))
}

func TestDedupe(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, Dedupe([]string{"a", "b", "a", "c", "b"}))
	require.Equal(t, []int{1, 2}, Dedupe([]int{1, 1, 2, 1}))
	require.Empty(t, Dedupe[int](nil))
}

func TestDedupe_PreservesFirstOccurrence(t *testing.T) {
	require.Equal(t, []string{"b", "a"}, Dedupe([]string{"b", "a", "b"}))
}

func TestCoalesce(t *testing.T) {
	require.Equal(t, "x", Coalesce("", "x", "y"))
	require.Equal(t, 7, Coalesce(0, 0, 7))
	require.Equal(t, "", Coalesce("", ""))
	require.Equal(t, 0, Coalesce[int]())
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	require.NotNil(t, p)
	require.Equal(t, 42, *p)
}
