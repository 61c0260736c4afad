package pathkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathkit"
	"github.com/jmgilman/go/pathkit/errors"
)

func TestNew_Normalizes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "/tmp/a/b", "/tmp/a/b"},
		{"duplicate separators", "//tmp///a", "/tmp/a"},
		{"dot segments", "/tmp/./a/./b", "/tmp/a/b"},
		{"dotdot segments", "/tmp/a/../b", "/tmp/b"},
		{"dotdot past root", "/../..", "/"},
		{"trailing separator", "/tmp/a/", "/tmp/a"},
		{"root", "/", "/"},
		{"mixed", "//tmp/.//a/..///b/", "/tmp/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := pathkit.New(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, p.String())
		})
	}
}

func TestNew_Invalid(t *testing.T) {
	for _, input := range []string{"", "relative/path", "./here", "../up"} {
		t.Run(input, func(t *testing.T) {
			_, err := pathkit.New(input)
			require.Error(t, err)
			require.Equal(t, errors.CodeInvalidPath, errors.GetCode(err))
		})
	}
}

func TestTryNew(t *testing.T) {
	p, ok := pathkit.TryNew("/tmp/x")
	require.True(t, ok)
	require.Equal(t, "/tmp/x", p.String())

	_, ok = pathkit.TryNew("not/absolute")
	require.False(t, ok)
}

func TestMust(t *testing.T) {
	p := pathkit.Must(pathkit.New("/tmp"))
	require.Equal(t, "/tmp", p.String())

	require.Panics(t, func() {
		pathkit.Must(pathkit.New("relative"))
	})
}

func TestEqual(t *testing.T) {
	a := pathkit.Must(pathkit.New("/tmp/a"))
	b := pathkit.Must(pathkit.New("//tmp//a/"))
	c := pathkit.Must(pathkit.New("/tmp/c"))

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))

	// Path is a comparable value type.
	require.Equal(t, a, b)
}

func TestRoot(t *testing.T) {
	require.Equal(t, "/", pathkit.Root.String())
	require.True(t, pathkit.Root.IsRoot())
	require.False(t, pathkit.Must(pathkit.New("/tmp")).IsRoot())
}
