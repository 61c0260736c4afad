package pathkit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/pathkit"
	"github.com/jmgilman/go/pathkit/pathtest"
)

func TestList(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"one.txt":      "1",
		"two.txt":      "2",
		"sub/":         "",
		"sub/deep.txt": "d",
	})

	entries := pathtest.Collect(t, root.List())
	rels := pathtest.RelativePaths(root, entries)

	// One level only: deep.txt is not listed.
	require.Equal(t, []string{"one.txt", "sub", "two.txt"}, rels)
}

func TestList_EntryTypes(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"file.txt": "x",
		"dir/":     "",
	})
	_, err := root.Join("file.txt").SymlinkAt(root.Join("link"))
	require.NoError(t, err)

	types := map[string]pathkit.EntryType{}
	for entry, err := range root.List() {
		require.NoError(t, err)
		types[entry.Path.Base()] = entry.Type
	}

	require.Equal(t, pathkit.EntryFile, types["file.txt"])
	require.Equal(t, pathkit.EntryDir, types["dir"])
	require.Equal(t, pathkit.EntrySymlink, types["link"])
}

func TestList_Restartable(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{"a.txt": "a"})

	seq := root.List()
	first := pathtest.Collect(t, seq)
	require.Len(t, first, 1)

	// A second pass reopens the directory and sees current state.
	pathtest.MkTree(t, root, map[string]string{"b.txt": "b"})
	second := pathtest.Collect(t, seq)
	require.Len(t, second, 2)
}

func TestList_EarlyBreak(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"a.txt": "", "b.txt": "", "c.txt": "",
	})

	var seen int
	for _, err := range root.List() {
		require.NoError(t, err)
		seen++
		break
	}
	require.Equal(t, 1, seen)
}

func TestList_MissingDirectory(t *testing.T) {
	root := pathtest.TempRoot(t)

	var errs int
	for _, err := range root.Join("missing").List() {
		require.Error(t, err)
		errs++
	}
	require.Equal(t, 1, errs)
}

func TestWalk(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"a/one.txt":   "1",
		"a/two.txt":   "2",
		"a/b/three.txt": "3",
		"c/":          "",
		"top.txt":     "t",
	})

	entries := pathtest.Collect(t, root.Walk())
	rels := pathtest.RelativePaths(root, entries)

	// 4 files and 3 directories, each exactly once; the root is not yielded.
	require.Equal(t, []string{
		"a", "a/b", "a/b/three.txt", "a/one.txt", "a/two.txt", "c", "top.txt",
	}, rels)
}

func TestWalk_PreOrder(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{"a/b/c.txt": "x"})

	entries := pathtest.Collect(t, root.Walk())

	index := map[string]int{}
	for i, entry := range entries {
		index[entry.Path.RelativeTo(root)] = i
	}
	require.Less(t, index["a"], index["a/b"])
	require.Less(t, index["a/b"], index["a/b/c.txt"])
}

func TestWalk_SymlinkedDirectoryNotDescended(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"real/inner.txt": "x",
	})
	_, err := root.Join("real").SymlinkAt(root.Join("alias"))
	require.NoError(t, err)

	entries := pathtest.Collect(t, root.Walk())
	rels := pathtest.RelativePaths(root, entries)

	// The alias is yielded as a symlink entry but its children appear only
	// under the real directory.
	require.Equal(t, []string{"alias", "real", "real/inner.txt"}, rels)
}

func TestWalk_EarlyBreak(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"a/one.txt": "", "a/two.txt": "", "b/three.txt": "",
	})

	var seen int
	for _, err := range root.Walk() {
		require.NoError(t, err)
		seen++
		if seen == 2 {
			break
		}
	}
	require.Equal(t, 2, seen)
}

func TestGlob(t *testing.T) {
	root := pathtest.TempRoot(t)
	pathtest.MkTree(t, root, map[string]string{
		"a/x.tar.gz":   "",
		"a/b/y.tar.gz": "",
		"a/b/z.txt":    "",
		"top.tar.gz":   "",
	})

	entries := pathtest.Collect(t, root.Glob("**/*.tar.gz"))
	rels := pathtest.RelativePaths(root, entries)
	require.Equal(t, []string{"a/b/y.tar.gz", "a/x.tar.gz", "top.tar.gz"}, rels)

	entries = pathtest.Collect(t, root.Glob("a/*.tar.gz"))
	rels = pathtest.RelativePaths(root, entries)
	require.Equal(t, []string{"a/x.tar.gz"}, rels)
}

func TestGlob_InvalidPattern(t *testing.T) {
	root := pathtest.TempRoot(t)

	var errs int
	for _, err := range root.Glob("[") {
		require.Error(t, err)
		errs++
	}
	require.Equal(t, 1, errs)
}

func TestEntryTypeString(t *testing.T) {
	require.Equal(t, "file", pathkit.EntryFile.String())
	require.Equal(t, "dir", pathkit.EntryDir.String())
	require.Equal(t, "symlink", pathkit.EntrySymlink.String())
	require.Equal(t, "other", pathkit.EntryOther.String())
}
