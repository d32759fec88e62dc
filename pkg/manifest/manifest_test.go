package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(ttt *testing.T) {
	m, err := Load(filepath.Join(ttt.TempDir(), "nope.yaml"))
	require.NoError(ttt, err)
	assert.Empty(ttt, m.Entries)
	assert.Empty(ttt, m.Semantic)
}

func TestLoadInvalid(ttt *testing.T) {
	path := filepath.Join(ttt.TempDir(), "manifest.yaml")
	require.NoError(ttt, os.WriteFile(path, []byte("entries: [\n"), 0o644))

	_, err := Load(path)
	require.ErrorContains(ttt, err, "unmarshal manifest")
}

func TestRecordSaveLoad(ttt *testing.T) {
	path := filepath.Join(ttt.TempDir(), "nested", "dir", "manifest.yaml")

	m := &Manifest{Semantic: "microdata"}
	m.Record(Entry{Source: "b.html", Output: "out/b.html", Directives: 2})
	m.Record(Entry{Source: "a.html", Directives: 4, Dropped: 1})
	m.Record(Entry{Source: "b.html", Output: "out/b.html", Directives: 3})
	require.Len(ttt, m.Entries, 2)

	require.NoError(ttt, m.Save(path))

	got, err := Load(path)
	require.NoError(ttt, err)
	want := &Manifest{
		Semantic: "microdata",
		Entries: []Entry{
			{Source: "a.html", Directives: 4, Dropped: 1},
			{Source: "b.html", Output: "out/b.html", Directives: 3},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		ttt.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	e, ok := got.Entry("b.html")
	require.True(ttt, ok)
	assert.Equal(ttt, 3, e.Directives)

	_, ok = got.Entry("c.html")
	assert.False(ttt, ok)
}
