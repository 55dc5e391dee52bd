package source_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jcorbin/gograss/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	txt := source.Default()
	assert.Equal(t, source.DefaultName, txt.Name)
	assert.Equal(t, "wWWwwww", txt.Body)
	assert.Equal(t, "<default> (7 bytes)", txt.String())
}

func TestLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "gograss-source")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	t.Run("regular file", func(t *testing.T) {
		name := filepath.Join(dir, "hello.grass")
		body := "a comment then wWWwwwwv WWwwwWw\n"
		require.NoError(t, ioutil.WriteFile(name, []byte(body), 0644))

		txt, err := source.Load(name)
		require.NoError(t, err)
		assert.Equal(t, name, txt.Name)
		assert.Equal(t, body, txt.Body)
	})

	t.Run("empty file", func(t *testing.T) {
		name := filepath.Join(dir, "empty.grass")
		require.NoError(t, ioutil.WriteFile(name, nil, 0644))

		txt, err := source.Load(name)
		require.NoError(t, err)
		assert.Equal(t, "", txt.Body)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := source.Load(filepath.Join(dir, "nope.grass"))
		assert.True(t, os.IsNotExist(err), "expected a not-exist error, got %v", err)
	})
}

func TestRead(t *testing.T) {
	txt, err := source.Read("test", strings.NewReader("wWw"))
	require.NoError(t, err)
	assert.Equal(t, source.Text{Name: "test", Body: "wWw"}, txt)

	assert.Equal(t, "<inline>", source.Inline("w").Name)
}
