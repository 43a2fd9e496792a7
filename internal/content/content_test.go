package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FilesAndDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("second"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("first\r\nline"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("skip"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	single := filepath.Join(t.TempDir(), "notes.md")
	require.NoError(t, os.WriteFile(single, []byte("# notes"), 0644))

	pages, err := Load([]string{single, dir})
	require.NoError(t, err)
	require.Len(t, pages, 3)
	assert.Equal(t, Page{Title: "notes.md", Body: "# notes"}, pages[0])
	assert.Equal(t, Page{Title: "a.txt", Body: "first\nline"}, pages[1])
	assert.Equal(t, "b.txt", pages[2].Title)
}

func TestLoad_EmptyDirectoryIsZeroPages(t *testing.T) {
	pages, err := Load([]string{t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, pages)
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := Load([]string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat")
}

func TestDemo(t *testing.T) {
	pages := Demo(3)
	require.Len(t, pages, 3)
	assert.Equal(t, "Page 1", pages[0].Title)
	assert.Contains(t, pages[2].Body, "page 3 of 3")
	assert.Empty(t, Demo(0))
	assert.Empty(t, Demo(-1))
}

func TestLines_WrapsAndPads(t *testing.T) {
	p := Page{Body: "hello brave new world\nbye"}
	lines := p.Lines(10, 5)
	assert.Equal(t, []string{
		"hello     ",
		"brave new ",
		"world     ",
		"bye       ",
		"          ",
	}, lines)
}

func TestLines_TruncatesHeightAndWideRunes(t *testing.T) {
	p := Page{Body: "日本語テキストです\nmore\nlines"}
	lines := p.Lines(6, 2)
	require.Len(t, lines, 2)
	for _, l := range lines {
		assert.Equal(t, 6, runewidth.StringWidth(l))
	}
	assert.Equal(t, "日本語", lines[0])
}

func TestLines_BreaksLongWords(t *testing.T) {
	lines := Page{Body: "abcdefghij"}.Lines(4, 3)
	assert.Equal(t, []string{"abcd", "efgh", "ij  "}, lines)
}

func TestLines_Degenerate(t *testing.T) {
	assert.Nil(t, Page{Body: "x"}.Lines(0, 3))
	assert.Nil(t, Page{Body: "x"}.Lines(3, 0))
}

func TestTruncateRunes_KeepsRunesWhole(t *testing.T) {
	data := []byte("aé世") // 1 + 2 + 3 bytes

	assert.Equal(t, "aé世", string(truncateRunes(data, 10)))
	assert.Equal(t, "aé世", string(truncateRunes(data, 6)))
	assert.Equal(t, "aé", string(truncateRunes(data, 5)))
	assert.Equal(t, "aé", string(truncateRunes(data, 3)))
	assert.Equal(t, "a", string(truncateRunes(data, 2)))
	assert.Equal(t, "", string(truncateRunes(data, 0)))
}

func TestLoad_CapsLargeFilesOnRuneBoundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "big.txt")
	// two ASCII bytes put a 3-byte rune across the cap
	data := append([]byte("xy"), []byte(strings.Repeat("世", maxFileSize/3+1))...)
	require.NoError(t, os.WriteFile(path, data, 0644))

	pages, err := Load([]string{path})
	require.NoError(t, err)
	require.Len(t, pages, 1)
	assert.LessOrEqual(t, len(pages[0].Body), maxFileSize)
	assert.True(t, utf8.ValidString(pages[0].Body))
}
