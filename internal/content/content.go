// Package content loads the pages shown by the pager.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// maxFileSize caps how much of a file becomes a page.
const maxFileSize = 1 << 20

// Page is one pane of content. The pager treats it as opaque.
type Page struct {
	Title string
	Body  string
}

// Load reads every path as a page. Directories contribute their regular,
// non-hidden files in lexical order; they are not descended into.
func Load(paths []string) ([]Page, error) {
	var pages []Page
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}

		if !info.IsDir() {
			page, err := loadFile(p)
			if err != nil {
				return nil, err
			}
			pages = append(pages, page)
			continue
		}

		dirPages, err := loadDir(p)
		if err != nil {
			return nil, err
		}
		pages = append(pages, dirPages...)
	}
	return pages, nil
}

func loadDir(dir string) ([]Page, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var pages []Page
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") || !e.Type().IsRegular() {
			continue
		}
		page, err := loadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func loadFile(path string) (Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Page{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	data = truncateRunes(data, maxFileSize)
	return Page{
		Title: filepath.Base(path),
		Body:  strings.ReplaceAll(string(data), "\r\n", "\n"),
	}, nil
}

// truncateRunes cuts data to at most n bytes without splitting a rune.
func truncateRunes(data []byte, n int) []byte {
	if len(data) <= n {
		return data
	}
	for n > 0 && !utf8.RuneStart(data[n]) {
		n--
	}
	return data[:n]
}

// Demo builds n placeholder pages.
func Demo(n int) []Page {
	pages := make([]Page, 0, max(n, 0))
	for i := 0; i < n; i++ {
		pages = append(pages, Page{
			Title: fmt.Sprintf("Page %d", i+1),
			Body: fmt.Sprintf("This is page %d of %d.\n\n"+
				"Drag with the mouse to swipe between pages, "+
				"or use h/l and the arrow keys.", i+1, n),
		})
	}
	return pages
}

// Lines wraps the body into at most height lines of exactly width cells.
func (p Page) Lines(width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}

	var out []string
	body := strings.ReplaceAll(p.Body, "\t", "    ")
	for _, line := range strings.Split(body, "\n") {
		for _, wrapped := range wrap(line, width) {
			if len(out) == height {
				return out
			}
			out = append(out, runewidth.FillRight(runewidth.Truncate(wrapped, width, ""), width))
		}
	}
	for len(out) < height {
		out = append(out, strings.Repeat(" ", width))
	}
	return out
}

// wrap breaks a line at display width, preferring the last space.
func wrap(line string, width int) []string {
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	var out []string
	var cur []rune
	curWidth := 0
	lastSpace := -1
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if curWidth+rw > width && len(cur) > 0 {
			if lastSpace > 0 {
				out = append(out, string(cur[:lastSpace]))
				cur = append([]rune(nil), cur[lastSpace+1:]...)
			} else {
				out = append(out, string(cur))
				cur = cur[:0]
			}
			curWidth = runewidth.StringWidth(string(cur))
			lastSpace = -1
			for i, c := range cur {
				if c == ' ' {
					lastSpace = i
				}
			}
		}
		if r == ' ' {
			lastSpace = len(cur)
		}
		cur = append(cur, r)
		curWidth += rw
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}
