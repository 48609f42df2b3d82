package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Rendered-page file cache. The file name carries an xxHash of the
// post id plus its Markdown source, so an edited post misses the cache
// naturally instead of serving stale HTML.

// PagePath returns the cache file path for a rendered post.
func PagePath(dir, id, source string) string {
	hash := xxhash.Sum64String(id + source)
	return filepath.Join(dir, fmt.Sprintf("%s_%016x.html", id, hash))
}

// Read returns cached HTML for a post if present and not expired.
func Read(dir, id, source string, maxAge time.Duration) (string, bool) {
	path := PagePath(dir, id, source)

	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	if maxAge > 0 && time.Since(info.ModTime()) > maxAge {
		return "", false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	return string(content), true
}

// Write stores rendered HTML for a post, creating the cache directory
// as needed.
func Write(dir, id, source, html string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(PagePath(dir, id, source), []byte(html), 0644)
}

// Clear removes every cached rendering of a post, whatever source hash
// it was written under.
func Clear(dir, id string) error {
	matches, err := filepath.Glob(filepath.Join(dir, id+"_*.html"))
	if err != nil {
		return err
	}
	for _, match := range matches {
		if err := os.Remove(match); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// ClearAll removes the whole cache directory.
func ClearAll(dir string) error {
	return os.RemoveAll(dir)
}

// ClearOld removes cache files older than maxAge.
func ClearOld(dir string, maxAge time.Duration) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			os.Remove(path)
		}
		return nil
	})
}
