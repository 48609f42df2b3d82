package post

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound is returned when no document exists for a post id.
var ErrNotFound = errors.New("post not found")

// Store reads post documents from a content directory. One file per
// post, `<id>.md`, front matter on top.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Get loads and parses one post by id.
func (s *Store) Get(id string) (*Post, error) {
	id = strings.TrimSuffix(id, ".md")
	raw, err := os.ReadFile(filepath.Join(s.dir, id+".md"))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return Parse(id, raw)
}

// All loads every post in the content directory, newest first. A
// single malformed post fails the whole listing; a post with broken
// front matter is a configuration error, not something to skip over.
func (s *Store) All() ([]*Post, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var posts []*Post
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		p, err := s.Get(entry.Name())
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}

	sort.Slice(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}
