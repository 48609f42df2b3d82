package post

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Author is a resolved post author.
type Author struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// Post is one parsed blog document. It is rebuilt from its source file
// per request; rendered HTML is not stored on it.
type Post struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	Banner      string
	Labels      []string
	Authors     []Author
	ReadingTime string
	Content     string // raw Markdown body
}

// ParseError reports malformed or incomplete front matter. Missing
// required fields are fatal for the post, never silently defaulted.
type ParseError struct {
	Post  string
	Field string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("post %s: front matter missing required field %q", e.Post, e.Field)
	}
	return fmt.Sprintf("post %s: invalid front matter: %v", e.Post, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// matter is the typed front-matter schema. title, date, banner and
// description are required; labels and authors default to empty.
type matter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Banner      string   `yaml:"banner"`
	Description string   `yaml:"description"`
	Labels      []string `yaml:"labels"`
	Authors     []string `yaml:"authors"`
}

var dateLayouts = []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "Jan 2, 2006"}

// Parse splits a raw document into front matter and body and validates
// the required metadata.
func Parse(id string, raw []byte) (*Post, error) {
	var m matter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &m)
	if err != nil {
		return nil, &ParseError{Post: id, Err: err}
	}

	for field, value := range map[string]string{
		"title":       m.Title,
		"date":        m.Date,
		"banner":      m.Banner,
		"description": m.Description,
	} {
		if strings.TrimSpace(value) == "" {
			return nil, &ParseError{Post: id, Field: field}
		}
	}

	date, err := parseDate(m.Date)
	if err != nil {
		return nil, &ParseError{Post: id, Err: err}
	}

	labels := m.Labels
	if labels == nil {
		labels = []string{}
	}

	return &Post{
		ID:          id,
		Title:       m.Title,
		Description: m.Description,
		Date:        date,
		Banner:      m.Banner,
		Labels:      labels,
		Authors:     resolveAuthors(m.Authors),
		ReadingTime: EstimateReadingTime(string(body)),
		Content:     string(body),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable date %q", s)
}

// DisplayDate formats the post date for page display.
func (p *Post) DisplayDate() string {
	return p.Date.Format("Jan 02, 2006")
}

// EstimateReadingTime estimates reading time at roughly 200 words per
// minute, never below one minute.
func EstimateReadingTime(body string) string {
	words := len(strings.Fields(body))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`(?:https?://)?(?:www\.)?youtu\.be/([a-zA-Z0-9_-]{11})`),
}

// IsYouTubeURL reports whether a banner URL points at a YouTube video,
// so callers can embed a player instead of an image.
func IsYouTubeURL(url string) bool {
	for _, p := range youtubePatterns {
		if p.MatchString(url) {
			return true
		}
	}
	return false
}
