package render

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

var headingTags = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// SlugPass assigns stable, unique ids to heading elements. Headings
// that already carry an id keep it, so re-running the pass is a no-op.
type SlugPass struct{}

func (*SlugPass) Name() string { return "slug" }

func (*SlugPass) Transform(root *html.Node) error {
	seen := map[string]int{}
	walk(root, func(n *html.Node) visitResult {
		if !headingTags[n.Data] {
			return visitContinue
		}
		if id := getAttr(n, "id"); id != "" {
			seen[id]++
			return visitSkipChildren
		}
		slug := Slugify(textContent(n))
		id := slug
		if c := seen[slug]; c > 0 {
			id = fmt.Sprintf("%s-%d", slug, c)
		}
		seen[slug]++
		setAttr(n, "id", id)
		return visitSkipChildren
	})
	return nil
}

// Slugify derives a URL-safe id from heading text: lowercased, spaces
// become hyphens, everything else non-alphanumeric is dropped.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == ' ' || r == '-' || r == '_':
			if !lastHyphen && b.Len() > 0 {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// AnchorPass prepends a "#" link to each heading pointing at its own
// id. Headings whose first child is already a heading anchor are left
// alone.
type AnchorPass struct{}

func (*AnchorPass) Name() string { return "anchor" }

func (*AnchorPass) Transform(root *html.Node) error {
	walk(root, func(n *html.Node) visitResult {
		if !headingTags[n.Data] {
			return visitContinue
		}
		id := getAttr(n, "id")
		if id == "" {
			return visitSkipChildren
		}
		if first := n.FirstChild; first != nil && first.Type == html.ElementNode &&
			first.Data == "a" && hasClass(first, "heading-anchor") {
			return visitSkipChildren
		}
		a := elem("a", attr("href", "#"+id), attr("class", "heading-anchor"))
		a.AppendChild(textNode("#"))
		if n.FirstChild != nil {
			n.InsertBefore(a, n.FirstChild)
		} else {
			n.AppendChild(a)
		}
		return visitSkipChildren
	})
	return nil
}
