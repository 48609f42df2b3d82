package render

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// Alert describes one recognized admonition keyword with its fixed
// display title and icon markup.
type Alert struct {
	Keyword string
	Title   string
	Icon    string
}

const (
	noteIcon      = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2.5" stroke="currentColor" width="16" height="16"><path stroke-linecap="round" stroke-linejoin="round" d="m11.25 11.25.041-.02a.75.75 0 0 1 1.063.852l-.708 2.836a.75.75 0 0 0 1.063.853l.041-.021M21 12a9 9 0 1 1-18 0 9 9 0 0 1 18 0Zm-9-3.75h.008v.008H12V8.25Z"/></svg>`
	importantIcon = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2.5" stroke="currentColor" width="16" height="16"><path stroke-linecap="round" stroke-linejoin="round" d="m3.75 13.5 10.5-11.25L12 10.5h8.25L9.75 21.75 12 13.5H3.75Z"/></svg>`
	warningIcon   = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2.5" stroke="currentColor" width="16" height="16"><path stroke-linecap="round" stroke-linejoin="round" d="M12 9v3.75m-9.303 3.376c-.866 1.5.217 3.374 1.948 3.374h14.71c1.73 0 2.813-1.874 1.948-3.374L13.949 3.378c-.866-1.5-3.032-1.5-3.898 0L2.697 16.126ZM12 15.75h.007v.008H12v-.008Z"/></svg>`
	tipIcon       = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2.5" stroke="currentColor" width="16" height="16"><path stroke-linecap="round" stroke-linejoin="round" d="M12 18v-5.25m0 0a6.01 6.01 0 0 0 1.5-.189m-1.5.189a6.01 6.01 0 0 1-1.5-.189m3.75 7.478a12.06 12.06 0 0 1-4.5 0m3.75 2.383a14.406 14.406 0 0 1-3 0M14.25 18v-.192c0-.983.658-1.823 1.508-2.316a7.5 7.5 0 1 0-7.517 0c.85.493 1.509 1.333 1.509 2.316V18"/></svg>`
	cautionIcon   = `<svg xmlns="http://www.w3.org/2000/svg" fill="none" viewBox="0 0 24 24" stroke-width="2.5" stroke="currentColor" width="16" height="16"><path stroke-linecap="round" stroke-linejoin="round" d="M12 9v3.75m0-10.036A11.959 11.959 0 0 1 3.598 6 11.99 11.99 0 0 0 3 9.75c0 5.592 3.824 10.29 9 11.622 5.176-1.332 9-6.03 9-11.622 0-1.31-.21-2.57-.598-3.75h-.152c-3.196 0-6.1-1.25-8.25-3.286Zm0 13.036h.008v.008H12v-.008Z"/></svg>`
)

var defaultAlerts = []Alert{
	{Keyword: "NOTE", Title: "Note", Icon: noteIcon},
	{Keyword: "IMPORTANT", Title: "Important", Icon: importantIcon},
	{Keyword: "WARNING", Title: "Warning", Icon: warningIcon},
	{Keyword: "TIP", Title: "Tip", Icon: tipIcon},
	{Keyword: "CAUTION", Title: "Caution", Icon: cautionIcon},
}

var alertPattern = regexp.MustCompile(`\[!(\w+)\]`)

// AdmonitionPass rewrites GitHub-style alert blockquotes
// (`> [!TIP]` ...) into styled containers with an icon and title.
// Blockquotes that do not match, carry an unknown keyword, or have
// trailing content on the marker line are passed through unchanged.
// The pass never descends into blockquotes, so nested admonitions are
// carried through as plain content.
type AdmonitionPass struct {
	// Alerts overrides the recognized keyword set; nil means the
	// GitHub-compatible default set.
	Alerts []Alert
}

func (*AdmonitionPass) Name() string { return "admonition" }

func (p *AdmonitionPass) Transform(root *html.Node) error {
	walk(root, func(n *html.Node) visitResult {
		if n.Data != "blockquote" {
			return visitContinue
		}
		p.rewrite(n)
		return visitSkipChildren
	})
	return nil
}

func (p *AdmonitionPass) alerts() []Alert {
	if p.Alerts != nil {
		return p.Alerts
	}
	return defaultAlerts
}

func (p *AdmonitionPass) lookup(keyword string) *Alert {
	alerts := p.alerts()
	for i := range alerts {
		if strings.EqualFold(alerts[i].Keyword, keyword) {
			return &alerts[i]
		}
	}
	return nil
}

// rewrite replaces bq with an alert container when its first paragraph
// starts with a recognized `[!KEYWORD]` marker, and leaves it
// untouched otherwise.
func (p *AdmonitionPass) rewrite(bq *html.Node) {
	firstPara := firstElementChild(bq, "p")
	if firstPara == nil {
		return
	}

	header := firstPara.FirstChild
	if header == nil || header.Type != html.TextNode {
		return
	}

	m := alertPattern.FindStringSubmatch(header.Data)
	if m == nil {
		return
	}
	rest := strings.Replace(header.Data, m[0], "", 1)

	alert := p.lookup(m[1])
	if alert == nil {
		return
	}

	// GitHub drops the alert when anything else shares the marker
	// line; only a line break after the marker is allowed.
	if strings.TrimSpace(rest) != "" &&
		!strings.HasPrefix(rest, "\n") && !strings.HasPrefix(rest, "\r") {
		return
	}

	// Reassemble the body: the marker line's remainder and the rest of
	// the first paragraph, then any further blockquote children.
	remaining := detachChildren(firstPara)[1:] // drop the header text node
	trailing := detachSiblingsAfter(bq, firstPara)

	var paraChildren []*html.Node
	switch {
	case len(remaining) > 0 && isBreak(remaining[0]):
		// hard line break right after the marker; drop it and the
		// newline goldmark emits with it
		remaining = remaining[1:]
		if len(remaining) > 0 && remaining[0].Type == html.TextNode {
			remaining[0].Data = strings.TrimPrefix(remaining[0].Data, "\n")
		}
		paraChildren = remaining
	case len(remaining) > 0:
		if strings.TrimSpace(rest) != "" {
			paraChildren = append(paraChildren, textNode(rest))
		}
		paraChildren = append(paraChildren, remaining...)
	default:
		if strings.TrimSpace(rest) != "" {
			paraChildren = append(paraChildren, textNode(rest))
		}
	}

	container := elem("div", attr("class", "alert alert-"+strings.ToLower(alert.Keyword)))

	title := elem("p", attr("class", "alert-title"))
	if icon := parseIcon(alert.Icon); icon != nil {
		title.AppendChild(icon)
	}
	title.AppendChild(textNode(alert.Title))
	container.AppendChild(title)

	if len(paraChildren) > 0 {
		container.AppendChild(textNode("\n"))
		para := elem("p")
		appendChildren(para, paraChildren...)
		container.AppendChild(para)
	}
	appendChildren(container, trailing...)

	replaceNode(bq, container)
}

func isBreak(n *html.Node) bool {
	return n.Type == html.ElementNode && n.Data == "br"
}

// detachSiblingsAfter removes and returns every child of parent that
// follows the given child.
func detachSiblingsAfter(parent, child *html.Node) []*html.Node {
	var out []*html.Node
	for c := child.NextSibling; c != nil; c = child.NextSibling {
		parent.RemoveChild(c)
		out = append(out, c)
	}
	return out
}

func parseIcon(svg string) *html.Node {
	frag, err := parseFragment(svg)
	if err != nil || frag.FirstChild == nil {
		return nil
	}
	icon := frag.FirstChild
	frag.RemoveChild(icon)
	return icon
}
