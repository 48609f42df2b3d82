package render

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// markdown converter configured with Goldmark and useful extensions
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,     // tables, strikethrough, task lists, autolinks (GFM set)
		extension.Linkify, // linkify raw URLs
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(), // allow raw HTML passthrough in Markdown
	),
)

// Pass is one ordered transform over the parsed document tree. Each
// pass must be idempotent: re-running it on its own output leaves the
// tree unchanged.
type Pass interface {
	Name() string
	Transform(root *html.Node) error
}

// RenderError reports which pipeline pass failed. No partial HTML is
// returned alongside it.
type RenderError struct {
	Pass string
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s pass: %v", e.Pass, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Pipeline converts Markdown body text into enriched HTML by running
// an ordered sequence of tree passes over the Goldmark output.
type Pipeline struct {
	passes []Pass
}

// NewPipeline builds the standard pipeline: syntax highlighting,
// heading slugs, admonitions, inline video substitution, heading
// anchors.
func NewPipeline(hl *Highlighter) *Pipeline {
	return &Pipeline{passes: []Pass{
		&HighlightPass{Highlighter: hl},
		&SlugPass{},
		&AdmonitionPass{},
		&VideoPass{},
		&AnchorPass{},
	}}
}

// Render runs the full pipeline on one document body.
func (p *Pipeline) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", &RenderError{Pass: "markdown", Err: err}
	}

	root, err := parseFragment(buf.String())
	if err != nil {
		return "", &RenderError{Pass: "parse", Err: err}
	}

	if err := p.transform(root); err != nil {
		return "", err
	}

	out, err := renderFragment(root)
	if err != nil {
		return "", &RenderError{Pass: "serialize", Err: err}
	}
	return out, nil
}

func (p *Pipeline) transform(root *html.Node) error {
	for _, pass := range p.passes {
		if err := pass.Transform(root); err != nil {
			return &RenderError{Pass: pass.Name(), Err: err}
		}
	}
	return nil
}
