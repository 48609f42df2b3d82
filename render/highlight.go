package render

import (
	"bytes"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"golang.org/x/net/html"
)

const languagePrefix = "language-"

// Engine is the opaque syntax highlighter: code text plus a language
// in, a styled HTML fragment out.
type Engine interface {
	Highlight(code, lang string) (string, error)
	Supports(lang string) bool
}

// Cache stores highlighted fragments keyed by exact code text. The
// key ignores the declared language, so identical snippets declared in
// two languages collide; acceptable for a single-author content set.
// Implementations must be safe for concurrent read and insert.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, expiration ...time.Duration)
}

// HighlightOptions configures a Highlighter.
type HighlightOptions struct {
	// Theme is the chroma style name used by the default engine.
	Theme string
	// DefaultLanguage is used when a code block declares no language.
	// Empty means undeclared blocks are left untouched.
	DefaultLanguage string
	// FallbackLanguage substitutes declared languages the engine does
	// not know.
	FallbackLanguage string
	// NewEngine constructs the engine on first use. Defaults to the
	// chroma-backed engine; tests swap it to observe construction.
	NewEngine func(theme string) (Engine, error)
	// Cache, when set, memoizes highlighted fragments by code text.
	Cache Cache
	// OnError, when set, receives engine failures and the code block
	// is left unhighlighted; otherwise the failure aborts the pass.
	OnError func(error)
}

// Highlighter wraps the engine with process-lifetime lazy
// initialization: concurrent first uses share a single construction.
type Highlighter struct {
	opts   HighlightOptions
	once   sync.Once
	engine Engine
	err    error
}

func NewHighlighter(opts HighlightOptions) *Highlighter {
	if opts.Theme == "" {
		opts.Theme = "tokyonight-night"
	}
	if opts.NewEngine == nil {
		opts.NewEngine = newChromaEngine
	}
	return &Highlighter{opts: opts}
}

// Engine returns the shared engine, constructing it on first call.
func (h *Highlighter) Engine() (Engine, error) {
	h.once.Do(func() {
		h.engine, h.err = h.opts.NewEngine(h.opts.Theme)
	})
	return h.engine, h.err
}

type chromaEngine struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newChromaEngine(theme string) (Engine, error) {
	style := styles.Get(theme)
	if style == nil {
		style = styles.Fallback
	}
	return &chromaEngine{
		style:     style,
		formatter: chromahtml.New(chromahtml.TabWidth(4)),
	}, nil
}

func (e *chromaEngine) Supports(lang string) bool {
	return lexers.Get(lang) != nil
}

func (e *chromaEngine) Highlight(code, lang string) (string, error) {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := e.formatter.Format(&buf, e.style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// HighlightPass rewrites fenced code blocks (pre > code) into a
// highlighted block with a header bar carrying the language label and
// a copy button whose payload is the escaped raw code text.
type HighlightPass struct {
	Highlighter *Highlighter
}

func (*HighlightPass) Name() string { return "highlight" }

func (p *HighlightPass) Transform(root *html.Node) error {
	var failed error
	walk(root, func(n *html.Node) visitResult {
		if failed != nil {
			return visitSkipChildren
		}
		if n.Type == html.ElementNode && n.Data == "div" && hasClass(n, "highlight") {
			// already rewritten on a previous run
			return visitSkipChildren
		}
		if n.Data != "pre" {
			return visitContinue
		}

		code := firstElementChild(n, "code")
		if code == nil {
			return visitSkipChildren
		}

		lang := p.language(code)
		if lang == "" {
			return visitSkipChildren
		}

		if err := p.rewrite(n, code, lang); err != nil {
			if p.Highlighter.opts.OnError != nil {
				p.Highlighter.opts.OnError(err)
				return visitSkipChildren
			}
			failed = err
		}
		return visitSkipChildren
	})
	return failed
}

// language resolves the block's language: declared class, then the
// configured default, then the fallback when the engine does not know
// the declared one.
func (p *HighlightPass) language(code *html.Node) string {
	lang := p.opts().DefaultLanguage
	for _, class := range strings.Fields(getAttr(code, "class")) {
		if strings.HasPrefix(class, languagePrefix) {
			lang = strings.TrimPrefix(class, languagePrefix)
			break
		}
	}
	if lang == "" {
		return ""
	}
	if fb := p.opts().FallbackLanguage; fb != "" {
		if engine, err := p.Highlighter.Engine(); err == nil && !engine.Supports(lang) {
			lang = fb
		}
	}
	return lang
}

func (p *HighlightPass) opts() *HighlightOptions {
	return &p.Highlighter.opts
}

func (p *HighlightPass) rewrite(pre, code *html.Node, lang string) error {
	raw := textContent(code)

	fragment, err := p.highlighted(raw, lang)
	if err != nil {
		return err
	}

	nodes, err := parseFragment(fragment)
	if err != nil {
		return err
	}

	wrapper := elem("div", attr("class", "highlight"))
	wrapper.AppendChild(headerBar(lang, raw))
	appendChildren(wrapper, detachChildren(nodes)...)

	replaceNode(pre, wrapper)
	return nil
}

// highlighted returns the styled fragment for the code text, consulting
// the cache first. A lost race just means redundant highlighting work.
func (p *HighlightPass) highlighted(raw, lang string) (string, error) {
	if c := p.opts().Cache; c != nil {
		if v, ok := c.Get(raw); ok {
			if s, ok := v.(string); ok {
				return s, nil
			}
		}
	}

	engine, err := p.Highlighter.Engine()
	if err != nil {
		return "", err
	}
	fragment, err := engine.Highlight(raw, lang)
	if err != nil {
		return "", err
	}

	if c := p.opts().Cache; c != nil {
		c.Set(raw, fragment)
	}
	return fragment, nil
}

func headerBar(lang, raw string) *html.Node {
	label := elem("span")
	label.AppendChild(textNode(lang))

	button := elem("button",
		attr("class", "copy"),
		attr("data-code", escapeCode(raw)),
		attr("onclick", "copyText(this)"),
	)
	button.AppendChild(textNode("Copy"))

	header := elem("div", attr("class", "highlight__before"))
	header.AppendChild(label)
	header.AppendChild(button)
	return header
}

// escapeCode escapes backticks and dollar signs so the payload can sit
// in a template-literal copy handler.
func escapeCode(code string) string {
	code = strings.ReplaceAll(code, "`", "\\`")
	return strings.ReplaceAll(code, "$", "\\$")
}
