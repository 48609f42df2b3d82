package blog

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"quill/cache"
	"quill/post"
	"quill/render"
	"quill/theme"
)

// BlogModule serves the read-only post endpoints: the listing and the
// fully rendered post page. Rendering runs the whole pipeline per
// request unless a cached page is fresh.
type BlogModule struct {
	store    *post.Store
	pipeline *render.Pipeline
	cacheDir string // empty disables the page cache
	maxAge   time.Duration
}

func NewBlogModule(store *post.Store, pipeline *render.Pipeline, cacheDir string, maxAge time.Duration) *BlogModule {
	return &BlogModule{store: store, pipeline: pipeline, cacheDir: cacheDir, maxAge: maxAge}
}

func (b *BlogModule) RegisterRoutes(router gin.IRouter) {
	router.GET("/posts", b.index)
	router.GET("/posts/:postSlug", b.show)
	router.GET("/themes", b.themes)
}

type postSummary struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Banner      string   `json:"banner"`
	BannerVideo bool     `json:"bannerVideo"`
	Date        string   `json:"date"`
	Labels      []string `json:"labels"`
	ReadingTime string   `json:"readingTime"`
}

func summarize(p *post.Post) postSummary {
	return postSummary{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Banner:      p.Banner,
		BannerVideo: post.IsYouTubeURL(p.Banner),
		Date:        p.DisplayDate(),
		Labels:      p.Labels,
		ReadingTime: p.ReadingTime,
	}
}

func (b *BlogModule) index(c *gin.Context) {
	posts, err := b.store.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	summaries := make([]postSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, summarize(p))
	}
	c.JSON(http.StatusOK, summaries)
}

func (b *BlogModule) show(c *gin.Context) {
	slug := c.Param("postSlug")

	p, err := b.store.Get(slug)
	if errors.Is(err, post.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		// broken front matter is fatal for the page, no partial output
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	html, err := b.renderPost(p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post":    summarize(p),
		"authors": p.Authors,
		"html":    html,
	})
}

type themeEntry struct {
	Palette theme.Palette `json:"palette"`
	Light   bool          `json:"light"`
}

func (b *BlogModule) themes(c *gin.Context) {
	out := make(map[string]themeEntry, len(theme.Names()))
	for _, name := range theme.Names() {
		p, _ := theme.Get(name)
		out[name] = themeEntry{Palette: p, Light: theme.IsLight(name)}
	}
	c.JSON(http.StatusOK, gin.H{"default": theme.Default(), "themes": out})
}

func (b *BlogModule) renderPost(p *post.Post) (string, error) {
	if b.cacheDir != "" {
		if html, ok := cache.Read(b.cacheDir, p.ID, p.Content, b.maxAge); ok {
			return html, nil
		}
	}

	html, err := b.pipeline.Render(p.Content)
	if err != nil {
		return "", err
	}

	if b.cacheDir != "" {
		if err := cache.Write(b.cacheDir, p.ID, p.Content, html); err != nil {
			log.Printf("Error writing page cache for %s: %v", p.ID, err)
		}
	}
	return html, nil
}
