package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"quill/blog"
	"quill/common"
	"quill/database"
	"quill/likes"
	"quill/post"
	"quill/render"
	"quill/signs"
)

func main() {
	godotenv.Load()
	cfg := common.LoadConfig()

	db := common.ConnectDb(cfg.DBFile)
	if db == nil {
		log.Fatal("Failed to connect to database")
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))

	highlighter := render.NewHighlighter(render.HighlightOptions{
		Theme:            cfg.HighlightTheme,
		DefaultLanguage:  cfg.DefaultLanguage,
		FallbackLanguage: cfg.FallbackLanguage,
		Cache:            common.NewCache(),
	})
	pipeline := render.NewPipeline(highlighter)

	store := post.NewStore(cfg.ContentDir)

	blogModule := blog.NewBlogModule(store, pipeline, cfg.CacheDir, 24*time.Hour)
	blogModule.RegisterRoutes(router)

	likesModule := likes.NewLikesModule(db)
	likesModule.RegisterRoutes(router)

	signsModule := signs.NewSignsModule(db)
	signsModule.RegisterRoutes(router)

	log.Printf("Starting server on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// corsConfig allows any origin in development and restricts to the
// configured allow-list in production.
func corsConfig(cfg *common.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST"}
	c.AllowHeaders = []string{"Origin", "Content-Type"}
	if cfg.IsDevelopment() {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = cfg.AllowedOrigins
	return c
}
