package main

import (
	"log"
	"os"
	"strings"
	"time"

	"coolenergy/analytics"
	"coolenergy/config"
	"coolenergy/controller"
	"coolenergy/gallery"
	"coolenergy/logger"
	mw "coolenergy/middlewares"
	"coolenergy/route"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(err)
	}

	cfg := config.Load()

	zlog, err := logger.New(os.Getenv("GIN_MODE") != "release")
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zlog.Sync()

	cloud, err := gallery.NewCloudinary(cfg.Cloudinary, zlog)
	if err != nil {
		zlog.Fatalw("cloudinary setup failed", "error", err)
	}
	fallback := gallery.NewFallback(cfg.SiteURL, cfg.FallbackDisabled)
	resolver := gallery.NewResolver(zlog, cloud, fallback)
	store := analytics.NewStore(cfg.AnalyticsMaxEvents)

	h := controller.New(cfg, zlog, resolver, cloud, fallback, store)

	apiLimiter := mw.NewRateLimiter(cfg.RateLimit.APIMax, cfg.RateLimit.APIWindow,
		"Demasiadas solicitudes, intenta de nuevo mas tarde").Middleware()
	authLimiter := mw.NewRateLimiter(cfg.RateLimit.AuthMax, cfg.RateLimit.AuthWindow,
		"Demasiados intentos de login, intenta de nuevo en 15 minutos").Middleware()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(mw.RequestLogger(zlog))
	router.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return origin == cfg.SiteURL ||
				strings.HasPrefix(origin, "http://localhost:") ||
				strings.HasPrefix(origin, "http://127.0.0.1:")
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.Unprotected(router, h, apiLimiter, authLimiter)
	route.Protected(router, h, cfg.JWTSecret, cfg.Cloudinary.Configured(), apiLimiter)

	router.Static("/js", "./web/js")
	router.Static("/css", "./web/css")
	router.Static("/images", "./web/images")
	router.StaticFile("/", "./web/index.html")
	router.StaticFile(cfg.AdminPath, "./web/admin.html")

	// SPA fallback; API misses stay JSON.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(404, gin.H{"error": "Not found"})
			return
		}
		c.File("./web/index.html")
	})

	zlog.Infow("server starting", "port", cfg.Port, "cloudinary", cfg.Cloudinary.Configured())
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
