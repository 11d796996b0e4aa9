package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/student-admin-panel/internal/api"
	"github.com/noah-isme/student-admin-panel/internal/handler"
	"github.com/noah-isme/student-admin-panel/internal/middleware"
	"github.com/noah-isme/student-admin-panel/internal/models"
	"github.com/noah-isme/student-admin-panel/internal/session"
	"github.com/noah-isme/student-admin-panel/pkg/config"
	"github.com/noah-isme/student-admin-panel/pkg/logger"
	"github.com/noah-isme/student-admin-panel/pkg/metrics"
	reqidmiddleware "github.com/noah-isme/student-admin-panel/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var redisClient *redis.Client
	if cfg.Session.Backend == config.SessionBackendRedis {
		redisClient, err = session.NewRedisClient(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
	}

	sessions := session.New(cfg.Session, redisClient)
	m := metrics.New()
	client := api.New(api.Config{
		BaseURL:               cfg.API.BaseURL,
		ProfileEndpoints:      cfg.API.ProfileEndpoints,
		ProfileAttemptTimeout: cfg.API.ProfileAttemptTimeout,
	}, &http.Client{}, logr, m)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(middleware.Metrics(m))

	r.SetFuncMap(template.FuncMap{
		"orNA":             models.OrNA,
		"joinCourses":      models.JoinCourses,
		"formatEnrollment": models.FormatEnrollment,
		"add":              func(a, b int) int { return a + b },
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "./web/static")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(m.Handler()))

	handler.Register(r, handler.Deps{
		API:      client,
		Sessions: sessions,
		Logger:   logr,
		Config:   cfg,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
