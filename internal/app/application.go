package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parish-liturgy-backend/internal/background"
	"parish-liturgy-backend/internal/config"
	"parish-liturgy-backend/internal/handlers"
	"parish-liturgy-backend/internal/liturgy"
	"parish-liturgy-backend/internal/markdown"
	"parish-liturgy-backend/internal/middleware"
	"parish-liturgy-backend/internal/repository"
	"parish-liturgy-backend/internal/script"
	"parish-liturgy-backend/internal/seed"
	"parish-liturgy-backend/internal/service"
	"parish-liturgy-backend/pkg/cache"
	"parish-liturgy-backend/pkg/logger"
)

const avatarWarmupLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

type Application struct {
	cfg *config.Config

	db    *gorm.DB
	cache *cache.Cache

	ctx    context.Context
	cancel context.CancelFunc

	rateLimits *middleware.RateLimitManager
	tasks      *background.Pool

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	EventType repository.EventTypeRepository
	Field     repository.FieldDefinitionRepository
	Script    repository.ScriptRepository
	Event     repository.EventRepository
	Entity    repository.EntityRepository
	Parish    repository.ParishRepository
}

type serviceContainer struct {
	Field      *service.FieldDefinitionService
	Script     *service.ScriptService
	Event      *service.EventService
	Resolution *service.ResolutionService
	Render     *service.RenderService
	Liturgy    *service.LiturgyService
	Avatar     *service.AvatarService
}

type handlerContainer struct {
	Field   *handlers.FieldHandler
	Script  *handlers.ScriptHandler
	Event   *handlers.EventHandler
	Render  *handlers.RenderHandler
	Liturgy *handlers.LiturgyHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	app := &Application{
		cfg:    cfg,
		ctx:    ctx,
		cancel: cancel,
	}

	if err := app.initDatabase(); err != nil {
		cancel()
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		cancel()
		return nil, err
	}

	app.initCache()
	app.initRepositories()

	if cfg.SeedStarterData {
		if err := seed.EnsureStarterData(seed.Repositories{
			Parishes:   app.repositories.Parish,
			EventTypes: app.repositories.EventType,
			Fields:     app.repositories.Field,
			Scripts:    app.repositories.Script,
		}, cfg.SeedParishName); err != nil {
			logger.Error(err, "Failed to seed starter data", nil)
		}
	}

	app.initServices()
	app.initHandlers()
	app.initBackground()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.tasks != nil {
		if err := a.tasks.Shutdown(ctx); err != nil {
			logger.Error(err, "Background tasks did not stop in time", nil)
		}
	}

	if a.rateLimits != nil {
		if err := a.rateLimits.Shutdown(); err != nil {
			logger.Error(err, "Failed to stop rate limiter", nil)
		}
	}

	if a.cancel != nil {
		a.cancel()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	logger.Info("Running database migrations", nil)

	if err := repository.Migrate(a.db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

// initCache falls back to a disabled cache when Redis is unreachable so the
// API keeps serving from Postgres.
func (a *Application) initCache() {
	c, err := cache.NewCache(a.cfg.RedisURL, a.cfg.EnableRedis)
	if err != nil {
		logger.Warn("Redis unavailable, caching disabled", map[string]interface{}{"error": err.Error()})
		c, _ = cache.NewCache("", false)
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		EventType: repository.NewEventTypeRepository(a.db),
		Field:     repository.NewFieldDefinitionRepository(a.db),
		Script:    repository.NewScriptRepository(a.db),
		Event:     repository.NewEventRepository(a.db),
		Entity:    repository.NewEntityRepository(a.db),
		Parish:    repository.NewParishRepository(a.db),
	}
}

func (a *Application) initServices() {
	md := markdown.NewRenderer()
	assembler := script.NewAssembler(
		script.WithRenderer(md),
		script.WithTextWidth(a.cfg.TextExportWidth),
	)

	fields := service.NewFieldDefinitionService(a.repositories.EventType, a.repositories.Field, a.cache, a.cfg.FieldCacheTTL)
	scripts := service.NewScriptService(a.repositories.Script, a.cache)
	events := service.NewEventService(a.repositories.Event, a.repositories.EventType, fields, a.cfg.DefaultLanguage)
	resolution := service.NewResolutionService(a.repositories.Entity, a.repositories.Parish)
	avatars := service.NewAvatarService(a.cfg.UploadDir)

	a.services = serviceContainer{
		Field:      fields,
		Script:     scripts,
		Event:      events,
		Resolution: resolution,
		Render:     service.NewRenderService(events, scripts, fields, resolution, assembler),
		Liturgy: service.NewLiturgyService(
			liturgy.NewCatalog(),
			liturgy.NewHTMLRenderer(nil, md),
			liturgy.NewTextRenderer(a.cfg.TextExportWidth),
			avatars,
			events,
			fields,
			resolution,
		),
		Avatar: avatars,
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Field:   handlers.NewFieldHandler(a.services.Field),
		Script:  handlers.NewScriptHandler(a.services.Script),
		Event:   handlers.NewEventHandler(a.services.Event),
		Render:  handlers.NewRenderHandler(a.services.Render),
		Liturgy: handlers.NewLiturgyHandler(a.services.Liturgy),
	}
}

func (a *Application) initBackground() {
	a.rateLimits = middleware.NewRateLimitManager(a.ctx)

	a.tasks = background.NewPool(background.Options{Workers: 2})
	a.tasks.Start(a.ctx)

	if err := os.MkdirAll(a.cfg.UploadDir, 0o755); err != nil {
		logger.Error(err, "Failed to create upload directory", map[string]interface{}{"dir": a.cfg.UploadDir})
		return
	}

	avatars := a.services.Avatar
	err := a.tasks.Submit(background.Task{
		Name:     "avatar-warmup",
		Timeout:  time.Minute,
		Attempts: 3,
		Backoff:  5 * time.Second,
		Run: func(ctx context.Context) error {
			return avatars.Warm(ctx, avatarWarmupLetters)
		},
	})
	if err != nil {
		logger.Warn("Failed to schedule avatar warmup", map[string]interface{}{"error": err.Error()})
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(logger.GinLogger())
	router.Use(middleware.SecurityHeadersMiddleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept-Language", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "Content-Language", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Static("/uploads", a.cfg.UploadDir)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.LanguageNegotiationMiddleware(a.cfg.DefaultLanguage))
	{
		v1.GET("/event-types/:id/fields", a.handlers.Field.List)
		v1.POST("/event-types/:id/fields", a.handlers.Field.Create)
		v1.PUT("/fields/:id", a.handlers.Field.Update)
		v1.DELETE("/fields/:id", a.handlers.Field.Delete)

		v1.GET("/scripts/:id", a.handlers.Script.Get)
		v1.POST("/scripts/:id/sections", a.handlers.Script.CreateSection)
		v1.PUT("/scripts/:id/sections/order", a.handlers.Script.ReorderSections)
		v1.PUT("/sections/:id", a.handlers.Script.UpdateSection)
		v1.DELETE("/sections/:id", a.handlers.Script.DeleteSection)

		v1.POST("/events", a.handlers.Event.Create)
		v1.GET("/events/:id", a.handlers.Event.Get)
		v1.PUT("/events/:id/fields", a.handlers.Event.UpdateFields)

		v1.GET("/liturgy/:module/templates", a.handlers.Liturgy.Templates)

		rendering := v1.Group("")
		rendering.Use(middleware.RateLimitMiddleware(a.rateLimits, a.cfg))
		{
			rendering.GET("/events/:id/scripts/:script_id/render", a.handlers.Render.Render)
			rendering.GET("/events/:id/scripts/:script_id/export/txt", a.handlers.Render.ExportText)
			rendering.GET("/events/:id/scripts/:script_id/export/html", a.handlers.Render.ExportHTML)
			rendering.GET("/events/:id/scripts/:script_id/segments", a.handlers.Render.Segments)
			rendering.POST("/preview", a.handlers.Render.Preview)

			rendering.POST("/liturgy/:module", a.handlers.Liturgy.Build)
			rendering.GET("/events/:id/liturgy", a.handlers.Liturgy.EventDocument)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		status := http.StatusNotFound
		if !strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.String(status, "404 page not found")
			return
		}
		c.JSON(status, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
