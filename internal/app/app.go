package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"sprintwise_backend/internal/config"
	"sprintwise_backend/internal/controller"
	"sprintwise_backend/internal/llm"
	"sprintwise_backend/internal/mcp"
	"sprintwise_backend/internal/service"
	"sprintwise_backend/internal/util"
	"sprintwise_backend/pkg/configwatcher"
	"sprintwise_backend/pkg/database"
	"sprintwise_backend/pkg/logger"
	"sprintwise_backend/pkg/monitoring"
	"sprintwise_backend/pkg/security"
	"sprintwise_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	Redis           *redis.Client
	Sessions        service.SessionStore
	Services        *Services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

// Services HTTP、MCP 与命令行共用的业务服务
type Services struct {
	LLM     *llm.OpenAIClient
	Goals   *service.GoalParserService
	Plans   *service.PlanService
	KIE     *service.KIEClient
	Posters *service.PosterService
	Storage *service.StorageService
}

type controllers struct {
	health  *controller.HealthController
	catalog *controller.CatalogController
	goal    *controller.GoalController
	plan    *controller.PlanController
	session *controller.SessionController
	upload  *controller.UploadController
	kie     *controller.KIEController
	poster  *controller.PosterController
}

func NewServices(cfg *config.Config) *Services {
	client := llm.NewOpenAIClient(cfg.AI, llm.DefaultObserver{Verbose: cfg.AI.LogCalls})
	kie := service.NewKIEClient(cfg.KIE)

	return &Services{
		LLM:     client,
		Goals:   service.NewGoalParserService(client),
		Plans:   service.NewPlanService(client),
		KIE:     kie,
		Posters: service.NewPosterService(kie, cfg.Poster),
		Storage: service.NewStorageService(cfg),
	}
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) applyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initSessionStore(ctx context.Context, cfg *config.Config) (service.SessionStore, error) {
	if cfg.Session.Store != "redis" {
		return service.NewMemorySessionStore(cfg.Session.TTL), nil
	}

	rdb, err := database.InitRedis(ctx, &cfg.Redis)
	if err != nil {
		return nil, err
	}
	a.Redis = rdb
	return service.NewRedisSessionStore(rdb, cfg.Session.TTL), nil
}

func (a *App) initControllers(s *Services, cfg *config.Config) *controllers {
	return &controllers{
		health:  controller.NewHealthController(a.Sessions),
		catalog: controller.NewCatalogController(cfg),
		goal:    controller.NewGoalController(s.Goals, a.Sessions),
		plan:    controller.NewPlanController(s.Plans, a.Sessions),
		session: controller.NewSessionController(a.Sessions),
		upload:  controller.NewUploadController(s.Storage),
		kie:     controller.NewKIEController(s.KIE),
		poster:  controller.NewPosterController(s.Posters, a.Sessions, cfg),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute,
		"/metrics", "/swagger", "/api/health", "/uploads", "/assets"))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	app := &App{Config: cfg}

	sessions, err := app.initSessionStore(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	app.Sessions = sessions

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("sprintwise", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	services := NewServices(cfg)
	app.Services = services
	if !services.LLM.Enabled() {
		logger.Log.Warn("AI API key not configured, plans use deterministic generation")
	}

	// 配置热更新只影响外部服务参数
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		services.LLM.UpdateConfig(newCfg.AI)
		services.KIE.UpdateConfig(newCfg.KIE)
		services.Posters.UpdateConfig(newCfg.Poster)
	})

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)

	controllers := app.initControllers(services, cfg)
	toolServer := mcp.NewServer(services.Goals, services.Plans, cfg)
	app.registerRoutes(router, controllers, toolServer, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", filepath.Join(cfg.Storage.LocalPath, "uploads"))
	}
	router.Static("/assets", filepath.Join(cfg.Storage.LocalPath, "assets"))

	return app, nil
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.Config.File != "" {
		go func() {
			if err := configwatcher.WatchConfig(ctx, a.Config.File, a.applyConfig); err != nil {
				logger.Log.Warn("Config watcher stopped", zap.Error(err))
			}
		}()
	}

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.Close()
		return err
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	// 关闭服务
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutdownCtx)
	a.Close()

	logger.Log.Info("Server exiting")
	return err
}

// Close 释放 Redis 与追踪资源
func (a *App) Close() {
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			logger.Log.Error("Failed to close redis", zap.Error(err))
		}
	}
	if a.tracer != nil {
		if err := a.tracer.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	_ = logger.Log.Sync()
}
