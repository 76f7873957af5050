package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"leximax/config"
	"leximax/content"
	"leximax/db"
	"leximax/middlewares"
	"leximax/routes"
	"leximax/services"
	"leximax/utils"
	"leximax/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to configure logger: %v", err)
	}
	if cfg.JWT.Secret == "" {
		log.Fatal("JWT secret is not set; configure jwt.secret or JWT_SECRET")
	}
	utils.SetJWTSecret(cfg.JWT.Secret)
	utils.SetJWTExpiry(time.Duration(cfg.JWT.Expiry) * time.Minute)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	users, seeded := setupUserStore(cfg)
	hub := websocket.NewHub()
	progression := services.InitProgressionService(users, hub)
	services.InitLessonService(progression)
	for _, u := range seeded {
		if _, err := progression.CheckForBadges(ctx, u); err != nil {
			log.WithError(err).WithField("user", u).Warn("Failed to award demo badges")
		}
	}

	generator := setupGenerator(ctx, cfg)
	services.InitQuestService(generator, progression)
	services.InitAuthService(users, setupIdentity(ctx, cfg), progression)

	limiter := middlewares.NewRateLimiter(db.RedisClient, cfg.RateLimit.Requests, time.Duration(cfg.RateLimit.Window)*time.Second)
	router := setupRouter(cfg, hub, users, limiter)

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Server.Port),
		Handler: router,
	}
	go func() {
		log.Infof("Server starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	if closer, ok := generator.(interface{ Close() error }); ok {
		closer.Close()
	}
	if err := db.CloseRedis(); err != nil {
		log.WithError(err).Warn("Failed to close Redis")
	}
	if db.Connected() {
		if err := db.DisconnectMongoDB(shutdownCtx); err != nil {
			log.WithError(err).Warn("Failed to disconnect MongoDB")
		}
	}
}

// setupUserStore picks MongoDB when a URI is configured and the in-memory
// store otherwise, then layers the Redis snapshot on top. For the in-memory
// store it also returns the ids of the demo users it was seeded with.
func setupUserStore(cfg *config.Config) (db.UserStore, []string) {
	var store db.UserStore
	var seeded []string

	if cfg.Database.URI != "" {
		if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		log.Info("Connected to MongoDB")
		store = db.NewMongoUserStore(db.MongoDatabase)
	} else {
		demo := content.DemoUsers(time.Now())
		for _, u := range demo {
			seeded = append(seeded, u.ID)
		}
		store = db.NewMemoryUserStore(demo...)
		log.Warn("No database configured; using the in-memory user store")
	}

	if cfg.Redis.Addr != "" {
		if err := db.InitRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
			log.WithError(err).Warn("Redis unavailable; user snapshots disabled")
		} else {
			log.Info("Connected to Redis")
		}
	}
	return db.NewSnapshotStore(store, db.RedisClient), seeded
}

func setupGenerator(ctx context.Context, cfg *config.Config) services.TextGenerator {
	if cfg.Gemini.ApiKey == "" {
		log.Warn("Gemini API key not set; LexiQuest will use fallback questions")
		return nil
	}
	generator, err := services.NewGeminiGenerator(ctx, cfg.Gemini.ApiKey, cfg.Gemini.Model)
	if err != nil {
		log.WithError(err).Warn("Gemini unavailable; LexiQuest will use fallback questions")
		return nil
	}
	return generator
}

func setupIdentity(ctx context.Context, cfg *config.Config) services.IdentityProvider {
	if !cfg.CognitoEnabled() {
		return services.LocalIdentityProvider{}
	}
	provider, err := services.NewCognitoIdentityProvider(ctx, cfg.Cognito.Region, cfg.Cognito.AppClientId, cfg.Cognito.AppClientSecret)
	if err != nil {
		log.Fatalf("Failed to set up Cognito: %v", err)
	}
	log.Info("Using Cognito for sign-up and login")
	return provider
}

func setupRouter(cfg *config.Config, hub *websocket.Hub, users db.UserStore, limiter *middlewares.RateLimiter) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestLogger())

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	routes.SetupContentRoutes(router)

	// The feed authenticates from the query string; browsers cannot set
	// headers on WebSocket upgrades.
	router.GET("/ws/gamification", websocket.GamificationWebSocketHandler(hub, users))

	// Protected routes (JWT auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware())
	{
		auth.GET("/user/profile", routes.GetProfileRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
		auth.POST("/streak/increment", routes.IncrementStreakRouteHandler)
		auth.POST("/streak/reset", routes.ResetStreakRouteHandler)
		routes.SetupLessonRoutes(auth)
		routes.SetupQuestRoutes(auth, limiter)
	}

	return router
}
