package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Isaacjdv/futbolapp-backend/configs"
	"github.com/Isaacjdv/futbolapp-backend/metrics"
	"github.com/Isaacjdv/futbolapp-backend/middlewares"
	"github.com/Isaacjdv/futbolapp-backend/pkg/logger"
	"github.com/Isaacjdv/futbolapp-backend/queue"
	"github.com/Isaacjdv/futbolapp-backend/routes"
)

func main() {
	cfg := configs.LoadConfig()

	log, err := logger.Init(cfg.Production)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// DB
	configs.ConnectionDB(cfg)
	configs.SetupDatabase()
	if err := configs.SeedTeams(); err != nil {
		log.Fatal("seed teams failed", zap.Error(err))
	}

	// Optional Redis catalog cache
	var cache *redis.Client
	if cfg.RedisAddr != "" {
		cache = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := cache.Ping(ctx).Err(); err != nil {
			log.Warn("redis unreachable, catalog cache disabled", zap.Error(err))
			cache = nil
		}
		cancel()
	}

	// Optional event broker
	events := queue.NewNoop()
	if cfg.AMQPURL != "" {
		pub, err := queue.NewRabbit(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Warn("rabbitmq unreachable, events disabled", zap.Error(err))
		} else {
			events = pub
		}
	}
	defer events.Close()

	metrics.MustRegister()

	if cfg.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.Metrics())

	routes.RegisterRoutes(r, configs.DB(), cfg, events, cache)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	srvErr := make(chan error, 1)
	go func() { srvErr <- srv.ListenAndServe() }()
	log.Info("server running", zap.String("port", cfg.Port))

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Info("shutting down", zap.String("signal", s.String()))
	case err := <-srvErr:
		log.Error("server error", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}
