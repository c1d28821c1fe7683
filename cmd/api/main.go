package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"academy-api/internal/assessment"
	"academy-api/internal/config"
	"academy-api/internal/db"
	"academy-api/internal/email"
	"academy-api/internal/event"
	apihttp "academy-api/internal/http"
	"academy-api/internal/quizdata"
	"academy-api/internal/repository"
	"academy-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	mongoDB, err := db.NewMongo(ctx, cfg)
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer func() {
		ctxDisc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoDB.Client().Disconnect(ctxDisc)
	}()

	contactRepo := repository.NewPgContactRepository(pool)
	blogRepo := repository.NewMongoBlogRepository(mongoDB)

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	var (
		contactLimiter service.RateLimiter
		tokenStore     service.RefreshTokenStore
		redisClient    *redis.Client
	)
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		} else {
			contactLimiter = service.NewRedisRateLimiter(redisClient, 10*time.Minute, 3)
			tokenStore = service.NewRedisRefreshTokenStore(redisClient)
		}
		cancel()
	}

	var publisher event.Publisher
	if cfg.AMQPURL != "" {
		amqpPub, err := event.NewAMQPPublisher(cfg.AMQPURL, cfg.EventExchange)
		if err != nil {
			logger.Warn("amqp publisher init failed", zap.Error(err))
		} else {
			publisher = amqpPub
			defer amqpPub.Close()
		}
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		time.Duration(cfg.JWTRefreshTTLMinutes)*time.Minute,
		tokenStore,
	)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt secret not configured")
	}

	assessmentSvc := service.NewAssessmentService(logger, map[string]*assessment.Catalog{
		"grammar":    quizdata.GrammarCatalog(),
		"leadership": quizdata.LeadershipCatalog(),
	}, time.Duration(cfg.SessionTTLMinutes)*time.Minute)
	janitorDone := make(chan struct{})
	defer close(janitorDone)
	go assessmentSvc.RunJanitor(janitorDone, 10*time.Minute)

	blogSvc := service.NewBlogService(logger, blogRepo, publisher)
	contactSvc := service.NewContactService(logger, contactRepo, emailSender, contactLimiter, cfg.NotifyEmail)
	authSvc := service.NewAuthService(logger, cfg.AdminEmail, cfg.AdminPasswordHash)

	assessmentHandler := apihttp.NewAssessmentHandler(logger, assessmentSvc)
	blogHandler := apihttp.NewBlogHandler(logger, blogSvc)
	contactHandler := apihttp.NewContactHandler(logger, contactSvc)
	authHandler := apihttp.NewAuthHandler(logger, authSvc, jwtSvc)
	contentHandler := apihttp.NewContentHandler()
	router := apihttp.NewRouter(logger, assessmentHandler, blogHandler, contactHandler, authHandler, contentHandler, jwtSvc)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
