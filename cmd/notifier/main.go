package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"academy-api/internal/config"
	"academy-api/internal/domain"
	"academy-api/internal/email"
	"academy-api/internal/event"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// The notifier listens for blog events and emails the site inbox, so
// editors hear about new posts without polling the admin panel.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.AMQPURL == "" {
		logger.Fatal("AMQP_URL not configured")
	}
	if cfg.NotifyEmail == "" {
		logger.Fatal("NOTIFY_EMAIL not configured")
	}

	emailSender := email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.SMTPFromName, cfg.SMTPUseTLS)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			emailSender = sender
		}
	}

	consumer, err := event.NewConsumer(cfg.AMQPURL, cfg.EventExchange, "blog-notifier", []string{"blog.post.*"}, logger)
	if err != nil {
		logger.Fatal("amqp consumer init failed", zap.Error(err))
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("notifier listening", zap.String("exchange", cfg.EventExchange))

	err = consumer.Run(ctx, func(ctx context.Context, env event.Envelope) error {
		var post domain.BlogPost
		if err := json.Unmarshal(env.Payload, &post); err != nil {
			logger.Warn("dropping malformed blog event", zap.Error(err))
			return nil
		}

		var subject string
		switch env.Type {
		case event.TypeBlogPostCreated:
			subject = fmt.Sprintf("New blog post: %s", post.Title)
		case event.TypeBlogPostUpdated:
			subject = fmt.Sprintf("Blog post updated: %s", post.Title)
		default:
			logger.Debug("ignoring event", zap.String("type", env.Type))
			return nil
		}

		body := fmt.Sprintf("%s\n\nStatus: %s\nSlug: %s\nAuthor: %s\n", post.Title, post.Status, post.Slug, post.Author)
		if err := emailSender.Send(ctx, cfg.NotifyEmail, subject, body); err != nil {
			return fmt.Errorf("notify %s: %w", cfg.NotifyEmail, err)
		}
		logger.Info("post notification sent", zap.String("slug", post.Slug), zap.String("type", env.Type))
		return nil
	})
	if err != nil && ctx.Err() == nil {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
}
