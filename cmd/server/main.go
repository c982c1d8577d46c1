package main // Entry point package

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/prolearn/course-marketplace/internal/auth"
	"github.com/prolearn/course-marketplace/internal/config"
	"github.com/prolearn/course-marketplace/internal/database"
	"github.com/prolearn/course-marketplace/internal/handler"
	"github.com/prolearn/course-marketplace/internal/payment"
	"github.com/prolearn/course-marketplace/internal/queue"
	"github.com/prolearn/course-marketplace/internal/repository"
	"github.com/prolearn/course-marketplace/internal/router"
	queue_publisher "github.com/prolearn/course-marketplace/internal/service"
)

func main() {
	cfg := config.Load()

	client, err := database.Open(cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongodb connect failed: %v", err)
	}
	db := client.Database(cfg.DBName)

	users := repository.NewUserRepo(repository.NewMongoCollection(db.Collection("users")))
	classes := repository.NewClassRepo(repository.NewMongoCollection(db.Collection("classes")))
	selected := repository.NewSelectedRepo(repository.NewMongoCollection(db.Collection("selected")))
	payments := repository.NewPaymentRepo(repository.NewMongoCollection(db.Collection("payments")))

	tokens := auth.NewTokenService(cfg.JWTSecret)
	intents := payment.NewStripeClient(cfg.StripeSecret)
	rdb := config.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	if rdb == nil {
		log.Println("redis unavailable, response caching disabled")
	}

	paymentHandler := handler.NewPaymentHandler(payments, classes, selected, intents)
	if cfg.AMQPURL != "" {
		amqpURL := cfg.AMQPURL
		paymentHandler.Publish = func(ctx context.Context, ev queue.PaymentRecordedEvent) error {
			return queue_publisher.PublishPaymentRecorded(ctx, amqpURL, ev)
		}
		go func() {
			if err := queue.StartPaymentConsumer(amqpURL); err != nil {
				log.Printf("payment consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.CORS())
	e.Use(echomw.Logger())

	router.Register(e, router.Handlers{
		Auth:     handler.NewAuthHandler(tokens),
		Class:    handler.NewClassHandler(classes),
		Selected: handler.NewSelectedHandler(selected),
		Payment:  paymentHandler,
		User:     handler.NewUserHandler(users),
	}, tokens, users, rdb)

	go func() {
		addr := ":" + cfg.Port
		log.Printf("listening on %s (env=%s)", addr, cfg.Env)
		if err := e.Start(addr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	// Block until interrupted, then drain in-flight requests and release
	// the store connection.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := database.Close(client); err != nil {
		log.Printf("mongodb disconnect: %v", err)
	}
}
