package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/myaseir/circuit-sphere-ecommerce/internal/catalog"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/checkout"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/config"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/gateway"
	"github.com/myaseir/circuit-sphere-ecommerce/internal/store"
)

func main() {
	cfg := config.Load()

	var cache catalog.ProductCache
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer redisClient.Close()
		cache = catalog.NewRedisCache(redisClient)
	}

	catalogClient := catalog.NewClient(cfg.BackendBaseURL, cache)

	cart := store.NewCartStore()
	wishlist := store.NewWishlistStore()

	orderClient := checkout.NewAPIClient(cfg.BackendBaseURL)
	submitter := checkout.NewSubmitter(cart, orderClient)

	router := gateway.NewRouter(
		gateway.NewCartHandler(cart, catalogClient),
		gateway.NewWishlistHandler(wishlist, cart, catalogClient),
		gateway.NewCheckoutHandler(submitter),
		gateway.NewProductHandler(catalogClient),
		cfg.RequestTimeout,
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s (backend %s)", cfg.HTTPPort, cfg.BackendBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
