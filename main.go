package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharee/auth"
	"sharee/config"
	"sharee/db"
	"sharee/mediahost"
	"sharee/middleware"
	"sharee/mq"
	"sharee/orders"
	"sharee/products"
	"sharee/ratelim"
	"sharee/rdx"
	"sharee/routes"
	"sharee/shipping"
	"sharee/store"
	"sharee/utils"
	"sharee/videos"

	"github.com/joho/godotenv"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

// securityHeaders applies a set of recommended HTTP security headers.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs each request method, path, remote address, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s from %s - %v", r.Method, r.RequestURI, r.RemoteAddr, time.Since(start))
	})
}

func health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	cache, err := rdx.New(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Printf("Redis unavailable, running without cache: %v", err)
		cache = nil
	}

	emitter := mq.NewEmitter(cache)
	if cache != nil {
		go mq.StartStatsWorker(ctx, cache)
	}

	guard := middleware.NewAdminGuard(cfg.JWTSecret, cfg.TokenTTL)
	rates := shipping.NewRateTable(cfg.ShippingFeeInside, cfg.ShippingFeeOutside)
	media := mediahost.NewClient(cfg.MediaHostURL, cfg.MediaHostAPIKey, cfg.MediaHostTimeout)

	productStore := store.NewMongoProductStore(database.ProductsCollection)
	orderStore := store.NewMongoOrderStore(database.OrdersCollection)
	videoStore := store.NewMongoVideoStore(database.VideosCollection)

	authHandler := auth.NewHandler(cfg, guard)
	productHandler := &products.Handler{Products: productStore, Media: media, Cache: cache, Emitter: emitter}
	orderHandler := &orders.Handler{Orders: orderStore, Products: productStore, Rates: rates, Emitter: emitter}
	videoHandler := &videos.Handler{Videos: videoStore}

	rateLimiter := ratelim.NewRateLimiter(5, 5)

	router := httprouter.New()
	router.GET("/health", health)
	routes.AddAuthRoutes(router, authHandler, rateLimiter)
	routes.AddProductRoutes(router, productHandler, guard)
	routes.AddOrderRoutes(router, orderHandler, guard, rateLimiter)
	routes.AddVideoRoutes(router, videoHandler, guard)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // lock down in production
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(router)

	handler := loggingMiddleware(securityHeaders(corsHandler))

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutdown signal received; shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Graceful shutdown failed: %v", err)
	}
	if err := database.Close(shutdownCtx); err != nil {
		log.Printf("MongoDB disconnect error: %v", err)
	}
	if err := cache.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}

	log.Println("Server stopped cleanly")
}
