package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/pcadcreative/foodexpress/configs"
	"github.com/pcadcreative/foodexpress/middlewares"
	"github.com/pcadcreative/foodexpress/pkg/cache"
	"github.com/pcadcreative/foodexpress/repository"
	"github.com/pcadcreative/foodexpress/routes"
	"github.com/pcadcreative/foodexpress/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// Redis is optional: without it recommendations are recomputed on
	// every read instead of served from cache
	if err := cache.Connect(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Printf("running without recommendation cache: %v", err)
	}

	// background status progression
	updater := services.NewStatusUpdater(repository.NewOrderRepository(db), cfg.StatusSweepInterval)
	updater.Start()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Println("server running at", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}

	// lets the in-flight sweep finish before the process exits
	updater.Stop()
}
