package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"termine/internal/config"
	"termine/internal/middleware"
	"termine/internal/modules/booking"
	"termine/internal/modules/catalog"
	"termine/internal/pkg/response"
)

func main() {
	cfg := config.Load()

	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	catalogService := catalog.NewService()
	catalogHandler := catalog.NewHandler(catalogService)

	hub := booking.NewHub()
	collaborator := booking.NewStubCollaborator(cfg.SubmitDelay)
	bookingService := booking.NewService(catalogService, collaborator, hub, cfg.SubmitTimeout)
	bookingHandler := booking.NewHandler(bookingService, hub)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go bookingService.RunJanitor(ctx, cfg.JanitorInterval, cfg.SessionTTL)

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: r,
	}

	go func() {
		log.Printf("listening on :%s env=%s", cfg.HTTPPort, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	hub.Close()
}
