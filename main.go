// File: podio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"podio/config"
	"podio/handlers"
	"podio/middleware"
	"podio/routes"
	"podio/services/flow"
	"podio/services/upstream"
	"podio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores and upstream clients.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionRepo := flow.NewSessionRepo(utils.GetSessionClient(), sessionTTL)

	apiClient := upstream.NewClient(config.AppConfig.APIBaseURL, config.AppConfig.APIToken)
	eventCache := upstream.NewEventCache(apiClient, utils.GetCacheClient())

	flowHandler := handlers.NewFlowHandler(
		sessionRepo,
		eventCache,
		apiClient,
		logger,
		config.AppConfig.SimulatePayments,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		SessionRepo: sessionRepo,
		Flow:        flowHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
