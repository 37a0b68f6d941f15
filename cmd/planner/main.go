package main

import (
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wayfarer-labs/wayfarer/internal/pkg/config"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/logger"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/middleware"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/server"
	"github.com/wayfarer-labs/wayfarer/internal/pkg/tokenstore"
	"github.com/wayfarer-labs/wayfarer/services/planner/gateway/backend"
	"github.com/wayfarer-labs/wayfarer/services/planner/gateway/geoapify"
	"github.com/wayfarer-labs/wayfarer/services/planner/gateway/synthetic"
	"github.com/wayfarer-labs/wayfarer/services/planner/handler"
	httpHandler "github.com/wayfarer-labs/wayfarer/services/planner/handler/http"
	"github.com/wayfarer-labs/wayfarer/services/planner/store"
)

func main() {
	configPath := flag.String("config", "", "path to an env file, optional")
	flag.Parse()

	configs := config.InitConfig(*configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	tokens, err := tokenstore.NewFileStore(configs.TokenFile)
	if err != nil {
		zapLogger.Fatal("Failed to open token store", logger.Err(err))
	}

	// Gateways
	synth := synthetic.NewGenerator()
	backendGW := backend.NewGateway(configs.Backend, tokens, synth, zapLogger)
	geocoder := geoapify.NewGateway(configs.Geoapify.BaseURL, configs.Geoapify.APIKey,
		time.Duration(configs.Geoapify.Timeout)*time.Second)

	// State
	tripStore := store.New(backendGW, configs.Fuel, zapLogger)

	// Handlers
	authHandler := httpHandler.NewAuthHandler(backendGW)
	tripHandler := httpHandler.NewTripHandler(tripStore)
	searchHandler := httpHandler.NewSearchHandler(geocoder, backendGW, zapLogger)
	h := handler.NewHandler(authHandler, tripHandler, searchHandler)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(zapLogger))

	h.RegisterRoutes(e)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Server stopped", logger.Err(err))
	}
}
