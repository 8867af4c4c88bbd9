package main

import (
	"context"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/subosito/gotenv"

	"github.com/satriahrh/expert-chat/adapters/http"
	"github.com/satriahrh/expert-chat/adapters/llm"
	"github.com/satriahrh/expert-chat/config"
	"github.com/satriahrh/expert-chat/domain"
	"github.com/satriahrh/expert-chat/usecase"
)

func main() {
	gotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	factory := func(ctx context.Context) (domain.Llm, error) {
		if cfg.Provider == config.ProviderGemini {
			return llm.NewGeminiClient(ctx, cfg)
		}
		return llm.NewOpenAIClient(cfg)
	}

	svc := usecase.NewDispatchService(factory)
	handler := http.NewAskHandler(svc)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.BodyLimit("64KB"))

	e.GET("/", handler.Index)

	api := e.Group("/api/v1")
	api.GET("/health", handler.HealthCheck)
	api.GET("/personas", handler.Personas)
	api.POST("/ask", handler.Ask)

	log.Printf("Starting server on %s (provider=%s, model=%s)", cfg.ListenAddr, cfg.Provider, cfg.Model)
	log.Fatal(e.Start(cfg.ListenAddr))
}
