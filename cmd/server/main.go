package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "talentsift/docs"
	"talentsift/internal/config"
	"talentsift/internal/extract"
	"talentsift/internal/handler"
	"talentsift/internal/nlp"
	"talentsift/internal/router"
	"talentsift/internal/service"
)

// @title TalentSift API
// @version 1.0
// @description Resume analysis service: upload a PDF or DOCX resume and receive a structured candidate profile.
// @BasePath /api/v1
func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// Optional .env for local development; real deployments use env vars.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(&cfg.Log)

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The annotator loads the pretrained language model once per process.
	// Without it no request can be served, so a load failure is fatal.
	annotator, err := nlp.NewAnnotator()
	if err != nil {
		return fmt.Errorf("failed to initialize annotator: %w", err)
	}

	extractor := extract.NewExtractor()

	// Initialize services
	analysisSvc := service.NewAnalysisService(extractor, annotator, &cfg.Upload)

	// Initialize handlers
	analyzeH := handler.NewAnalyzeHandler(analysisSvc)
	healthH := handler.NewHealthHandler(annotator)

	// Setup router
	r := router.Setup(cfg, analyzeH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info().
		Str("port", cfg.Server.Port).
		Str("environment", cfg.Server.Environment).
		Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func setupLogger(cfg *config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
