package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/football-dashboard/apiclient"
	"github.com/Dosada05/football-dashboard/config"
	"github.com/Dosada05/football-dashboard/fixtures"
	"github.com/Dosada05/football-dashboard/handlers"
	"github.com/Dosada05/football-dashboard/live"
	"github.com/Dosada05/football-dashboard/middleware"
	"github.com/Dosada05/football-dashboard/repositories"
	api "github.com/Dosada05/football-dashboard/routes"
	"github.com/Dosada05/football-dashboard/scheduler"
	"github.com/Dosada05/football-dashboard/services"
	"github.com/Dosada05/football-dashboard/storage"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.IsDevelopment() {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	// log.Ctx falls back to the global logger outside of requests
	zerolog.DefaultContextLogger = &log.Logger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	setupLogger(cfg)
	log.Info().Int("port", cfg.ServerPort).Str("api", cfg.APIBaseURL).Msg("configuration loaded")

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid timezone")
	}
	clock := services.SystemClock(loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIBaseURL,
		UserID:  cfg.DevUserID,
		Timeout: cfg.RequestTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create league API client")
	}

	// A nil uploader disables crest uploads.
	var uploader storage.FileUploader
	if cfg.R2.Enabled() {
		uploader, err = storage.NewR2Uploader(ctx, cfg.R2)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize R2 uploader")
		}
		log.Info().Str("bucket", cfg.R2.BucketName).Msg("R2 uploader initialized")
	} else {
		log.Warn().Msg("R2 is not configured, crest uploads are disabled")
	}

	wsHub := live.NewHub()

	leagueRepo := repositories.NewAPILeagueRepository(client)
	teamRepo := repositories.NewAPITeamRepository(client)
	playerRepo := repositories.NewAPIPlayerRepository(client)
	matchRepo := repositories.NewAPIMatchRepository(client)
	referenceRepo := repositories.NewAPIReferenceRepository(client)
	searchRepo := repositories.NewAPISearchRepository(client)
	userRepo := repositories.NewAPIUserRepository(client)

	leagueService := services.NewLeagueService(leagueRepo, wsHub)
	teamService := services.NewTeamService(teamRepo, uploader, wsHub, clock)
	playerService := services.NewPlayerService(playerRepo, wsHub, clock)
	matchService := services.NewMatchService(matchRepo, wsHub, clock)
	searchService := services.NewSearchService(searchRepo, clock)
	userService := services.NewUserService(userRepo, wsHub)
	referenceService := services.NewReferenceService(referenceRepo, teamRepo)
	dashboardService := services.NewDashboardService(leagueRepo, teamRepo, playerRepo, matchRepo, clock)
	fixtureService := services.NewFixtureService(fixtures.NewRoundRobinGenerator(), teamRepo, matchRepo, wsHub)

	sched, err := scheduler.New(loc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create scheduler")
	}
	if _, err := scheduler.RegisterDayRollover(sched, cfg.RolloverCron, wsHub, clock); err != nil {
		log.Fatal().Err(err).Msg("failed to register day rollover job")
	}

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		League:    handlers.NewLeagueHandler(leagueService),
		Team:      handlers.NewTeamHandler(teamService),
		Player:    handlers.NewPlayerHandler(playerService),
		Match:     handlers.NewMatchHandler(matchService),
		Search:    handlers.NewSearchHandler(searchService),
		User:      handlers.NewUserHandler(userService),
		Reference: handlers.NewReferenceHandler(referenceService),
		Dashboard: handlers.NewDashboardHandler(dashboardService),
		Fixture:   handlers.NewFixtureHandler(fixtureService),
		WebSocket: handlers.NewWebSocketHandler(wsHub, cfg.AllowedOrigins),
	}, api.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		Identity: middleware.IdentityConfig{
			JWTSecret: []byte(cfg.JWTSecretKey),
			DevUserID: cfg.DevUserID,
		},
	})

	// Upstream calls are bounded by the client timeout.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wsHub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		sched.Start()
		<-gctx.Done()
		return sched.Stop()
	})

	g.Go(func() error {
		log.Info().Str("address", server.Addr).Msg("starting server")
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		log.Info().Dur("timeout", shutdownTimeout).Msg("shutting down server")
		if err := server.Shutdown(shutdownCtx); err != nil {
			if closeErr := server.Close(); closeErr != nil {
				log.Error().Err(closeErr).Msg("failed to force close server")
			}
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("server terminated with error")
		os.Exit(1)
	}
	log.Info().Msg("application exited")
}
