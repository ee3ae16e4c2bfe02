package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/match-predictor/external/apifootball"
	"github.com/riskibarqy/match-predictor/internal/config"
	"github.com/riskibarqy/match-predictor/internal/domain/fixture"
	"github.com/riskibarqy/match-predictor/internal/domain/league"
	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
	cacherepo "github.com/riskibarqy/match-predictor/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/match-predictor/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/match-predictor/internal/platform/cache"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/platform/resilience"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

// NewHTTPServer wires repositories, services and the HTTP router. The
// returned cleanup closes any resources the wiring opened and is safe
// to call after server shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	var (
		leagueRepo  league.Repository
		fixtureRepo fixture.Repository
		statsSource teamstats.Source
		cleanup     = func() error { return nil }
	)

	switch {
	case cfg.DBEnabled:
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(context.Background(), db); err != nil {
				_ = db.Close()
				return nil, nil, fmt.Errorf("bootstrap seed: %w", err)
			}
		}

		leagueRepo = postgres.NewLeagueRepository(db)
		fixtureRepo = postgres.NewFixtureRepository(db)
		statsSource = postgres.NewTeamStatsRepository(db)
		cleanup = db.Close
		logger.Info("storage wiring", "mode", "postgres", "db_name", dbNameFromURL(cfg.DBURL))

	case cfg.APIFootballEnabled:
		leagueRepo = memory.NewLeagueRepository(memory.SeedLeagues())
		fixtureRepo = memory.NewFixtureRepository(memory.SeedFixtures())
		statsSource = apifootball.NewClient(apifootball.ClientConfig{
			BaseURL:      cfg.APIFootballBaseURL,
			Token:        cfg.APIFootballToken,
			Timeout:      cfg.APIFootballTimeout,
			MaxRetries:   cfg.APIFootballMaxRetries,
			LeagueRefIDs: cfg.APIFootballLeagueRefIDs,
			Logger:       logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.APIFootballCircuitEnabled,
				FailureThreshold: cfg.APIFootballCircuitFailureCount,
				OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
			},
		})
		logger.Info("storage wiring", "mode", "api-football", "base_url", cfg.APIFootballBaseURL)

	default:
		leagueRepo = memory.NewLeagueRepository(memory.SeedLeagues())
		fixtureRepo = memory.NewFixtureRepository(memory.SeedFixtures())
		statsSource = memory.NewTeamStatsSource(memory.SeedSeasonStats(), memory.SeedFormSamples())
		logger.Info("storage wiring", "mode", "memory")
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		leagueRepo = cacherepo.NewLeagueRepository(leagueRepo, store)
		statsSource = cacherepo.NewTeamStatsSource(statsSource, store)
	}

	leagueSvc := usecase.NewLeagueService(leagueRepo, fixtureRepo)
	predictionSvc := usecase.NewPredictionService(leagueRepo, fixtureRepo, statsSource, logger)

	handler := httpapi.NewHandler(leagueSvc, predictionSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		_ = cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
