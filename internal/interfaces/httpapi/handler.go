package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/match-predictor/internal/platform/id"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	predictionService *usecase.PredictionService
	logger            *logging.Logger
	validator         *validator.Validate
	requestIDs        id.Generator
}

func NewHandler(
	leagueService *usecase.LeagueService,
	predictionService *usecase.PredictionService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     leagueService,
		predictionService: predictionService,
		logger:            logger,
		validator:         validator.New(),
		requestIDs:        id.NewRandomGenerator("pred"),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) ListFixturesByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListFixturesByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtures, err := h.leagueService.ListFixturesByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list fixtures failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureDTO, 0, len(fixtures))
	for _, fx := range fixtures {
		items = append(items, fixtureToDTO(fx))
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{"leagueId": leagueID, "items": items})
}

func (h *Handler) GetFixturePrediction(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixturePrediction")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	fixtureID := strings.TrimSpace(r.PathValue("fixtureID"))

	result, err := h.predictionService.PredictFixture(ctx, leagueID, fixtureID)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture prediction failed", "league_id", leagueID, "fixture_id", fixtureID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionToDTO(result))
}

func (h *Handler) ListGameweekPredictions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGameweekPredictions")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	gameweek, err := parsePositiveInt(r.PathValue("gameweek"), "gameweek")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	workers := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("workers")); raw != "" {
		workers, err = parsePositiveInt(raw, "workers")
		if err != nil {
			writeError(ctx, w, err)
			return
		}
	}

	result, err := h.predictionService.PredictGameweek(ctx, usecase.GameweekInput{
		LeagueID:   leagueID,
		Gameweek:   gameweek,
		MaxWorkers: workers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "gameweek prediction failed", "league_id", leagueID, "gameweek", gameweek, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, gameweekToDTO(result))
}

type matchupRequest struct {
	LeagueID   string `json:"leagueId" validate:"required"`
	Season     int    `json:"season" validate:"omitempty,gte=2000,lte=2100"`
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
}

func (h *Handler) PredictMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictMatchup")
	defer span.End()

	var req matchupRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.predictionService.PredictMatchup(ctx, usecase.MatchupInput{
		LeagueID:   req.LeagueID,
		Season:     req.Season,
		HomeTeamID: req.HomeTeamID,
		AwayTeamID: req.AwayTeamID,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "matchup prediction failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	requestID, err := h.requestIDs.NewID()
	if err != nil {
		h.logger.ErrorContext(ctx, "generate request id failed", "error", err)
		writeInternalError(ctx, w)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupPredictionDTO{
		RequestID:     requestID,
		predictionDTO: predictionToDTO(result),
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func parsePositiveInt(raw, field string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, field)
	}

	return value, nil
}
