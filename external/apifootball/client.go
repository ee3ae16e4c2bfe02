package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/platform/resilience"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

const (
	defaultBaseURL = "https://v3.football.api-sports.io"

	maxResponseBytes = 4 << 20
)

var errProviderTransient = crerr.New("api-football transient failure")

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Timeout    time.Duration
	MaxRetries int
	// LeagueRefIDs maps internal league public ids to provider league ids.
	LeagueRefIDs   map[string]int64
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client implements teamstats.Source against the API-Football v3 API.
// Team ids handed to this source are provider team ids in string form.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	leagueRefIDs   map[string]int64
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 15 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxRetries,
		leagueRefIDs:   cfg.LeagueRefIDs,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *Client) GetSeasonStats(ctx context.Context, leagueID string, season int, teamID string) (teamstats.SeasonStats, bool, error) {
	leagueRef, teamRef, ok := c.resolveIDs(ctx, leagueID, teamID)
	if !ok {
		return teamstats.SeasonStats{}, false, nil
	}

	var envelope teamStatisticsEnvelope
	err := c.doJSON(ctx, "/teams/statistics", map[string]string{
		"league": strconv.FormatInt(leagueRef, 10),
		"season": strconv.Itoa(season),
		"team":   strconv.FormatInt(teamRef, 10),
	}, &envelope)
	if err != nil {
		return teamstats.SeasonStats{}, false, fmt.Errorf("fetch team statistics league=%s team=%s: %w", leagueID, teamID, err)
	}

	stats := teamstats.SeasonStats{
		LeagueID:         leagueID,
		Season:           season,
		TeamID:           teamID,
		HomeMatches:      envelope.Response.Fixtures.Played.Home,
		AwayMatches:      envelope.Response.Fixtures.Played.Away,
		HomeGoalsFor:     envelope.Response.Goals.For.Total.Home,
		AwayGoalsFor:     envelope.Response.Goals.For.Total.Away,
		HomeGoalsAgainst: envelope.Response.Goals.Against.Total.Home,
		AwayGoalsAgainst: envelope.Response.Goals.Against.Total.Away,
	}

	// The provider answers 200 with a zeroed body for unknown teams.
	if stats.TotalMatches() == 0 {
		return teamstats.SeasonStats{}, false, nil
	}

	return stats, true, nil
}

func (c *Client) ListRecentForm(ctx context.Context, leagueID string, season int, teamID string, limit int) ([]teamstats.FormSample, bool, error) {
	if limit <= 0 {
		limit = 5
	}

	leagueRef, teamRef, ok := c.resolveIDs(ctx, leagueID, teamID)
	if !ok {
		return nil, false, nil
	}

	var envelope fixtureListEnvelope
	err := c.doJSON(ctx, "/fixtures", map[string]string{
		"league": strconv.FormatInt(leagueRef, 10),
		"season": strconv.Itoa(season),
		"team":   strconv.FormatInt(teamRef, 10),
		"last":   strconv.Itoa(limit),
		"status": "FT-AET-PEN",
	}, &envelope)
	if err != nil {
		return nil, false, fmt.Errorf("fetch recent fixtures league=%s team=%s: %w", leagueID, teamID, err)
	}
	if len(envelope.Response) == 0 {
		return nil, false, nil
	}

	out := make([]teamstats.FormSample, 0, len(envelope.Response))
	for _, item := range envelope.Response {
		wasHome := item.Teams.Home.ID == teamRef
		sample := teamstats.FormSample{
			FixtureID: strconv.FormatInt(item.Fixture.ID, 10),
			WasHome:   wasHome,
		}
		if wasHome {
			sample.GoalsFor = item.Goals.Home
			sample.GoalsAgainst = item.Goals.Away
		} else {
			sample.GoalsFor = item.Goals.Away
			sample.GoalsAgainst = item.Goals.Home
		}
		out = append(out, sample)
	}

	return out, true, nil
}

// resolveIDs maps internal identifiers to provider ids. Unknown leagues
// and non-numeric team ids read as missing data rather than errors.
func (c *Client) resolveIDs(ctx context.Context, leagueID, teamID string) (int64, int64, bool) {
	leagueRef, ok := c.leagueRefIDs[leagueID]
	if !ok || leagueRef <= 0 {
		c.logger.DebugContext(ctx, "no provider mapping for league", "league_id", leagueID)
		return 0, 0, false
	}

	teamRef, err := strconv.ParseInt(strings.TrimSpace(teamID), 10, 64)
	if err != nil || teamRef <= 0 {
		c.logger.DebugContext(ctx, "team id is not a provider id", "team_id", teamID)
		return 0, 0, false
	}

	return leagueRef, teamRef, true
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "api-football circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: statistics provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errProviderTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode provider payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")
		req.Header.Set("x-apisports-key", c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errProviderTransient, c.redact(err.Error()))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errProviderTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errProviderTransient, resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * 500 * time.Millisecond
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "api-football request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) redact(value string) string {
	if c.token == "" {
		return value
	}
	return strings.ReplaceAll(value, c.token, "REDACTED")
}

func isRetryableStatus(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
