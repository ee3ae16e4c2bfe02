package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/match-predictor/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/match-predictor/internal/platform/logging"
	"github.com/riskibarqy/match-predictor/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.NewNop()
	leagueRepo := memory.NewLeagueRepository(memory.SeedLeagues())
	fixtureRepo := memory.NewFixtureRepository(memory.SeedFixtures())
	statsSource := memory.NewTeamStatsSource(memory.SeedSeasonStats(), memory.SeedFormSamples())

	leagueService := usecase.NewLeagueService(leagueRepo, fixtureRepo)
	predictionService := usecase.NewPredictionService(leagueRepo, fixtureRepo, statsSource, logger)

	return NewRouter(NewHandler(leagueService, predictionService, logger), logger, []string{"*"})
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("unmarshal response body: %v", err)
		}
	}

	return rec, envelope
}

func dataObject(t *testing.T, envelope map[string]any) map[string]any {
	t.Helper()

	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}

	return data
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := dataObject(t, envelope)
	if data["status"] != "ok" {
		t.Fatalf("expected status=ok, got %v", data["status"])
	}
}

func TestRouter_ListLeagues(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := dataObject(t, envelope)
	items, ok := data["items"].([]any)
	if !ok {
		t.Fatalf("expected items array, got %v", data["items"])
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 leagues, got %d", len(items))
	}
}

func TestRouter_ListFixturesByLeague(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDPremierLeague+"/fixtures", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := dataObject(t, envelope)
	items, ok := data["items"].([]any)
	if !ok {
		t.Fatalf("expected items array, got %v", data["items"])
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 fixtures, got %d", len(items))
	}
}

func TestRouter_GetFixturePrediction(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDPremierLeague+"/fixtures/fx-eng-101/prediction", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := dataObject(t, envelope)
	if data["fixtureId"] != "fx-eng-101" {
		t.Fatalf("expected fixtureId=fx-eng-101, got %v", data["fixtureId"])
	}
	if data["mode"] != "FULL_CONTEXT" {
		t.Fatalf("expected FULL_CONTEXT mode, got %v", data["mode"])
	}

	probs, ok := data["probabilities"].(map[string]any)
	if !ok {
		t.Fatalf("expected probabilities object, got %v", data["probabilities"])
	}
	sum := probs["home"].(float64) + probs["draw"].(float64) + probs["away"].(float64)
	if sum < 99.0 || sum > 101.0 {
		t.Fatalf("expected probabilities to sum near 100, got %.2f", sum)
	}
}

func TestRouter_GetFixturePrediction_NotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDPremierLeague+"/fixtures/fx-missing/prediction", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}

	errorObj, ok := envelope["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error object, got %v", envelope)
	}
	if errorObj["status"] != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %v", errorObj["status"])
	}
}

func TestRouter_ListGameweekPredictions(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDPremierLeague+"/gameweeks/11/predictions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	data := dataObject(t, envelope)
	predictions, ok := data["predictions"].([]any)
	if !ok {
		t.Fatalf("expected predictions array, got %v", data["predictions"])
	}
	if len(predictions) != 2 {
		t.Fatalf("expected 2 predictions, got %d", len(predictions))
	}
	if got := data["skippedCount"].(float64); got != 1 {
		t.Fatalf("expected 1 skipped fixture, got %v", got)
	}
}

func TestRouter_ListGameweekPredictions_BadGameweek(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodGet, "/v1/leagues/"+memory.LeagueIDPremierLeague+"/gameweeks/zero/predictions", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestRouter_PredictMatchup(t *testing.T) {
	router := newTestRouter(t)

	body := `{"leagueId":"` + memory.LeagueIDPremierLeague + `","homeTeamId":"eng-liv","awayTeamId":"eng-che"}`
	rec, envelope := doRequest(t, router, http.MethodPost, "/v1/predictions", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	data := dataObject(t, envelope)
	requestID, _ := data["requestId"].(string)
	if !strings.HasPrefix(requestID, "pred_") {
		t.Fatalf("expected pred_ request id, got %q", requestID)
	}
	if data["homeTeamId"] != "eng-liv" || data["awayTeamId"] != "eng-che" {
		t.Fatalf("unexpected matchup teams: %v vs %v", data["homeTeamId"], data["awayTeamId"])
	}
	if data["mainPick"] == "" {
		t.Fatalf("expected a main pick")
	}
}

func TestRouter_PredictMatchup_Validation(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		name string
		body string
	}{
		{name: "missing away team", body: `{"leagueId":"` + memory.LeagueIDPremierLeague + `","homeTeamId":"eng-liv"}`},
		{name: "same team twice", body: `{"leagueId":"` + memory.LeagueIDPremierLeague + `","homeTeamId":"eng-liv","awayTeamId":"eng-liv"}`},
		{name: "unknown field", body: `{"leagueId":"x","homeTeamId":"a","awayTeamId":"b","bogus":true}`},
		{name: "malformed json", body: `{"leagueId":`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, _ := doRequest(t, router, http.MethodPost, "/v1/predictions", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
