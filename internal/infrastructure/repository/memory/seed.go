package memory

import (
	"time"

	"github.com/riskibarqy/match-predictor/internal/domain/fixture"
	"github.com/riskibarqy/match-predictor/internal/domain/league"
	"github.com/riskibarqy/match-predictor/internal/domain/teamstats"
)

const (
	LeagueIDPremierLeague = "eng-premier-league"
	LeagueIDLiga1         = "idn-liga-1"

	seedSeason = 2025
)

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDPremierLeague,
			Name:        "Premier League",
			CountryCode: "GB",
			Season:      seedSeason,
			IsDefault:   true,
			LeagueRefID: 39,
		},
		{
			ID:          LeagueIDLiga1,
			Name:        "Liga 1 Indonesia",
			CountryCode: "ID",
			Season:      seedSeason,
			LeagueRefID: 274,
		},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{
			ID:         "fx-eng-101",
			LeagueID:   LeagueIDPremierLeague,
			Gameweek:   11,
			HomeTeamID: "eng-ars",
			AwayTeamID: "eng-che",
			HomeTeam:   "Arsenal",
			AwayTeam:   "Chelsea",
			KickoffAt:  time.Date(2025, 11, 8, 15, 0, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-eng-102",
			LeagueID:   LeagueIDPremierLeague,
			Gameweek:   11,
			HomeTeamID: "eng-liv",
			AwayTeamID: "eng-mun",
			HomeTeam:   "Liverpool",
			AwayTeam:   "Manchester United",
			KickoffAt:  time.Date(2025, 11, 8, 17, 30, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
		{
			ID:         "fx-eng-103",
			LeagueID:   LeagueIDPremierLeague,
			Gameweek:   11,
			HomeTeamID: "eng-bou",
			AwayTeamID: "eng-new",
			HomeTeam:   "Bournemouth",
			AwayTeam:   "Newcastle United",
			KickoffAt:  time.Date(2025, 11, 9, 14, 0, 0, 0, time.UTC),
			Status:     fixture.StatusPostponed,
		},
		{
			ID:         "fx-idn-201",
			LeagueID:   LeagueIDLiga1,
			Gameweek:   5,
			HomeTeamID: "idn-persija",
			AwayTeamID: "idn-persib",
			HomeTeam:   "Persija Jakarta",
			AwayTeam:   "Persib Bandung",
			KickoffAt:  time.Date(2025, 11, 9, 12, 30, 0, 0, time.UTC),
			Status:     fixture.StatusScheduled,
		},
	}
}

// SeedSeasonStats covers the teams of the seeded fixtures, leaving a
// pair without data so the degraded path stays reachable in dev.
func SeedSeasonStats() []teamstats.SeasonStats {
	return []teamstats.SeasonStats{
		{
			LeagueID: LeagueIDPremierLeague, Season: seedSeason, TeamID: "eng-ars",
			HomeMatches: 5, HomeGoalsFor: 11, HomeGoalsAgainst: 3,
			AwayMatches: 5, AwayGoalsFor: 8, AwayGoalsAgainst: 5,
		},
		{
			LeagueID: LeagueIDPremierLeague, Season: seedSeason, TeamID: "eng-che",
			HomeMatches: 5, HomeGoalsFor: 9, HomeGoalsAgainst: 6,
			AwayMatches: 5, AwayGoalsFor: 6, AwayGoalsAgainst: 7,
		},
		{
			LeagueID: LeagueIDPremierLeague, Season: seedSeason, TeamID: "eng-liv",
			HomeMatches: 5, HomeGoalsFor: 12, HomeGoalsAgainst: 4,
			AwayMatches: 5, AwayGoalsFor: 9, AwayGoalsAgainst: 6,
		},
		{
			LeagueID: LeagueIDPremierLeague, Season: seedSeason, TeamID: "eng-mun",
			HomeMatches: 5, HomeGoalsFor: 7, HomeGoalsAgainst: 7,
			AwayMatches: 5, AwayGoalsFor: 5, AwayGoalsAgainst: 9,
		},
	}
}

func SeedFormSamples() map[string][]teamstats.FormSample {
	return map[string][]teamstats.FormSample{
		"eng-ars": {
			{FixtureID: "fx-eng-091", WasHome: true, GoalsFor: 3, GoalsAgainst: 1},
			{FixtureID: "fx-eng-082", WasHome: false, GoalsFor: 1, GoalsAgainst: 1},
			{FixtureID: "fx-eng-073", WasHome: true, GoalsFor: 2, GoalsAgainst: 0},
			{FixtureID: "fx-eng-064", WasHome: false, GoalsFor: 2, GoalsAgainst: 2},
			{FixtureID: "fx-eng-055", WasHome: true, GoalsFor: 1, GoalsAgainst: 0},
		},
		"eng-che": {
			{FixtureID: "fx-eng-092", WasHome: false, GoalsFor: 0, GoalsAgainst: 2},
			{FixtureID: "fx-eng-083", WasHome: true, GoalsFor: 2, GoalsAgainst: 1},
			{FixtureID: "fx-eng-074", WasHome: false, GoalsFor: 1, GoalsAgainst: 3},
		},
		"eng-liv": {
			{FixtureID: "fx-eng-093", WasHome: true, GoalsFor: 2, GoalsAgainst: 1},
			{FixtureID: "fx-eng-084", WasHome: false, GoalsFor: 3, GoalsAgainst: 1},
			{FixtureID: "fx-eng-075", WasHome: true, GoalsFor: 2, GoalsAgainst: 2},
			{FixtureID: "fx-eng-066", WasHome: false, GoalsFor: 1, GoalsAgainst: 0},
			{FixtureID: "fx-eng-057", WasHome: true, GoalsFor: 4, GoalsAgainst: 1},
		},
		"eng-mun": {
			{FixtureID: "fx-eng-094", WasHome: false, GoalsFor: 1, GoalsAgainst: 2},
			{FixtureID: "fx-eng-085", WasHome: true, GoalsFor: 1, GoalsAgainst: 1},
		},
	}
}
