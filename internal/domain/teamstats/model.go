package teamstats

// SeasonStats aggregates a team's finished matches for one league season,
// split by venue. Goal counters are from the team's own perspective.
type SeasonStats struct {
	LeagueID string
	Season   int
	TeamID   string

	HomeMatches      int
	HomeGoalsFor     int
	HomeGoalsAgainst int

	AwayMatches      int
	AwayGoalsFor     int
	AwayGoalsAgainst int
}

func (s SeasonStats) TotalMatches() int {
	return s.HomeMatches + s.AwayMatches
}

// HomeScoredAvg is goals scored per home match, 0 when no home matches exist.
func (s SeasonStats) HomeScoredAvg() float64 {
	return ratio(s.HomeGoalsFor, s.HomeMatches)
}

func (s SeasonStats) HomeConcededAvg() float64 {
	return ratio(s.HomeGoalsAgainst, s.HomeMatches)
}

func (s SeasonStats) AwayScoredAvg() float64 {
	return ratio(s.AwayGoalsFor, s.AwayMatches)
}

func (s SeasonStats) AwayConcededAvg() float64 {
	return ratio(s.AwayGoalsAgainst, s.AwayMatches)
}

func ratio(goals, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return float64(goals) / float64(matches)
}

// FormSample is one recent finished match from the team's perspective,
// newest first in the slices repositories return.
type FormSample struct {
	FixtureID    string
	WasHome      bool
	GoalsFor     int
	GoalsAgainst int
}
