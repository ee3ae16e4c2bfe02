package fixture

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Fixture represents one scheduled match a prediction can be requested for.
type Fixture struct {
	ID           string
	LeagueID     string
	Gameweek     int
	HomeTeamID   string
	AwayTeamID   string
	HomeTeam     string
	AwayTeam     string
	FixtureRefID int64
	KickoffAt    time.Time
	Status       string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

// IsPredictable reports whether a prediction still makes sense for the
// fixture. Finished and abandoned matches are excluded; live ones are
// kept because pre-match predictions stay useful for grading.
func IsPredictable(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed, "ABANDONED":
		return false
	default:
		return true
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}
