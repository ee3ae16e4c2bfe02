package prediction

// Outcome labels for the most probable single result.
const (
	OutcomeHome = "HOME"
	OutcomeDraw = "DRAW"
	OutcomeAway = "AWAY"
)

// Match profile tags summarizing the shape of a forecast.
const (
	ProfileGoalsGame    = "GOALS_GAME"
	ProfileHomeAndUnder = "HOME_AND_UNDER"
	ProfileBalancedBTTS = "BALANCED_BTTS"
	ProfileHighVariance = "HIGH_VARIANCE"
	ProfileStrongHome   = "STRONG_HOME"
	ProfileStrongAway   = "STRONG_AWAY"
	ProfileNeutral      = "NEUTRAL"
)

// Data quality flags.
const (
	FlagGoodData = "GOOD_DATA"
	FlagOKData   = "OK_DATA"
	FlagLowData  = "LOW_DATA"
)

// Confidence labels.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// Rate estimation modes. Degraded means at least one side's season
// statistics were unavailable and neutral priors were substituted.
const (
	ModeFullContext     = "FULL_CONTEXT"
	ModeDegradedDefault = "DEGRADED_DEFAULT"
)

// Scoreline holds the outcome and goal-market probabilities reduced
// from the joint scoreline table, each a percentage in [0,100].
type Scoreline struct {
	ProbHome float64
	ProbDraw float64
	ProbAway float64
	Over25   float64
	Under25  float64
	BTTSYes  float64
	BTTSNo   float64
}

// FormFactor is the multiplicative attack/defense adjustment derived
// from a team's recent matches.
type FormFactor struct {
	Attack      float64
	Defense     float64
	SampleCount int
}

// NeutralForm is the factor applied when no recent matches are known.
func NeutralForm() FormFactor {
	return FormFactor{Attack: 1, Defense: 1, SampleCount: 0}
}

// Context carries the evidence signals behind one prediction. All three
// quality signals are normalized into [0,1].
type Context struct {
	Mode string

	HomeTotalMatches int
	AwayTotalMatches int
	HomeRecentCount  int
	AwayRecentCount  int

	DataQuality  float64
	SampleSize   float64
	RecentFactor float64
}

// Confidence is the self-reported forecast confidence.
type Confidence struct {
	Percent int
	Label   string

	DataQuality  float64
	SampleSize   float64
	Clarity      float64
	RecentFactor float64
}

// Result is the complete forecast for one fixture.
type Result struct {
	FixtureID  string
	LeagueID   string
	HomeTeamID string
	AwayTeamID string

	LambdaHome float64
	LambdaAway float64

	Scoreline  Scoreline
	MainPick   string
	Confidence Confidence
	Profile    string
	DataFlag   string
	Mode       string
}

// MainPick returns the most probable single outcome. Ties resolve in
// the order HOME, DRAW, AWAY.
func MainPick(s Scoreline) string {
	pick := OutcomeHome
	best := s.ProbHome
	if s.ProbDraw > best {
		pick = OutcomeDraw
		best = s.ProbDraw
	}
	if s.ProbAway > best {
		pick = OutcomeAway
	}
	return pick
}
