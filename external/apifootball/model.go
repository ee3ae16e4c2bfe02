package apifootball

type homeAwayInt struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

type teamStatisticsEnvelope struct {
	Response struct {
		Fixtures struct {
			Played homeAwayInt `json:"played"`
		} `json:"fixtures"`
		Goals struct {
			For struct {
				Total homeAwayInt `json:"total"`
			} `json:"for"`
			Against struct {
				Total homeAwayInt `json:"total"`
			} `json:"against"`
		} `json:"goals"`
	} `json:"response"`
}

type fixtureListEnvelope struct {
	Response []struct {
		Fixture struct {
			ID int64 `json:"id"`
		} `json:"fixture"`
		Teams struct {
			Home struct {
				ID int64 `json:"id"`
			} `json:"home"`
			Away struct {
				ID int64 `json:"id"`
			} `json:"away"`
		} `json:"teams"`
		Goals homeAwayInt `json:"goals"`
	} `json:"response"`
}
