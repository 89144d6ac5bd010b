package football

// Fixture is one match as returned by the fixtures endpoints.
type Fixture struct {
	FixtureID int64        `json:"fixtureId"`
	Date      string       `json:"date"`
	Venue     string       `json:"venue"`
	Home      FixtureTeam  `json:"home"`
	Away      FixtureTeam  `json:"away"`
	Score     FixtureScore `json:"score"`
	Status    string       `json:"status"`
}

// FixtureTeam carries the winner flag, which stays nil while the match is undecided.
type FixtureTeam struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo"`
	Winner *bool  `json:"winner"`
}

type FixtureScore struct {
	Fulltime ScorePair `json:"fulltime"`
	Halftime ScorePair `json:"halftime"`
}

type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type EventTime struct {
	Elapsed int  `json:"elapsed"`
	Extra   *int `json:"extra"`
}

type Event struct {
	Time     EventTime `json:"time"`
	Team     string    `json:"team"`
	Player   string    `json:"player"`
	Assist   *string   `json:"assist"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	Comments *string   `json:"comments"`
}

// Lineup players never carry demographics; the lineup endpoint does not expose them.
type Lineup struct {
	Team        string   `json:"team"`
	Formation   string   `json:"formation"`
	Coach       string   `json:"coach"`
	Lineup      []Player `json:"lineup"`
	Substitutes []Player `json:"substitutes"`
}

type FixtureStatistics struct {
	Team       TeamRef     `json:"team"`
	Statistics []Statistic `json:"statistics"`
}

type Statistic struct {
	Type  string  `json:"type"`
	Value *string `json:"value"`
}
