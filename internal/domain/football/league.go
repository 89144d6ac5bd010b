package football

type Country struct {
	Name string  `json:"name"`
	Code *string `json:"code"`
	Flag *string `json:"flag"`
}

type League struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	Logo          string  `json:"logo"`
	Country       string  `json:"country"`
	CountryCode   *string `json:"countryCode"`
	Seasons       []int   `json:"seasons"`
	CurrentSeason *int    `json:"currentSeason"`
}

// Standings holds every group of a league table flattened into one ordered slice.
type Standings struct {
	LeagueID int64         `json:"leagueId"`
	Season   int           `json:"season"`
	Rows     []StandingRow `json:"rows"`
}

type StandingRow struct {
	Rank      int     `json:"rank"`
	Group     string  `json:"group"`
	Team      TeamRef `json:"team"`
	Points    int     `json:"points"`
	GoalsDiff int     `json:"goalsDiff"`
	Played    int     `json:"played"`
	Won       int     `json:"won"`
	Draw      int     `json:"draw"`
	Lost      int     `json:"lost"`
	Form      string  `json:"form"`
}
