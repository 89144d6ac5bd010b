package football

// TeamRef is the compact team shape embedded in standings and statistics.
type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

// Ref is an id/name pair used for players and clubs inside transfer and injury records.
type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Team struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Country  string `json:"country"`
	Founded  *int   `json:"founded"`
	National bool   `json:"national"`
	Logo     string `json:"logo"`
}

type TeamStatistics struct {
	LeagueID     int64  `json:"leagueId"`
	Season       int    `json:"season"`
	TeamID       int64  `json:"teamId"`
	Form         string `json:"form"`
	Played       int    `json:"played"`
	Won          int    `json:"won"`
	Draw         int    `json:"draw"`
	Lost         int    `json:"lost"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
}

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Capacity int    `json:"capacity"`
	Surface  string `json:"surface"`
	Image    string `json:"image"`
}

type Trophy struct {
	League  string `json:"league"`
	Country string `json:"country"`
	Season  string `json:"season"`
	Place   string `json:"place"`
}

const (
	PlaceWinner   = "Winner"
	PlaceRunnerUp = "Runner-up"
)

type Coach struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Age         *int          `json:"age"`
	Nationality string        `json:"nationality"`
	Photo       string        `json:"photo"`
	Career      []CareerEntry `json:"career"`
}

// CareerEntry.End is CareerPresent for the current post.
type CareerEntry struct {
	Team  string `json:"team"`
	Start string `json:"start"`
	End   string `json:"end"`
}

const CareerPresent = "Present"
