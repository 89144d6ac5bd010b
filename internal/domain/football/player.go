package football

// Player fields that an endpoint does not provide are nil and serialize as null.
type Player struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Age         *int    `json:"age"`
	Nationality *string `json:"nationality"`
	Height      *string `json:"height"`
	Weight      *string `json:"weight"`
	Photo       string  `json:"photo"`
	Number      *int    `json:"number"`
	Position    *string `json:"position"`
}

// PlayerStats is one league/team line of a player's season. Assists defaults to 0.
type PlayerStats struct {
	League      string  `json:"league"`
	Team        string  `json:"team"`
	GamesPlayed *int    `json:"gamesPlayed"`
	Goals       *int    `json:"goals"`
	Assists     int     `json:"assists"`
	Yellow      *int    `json:"yellow"`
	Red         *int    `json:"red"`
	Rating      *string `json:"rating"`
}

type Injury struct {
	Player         Ref     `json:"player"`
	Type           string  `json:"type"`
	Detail         string  `json:"detail"`
	Since          *string `json:"since"`
	ExpectedReturn *string `json:"expectedReturn"`
}

type Sidelined struct {
	Player         Ref     `json:"player"`
	Type           string  `json:"type"`
	Detail         string  `json:"detail"`
	Since          *string `json:"since"`
	ExpectedReturn *string `json:"expectedReturn"`
}

const (
	SidelinedSuspension = "Suspension"
	SidelinedOther      = "Other"
)

type Transfer struct {
	Player Ref    `json:"player"`
	From   Ref    `json:"from"`
	To     Ref    `json:"to"`
	Date   string `json:"date"`
	Type   string `json:"type"`
}
