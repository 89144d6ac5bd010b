package football

import "context"

type LeagueFilter struct {
	Country string
	Season  int
}

// TransferFilter, TrophyFilter and VenueFilter each need at least one non-zero field.
type TransferFilter struct {
	TeamID   int64
	PlayerID int64
}

type TrophyFilter struct {
	TeamID   int64
	PlayerID int64
}

type VenueFilter struct {
	ID   int64
	Name string
}

// Provider is the sports statistics port implemented by external adapters.
type Provider interface {
	FixturesByDate(ctx context.Context, date string) ([]Fixture, error)
	Team(ctx context.Context, teamID int64) (Team, error)
	Standings(ctx context.Context, leagueID int64, season int) (Standings, error)
	Countries(ctx context.Context) ([]Country, error)
	Seasons(ctx context.Context) ([]int, error)
	Leagues(ctx context.Context, filter LeagueFilter) ([]League, error)
	TeamsByLeague(ctx context.Context, leagueID int64, season int) ([]Team, error)
	TeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (TeamStatistics, error)
	Squad(ctx context.Context, teamID int64) ([]Player, error)
	Player(ctx context.Context, playerID int64, season int) (Player, error)
	PlayerStats(ctx context.Context, playerID int64, season int) ([]PlayerStats, error)
	FixturesByTeam(ctx context.Context, teamID int64, season int, status string) ([]Fixture, error)
	FixturesByLeague(ctx context.Context, leagueID int64, from, to string) ([]Fixture, error)
	Fixture(ctx context.Context, fixtureID int64) (Fixture, error)
	FixtureEvents(ctx context.Context, fixtureID int64) ([]Event, error)
	FixtureLineups(ctx context.Context, fixtureID int64) ([]Lineup, error)
	FixtureStatistics(ctx context.Context, fixtureID int64) ([]FixtureStatistics, error)
	HeadToHead(ctx context.Context, teamID1, teamID2 int64) ([]Fixture, error)
	Injuries(ctx context.Context, teamID int64, season int) ([]Injury, error)
	Transfers(ctx context.Context, filter TransferFilter) ([]Transfer, error)
	Venues(ctx context.Context, filter VenueFilter) ([]Venue, error)
	Trophies(ctx context.Context, filter TrophyFilter) ([]Trophy, error)
	Coach(ctx context.Context, coachID int64) (Coach, error)
	Sidelined(ctx context.Context, teamID int64) ([]Sidelined, error)
}
