package mcpapi

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
)

type emptyArgs struct{}

type getFixturesByDateArgs struct {
	Date string `json:"date" jsonschema:"Match date in YYYY-MM-DD format" validate:"required,datetime=2006-01-02"`
}

type teamArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"API-Football team id" validate:"gt=0"`
}

type leagueSeasonArgs struct {
	LeagueID int64 `json:"leagueId" jsonschema:"API-Football league id" validate:"gt=0"`
	Season   int   `json:"season" jsonschema:"Season start year (e.g. 2023)" validate:"gte=1900,lte=2100"`
}

type listLeaguesArgs struct {
	Country *string `json:"country,omitempty" jsonschema:"Country name filter (e.g. England)" validate:"omitempty,min=1,max=100"`
	Season  *int    `json:"season,omitempty" jsonschema:"Season start year filter" validate:"omitempty,gte=1900,lte=2100"`
}

type getTeamStatisticsArgs struct {
	LeagueID int64 `json:"leagueId" jsonschema:"API-Football league id" validate:"gt=0"`
	Season   int   `json:"season" jsonschema:"Season start year (e.g. 2023)" validate:"gte=1900,lte=2100"`
	TeamID   int64 `json:"teamId" jsonschema:"API-Football team id" validate:"gt=0"`
}

type getPlayerArgs struct {
	PlayerID int64 `json:"playerId" jsonschema:"API-Football player id" validate:"gt=0"`
	Season   *int  `json:"season,omitempty" jsonschema:"Season start year; defaults to the provider's current season" validate:"omitempty,gte=1900,lte=2100"`
}

type getPlayerStatsArgs struct {
	PlayerID int64 `json:"playerId" jsonschema:"API-Football player id" validate:"gt=0"`
	Season   int   `json:"season" jsonschema:"Season start year (e.g. 2023)" validate:"gte=1900,lte=2100"`
}

type getFixturesByTeamArgs struct {
	TeamID int64   `json:"teamId" jsonschema:"API-Football team id" validate:"gt=0"`
	Season int     `json:"season" jsonschema:"Season start year (e.g. 2023)" validate:"gte=1900,lte=2100"`
	Status *string `json:"status,omitempty" jsonschema:"Fixture status short code filter (e.g. FT, NS)" validate:"omitempty,min=1,max=10"`
}

type getFixturesByLeagueArgs struct {
	LeagueID int64  `json:"leagueId" jsonschema:"API-Football league id" validate:"gt=0"`
	From     string `json:"from" jsonschema:"First match date in YYYY-MM-DD format" validate:"required,datetime=2006-01-02"`
	To       string `json:"to" jsonschema:"Last match date in YYYY-MM-DD format" validate:"required,datetime=2006-01-02"`
}

type fixtureArgs struct {
	FixtureID int64 `json:"fixtureId" jsonschema:"API-Football fixture id" validate:"gt=0"`
}

type getHeadToHeadArgs struct {
	TeamID1 int64 `json:"teamId1" jsonschema:"First team id" validate:"gt=0"`
	TeamID2 int64 `json:"teamId2" jsonschema:"Second team id" validate:"gt=0,nefield=TeamID1"`
}

type getInjuriesArgs struct {
	TeamID int64 `json:"teamId" jsonschema:"API-Football team id" validate:"gt=0"`
	Season *int  `json:"season,omitempty" jsonschema:"Season start year filter" validate:"omitempty,gte=1900,lte=2100"`
}

type teamOrPlayerArgs struct {
	TeamID   *int64 `json:"teamId,omitempty" jsonschema:"Team id (required if playerId not provided)" validate:"omitempty,gt=0"`
	PlayerID *int64 `json:"playerId,omitempty" jsonschema:"Player id (required if teamId not provided)" validate:"omitempty,gt=0"`
}

type getVenuesArgs struct {
	ID   *int64  `json:"id,omitempty" jsonschema:"Venue id (required if name not provided)" validate:"omitempty,gt=0"`
	Name *string `json:"name,omitempty" jsonschema:"Venue name (required if id not provided)" validate:"omitempty,min=1,max=100"`
}

type getCoachArgs struct {
	CoachID int64 `json:"coachId" jsonschema:"API-Football coach id" validate:"gt=0"`
}

func (s *Server) registerFootballTools() {
	addTool(s, "get-fixtures-by-date", "List all fixtures played on a date", s.getFixturesByDate)
	addTool(s, "get-team", "Get team details by id", s.getTeam)
	addTool(s, "get-standings", "Get league standings for a season", s.getStandings)
	addTool(s, "list-countries", "List countries covered by the football provider", s.listCountries)
	addTool(s, "list-seasons", "List available seasons", s.listSeasons)
	addTool(s, "list-leagues", "List leagues, optionally filtered by country and season", s.listLeagues)
	addTool(s, "list-teams", "List teams in a league season", s.listTeams)
	addTool(s, "get-team-statistics", "Get a team's statistics for a league season", s.getTeamStatistics)
	addTool(s, "get-squad", "Get a team's current squad", s.getSquad)
	addTool(s, "get-player", "Get player details", s.getPlayer)
	addTool(s, "get-player-stats", "Get a player's statistics per league and team for a season", s.getPlayerStats)
	addTool(s, "get-fixtures-by-team", "List a team's fixtures for a season", s.getFixturesByTeam)
	addTool(s, "get-fixtures-by-league", "List a league's fixtures between two dates", s.getFixturesByLeague)
	addTool(s, "get-fixture-details", "Get a single fixture", s.getFixtureDetails)
	addTool(s, "get-fixture-events", "List goals, cards and substitutions of a fixture", s.getFixtureEvents)
	addTool(s, "get-fixture-lineups", "Get the lineups of a fixture", s.getFixtureLineups)
	addTool(s, "get-fixture-statistics", "Get per-team statistics of a fixture", s.getFixtureStatistics)
	addTool(s, "get-head-to-head", "List fixtures between two teams", s.getHeadToHead)
	addTool(s, "get-injuries", "List injured players of a team", s.getInjuries)
	addTool(s, "get-transfers", "List transfers of a team or player", s.getTransfers)
	addTool(s, "get-venues", "Find venues by id or name", s.getVenues)
	addTool(s, "get-trophies", "List trophies of a team or player", s.getTrophies)
	addTool(s, "get-coach", "Get coach details and career", s.getCoach)
	addTool(s, "get-sidelined", "List sidelined periods for a team's players", s.getSidelined)
}

func (s *Server) getFixturesByDate(ctx context.Context, args getFixturesByDateArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixturesByDate(ctx, args.Date))
}

func (s *Server) getTeam(ctx context.Context, args teamArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetTeam(ctx, args.TeamID))
}

func (s *Server) getStandings(ctx context.Context, args leagueSeasonArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetStandings(ctx, args.LeagueID, args.Season))
}

func (s *Server) listCountries(ctx context.Context, _ emptyArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.ListCountries(ctx))
}

func (s *Server) listSeasons(ctx context.Context, _ emptyArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.ListSeasons(ctx))
}

func (s *Server) listLeagues(ctx context.Context, args listLeaguesArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.ListLeagues(ctx, football.LeagueFilter{
		Country: valueOf(args.Country),
		Season:  valueOf(args.Season),
	}))
}

func (s *Server) listTeams(ctx context.Context, args leagueSeasonArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.ListTeams(ctx, args.LeagueID, args.Season))
}

func (s *Server) getTeamStatistics(ctx context.Context, args getTeamStatisticsArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetTeamStatistics(ctx, args.LeagueID, args.Season, args.TeamID))
}

func (s *Server) getSquad(ctx context.Context, args teamArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetSquad(ctx, args.TeamID))
}

func (s *Server) getPlayer(ctx context.Context, args getPlayerArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetPlayer(ctx, args.PlayerID, valueOf(args.Season)))
}

func (s *Server) getPlayerStats(ctx context.Context, args getPlayerStatsArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetPlayerStats(ctx, args.PlayerID, args.Season))
}

func (s *Server) getFixturesByTeam(ctx context.Context, args getFixturesByTeamArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixturesByTeam(ctx, args.TeamID, args.Season, valueOf(args.Status)))
}

func (s *Server) getFixturesByLeague(ctx context.Context, args getFixturesByLeagueArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixturesByLeague(ctx, args.LeagueID, args.From, args.To))
}

func (s *Server) getFixtureDetails(ctx context.Context, args fixtureArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixtureDetails(ctx, args.FixtureID))
}

func (s *Server) getFixtureEvents(ctx context.Context, args fixtureArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixtureEvents(ctx, args.FixtureID))
}

func (s *Server) getFixtureLineups(ctx context.Context, args fixtureArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixtureLineups(ctx, args.FixtureID))
}

func (s *Server) getFixtureStatistics(ctx context.Context, args fixtureArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetFixtureStatistics(ctx, args.FixtureID))
}

func (s *Server) getHeadToHead(ctx context.Context, args getHeadToHeadArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetHeadToHead(ctx, args.TeamID1, args.TeamID2))
}

func (s *Server) getInjuries(ctx context.Context, args getInjuriesArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetInjuries(ctx, args.TeamID, valueOf(args.Season)))
}

func (s *Server) getTransfers(ctx context.Context, args teamOrPlayerArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetTransfers(ctx, football.TransferFilter{
		TeamID:   valueOf(args.TeamID),
		PlayerID: valueOf(args.PlayerID),
	}))
}

func (s *Server) getVenues(ctx context.Context, args getVenuesArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetVenues(ctx, football.VenueFilter{
		ID:   valueOf(args.ID),
		Name: valueOf(args.Name),
	}))
}

func (s *Server) getTrophies(ctx context.Context, args teamOrPlayerArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetTrophies(ctx, football.TrophyFilter{
		TeamID:   valueOf(args.TeamID),
		PlayerID: valueOf(args.PlayerID),
	}))
}

func (s *Server) getCoach(ctx context.Context, args getCoachArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetCoach(ctx, args.CoachID))
}

func (s *Server) getSidelined(ctx context.Context, args teamArgs) (*mcp.CallToolResult, error) {
	return jsonResult(s.football.GetSidelined(ctx, args.TeamID))
}

func jsonResult[T any](payload T, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return nil, err
	}
	return toolJSON(payload)
}

func valueOf[T any](ptr *T) T {
	var zero T
	if ptr == nil {
		return zero
	}
	return *ptr
}
