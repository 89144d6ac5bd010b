package apifootball

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/matchday-mcp/external/upstream"
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/platform/resilience"
)

const (
	defaultBaseURL = "https://api-football-v1.p.rapidapi.com/v3"
	defaultHost    = "api-football-v1.p.rapidapi.com"
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	Host           string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Clock          clockwork.Clock
}

// Client implements football.Provider on top of API-Football v3 via RapidAPI.
// Every operation is one GET followed by a pure normalizer.
type Client struct {
	http   *upstream.Client
	logger *logging.Logger
}

var _ football.Provider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = defaultHost
	}
	apiKey := strings.TrimSpace(cfg.APIKey)

	return &Client{
		http: upstream.NewClient(upstream.ClientConfig{
			Service:    "apifootball",
			HTTPClient: cfg.HTTPClient,
			BaseURL:    baseURL,
			Headers: map[string]string{
				"X-RapidAPI-Key":  apiKey,
				"X-RapidAPI-Host": host,
				"Accept":          "application/json",
			},
			Secrets:        []string{apiKey},
			Timeout:        cfg.Timeout,
			Logger:         logger,
			CircuitBreaker: cfg.CircuitBreaker,
			Clock:          cfg.Clock,
		}),
		logger: logger.Named("apifootball"),
	}
}

func (c *Client) FixturesByDate(ctx context.Context, date string) ([]football.Fixture, error) {
	return fetch(ctx, c, "/fixtures", upstream.NewQuery().Set("date", date), normalizeFixtures)
}

func (c *Client) Team(ctx context.Context, teamID int64) (football.Team, error) {
	return fetch(ctx, c, "/teams", upstream.NewQuery().Int("id", teamID), normalizeTeam)
}

func (c *Client) Standings(ctx context.Context, leagueID int64, season int) (football.Standings, error) {
	query := upstream.NewQuery().Int("league", leagueID).Int("season", int64(season))
	return fetch(ctx, c, "/standings", query, normalizeStandings)
}

func (c *Client) Countries(ctx context.Context) ([]football.Country, error) {
	return fetch(ctx, c, "/countries", nil, normalizeCountries)
}

func (c *Client) Seasons(ctx context.Context) ([]int, error) {
	return fetch(ctx, c, "/leagues/seasons", nil, normalizeSeasons)
}

func (c *Client) Leagues(ctx context.Context, filter football.LeagueFilter) ([]football.League, error) {
	query := upstream.NewQuery().Set("country", filter.Country).Int("season", int64(filter.Season))
	return fetch(ctx, c, "/leagues", query, normalizeLeagues)
}

func (c *Client) TeamsByLeague(ctx context.Context, leagueID int64, season int) ([]football.Team, error) {
	query := upstream.NewQuery().Int("league", leagueID).Int("season", int64(season))
	return fetch(ctx, c, "/teams", query, normalizeTeams)
}

func (c *Client) TeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (football.TeamStatistics, error) {
	query := upstream.NewQuery().Int("league", leagueID).Int("season", int64(season)).Int("team", teamID)
	return fetch(ctx, c, "/teams/statistics", query, normalizeTeamStatistics)
}

func (c *Client) Squad(ctx context.Context, teamID int64) ([]football.Player, error) {
	return fetch(ctx, c, "/players/squads", upstream.NewQuery().Int("team", teamID), normalizeSquad)
}

func (c *Client) Player(ctx context.Context, playerID int64, season int) (football.Player, error) {
	query := upstream.NewQuery().Int("id", playerID).Int("season", int64(season))
	return fetch(ctx, c, "/players", query, normalizePlayer)
}

func (c *Client) PlayerStats(ctx context.Context, playerID int64, season int) ([]football.PlayerStats, error) {
	query := upstream.NewQuery().Int("id", playerID).Int("season", int64(season))
	return fetch(ctx, c, "/players", query, normalizePlayerStats)
}

func (c *Client) FixturesByTeam(ctx context.Context, teamID int64, season int, status string) ([]football.Fixture, error) {
	query := upstream.NewQuery().Int("team", teamID).Int("season", int64(season)).Set("status", status)
	return fetch(ctx, c, "/fixtures", query, normalizeFixtures)
}

func (c *Client) FixturesByLeague(ctx context.Context, leagueID int64, from, to string) ([]football.Fixture, error) {
	query := upstream.NewQuery().Int("league", leagueID).Set("from", from).Set("to", to)
	return fetch(ctx, c, "/fixtures", query, normalizeFixtures)
}

func (c *Client) Fixture(ctx context.Context, fixtureID int64) (football.Fixture, error) {
	return fetch(ctx, c, "/fixtures", upstream.NewQuery().Int("id", fixtureID), normalizeFixtureDetails)
}

func (c *Client) FixtureEvents(ctx context.Context, fixtureID int64) ([]football.Event, error) {
	return fetch(ctx, c, "/fixtures/events", upstream.NewQuery().Int("fixture", fixtureID), normalizeEvents)
}

func (c *Client) FixtureLineups(ctx context.Context, fixtureID int64) ([]football.Lineup, error) {
	return fetch(ctx, c, "/fixtures/lineups", upstream.NewQuery().Int("fixture", fixtureID), normalizeLineups)
}

func (c *Client) FixtureStatistics(ctx context.Context, fixtureID int64) ([]football.FixtureStatistics, error) {
	return fetch(ctx, c, "/fixtures/statistics", upstream.NewQuery().Int("fixture", fixtureID), normalizeFixtureStatistics)
}

func (c *Client) HeadToHead(ctx context.Context, teamID1, teamID2 int64) ([]football.Fixture, error) {
	h2h := strconv.FormatInt(teamID1, 10) + "-" + strconv.FormatInt(teamID2, 10)
	return fetch(ctx, c, "/fixtures/headtohead", upstream.NewQuery().Set("h2h", h2h), normalizeFixtures)
}

func (c *Client) Injuries(ctx context.Context, teamID int64, season int) ([]football.Injury, error) {
	query := upstream.NewQuery().Int("team", teamID).Int("season", int64(season))
	return fetch(ctx, c, "/injuries", query, normalizeInjuries)
}

func (c *Client) Transfers(ctx context.Context, filter football.TransferFilter) ([]football.Transfer, error) {
	query := upstream.NewQuery().Int("team", filter.TeamID).Int("player", filter.PlayerID)
	return fetch(ctx, c, "/transfers", query, normalizeTransfers)
}

func (c *Client) Venues(ctx context.Context, filter football.VenueFilter) ([]football.Venue, error) {
	query := upstream.NewQuery().Int("id", filter.ID).Set("name", filter.Name)
	return fetch(ctx, c, "/venues", query, normalizeVenues)
}

func (c *Client) Trophies(ctx context.Context, filter football.TrophyFilter) ([]football.Trophy, error) {
	query := upstream.NewQuery().Int("team", filter.TeamID).Int("player", filter.PlayerID)
	return fetch(ctx, c, "/trophies", query, normalizeTrophies)
}

func (c *Client) Coach(ctx context.Context, coachID int64) (football.Coach, error) {
	return fetch(ctx, c, "/coachs", upstream.NewQuery().Int("id", coachID), normalizeCoach)
}

func (c *Client) Sidelined(ctx context.Context, teamID int64) ([]football.Sidelined, error) {
	return fetch(ctx, c, "/sidelined", upstream.NewQuery().Int("team", teamID), normalizeSidelined)
}

func fetch[T any](ctx context.Context, c *Client, path string, query *upstream.Query, normalize func(any) (T, error)) (T, error) {
	var zero T

	_, root, err := c.http.GetJSON(ctx, path, query)
	if err != nil {
		return zero, err
	}
	if err := envelopeError(root); err != nil {
		c.logger.WarnContext(ctx, "provider rejected request", "path", path, "error", err)
		return zero, err
	}

	out, err := normalize(root)
	if err != nil {
		c.logger.WarnContext(ctx, "normalize provider payload failed", "path", path, "error", err)
		return zero, err
	}
	return out, nil
}
