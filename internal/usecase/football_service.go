package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"go.opentelemetry.io/otel/attribute"
)

const dateLayout = "2006-01-02"

// FootballService is the single entry point for sports statistics lookups.
type FootballService struct {
	provider football.Provider
}

func NewFootballService(provider football.Provider) *FootballService {
	return &FootballService{provider: provider}
}

func (s *FootballService) GetFixturesByDate(ctx context.Context, date string) ([]football.Fixture, error) {
	date = strings.TrimSpace(date)
	if err := validateDate("date", date); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetFixturesByDate", func(ctx context.Context) ([]football.Fixture, error) {
		items, err := s.provider.FixturesByDate(ctx, date)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by date: %w", err)
		}
		return items, nil
	}, attribute.String("football.date", date))
}

func (s *FootballService) GetTeam(ctx context.Context, teamID int64) (football.Team, error) {
	if err := validateID("teamId", teamID); err != nil {
		return football.Team{}, err
	}
	return traced(ctx, "usecase.FootballService.GetTeam", func(ctx context.Context) (football.Team, error) {
		item, err := s.provider.Team(ctx, teamID)
		if err != nil {
			return football.Team{}, fmt.Errorf("get team: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.team_id", teamID))
}

func (s *FootballService) GetStandings(ctx context.Context, leagueID int64, season int) (football.Standings, error) {
	if err := validateID("leagueId", leagueID); err != nil {
		return football.Standings{}, err
	}
	if err := validateSeason(season); err != nil {
		return football.Standings{}, err
	}
	return traced(ctx, "usecase.FootballService.GetStandings", func(ctx context.Context) (football.Standings, error) {
		item, err := s.provider.Standings(ctx, leagueID, season)
		if err != nil {
			return football.Standings{}, fmt.Errorf("get standings: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.league_id", leagueID), attribute.Int("football.season", season))
}

func (s *FootballService) ListCountries(ctx context.Context) ([]football.Country, error) {
	return traced(ctx, "usecase.FootballService.ListCountries", func(ctx context.Context) ([]football.Country, error) {
		items, err := s.provider.Countries(ctx)
		if err != nil {
			return nil, fmt.Errorf("list countries: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) ListSeasons(ctx context.Context) ([]int, error) {
	return traced(ctx, "usecase.FootballService.ListSeasons", func(ctx context.Context) ([]int, error) {
		items, err := s.provider.Seasons(ctx)
		if err != nil {
			return nil, fmt.Errorf("list seasons: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) ListLeagues(ctx context.Context, filter football.LeagueFilter) ([]football.League, error) {
	filter.Country = strings.TrimSpace(filter.Country)
	if filter.Season != 0 {
		if err := validateSeason(filter.Season); err != nil {
			return nil, err
		}
	}
	return traced(ctx, "usecase.FootballService.ListLeagues", func(ctx context.Context) ([]football.League, error) {
		items, err := s.provider.Leagues(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list leagues: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) ListTeams(ctx context.Context, leagueID int64, season int) ([]football.Team, error) {
	if err := validateID("leagueId", leagueID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.ListTeams", func(ctx context.Context) ([]football.Team, error) {
		items, err := s.provider.TeamsByLeague(ctx, leagueID, season)
		if err != nil {
			return nil, fmt.Errorf("list teams by league: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.league_id", leagueID), attribute.Int("football.season", season))
}

func (s *FootballService) GetTeamStatistics(ctx context.Context, leagueID int64, season int, teamID int64) (football.TeamStatistics, error) {
	if err := validateID("leagueId", leagueID); err != nil {
		return football.TeamStatistics{}, err
	}
	if err := validateSeason(season); err != nil {
		return football.TeamStatistics{}, err
	}
	if err := validateID("teamId", teamID); err != nil {
		return football.TeamStatistics{}, err
	}
	return traced(ctx, "usecase.FootballService.GetTeamStatistics", func(ctx context.Context) (football.TeamStatistics, error) {
		item, err := s.provider.TeamStatistics(ctx, leagueID, season, teamID)
		if err != nil {
			return football.TeamStatistics{}, fmt.Errorf("get team statistics: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.team_id", teamID))
}

func (s *FootballService) GetSquad(ctx context.Context, teamID int64) ([]football.Player, error) {
	if err := validateID("teamId", teamID); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetSquad", func(ctx context.Context) ([]football.Player, error) {
		items, err := s.provider.Squad(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("get squad: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.team_id", teamID))
}

// GetPlayer looks up a player profile. A zero season lets the provider pick its default.
func (s *FootballService) GetPlayer(ctx context.Context, playerID int64, season int) (football.Player, error) {
	if err := validateID("playerId", playerID); err != nil {
		return football.Player{}, err
	}
	if season != 0 {
		if err := validateSeason(season); err != nil {
			return football.Player{}, err
		}
	}
	return traced(ctx, "usecase.FootballService.GetPlayer", func(ctx context.Context) (football.Player, error) {
		item, err := s.provider.Player(ctx, playerID, season)
		if err != nil {
			return football.Player{}, fmt.Errorf("get player: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.player_id", playerID))
}

func (s *FootballService) GetPlayerStats(ctx context.Context, playerID int64, season int) ([]football.PlayerStats, error) {
	if err := validateID("playerId", playerID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetPlayerStats", func(ctx context.Context) ([]football.PlayerStats, error) {
		items, err := s.provider.PlayerStats(ctx, playerID, season)
		if err != nil {
			return nil, fmt.Errorf("get player stats: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.player_id", playerID), attribute.Int("football.season", season))
}

func (s *FootballService) GetFixturesByTeam(ctx context.Context, teamID int64, season int, status string) ([]football.Fixture, error) {
	if err := validateID("teamId", teamID); err != nil {
		return nil, err
	}
	if err := validateSeason(season); err != nil {
		return nil, err
	}
	status = strings.ToUpper(strings.TrimSpace(status))
	return traced(ctx, "usecase.FootballService.GetFixturesByTeam", func(ctx context.Context) ([]football.Fixture, error) {
		items, err := s.provider.FixturesByTeam(ctx, teamID, season, status)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by team: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.team_id", teamID), attribute.Int("football.season", season))
}

func (s *FootballService) GetFixturesByLeague(ctx context.Context, leagueID int64, from, to string) ([]football.Fixture, error) {
	if err := validateID("leagueId", leagueID); err != nil {
		return nil, err
	}
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if err := validateDate("from", from); err != nil {
		return nil, err
	}
	if err := validateDate("to", to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}
	return traced(ctx, "usecase.FootballService.GetFixturesByLeague", func(ctx context.Context) ([]football.Fixture, error) {
		items, err := s.provider.FixturesByLeague(ctx, leagueID, from, to)
		if err != nil {
			return nil, fmt.Errorf("list fixtures by league: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.league_id", leagueID))
}

func (s *FootballService) GetFixtureDetails(ctx context.Context, fixtureID int64) (football.Fixture, error) {
	if err := validateID("fixtureId", fixtureID); err != nil {
		return football.Fixture{}, err
	}
	return traced(ctx, "usecase.FootballService.GetFixtureDetails", func(ctx context.Context) (football.Fixture, error) {
		item, err := s.provider.Fixture(ctx, fixtureID)
		if err != nil {
			return football.Fixture{}, fmt.Errorf("get fixture: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.fixture_id", fixtureID))
}

func (s *FootballService) GetFixtureEvents(ctx context.Context, fixtureID int64) ([]football.Event, error) {
	if err := validateID("fixtureId", fixtureID); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetFixtureEvents", func(ctx context.Context) ([]football.Event, error) {
		items, err := s.provider.FixtureEvents(ctx, fixtureID)
		if err != nil {
			return nil, fmt.Errorf("list fixture events: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.fixture_id", fixtureID))
}

func (s *FootballService) GetFixtureLineups(ctx context.Context, fixtureID int64) ([]football.Lineup, error) {
	if err := validateID("fixtureId", fixtureID); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetFixtureLineups", func(ctx context.Context) ([]football.Lineup, error) {
		items, err := s.provider.FixtureLineups(ctx, fixtureID)
		if err != nil {
			return nil, fmt.Errorf("list fixture lineups: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.fixture_id", fixtureID))
}

func (s *FootballService) GetFixtureStatistics(ctx context.Context, fixtureID int64) ([]football.FixtureStatistics, error) {
	if err := validateID("fixtureId", fixtureID); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetFixtureStatistics", func(ctx context.Context) ([]football.FixtureStatistics, error) {
		items, err := s.provider.FixtureStatistics(ctx, fixtureID)
		if err != nil {
			return nil, fmt.Errorf("list fixture statistics: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.fixture_id", fixtureID))
}

func (s *FootballService) GetHeadToHead(ctx context.Context, teamID1, teamID2 int64) ([]football.Fixture, error) {
	if err := validateID("teamId1", teamID1); err != nil {
		return nil, err
	}
	if err := validateID("teamId2", teamID2); err != nil {
		return nil, err
	}
	if teamID1 == teamID2 {
		return nil, fmt.Errorf("%w: teamId1 and teamId2 must differ", ErrInvalidInput)
	}
	return traced(ctx, "usecase.FootballService.GetHeadToHead", func(ctx context.Context) ([]football.Fixture, error) {
		items, err := s.provider.HeadToHead(ctx, teamID1, teamID2)
		if err != nil {
			return nil, fmt.Errorf("list head to head fixtures: %w", err)
		}
		return items, nil
	})
}

// GetInjuries lists injured players. A zero season is omitted from the upstream query.
func (s *FootballService) GetInjuries(ctx context.Context, teamID int64, season int) ([]football.Injury, error) {
	if err := validateID("teamId", teamID); err != nil {
		return nil, err
	}
	if season != 0 {
		if err := validateSeason(season); err != nil {
			return nil, err
		}
	}
	return traced(ctx, "usecase.FootballService.GetInjuries", func(ctx context.Context) ([]football.Injury, error) {
		items, err := s.provider.Injuries(ctx, teamID, season)
		if err != nil {
			return nil, fmt.Errorf("list injuries: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.team_id", teamID))
}

func (s *FootballService) GetTransfers(ctx context.Context, filter football.TransferFilter) ([]football.Transfer, error) {
	if filter.TeamID <= 0 && filter.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: teamId or playerId is required", ErrMissingRequiredAlternative)
	}
	return traced(ctx, "usecase.FootballService.GetTransfers", func(ctx context.Context) ([]football.Transfer, error) {
		items, err := s.provider.Transfers(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list transfers: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) GetVenues(ctx context.Context, filter football.VenueFilter) ([]football.Venue, error) {
	filter.Name = strings.TrimSpace(filter.Name)
	if filter.ID <= 0 && filter.Name == "" {
		return nil, fmt.Errorf("%w: id or name is required", ErrMissingRequiredAlternative)
	}
	return traced(ctx, "usecase.FootballService.GetVenues", func(ctx context.Context) ([]football.Venue, error) {
		items, err := s.provider.Venues(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list venues: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) GetTrophies(ctx context.Context, filter football.TrophyFilter) ([]football.Trophy, error) {
	if filter.TeamID <= 0 && filter.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: teamId or playerId is required", ErrMissingRequiredAlternative)
	}
	return traced(ctx, "usecase.FootballService.GetTrophies", func(ctx context.Context) ([]football.Trophy, error) {
		items, err := s.provider.Trophies(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("list trophies: %w", err)
		}
		return items, nil
	})
}

func (s *FootballService) GetCoach(ctx context.Context, coachID int64) (football.Coach, error) {
	if err := validateID("coachId", coachID); err != nil {
		return football.Coach{}, err
	}
	return traced(ctx, "usecase.FootballService.GetCoach", func(ctx context.Context) (football.Coach, error) {
		item, err := s.provider.Coach(ctx, coachID)
		if err != nil {
			return football.Coach{}, fmt.Errorf("get coach: %w", err)
		}
		return item, nil
	}, attribute.Int64("football.coach_id", coachID))
}

func (s *FootballService) GetSidelined(ctx context.Context, teamID int64) ([]football.Sidelined, error) {
	if err := validateID("teamId", teamID); err != nil {
		return nil, err
	}
	return traced(ctx, "usecase.FootballService.GetSidelined", func(ctx context.Context) ([]football.Sidelined, error) {
		items, err := s.provider.Sidelined(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("list sidelined: %w", err)
		}
		return items, nil
	}, attribute.Int64("football.team_id", teamID))
}

func traced[T any](ctx context.Context, name string, fn func(context.Context) (T, error), attrs ...attribute.KeyValue) (T, error) {
	ctx, span := startUsecaseSpan(ctx, name, attrs...)
	out, err := fn(ctx)
	endUsecaseSpan(span, err)
	return out, err
}

func validateID(field string, value int64) error {
	if value <= 0 {
		return fmt.Errorf("%w: %s must be > 0", ErrInvalidInput, field)
	}
	return nil
}

func validateSeason(season int) error {
	if season < 1900 || season > 2100 {
		return fmt.Errorf("%w: season %d is out of range", ErrInvalidInput, season)
	}
	return nil
}

func validateDate(field, value string) error {
	if _, err := time.Parse(dateLayout, value); err != nil {
		return fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return nil
}
