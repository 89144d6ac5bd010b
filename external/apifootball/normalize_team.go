package apifootball

import (
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/platform/jsonfield"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

func normalizeTeams(root any) ([]football.Team, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Team, 0, len(items))
	for _, item := range items {
		team, err := teamFromItem(item)
		if err != nil {
			return nil, err
		}
		out = append(out, team)
	}
	return out, nil
}

func normalizeTeam(root any) (football.Team, error) {
	item, err := firstResponseItem(root, "team")
	if err != nil {
		return football.Team{}, err
	}
	return teamFromItem(item)
}

func teamFromItem(item any) (football.Team, error) {
	id, ok := jsonfield.Int64(item, "team.id")
	if !ok {
		return football.Team{}, missingField("team", "team.id")
	}
	return football.Team{
		ID:       id,
		Name:     jsonfield.StringOr(item, "", "team.name"),
		Code:     jsonfield.StringOr(item, "", "team.code"),
		Country:  jsonfield.StringOr(item, "", "team.country"),
		Founded:  jsonfield.NullableInt(item, "team.founded"),
		National: jsonfield.BoolOr(item, false, "team.national"),
		Logo:     jsonfield.StringOr(item, "", "team.logo"),
	}, nil
}

// normalizeTeamStatistics reads an object-valued response. The fixture counters
// moved between "loses.total", a bare "loses" number and "lose.total" across API
// versions, so each is tried in that order.
func normalizeTeamStatistics(root any) (football.TeamStatistics, error) {
	raw, ok := jsonfield.Lookup(root, "response")
	if !ok {
		return football.TeamStatistics{}, crerr.Wrap(usecase.ErrMalformedResponse, "response member missing")
	}
	item, isObject := raw.(map[string]any)
	if !isObject {
		if items, isArray := raw.([]any); isArray && len(items) == 0 {
			return football.TeamStatistics{}, crerr.Wrap(usecase.ErrNotFound, "team statistics")
		}
		return football.TeamStatistics{}, crerr.Wrapf(usecase.ErrMalformedResponse, "team statistics response is %T, want object", raw)
	}

	teamID, ok := jsonfield.Int64(item, "team.id")
	if !ok {
		return football.TeamStatistics{}, missingField("team statistics", "team.id")
	}
	leagueID, _ := jsonfield.Int64(item, "league.id")

	return football.TeamStatistics{
		LeagueID:     leagueID,
		Season:       jsonfield.IntOr(item, 0, "league.season"),
		TeamID:       teamID,
		Form:         jsonfield.StringOr(item, "", "form"),
		Played:       fixtureCounter(item, "played", "played"),
		Won:          fixtureCounter(item, "wins", "win"),
		Draw:         fixtureCounter(item, "draws", "draw"),
		Lost:         fixtureCounter(item, "loses", "lose"),
		GoalsFor:     jsonfield.IntOr(item, 0, "goals.for.total.total", "goals.for.total"),
		GoalsAgainst: jsonfield.IntOr(item, 0, "goals.against.total.total", "goals.against.total"),
	}, nil
}

func fixtureCounter(item any, plural, singular string) int {
	return jsonfield.IntOr(item, 0,
		"fixtures."+plural+".total",
		"fixtures."+plural,
		"fixtures."+singular+".total",
	)
}

func normalizeVenues(root any) ([]football.Venue, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Venue, 0, len(items))
	for _, item := range items {
		id, ok := jsonfield.Int64(item, "id")
		if !ok {
			return nil, missingField("venue", "id")
		}
		out = append(out, football.Venue{
			ID:       id,
			Name:     jsonfield.StringOr(item, "", "name"),
			Address:  jsonfield.StringOr(item, "", "address"),
			City:     jsonfield.StringOr(item, "", "city"),
			Country:  jsonfield.StringOr(item, "", "country"),
			Capacity: jsonfield.IntOr(item, 0, "capacity"),
			Surface:  jsonfield.StringOr(item, "", "surface"),
			Image:    jsonfield.StringOr(item, "", "image"),
		})
	}
	return out, nil
}

func normalizeTrophies(root any) ([]football.Trophy, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Trophy, 0, len(items))
	for _, item := range items {
		out = append(out, football.Trophy{
			League:  jsonfield.StringOr(item, "", "league"),
			Country: jsonfield.StringOr(item, "", "country"),
			Season:  textValue(item, "season"),
			Place:   trophyPlace(item),
		})
	}
	return out, nil
}

func trophyPlace(item any) string {
	raw, ok := jsonfield.Lookup(item, "place")
	if !ok {
		return ""
	}
	switch typed := raw.(type) {
	case float64:
		switch typed {
		case 1:
			return football.PlaceWinner
		case 2:
			return football.PlaceRunnerUp
		default:
			return jsonfield.FormatNumber(typed)
		}
	case string:
		return typed
	default:
		return ""
	}
}

func normalizeCoach(root any) (football.Coach, error) {
	item, err := firstResponseItem(root, "coach")
	if err != nil {
		return football.Coach{}, err
	}
	id, ok := jsonfield.Int64(item, "id")
	if !ok {
		return football.Coach{}, missingField("coach", "id")
	}

	name, ok := jsonfield.String(item, "name")
	if !ok {
		first := jsonfield.StringOr(item, "", "firstname")
		last := jsonfield.StringOr(item, "", "lastname")
		name = strings.TrimSpace(first + " " + last)
	}

	entries := jsonfield.Array(item, "career")
	career := make([]football.CareerEntry, 0, len(entries))
	for _, entry := range entries {
		career = append(career, football.CareerEntry{
			Team:  jsonfield.StringOr(entry, "", "team.name"),
			Start: jsonfield.StringOr(entry, "", "start"),
			End:   jsonfield.StringOr(entry, football.CareerPresent, "end"),
		})
	}

	return football.Coach{
		ID:          id,
		Name:        name,
		Age:         jsonfield.NullableInt(item, "age"),
		Nationality: jsonfield.StringOr(item, "", "nationality"),
		Photo:       jsonfield.StringOr(item, "", "photo"),
		Career:      career,
	}, nil
}

// textValue renders a string or number leaf as text, or "" when absent.
func textValue(item any, path string) string {
	if text := nullableText(item, path); text != nil {
		return *text
	}
	return ""
}

func nullableText(item any, paths ...string) *string {
	for _, path := range paths {
		raw, ok := jsonfield.Lookup(item, path)
		if !ok {
			continue
		}
		switch typed := raw.(type) {
		case string:
			if typed = strings.TrimSpace(typed); typed != "" {
				return &typed
			}
		case float64:
			text := jsonfield.FormatNumber(typed)
			return &text
		}
	}
	return nil
}
