package apifootball

import (
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/platform/jsonfield"
)

func normalizeFixtures(root any) ([]football.Fixture, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Fixture, 0, len(items))
	for _, item := range items {
		fixture, err := normalizeFixture(item)
		if err != nil {
			return nil, err
		}
		out = append(out, fixture)
	}
	return out, nil
}

func normalizeFixtureDetails(root any) (football.Fixture, error) {
	item, err := firstResponseItem(root, "fixture")
	if err != nil {
		return football.Fixture{}, err
	}
	return normalizeFixture(item)
}

func normalizeFixture(item any) (football.Fixture, error) {
	id, ok := jsonfield.Int64(item, "fixture.id")
	if !ok {
		return football.Fixture{}, missingField("fixture", "fixture.id")
	}

	return football.Fixture{
		FixtureID: id,
		Date:      jsonfield.StringOr(item, "", "fixture.date"),
		Venue:     jsonfield.StringOr(item, "", "fixture.venue.name"),
		Home:      fixtureTeam(jsonfield.Object(item, "teams.home")),
		Away:      fixtureTeam(jsonfield.Object(item, "teams.away")),
		Score: football.FixtureScore{
			// Older payloads carry the final score only in the top-level goals block.
			Fulltime: football.ScorePair{
				Home: jsonfield.NullableInt(item, "score.fulltime.home", "goals.home"),
				Away: jsonfield.NullableInt(item, "score.fulltime.away", "goals.away"),
			},
			Halftime: football.ScorePair{
				Home: jsonfield.NullableInt(item, "score.halftime.home"),
				Away: jsonfield.NullableInt(item, "score.halftime.away"),
			},
		},
		Status: jsonfield.StringOr(item, "", "fixture.status.short"),
	}, nil
}

func fixtureTeam(node map[string]any) football.FixtureTeam {
	id, _ := jsonfield.Int64(node, "id")
	return football.FixtureTeam{
		ID:     id,
		Name:   jsonfield.StringOr(node, "", "name"),
		Logo:   jsonfield.StringOr(node, "", "logo"),
		Winner: jsonfield.NullableBool(node, "winner"),
	}
}

func normalizeEvents(root any) ([]football.Event, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Event, 0, len(items))
	for _, item := range items {
		out = append(out, football.Event{
			Time: football.EventTime{
				Elapsed: jsonfield.IntOr(item, 0, "time.elapsed"),
				Extra:   jsonfield.NullableInt(item, "time.extra"),
			},
			Team:     jsonfield.StringOr(item, "", "team.name"),
			Player:   jsonfield.StringOr(item, "", "player.name"),
			Assist:   jsonfield.NullableString(item, "assist.name"),
			Type:     jsonfield.StringOr(item, "", "type"),
			Detail:   jsonfield.StringOr(item, "", "detail"),
			Comments: jsonfield.NullableString(item, "comments"),
		})
	}
	return out, nil
}

func normalizeLineups(root any) ([]football.Lineup, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Lineup, 0, len(items))
	for _, item := range items {
		out = append(out, football.Lineup{
			Team:        jsonfield.StringOr(item, "", "team.name"),
			Formation:   jsonfield.StringOr(item, "", "formation"),
			Coach:       jsonfield.StringOr(item, "", "coach.name"),
			Lineup:      lineupPlayers(jsonfield.Array(item, "startXI")),
			Substitutes: lineupPlayers(jsonfield.Array(item, "substitutes")),
		})
	}
	return out, nil
}

// lineupPlayers leaves demographics nil; the lineup endpoint never sends them.
func lineupPlayers(entries []any) []football.Player {
	out := make([]football.Player, 0, len(entries))
	for _, entry := range entries {
		id, _ := jsonfield.Int64(entry, "player.id")
		out = append(out, football.Player{
			ID:       id,
			Name:     jsonfield.StringOr(entry, "", "player.name"),
			Number:   jsonfield.NullableInt(entry, "player.number"),
			Position: jsonfield.NullableString(entry, "player.pos"),
		})
	}
	return out
}

func normalizeFixtureStatistics(root any) ([]football.FixtureStatistics, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.FixtureStatistics, 0, len(items))
	for _, item := range items {
		teamID, ok := jsonfield.Int64(item, "team.id")
		if !ok {
			return nil, missingField("fixture statistics", "team.id")
		}

		entries := jsonfield.Array(item, "statistics")
		stats := make([]football.Statistic, 0, len(entries))
		for _, entry := range entries {
			stats = append(stats, football.Statistic{
				Type:  jsonfield.StringOr(entry, "", "type"),
				Value: statisticValue(entry),
			})
		}

		out = append(out, football.FixtureStatistics{
			Team: football.TeamRef{
				ID:   teamID,
				Name: jsonfield.StringOr(item, "", "team.name"),
				Logo: jsonfield.StringOr(item, "", "team.logo"),
			},
			Statistics: stats,
		})
	}
	return out, nil
}

// statisticValue keeps percentages like "55%" verbatim and renders counts as decimal text.
func statisticValue(entry any) *string {
	raw, ok := jsonfield.Lookup(entry, "value")
	if !ok {
		return nil
	}
	switch typed := raw.(type) {
	case string:
		return &typed
	case float64:
		text := jsonfield.FormatNumber(typed)
		return &text
	default:
		return nil
	}
}
