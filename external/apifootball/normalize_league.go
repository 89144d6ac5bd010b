package apifootball

import (
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/platform/jsonfield"
)

func normalizeCountries(root any) ([]football.Country, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Country, 0, len(items))
	for _, item := range items {
		name, ok := jsonfield.String(item, "name")
		if !ok {
			return nil, missingField("country", "name")
		}
		out = append(out, football.Country{
			Name: name,
			Code: jsonfield.NullableString(item, "code"),
			Flag: jsonfield.NullableString(item, "flag"),
		})
	}
	return out, nil
}

func normalizeSeasons(root any) ([]int, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if season, ok := jsonfield.Int(item, ""); ok {
			out = append(out, season)
		}
	}
	return out, nil
}

func normalizeLeagues(root any) ([]football.League, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.League, 0, len(items))
	for _, item := range items {
		id, ok := jsonfield.Int64(item, "league.id")
		if !ok {
			return nil, missingField("league", "league.id")
		}

		entries := jsonfield.Array(item, "seasons")
		seasons := make([]int, 0, len(entries))
		var current *int
		for _, entry := range entries {
			year, ok := jsonfield.Int(entry, "year")
			if !ok {
				continue
			}
			seasons = append(seasons, year)
			if current == nil && jsonfield.BoolOr(entry, false, "current") {
				current = &year
			}
		}

		out = append(out, football.League{
			ID:            id,
			Name:          jsonfield.StringOr(item, "", "league.name"),
			Type:          jsonfield.StringOr(item, "", "league.type"),
			Logo:          jsonfield.StringOr(item, "", "league.logo"),
			Country:       jsonfield.StringOr(item, "", "country.name"),
			CountryCode:   jsonfield.NullableString(item, "country.code"),
			Seasons:       seasons,
			CurrentSeason: current,
		})
	}
	return out, nil
}

// normalizeStandings flattens every group table of the first league into one
// ordered row list.
func normalizeStandings(root any) (football.Standings, error) {
	item, err := firstResponseItem(root, "standings")
	if err != nil {
		return football.Standings{}, err
	}
	leagueID, ok := jsonfield.Int64(item, "league.id")
	if !ok {
		return football.Standings{}, missingField("standings", "league.id")
	}

	entries := jsonfield.Flatten(jsonfield.Array(item, "league.standings"))
	rows := make([]football.StandingRow, 0, len(entries))
	for _, entry := range entries {
		teamID, ok := jsonfield.Int64(entry, "team.id")
		if !ok {
			return football.Standings{}, missingField("standings row", "team.id")
		}
		rows = append(rows, football.StandingRow{
			Rank:  jsonfield.IntOr(entry, 0, "rank"),
			Group: jsonfield.StringOr(entry, "", "group"),
			Team: football.TeamRef{
				ID:   teamID,
				Name: jsonfield.StringOr(entry, "", "team.name"),
				Logo: jsonfield.StringOr(entry, "", "team.logo"),
			},
			Points:    jsonfield.IntOr(entry, 0, "points"),
			GoalsDiff: jsonfield.IntOr(entry, 0, "goalsDiff"),
			Played:    jsonfield.IntOr(entry, 0, "all.played", "played"),
			Won:       jsonfield.IntOr(entry, 0, "all.win", "won"),
			Draw:      jsonfield.IntOr(entry, 0, "all.draw", "draw"),
			Lost:      jsonfield.IntOr(entry, 0, "all.lose", "lose"),
			Form:      jsonfield.StringOr(entry, "", "form"),
		})
	}

	return football.Standings{
		LeagueID: leagueID,
		Season:   jsonfield.IntOr(item, 0, "league.season"),
		Rows:     rows,
	}, nil
}
