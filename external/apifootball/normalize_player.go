package apifootball

import (
	"strings"

	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/platform/jsonfield"
)

func normalizeSquad(root any) ([]football.Player, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []football.Player{}, nil
	}

	entries := jsonfield.Array(items[0], "players")
	out := make([]football.Player, 0, len(entries))
	for _, entry := range entries {
		id, ok := jsonfield.Int64(entry, "id")
		if !ok {
			return nil, missingField("squad player", "id")
		}
		// The squad endpoint carries no nationality, height or weight.
		out = append(out, football.Player{
			ID:       id,
			Name:     jsonfield.StringOr(entry, "", "name"),
			Age:      jsonfield.NullableInt(entry, "age"),
			Photo:    jsonfield.StringOr(entry, "", "photo"),
			Number:   jsonfield.NullableInt(entry, "number"),
			Position: jsonfield.NullableString(entry, "position"),
		})
	}
	return out, nil
}

func normalizePlayer(root any) (football.Player, error) {
	item, err := firstResponseItem(root, "player")
	if err != nil {
		return football.Player{}, err
	}
	id, ok := jsonfield.Int64(item, "player.id")
	if !ok {
		return football.Player{}, missingField("player", "player.id")
	}

	return football.Player{
		ID:          id,
		Name:        jsonfield.StringOr(item, "", "player.name"),
		Age:         jsonfield.NullableInt(item, "player.age"),
		Nationality: jsonfield.NullableString(item, "player.nationality"),
		Height:      jsonfield.NullableString(item, "player.height"),
		Weight:      jsonfield.NullableString(item, "player.weight"),
		Photo:       jsonfield.StringOr(item, "", "player.photo"),
		Number:      jsonfield.NullableInt(item, "statistics.0.games.number"),
		Position:    jsonfield.NullableString(item, "statistics.0.games.position", "player.position"),
	}, nil
}

// normalizePlayerStats returns one entry per league/team line of the first player.
func normalizePlayerStats(root any) ([]football.PlayerStats, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []football.PlayerStats{}, nil
	}

	entries := jsonfield.Array(items[0], "statistics")
	out := make([]football.PlayerStats, 0, len(entries))
	for _, entry := range entries {
		out = append(out, football.PlayerStats{
			League:      jsonfield.StringOr(entry, "", "league.name"),
			Team:        jsonfield.StringOr(entry, "", "team.name"),
			GamesPlayed: jsonfield.NullableInt(entry, "games.appearences", "games.appearances"),
			Goals:       jsonfield.NullableInt(entry, "goals.total"),
			Assists:     jsonfield.IntOr(entry, 0, "goals.assists"),
			Yellow:      jsonfield.NullableInt(entry, "cards.yellow"),
			Red:         jsonfield.NullableInt(entry, "cards.red"),
			Rating:      nullableText(entry, "games.rating"),
		})
	}
	return out, nil
}

func normalizeInjuries(root any) ([]football.Injury, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Injury, 0, len(items))
	for _, item := range items {
		out = append(out, football.Injury{
			Player:         ref(item, "player"),
			Type:           jsonfield.StringOr(item, "", "player.type", "type"),
			Detail:         jsonfield.StringOr(item, "", "player.reason", "reason"),
			Since:          jsonfield.NullableString(item, "fixture.date", "start"),
			ExpectedReturn: jsonfield.NullableString(item, "end"),
		})
	}
	return out, nil
}

// normalizeSidelined classifies by the free-text reason. A missing reason is
// reported as a suspension, the same as an explicit one.
func normalizeSidelined(root any) ([]football.Sidelined, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Sidelined, 0, len(items))
	for _, item := range items {
		out = append(out, football.Sidelined{
			Player:         ref(item, "player"),
			Type:           sidelinedType(item),
			Detail:         jsonfield.StringOr(item, "", "reason", "type"),
			Since:          jsonfield.NullableString(item, "start"),
			ExpectedReturn: jsonfield.NullableString(item, "end"),
		})
	}
	return out, nil
}

func sidelinedType(item any) string {
	reason, ok := jsonfield.String(item, "reason")
	if !ok || strings.Contains(reason, football.SidelinedSuspension) {
		return football.SidelinedSuspension
	}
	return football.SidelinedOther
}

// normalizeTransfers flattens the per-player transfer lists, keeping upstream order.
func normalizeTransfers(root any) ([]football.Transfer, error) {
	items, err := responseItems(root)
	if err != nil {
		return nil, err
	}
	out := make([]football.Transfer, 0, len(items))
	for _, item := range items {
		player := ref(item, "player")
		for _, entry := range jsonfield.Array(item, "transfers") {
			out = append(out, football.Transfer{
				Player: player,
				From:   ref(entry, "teams.out"),
				To:     ref(entry, "teams.in"),
				Date:   jsonfield.StringOr(entry, "", "date"),
				Type:   jsonfield.StringOr(entry, "", "type"),
			})
		}
	}
	return out, nil
}

func ref(item any, prefix string) football.Ref {
	id, _ := jsonfield.Int64(item, prefix+".id")
	return football.Ref{
		ID:   id,
		Name: jsonfield.StringOr(item, "", prefix+".name"),
	}
}
