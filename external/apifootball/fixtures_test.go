package apifootball

import (
	"testing"

	"github.com/bytedance/sonic"
)

// Trimmed real-shape payloads shared by the normalizer tests.
const (
	fixturesPayload = `{"get":"fixtures","errors":[],"results":2,"response":[
		{"fixture":{"id":1035037,"date":"2024-08-16T19:00:00+00:00","venue":{"id":556,"name":"Old Trafford"},"status":{"short":"FT"}},
		 "teams":{"home":{"id":33,"name":"Manchester United","logo":"mu.png","winner":true},"away":{"id":36,"name":"Fulham","logo":"ful.png","winner":false}},
		 "goals":{"home":1,"away":0},
		 "score":{"halftime":{"home":0,"away":0},"fulltime":{"home":1,"away":0}}},
		{"fixture":{"id":1035038,"date":"2024-08-17T11:30:00+00:00","venue":{"id":null,"name":null},"status":{"short":"NS"}},
		 "teams":{"home":{"id":40,"name":"Liverpool","logo":"liv.png","winner":null},"away":{"id":41,"name":"Southampton","logo":"sou.png","winner":null}},
		 "goals":{"home":null,"away":null},
		 "score":{"halftime":{"home":null,"away":null},"fulltime":{"home":null,"away":null}}}
	]}`

	legacyScorePayload = `{"response":[{"fixture":{"id":7,"status":{"short":"FT"}},"teams":{"home":{"id":1},"away":{"id":2}},"goals":{"home":3,"away":2},"score":{"halftime":{"home":1,"away":1}}}]}`

	teamPayload = `{"response":[{"team":{"id":33,"name":"Manchester United","code":"MUN","country":"England","founded":1878,"national":false,"logo":"mu.png"},"venue":{"id":556}}]}`

	standingsPayload = `{"response":[{"league":{"id":2,"season":2024,"standings":[
		[{"rank":1,"team":{"id":50,"name":"Manchester City","logo":"mci.png"},"points":18,"goalsDiff":11,"group":"Group A","form":"WWWDW","all":{"played":6,"win":5,"draw":1,"lose":0}},
		 {"rank":2,"team":{"id":541,"name":"Real Madrid","logo":"rma.png"},"points":13,"goalsDiff":6,"group":"Group A","form":"WDWLW","played":6,"won":4,"draw":1,"lose":1}],
		[{"rank":1,"team":{"id":157,"name":"Bayern Munich","logo":"bay.png"},"points":16,"goalsDiff":9,"group":"Group B","form":"WWWLW","all":{"played":6,"win":5,"draw":1,"lose":0}}]
	]}}]}`

	countriesPayload = `{"response":[{"name":"England","code":"GB","flag":"gb.svg"},{"name":"World","code":null,"flag":null}]}`

	seasonsPayload = `{"response":[2008,2009,"bogus",2024]}`

	leaguesPayload = `{"response":[{"league":{"id":39,"name":"Premier League","type":"League","logo":"pl.png"},"country":{"name":"England","code":"GB"},
		"seasons":[{"year":2022,"current":false},{"year":2023,"current":true},{"year":2024,"current":true}]}]}`

	playerPayload = `{"response":[{"player":{"id":276,"name":"Neymar","age":32,"nationality":"Brazil","height":"175 cm","weight":"68 kg","photo":"276.png","position":"Attacker"},
		"statistics":[
			{"team":{"name":"Al-Hilal"},"league":{"name":"Pro League"},"games":{"appearences":3,"number":10,"position":null,"rating":"7.1"},"goals":{"total":1,"assists":null},"cards":{"yellow":1,"red":0}},
			{"team":{"name":"Brazil"},"league":{"name":"Friendlies"},"games":{"appearances":2,"rating":null},"goals":{"total":null},"cards":{"yellow":null,"red":null}}
		]}]}`

	squadPayload = `{"response":[{"team":{"id":33},"players":[{"id":882,"name":"David de Gea","age":31,"number":1,"position":"Goalkeeper","photo":"882.png"},{"id":883,"name":"Prospect","age":null,"number":null,"position":"Defender","photo":""}]}]}`

	eventsPayload = `{"response":[{"time":{"elapsed":25,"extra":null},"team":{"name":"Manchester United"},"player":{"name":"Joshua Zirkzee"},"assist":{"name":"Alejandro Garnacho"},"type":"Goal","detail":"Normal Goal","comments":null},
		{"time":{"elapsed":90,"extra":4},"team":{"name":"Fulham"},"player":{"name":"Andreas Pereira"},"assist":{"name":null},"type":"Card","detail":"Yellow Card","comments":"Foul"}]}`

	lineupsPayload = `{"response":[{"team":{"id":33,"name":"Manchester United"},"formation":"4-2-3-1","coach":{"name":"Erik ten Hag"},
		"startXI":[{"player":{"id":526,"name":"Andre Onana","number":24,"pos":"G","grid":"1:1"}}],
		"substitutes":[{"player":{"id":2931,"name":"Altay Bayindir","number":1,"pos":null}}]}]}`

	fixtureStatisticsPayload = `{"response":[{"team":{"id":33,"name":"Manchester United","logo":"mu.png"},"statistics":[
		{"type":"Shots on Goal","value":5},{"type":"Ball Possession","value":"55%"},{"type":"Expected Goals","value":1.75},{"type":"Goalkeeper Saves","value":null}]}]}`

	injuriesPayload = `{"response":[{"player":{"id":909,"name":"Marcus Rashford","type":"Missing Fixture","reason":"Knee Injury"},"fixture":{"date":"2024-08-16T19:00:00+00:00"}},
		{"player":{"id":910,"name":"Luke Shaw"},"type":"Questionable","reason":"Calf","start":"2024-08-01","end":"2024-09-15"}]}`

	transfersPayload = `{"response":[
		{"player":{"id":35845,"name":"Hernan Crespo"},"transfers":[
			{"date":"2003-08-26","type":"Loan","teams":{"in":{"id":489,"name":"AC Milan"},"out":{"id":49,"name":"Chelsea"}}},
			{"date":"2003-08-12","type":"€ 26M","teams":{"in":{"id":49,"name":"Chelsea"},"out":{"id":505,"name":"Inter"}}}]},
		{"player":{"id":1,"name":"Another"},"transfers":[
			{"date":"2010-07-01","type":"Free","teams":{"in":{"id":2,"name":"B"},"out":{"id":3,"name":"C"}}}]}
	]}`

	venuesPayload = `{"response":[{"id":556,"name":"Old Trafford","address":"Sir Matt Busby Way","city":"Manchester","country":"England","capacity":76212,"surface":"grass","image":"556.png"},
		{"id":557,"name":"Training Ground","capacity":null}]}`

	trophiesPayload = `{"response":[{"league":"Ligue 1","country":"France","season":"2019/2020","place":1},
		{"league":"Coupe de France","country":"France","season":"2018/2019","place":2},
		{"league":"UEFA Champions League","country":"World","season":"2019/2020","place":3},
		{"league":"Copa America","country":"World","season":2021,"place":"2nd Place"}]}`

	coachPayload = `{"response":[{"id":40,"name":null,"firstname":"Jane","lastname":"Doe","age":45,"nationality":"England","photo":"40.png",
		"career":[{"team":{"id":1,"name":"Current FC"},"start":"2022-07-01","end":null},{"team":{"id":2,"name":"Old FC"},"start":"2019-01-01","end":"2022-06-30"}]}]}`

	sidelinedPayload = `{"response":[
		{"player":{"id":1,"name":"A"},"reason":"Suspension - doping","start":"2024-01-01","end":"2024-06-01"},
		{"player":{"id":2,"name":"B"},"reason":"Fitness","start":"2024-02-01","end":null},
		{"player":{"id":3,"name":"C"},"type":"Broken leg","start":"2024-03-01"}
	]}`
)

func decodePayload(t *testing.T, raw string) any {
	t.Helper()
	var out any
	if err := sonic.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	return out
}
