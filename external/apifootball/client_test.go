package apifootball

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(ClientConfig{BaseURL: server.URL, APIKey: "rapid-key", Host: "api-football-v1.p.rapidapi.com"})
}

func TestClient_SendsRapidAPIHeaders(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-RapidAPI-Key") != "rapid-key" {
			t.Errorf("missing api key header")
		}
		if r.Header.Get("X-RapidAPI-Host") != "api-football-v1.p.rapidapi.com" {
			t.Errorf("unexpected host header: %q", r.Header.Get("X-RapidAPI-Host"))
		}
		if r.URL.Path != "/standings" || r.URL.RawQuery != "league=2&season=2024" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(standingsPayload))
	})

	got, err := client.Standings(context.Background(), 2, 2024)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got.Rows))
	}
}

func TestClient_OptionalParamsAreOmitted(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/leagues":
			if r.URL.RawQuery != "country=England" {
				t.Errorf("unexpected leagues query: %q", r.URL.RawQuery)
			}
		case "/transfers":
			if r.URL.RawQuery != "player=35845" {
				t.Errorf("unexpected transfers query: %q", r.URL.RawQuery)
			}
		case "/fixtures/headtohead":
			if r.URL.Query().Get("h2h") != "33-34" {
				t.Errorf("unexpected h2h: %q", r.URL.Query().Get("h2h"))
			}
		}
		_, _ = w.Write([]byte(`{"errors":[],"response":[]}`))
	})
	ctx := context.Background()

	if _, err := client.Leagues(ctx, football.LeagueFilter{Country: "England"}); err != nil {
		t.Fatalf("leagues: %v", err)
	}
	if _, err := client.Transfers(ctx, football.TransferFilter{PlayerID: 35845}); err != nil {
		t.Fatalf("transfers: %v", err)
	}
	if _, err := client.HeadToHead(ctx, 33, 34); err != nil {
		t.Fatalf("head to head: %v", err)
	}
}

func TestClient_EnvelopeErrorsAreUpstreamFailures(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":{"requests":"You have reached the request limit for the day"},"response":[]}`))
	})

	_, err := client.Countries(context.Background())
	if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_HTTPFailureIsUpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	})

	_, err := client.Coach(context.Background(), 40)
	if !errors.Is(err, usecase.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestClient_CoachEndToEnd(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/coachs" || r.URL.Query().Get("id") != "40" {
			t.Errorf("unexpected request: %s?%s", r.URL.Path, r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(coachPayload))
	})

	got, err := client.Coach(context.Background(), 40)
	if err != nil {
		t.Fatalf("coach: %v", err)
	}
	if got.Name != "Jane Doe" {
		t.Fatalf("unexpected coach name: %q", got.Name)
	}
}
