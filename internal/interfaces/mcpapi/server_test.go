package mcpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/riskibarqy/matchday-mcp/internal/domain/football"
	"github.com/riskibarqy/matchday-mcp/internal/domain/weather"
	footballmock "github.com/riskibarqy/matchday-mcp/internal/mocks/domain/football"
	weathermock "github.com/riskibarqy/matchday-mcp/internal/mocks/domain/weather"
	"github.com/riskibarqy/matchday-mcp/internal/platform/logging"
	"github.com/riskibarqy/matchday-mcp/internal/usecase"
	"github.com/stretchr/testify/mock"
)

type fixedIDs struct{}

func (fixedIDs) NewID() (string, error) { return "call-1", nil }

func newTestServer(t *testing.T, timeout time.Duration) (*Server, *footballmock.Provider, *weathermock.Provider) {
	t.Helper()

	footballProvider := footballmock.NewProvider(t)
	weatherProvider := weathermock.NewProvider(t)
	logger := logging.NewNop()

	server := NewServer(ServerConfig{
		Name:        "matchday-mcp-test",
		Version:     "test",
		Weather:     usecase.NewWeatherService(weatherProvider, logger),
		Football:    usecase.NewFootballService(footballProvider),
		Logger:      logger,
		IDGenerator: fixedIDs{},
		CallTimeout: timeout,
	})
	return server, footballProvider, weatherProvider
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil || len(result.Content) == 0 {
		t.Fatalf("expected content in tool result, got %+v", result)
	}
	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", result.Content[0])
	}
	return text.Text
}

func errorResultReason(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if !result.IsError {
		t.Fatalf("expected error result, got %q", resultText(t, result))
	}
	var body toolErrorEnvelope
	if err := sonic.UnmarshalString(resultText(t, result), &body); err != nil {
		t.Fatalf("unmarshal error result: %v", err)
	}
	return body.Error.Reason
}

func TestNewServer_RegistersEveryTool(t *testing.T) {
	t.Parallel()

	server, _, _ := newTestServer(t, time.Second)
	tools := server.Tools()
	if len(tools) != 26 {
		t.Fatalf("expected 26 tools, got %d", len(tools))
	}

	seen := make(map[string]struct{}, len(tools))
	for _, tool := range tools {
		if _, ok := seen[tool.Name]; ok {
			t.Fatalf("duplicate tool %q", tool.Name)
		}
		if strings.TrimSpace(tool.Description) == "" {
			t.Fatalf("tool %q has no description", tool.Name)
		}
		seen[tool.Name] = struct{}{}
	}
	for _, name := range []string{"get-alerts", "get-forecast", "get-team", "get-head-to-head", "get-sidelined"} {
		if _, ok := seen[name]; !ok {
			t.Fatalf("expected tool %q to be registered", name)
		}
	}
}

func TestInvoke_GetAlertsReturnsText(t *testing.T) {
	t.Parallel()

	server, _, weatherProvider := newTestServer(t, time.Second)
	weatherProvider.On("Alerts", mock.Anything, "CA").Return(weather.AlertsResponse{}, nil).Once()

	result := invoke(context.Background(), server, "get-alerts", getAlertsArgs{State: "ca"}, server.getAlerts)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}
	if got := resultText(t, result); got != "No active alerts for CA" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestInvoke_RejectsInvalidArgsBeforeCallingServices(t *testing.T) {
	t.Parallel()

	server, _, _ := newTestServer(t, time.Second)
	ctx := context.Background()

	checks := []struct {
		name   string
		result *mcp.CallToolResult
	}{
		{name: "state digits", result: invoke(ctx, server, "get-alerts", getAlertsArgs{State: "C1"}, server.getAlerts)},
		{name: "state length", result: invoke(ctx, server, "get-alerts", getAlertsArgs{State: "CAL"}, server.getAlerts)},
		{name: "latitude", result: invoke(ctx, server, "get-forecast", getForecastArgs{Latitude: 91}, server.getForecast)},
		{name: "longitude", result: invoke(ctx, server, "get-forecast", getForecastArgs{Longitude: -181}, server.getForecast)},
		{name: "team id", result: invoke(ctx, server, "get-team", teamArgs{TeamID: 0}, server.getTeam)},
		{name: "date", result: invoke(ctx, server, "get-fixtures-by-date", getFixturesByDateArgs{Date: "01/02/2024"}, server.getFixturesByDate)},
		{name: "season", result: invoke(ctx, server, "get-standings", leagueSeasonArgs{LeagueID: 39, Season: 23}, server.getStandings)},
		{name: "same teams", result: invoke(ctx, server, "get-head-to-head", getHeadToHeadArgs{TeamID1: 33, TeamID2: 33}, server.getHeadToHead)},
	}

	for _, check := range checks {
		if reason := errorResultReason(t, check.result); reason != reasonInvalidInput {
			t.Fatalf("%s: expected reason %q, got %q", check.name, reasonInvalidInput, reason)
		}
	}
}

func TestInvoke_GetTeamReturnsJSON(t *testing.T) {
	t.Parallel()

	server, footballProvider, _ := newTestServer(t, time.Second)
	founded := 1878
	footballProvider.On("Team", mock.Anything, int64(33)).
		Return(football.Team{ID: 33, Name: "Manchester United", Code: "MUN", Country: "England", Founded: &founded}, nil).
		Once()

	result := invoke(context.Background(), server, "get-team", teamArgs{TeamID: 33}, server.getTeam)
	if result.IsError {
		t.Fatalf("unexpected error result: %s", resultText(t, result))
	}

	var body map[string]any
	if err := sonic.UnmarshalString(resultText(t, result), &body); err != nil {
		t.Fatalf("unmarshal team: %v", err)
	}
	if got, _ := body["name"].(string); got != "Manchester United" {
		t.Fatalf("unexpected name: %v", body["name"])
	}
	if got, _ := body["founded"].(float64); got != 1878 {
		t.Fatalf("unexpected founded: %v", body["founded"])
	}
}

func TestInvoke_MapsServiceErrorsToReasons(t *testing.T) {
	t.Parallel()

	server, footballProvider, _ := newTestServer(t, time.Second)
	footballProvider.On("Coach", mock.Anything, int64(7)).Return(football.Coach{}, usecase.ErrNotFound).Once()
	footballProvider.On("Sidelined", mock.Anything, int64(33)).
		Return(nil, fmt.Errorf("%w: status 503", usecase.ErrUpstreamUnavailable)).
		Once()

	ctx := context.Background()
	if reason := errorResultReason(t, invoke(ctx, server, "get-coach", getCoachArgs{CoachID: 7}, server.getCoach)); reason != reasonNotFound {
		t.Fatalf("expected not_found, got %q", reason)
	}
	if reason := errorResultReason(t, invoke(ctx, server, "get-sidelined", teamArgs{TeamID: 33}, server.getSidelined)); reason != reasonUpstreamUnavailable {
		t.Fatalf("expected upstream_unavailable, got %q", reason)
	}
	if reason := errorResultReason(t, invoke(ctx, server, "get-transfers", teamOrPlayerArgs{}, server.getTransfers)); reason != reasonMissingRequiredAlternative {
		t.Fatalf("expected missing_required_alternative, got %q", reason)
	}
}

func TestInvoke_PassesOptionalArgsThrough(t *testing.T) {
	t.Parallel()

	server, footballProvider, _ := newTestServer(t, time.Second)
	footballProvider.On("Leagues", mock.Anything, football.LeagueFilter{Country: "England"}).
		Return([]football.League{{ID: 39, Name: "Premier League"}}, nil).
		Once()
	footballProvider.On("Player", mock.Anything, int64(276), 0).
		Return(football.Player{ID: 276, Name: "Neymar"}, nil).
		Once()

	country := "England"
	ctx := context.Background()
	if result := invoke(ctx, server, "list-leagues", listLeaguesArgs{Country: &country}, server.listLeagues); result.IsError {
		t.Fatalf("list leagues: %s", resultText(t, result))
	}
	if result := invoke(ctx, server, "get-player", getPlayerArgs{PlayerID: 276}, server.getPlayer); result.IsError {
		t.Fatalf("get player: %s", resultText(t, result))
	}
}

func TestInvoke_ContainsPanics(t *testing.T) {
	t.Parallel()

	server, _, _ := newTestServer(t, time.Second)
	handler := func(context.Context, teamArgs) (*mcp.CallToolResult, error) {
		panic("boom")
	}

	result := invoke(context.Background(), server, "panicky", teamArgs{TeamID: 1}, handler)
	if reason := errorResultReason(t, result); reason != reasonInternal {
		t.Fatalf("expected internal, got %q", reason)
	}
	if !strings.Contains(resultText(t, result), "boom") {
		t.Fatalf("expected panic value in message, got %q", resultText(t, result))
	}
}

func TestInvoke_AppliesCallTimeout(t *testing.T) {
	t.Parallel()

	server, _, _ := newTestServer(t, 20*time.Millisecond)
	handler := func(ctx context.Context, _ teamArgs) (*mcp.CallToolResult, error) {
		<-ctx.Done()
		return nil, fmt.Errorf("%w: request: %w", usecase.ErrUpstreamUnavailable, ctx.Err())
	}

	result := invoke(context.Background(), server, "slow", teamArgs{TeamID: 1}, handler)
	if reason := errorResultReason(t, result); reason != reasonTimeout {
		t.Fatalf("expected timeout, got %q", reason)
	}
}

func TestErrorReason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want string
	}{
		{err: fmt.Errorf("%w: bad", usecase.ErrInvalidInput), want: reasonInvalidInput},
		{err: usecase.ErrMissingRequiredAlternative, want: reasonMissingRequiredAlternative},
		{err: fmt.Errorf("get team: %w", usecase.ErrNotFound), want: reasonNotFound},
		{err: usecase.ErrMalformedResponse, want: reasonMalformedResponse},
		{err: usecase.ErrUpstreamUnavailable, want: reasonUpstreamUnavailable},
		{err: fmt.Errorf("%w: %w", usecase.ErrUpstreamUnavailable, context.Canceled), want: reasonCancelled},
		{err: errors.New("surprise"), want: reasonInternal},
	}
	for _, tc := range cases {
		if got := errorReason(tc.err); got != tc.want {
			t.Fatalf("errorReason(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}

func TestHTTPHandler_Healthz(t *testing.T) {
	t.Parallel()

	server, _, _ := newTestServer(t, time.Second)
	rec := httptest.NewRecorder()
	server.HTTPHandler("/mcp").ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var body map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal health body: %v", err)
	}
	if got, _ := body["status"].(string); got != "ok" {
		t.Fatalf("unexpected status: %v", body["status"])
	}
}

func TestServer_CallToolOverInMemoryTransport(t *testing.T) {
	t.Parallel()

	server, _, weatherProvider := newTestServer(t, time.Second)
	weatherProvider.On("Alerts", mock.Anything, "NY").Return(weather.AlertsResponse{}, nil).Once()

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.MCP().Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "get-alerts",
		Arguments: map[string]any{"state": "ny"},
	})
	if err != nil {
		t.Fatalf("call tool: %v", err)
	}
	if got := resultText(t, result); got != "No active alerts for NY" {
		t.Fatalf("unexpected text: %q", got)
	}
}
