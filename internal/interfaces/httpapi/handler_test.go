package httpapi

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/coachboard/coachboard/internal/domain/gameday"
	"github.com/coachboard/coachboard/internal/infrastructure/gateway/memory"
	"github.com/coachboard/coachboard/internal/platform/logging"
	"github.com/coachboard/coachboard/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnvelope struct {
	APIVersion string         `json:"apiVersion"`
	Data       any            `json:"data"`
	Error      map[string]any `json:"error"`
}

func newTestRouter(t *testing.T, mutate func(*gameday.Snapshot)) http.Handler {
	t.Helper()

	gw := memory.NewGateway(memory.SeedGames(time.Now()))
	snapshot, err := gw.LoadSnapshot(t.Context(), memory.DemoGameID)
	require.NoError(t, err)
	if mutate != nil {
		mutate(&snapshot)
	}

	session, err := usecase.NewGamedaySession(snapshot, gw, logging.NewNop())
	require.NoError(t, err)
	return NewRouter(NewHandler(session, logging.NewNop()), logging.NewNop(), []string{"*"})
}

func call(t *testing.T, router http.Handler, method, path, body string) (int, testEnvelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env testEnvelope
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &env), "body: %s", rec.Body.String())
	return rec.Code, env
}

func dataMap(t *testing.T, env testEnvelope) map[string]any {
	t.Helper()
	m, ok := env.Data.(map[string]any)
	require.True(t, ok, "expected object data, got %T", env.Data)
	return m
}

func rotationOf(t *testing.T, env testEnvelope) map[string]any {
	t.Helper()
	rot, ok := dataMap(t, env)["rotation"].(map[string]any)
	require.True(t, ok)
	return rot
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, nil)
	code, env := call(t, router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "2.0", env.APIVersion)
}

func TestRouter_GetSession(t *testing.T) {
	router := newTestRouter(t, nil)

	code, env := call(t, router, http.MethodGet, "/v1/session", "")
	require.Equal(t, http.StatusOK, code)

	data := dataMap(t, env)
	game := data["game"].(map[string]any)
	assert.Equal(t, "Riverside Hawks", game["opponent"])
	assert.Len(t, data["roster"], 11, "absent player is left off the roster")

	rot := rotationOf(t, env)
	assert.Equal(t, []any{float64(1)}, rot["innings"])
	assert.EqualValues(t, 1, rot["current_inning"])
	assert.Len(t, rot["bench"], 11)
	assert.Equal(t, false, rot["copy_mode"])
	assert.Equal(t, false, data["unsaved"])
}

func TestRouter_AssignAndBench(t *testing.T) {
	router := newTestRouter(t, nil)

	code, env := call(t, router, http.MethodPut, "/v1/session/rotation/innings/1/positions/P", `{"player":"Ava Martinez"}`)
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	assignments := rotationOf(t, env)["assignments"].(map[string]any)
	assert.Equal(t, "Ava Martinez", assignments["1"].(map[string]any)["P"])

	code, env = call(t, router, http.MethodGet, "/v1/session/rotation/innings/1/bench", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, env.Data, 10)

	code, env = call(t, router, http.MethodDelete, "/v1/session/rotation/innings/1/positions/P", "")
	require.Equal(t, http.StatusOK, code)
	assignments = rotationOf(t, env)["assignments"].(map[string]any)
	assert.Empty(t, assignments["1"])
}

func TestRouter_RejectsBadRequests(t *testing.T) {
	router := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		reason string
	}{
		{name: "unknown position", method: http.MethodPut, path: "/v1/session/rotation/innings/1/positions/XX", body: `{"player":"Ava Martinez"}`, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "player not on roster", method: http.MethodPut, path: "/v1/session/rotation/innings/1/positions/C", body: `{"player":"Zed"}`, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "unknown field", method: http.MethodPost, path: "/v1/session/lineup/players", body: `{"name":"Ava Martinez","extra":1}`, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "empty body", method: http.MethodPost, path: "/v1/session/rotation/copy", body: "", status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "inning not a number", method: http.MethodGet, path: "/v1/session/rotation/innings/two/bench", status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "missing inning", method: http.MethodGet, path: "/v1/session/rotation/innings/4/bench", status: http.StatusNotFound, reason: "notFound"},
		{name: "remove only inning", method: http.MethodDelete, path: "/v1/session/rotation/innings/last", status: http.StatusBadRequest, reason: "failedPrecondition"},
		{name: "paste without copy", method: http.MethodPost, path: "/v1/session/rotation/paste", body: `{"destinations":[1]}`, status: http.StatusBadRequest, reason: "failedPrecondition"},
		{name: "empty paste selection", method: http.MethodPost, path: "/v1/session/rotation/paste", body: `{"destinations":[]}`, status: http.StatusBadRequest, reason: "invalidInput"},
		{name: "sync without labels", method: http.MethodPost, path: "/v1/session/rotation/sync-lineup", status: http.StatusBadRequest, reason: "failedPrecondition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, env := call(t, router, tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, code, "error: %v", env.Error)
			require.NotNil(t, env.Error)
			items := env.Error["errors"].([]any)
			assert.Equal(t, tt.reason, items[0].(map[string]any)["reason"])
		})
	}
}

func TestRouter_CopyPasteInnings(t *testing.T) {
	router := newTestRouter(t, nil)

	code, _ := call(t, router, http.MethodPost, "/v1/session/rotation/innings", "")
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, router, http.MethodPost, "/v1/session/rotation/innings", "")
	require.Equal(t, http.StatusCreated, code)
	code, _ = call(t, router, http.MethodPut, "/v1/session/rotation/innings/1/positions/C", `{"player":"Ben Carter"}`)
	require.Equal(t, http.StatusOK, code)

	code, env := call(t, router, http.MethodPost, "/v1/session/rotation/copy", `{"source":1}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, rotationOf(t, env)["copy_mode"])
	assert.EqualValues(t, 1, rotationOf(t, env)["copy_source"])

	code, env = call(t, router, http.MethodPost, "/v1/session/rotation/paste", `{"destinations":[2,3]}`)
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	rot := rotationOf(t, env)
	assert.Equal(t, false, rot["copy_mode"])
	assignments := rot["assignments"].(map[string]any)
	for _, n := range []string{"2", "3"} {
		assert.Equal(t, "Ben Carter", assignments[n].(map[string]any)["C"])
	}

	code, env = call(t, router, http.MethodPut, "/v1/session/rotation/current", `{"inning":3}`)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, rotationOf(t, env)["current_inning"])

	code, env = call(t, router, http.MethodDelete, "/v1/session/rotation/innings/3", "")
	require.Equal(t, http.StatusOK, code)
	rot = rotationOf(t, env)
	assert.EqualValues(t, 2, rot["current_inning"])
	assert.Equal(t, []any{float64(1), float64(2)}, rot["innings"])
}

func TestRouter_LineupSaveAndSync(t *testing.T) {
	router := newTestRouter(t, nil)
	ava := url.PathEscape("Ava Martinez")

	code, env := call(t, router, http.MethodPost, "/v1/session/lineup/players", `{"name":"Ava Martinez"}`)
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	code, _ = call(t, router, http.MethodPost, "/v1/session/lineup/players", `{"name":"Ben Carter"}`)
	require.Equal(t, http.StatusOK, code)

	code, env = call(t, router, http.MethodGet, "/v1/session/lineup/available", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, env.Data, 9)

	code, env = call(t, router, http.MethodPut, "/v1/session/lineup/order", `{"names":["Ben Carter","Ava Martinez"]}`)
	require.Equal(t, http.StatusOK, code)
	entries := dataMap(t, env)["lineup"].(map[string]any)["entries"].([]any)
	assert.Equal(t, "Ben Carter", entries[0].(map[string]any)["name"])

	code, _ = call(t, router, http.MethodPut, "/v1/session/lineup/players/"+ava+"/position", `{"position":"SS"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = call(t, router, http.MethodPut, "/v1/session/lineup/players/"+url.PathEscape("Ben Carter")+"/position", `{"position":"C"}`)
	require.Equal(t, http.StatusOK, code)

	code, env = call(t, router, http.MethodPost, "/v1/session/lineup/save", "")
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	assert.EqualValues(t, 1, dataMap(t, env)["id"])

	code, env = call(t, router, http.MethodPost, "/v1/session/rotation/sync-lineup", "")
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	assert.EqualValues(t, 1, dataMap(t, env)["id"])

	code, env = call(t, router, http.MethodGet, "/v1/session", "")
	require.Equal(t, http.StatusOK, code)
	first := rotationOf(t, env)["assignments"].(map[string]any)["1"].(map[string]any)
	assert.Equal(t, map[string]any{"SS": "Ava Martinez", "C": "Ben Carter"}, first)
	assert.Equal(t, false, dataMap(t, env)["unsaved"])

	code, _ = call(t, router, http.MethodDelete, "/v1/session/lineup/players/"+ava, "")
	require.Equal(t, http.StatusOK, code)
	code, env = call(t, router, http.MethodGet, "/v1/session", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, dataMap(t, env)["lineup"].(map[string]any)["entries"], 1)
	assert.Equal(t, true, dataMap(t, env)["unsaved"])
}

func TestRouter_SaveFailureMapsToBadGateway(t *testing.T) {
	gameID := memory.DemoGameID
	router := newTestRouter(t, func(s *gameday.Snapshot) {
		s.Lineup = &gameday.LineupRecord{ID: 99, Title: "Stale", AssociatedGameID: &gameID}
	})

	code, env := call(t, router, http.MethodPost, "/v1/session/lineup/save", "")
	require.Equal(t, http.StatusBadGateway, code)
	items := env.Error["errors"].([]any)
	assert.Equal(t, "saveFailed", items[0].(map[string]any)["reason"])
	assert.Contains(t, env.Error["message"], "Lineup not found.")
}

func TestRouter_ReloadAndPitching(t *testing.T) {
	router := newTestRouter(t, nil)

	code, _ := call(t, router, http.MethodPost, "/v1/session/rotation/innings", "")
	require.Equal(t, http.StatusCreated, code)

	code, env := call(t, router, http.MethodPost, "/v1/session/reload", "")
	require.Equal(t, http.StatusOK, code, "error: %v", env.Error)
	assert.Equal(t, []any{float64(1)}, rotationOf(t, env)["innings"], "unsaved inning is discarded")

	code, env = call(t, router, http.MethodGet, "/v1/session/pitching", "")
	require.Equal(t, http.StatusOK, code)
	rows := env.Data.([]any)
	require.NotEmpty(t, rows)
	byName := map[string]map[string]any{}
	for _, row := range rows {
		m := row.(map[string]any)
		byName[m["name"].(string)] = m
	}
	require.Contains(t, byName, "Cal Nguyen")
	assert.Equal(t, "Resting", byName["Cal Nguyen"]["status"])
	assert.EqualValues(t, 48, byName["Cal Nguyen"]["weekly_pitches"])
	require.Contains(t, byName, "Kai Reed")
	assert.EqualValues(t, 0, byName["Kai Reed"]["weekly_pitches"])
	assert.EqualValues(t, 70, byName["Kai Reed"]["total_pitches"])
	assert.EqualValues(t, 1, byName["Kai Reed"]["appearances"])
	assert.EqualValues(t, 4, byName["Kai Reed"]["innings_pitched"])
	assert.NotContains(t, byName, "Ben Carter")

	code, _ = call(t, router, http.MethodGet, "/v1/session/position-counts", "")
	assert.Equal(t, http.StatusOK, code)
}
