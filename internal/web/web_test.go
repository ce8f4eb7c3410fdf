package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/darts/internal/cache/mem"
	"github.com/goserg/darts/internal/config"
	"github.com/goserg/darts/internal/service"
	"github.com/goserg/darts/internal/storage/sqlite"
	"github.com/goserg/darts/internal/web/webpath"
)

func newServer(t *testing.T) *Server {
	t.Helper()
	l, _ := test.NewNullLogger()
	st, err := sqlite.New(l, config.Storage{SqliteFile: filepath.Join(t.TempDir(), "darts.sqlite")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	ms := service.New(l, st, st, mem.New(), config.Match{SetsToWin: 1, LegsToWin: 1})
	return New(l, ms, config.Server{})
}

func do(t *testing.T, s *Server, method, path, body string) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func createMatch(t *testing.T, s *Server, body string) matchView {
	t.Helper()
	status, data := do(t, s, http.MethodPost, webpath.ApiMatches, body)
	require.Equal(t, http.StatusCreated, status, string(data))
	var view matchView
	require.NoError(t, json.Unmarshal(data, &view))
	return view
}

func throw(t *testing.T, s *Server, id uuid.UUID, target string) throwResponse {
	t.Helper()
	status, data := do(t, s, http.MethodPost, throwsPath(id), `{"target":"`+target+`"}`)
	require.Equal(t, http.StatusOK, status, string(data))
	var resp throwResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

func matchPath(id uuid.UUID) string {
	return webpath.ApiMatches + "/" + id.String()
}

func throwsPath(id uuid.UUID) string {
	return matchPath(id) + "/throws"
}

func TestCreateAndPlayMatch(t *testing.T) {
	s := newServer(t)
	view := createMatch(t, s, `{"players":["Alice","Bob"]}`)
	assert.Equal(t, "Alice vs Bob", view.Title)
	assert.Equal(t, "501 - First to 1 set", view.Description)
	assert.Equal(t, "Alice", view.Active.Player)
	assert.Equal(t, 501, view.Active.Score)
	assert.Equal(t, 1, view.SetNumber)
	assert.Equal(t, 1, view.LegNumber)
	require.Len(t, view.Players, 2)

	throw(t, s, view.ID, "T20")
	resp := throw(t, s, view.ID, "t19")
	assert.Equal(t, "scored", string(resp.Result.Outcome))
	assert.Equal(t, "T20, T19", resp.Match.Active.Turn)
	assert.Equal(t, 501, resp.Match.Active.Score)
	assert.Equal(t, 384, resp.Match.Active.Outstanding)

	resp = throw(t, s, view.ID, "Outer Bull")
	assert.Equal(t, "turn_ended", string(resp.Result.Outcome))
	assert.Equal(t, "Bob", resp.Match.Active.Player)
	assert.Equal(t, 359, resp.Match.Players[0].Remaining)
	assert.Equal(t, 1, resp.Match.Players[0].Leg.OneForties)

	status, data := do(t, s, http.MethodGet, matchPath(view.ID), "")
	require.Equal(t, http.StatusOK, status)
	var got matchView
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, resp.Match, got)

	status, data = do(t, s, http.MethodGet, throwsPath(view.ID), "")
	require.Equal(t, http.StatusOK, status)
	var throws throwsResponse
	require.NoError(t, json.Unmarshal(data, &throws))
	require.Len(t, throws.Throws, 3)
	assert.Equal(t, "Outer Bull", throws.Throws[2].Target.Label())

	status, data = do(t, s, http.MethodPost, matchPath(view.ID)+"/rebuild", "")
	require.Equal(t, http.StatusOK, status, string(data))
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, resp.Match.Players, got.Players)
}

func TestPlayToWin(t *testing.T) {
	s := newServer(t)
	view := createMatch(t, s, `{"players":["Alice","Bob"],"startingPlayer":1}`)
	assert.Equal(t, "Bob", view.Active.Player)

	targets := []string{
		"T20", "T20", "T20", "Miss", "Miss", "Miss",
		"T20", "T20", "T20", "Miss", "Miss", "Miss",
		"T20", "T19", "D12",
	}
	var resp throwResponse
	for _, target := range targets {
		resp = throw(t, s, view.ID, target)
	}
	assert.True(t, resp.Result.MatchCompleted)
	assert.Equal(t, "checkout", string(resp.Result.Outcome))
	assert.Equal(t, "Bob", resp.Match.Winner)
	assert.True(t, resp.Match.Complete)

	resp = throw(t, s, view.ID, "T20")
	assert.Equal(t, "ignored", string(resp.Result.Outcome))

	status, data := do(t, s, http.MethodGet, webpath.ApiRatings, "")
	require.Equal(t, http.StatusOK, status)
	var ratings []struct {
		Player string `json:"player"`
		Elo    int    `json:"elo"`
	}
	require.NoError(t, json.Unmarshal(data, &ratings))
	require.Len(t, ratings, 2)
	assert.Equal(t, "Bob", ratings[0].Player)
	assert.Equal(t, 1020, ratings[0].Elo)
}

func TestWinSetServesNextSet(t *testing.T) {
	s := newServer(t)
	view := createMatch(t, s, `{"players":["Alice","Bob"],"setsToWin":2}`)
	assert.Equal(t, "501 - First to 2 sets", view.Description)

	targets := []string{
		"T20", "T20", "T20", "Miss", "Miss", "Miss",
		"T20", "T20", "T20", "Miss", "Miss", "Miss",
		"T20", "T19", "D12",
	}
	var resp throwResponse
	for _, target := range targets {
		resp = throw(t, s, view.ID, target)
	}
	assert.True(t, resp.Result.SetCompleted)
	assert.False(t, resp.Result.MatchCompleted)
	assert.False(t, resp.Match.Complete)
	assert.Equal(t, 2, resp.Match.SetNumber)
	assert.Equal(t, 1, resp.Match.LegNumber)
	assert.Equal(t, "Bob", resp.Match.Active.Player)
	require.Len(t, resp.Match.Players, 2)
	for _, p := range resp.Match.Players {
		assert.Equal(t, 0, p.LegsWon)
		assert.Equal(t, 501, p.Remaining)
		assert.Equal(t, 0, p.Set.Throws)
	}
	assert.Equal(t, 1, resp.Match.Players[0].SetsWon)

	status, data := do(t, s, http.MethodGet, matchPath(view.ID), "")
	require.Equal(t, http.StatusOK, status, string(data))
	var got matchView
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, resp.Match, got)

	resp = throw(t, s, view.ID, "T20")
	assert.Equal(t, "scored", string(resp.Result.Outcome))
	assert.Equal(t, 2, resp.Match.SetNumber)
}

func TestListMatchesAndPlayers(t *testing.T) {
	s := newServer(t)
	view := createMatch(t, s, `{"players":["Alice","Bob"]}`)
	createMatch(t, s, `{"players":["alice","Carol"],"setsToWin":2}`)

	month := view.CreatedAt.UTC().Format("2006-01")
	status, data := do(t, s, http.MethodGet, webpath.ApiMatches+"?month="+month, "")
	require.Equal(t, http.StatusOK, status, string(data))
	var matches []matchSummary
	require.NoError(t, json.Unmarshal(data, &matches))
	require.Len(t, matches, 2)
	assert.Equal(t, "Alice vs Bob", matches[0].Title)
	assert.Equal(t, "501 - First to 2 sets", matches[1].Description)

	s.now = func() time.Time { return view.CreatedAt.AddDate(1, 0, 0) }
	status, data = do(t, s, http.MethodGet, webpath.ApiMatches, "")
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(data, &matches))
	assert.Empty(t, matches)

	status, data = do(t, s, http.MethodGet, webpath.ApiPlayers, "")
	require.Equal(t, http.StatusOK, status)
	var players []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(data, &players))
	assert.Len(t, players, 3)
}

func TestTargets(t *testing.T) {
	s := newServer(t)
	status, data := do(t, s, http.MethodGet, webpath.ApiTargets, "")
	require.Equal(t, http.StatusOK, status)
	var labels []string
	require.NoError(t, json.Unmarshal(data, &labels))
	require.Len(t, labels, 63)
	assert.Equal(t, "Miss", labels[0])
	assert.Equal(t, "S1", labels[1])
	assert.Equal(t, "Outer Bull", labels[61])
	assert.Equal(t, "Bull", labels[62])
}

func TestErrors(t *testing.T) {
	s := newServer(t)
	view := createMatch(t, s, `{"players":["Alice","Bob"]}`)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "no players", method: http.MethodPost, path: webpath.ApiMatches, body: `{"players":[]}`, want: http.StatusBadRequest},
		{name: "duplicate players", method: http.MethodPost, path: webpath.ApiMatches, body: `{"players":["Bob","bob"]}`, want: http.StatusBadRequest},
		{name: "broken json", method: http.MethodPost, path: webpath.ApiMatches, body: `{"players":`, want: http.StatusBadRequest},
		{name: "bad month", method: http.MethodGet, path: webpath.ApiMatches + "?month=march", want: http.StatusBadRequest},
		{name: "bad id", method: http.MethodGet, path: webpath.ApiMatches + "/42", want: http.StatusBadRequest},
		{name: "unknown match", method: http.MethodGet, path: matchPath(uuid.New()), want: http.StatusNotFound},
		{name: "throw to unknown match", method: http.MethodPost, path: throwsPath(uuid.New()), body: `{"target":"T20"}`, want: http.StatusNotFound},
		{name: "bad target", method: http.MethodPost, path: throwsPath(view.ID), body: `{"target":"T21"}`, want: http.StatusBadRequest},
		{name: "empty target", method: http.MethodPost, path: throwsPath(view.ID), body: `{}`, want: http.StatusBadRequest},
		{name: "unknown route", method: http.MethodGet, path: "/api/nope", want: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, data := do(t, s, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status, string(data))
			var resp errorResponse
			require.NoError(t, json.Unmarshal(data, &resp))
			assert.NotEmpty(t, resp.Errors)
		})
	}
}
