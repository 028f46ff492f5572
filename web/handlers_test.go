/* handlers_test.go
 * Contains unit tests for handlers.go using httptest
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brackets-bot/api/api"
	"brackets-bot/api/shared"
)

// setupServer builds a server over a deployed eight player cohort backed by mocks
func setupServer(t *testing.T) (*Server, shared.Cohort, []shared.Player) {
	t.Helper()
	a := api.NewTestAPI(api.NewMockStore())

	names := []string{
		"Alice Walker", "Bob Stone", "Carol Reyes", "Dan Brooks",
		"Erin Fox", "Frank Hale", "Grace Kim", "Henry Cole",
	}
	players := make([]shared.Player, len(names))
	for i, name := range names {
		p, err := a.AddPlayer(name, 150+i, i)
		require.NoError(t, err)
		players[i] = p
	}

	cohort, err := a.CreateCohort("Web League", shared.CohortScratch)
	require.NoError(t, err)
	for _, p := range players {
		require.NoError(t, a.EnterPlayer(cohort.ID, p.ID, 1))
	}
	_, err = a.DeployCohort(cohort.ID)
	require.NoError(t, err)

	return &Server{api: a}, cohort, players
}

func TestCohortsHandler(t *testing.T) {
	server, _, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cohorts", nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var overviews []api.CohortOverview
	require.NoError(t, json.NewDecoder(w.Body).Decode(&overviews))
	require.Len(t, overviews, 1)
	assert.Equal(t, "Web League", overviews[0].Cohort.Name)
	assert.Len(t, overviews[0].Brackets, 1)
}

func TestCohortHandler(t *testing.T) {
	server, cohort, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cohorts/"+cohort.ID, nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var overview api.CohortOverview
	require.NoError(t, json.NewDecoder(w.Body).Decode(&overview))
	assert.Equal(t, cohort.ID, overview.Cohort.ID)
}

func TestCohortHandler_NotFound(t *testing.T) {
	server, _, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cohorts/does_not_exist", nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBracketsHandler(t *testing.T) {
	server, cohort, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cohorts/"+cohort.ID+"/brackets", nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var brackets []shared.Bracket
	require.NoError(t, json.NewDecoder(w.Body).Decode(&brackets))
	require.Len(t, brackets, 1)
	assert.Len(t, brackets[0].Players, shared.BracketSize)
}

func TestPayoutsHandler(t *testing.T) {
	server, cohort, players := setupServer(t)

	req := httptest.NewRequest(http.MethodGet, "/cohorts/"+cohort.ID+"/payouts", nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var payouts []shared.Payout
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payouts))
	assert.Empty(t, payouts)

	// Complete the bracket, then the payouts appear
	for game := 1; game <= 3; game++ {
		for i, p := range players {
			_, err := server.api.RecordScore(cohort.ID, p.ID, game, 100+i*10)
			require.NoError(t, err)
		}
	}

	w = httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&payouts))
	assert.Len(t, payouts, 3)
}

func TestMethodNotAllowed(t *testing.T) {
	server, cohort, _ := setupServer(t)

	req := httptest.NewRequest(http.MethodPost, "/cohorts/"+cohort.ID, nil)
	w := httptest.NewRecorder()
	server.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
