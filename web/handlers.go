/* handlers.go
 * Contains the read-only HTTP endpoints for cohorts, brackets and payouts
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"brackets-bot/api/api"
)

// routes binds the handler methods that have access to s.api
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /cohorts", s.CohortsHandler)
	mux.HandleFunc("GET /cohorts/{id}", s.CohortHandler)
	mux.HandleFunc("GET /cohorts/{id}/brackets", s.BracketsHandler)
	mux.HandleFunc("GET /cohorts/{id}/payouts", s.PayoutsHandler)
	return mux
}

// CohortsHandler returns every cohort with its brackets and payouts
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: A JSON list of cohort overviews is written to the response
func (s *Server) CohortsHandler(w http.ResponseWriter, r *http.Request) {
	overviews, err := s.api.GetCohortOverviews()
	if err != nil {
		log.Println("failed to load cohorts:", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, overviews)
}

// CohortHandler returns a single cohort with its brackets and payouts
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: A JSON cohort overview is written to the response, or 404 if the cohort does not exist
func (s *Server) CohortHandler(w http.ResponseWriter, r *http.Request) {
	overview, err := s.api.GetCohortOverview(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, overview)
}

// BracketsHandler returns the brackets belonging to one cohort
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: A JSON list of brackets is written to the response, or 404 if the cohort does not exist
func (s *Server) BracketsHandler(w http.ResponseWriter, r *http.Request) {
	brackets, err := s.api.GetCohortBrackets(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, brackets)
}

// PayoutsHandler returns the payouts recorded across one cohort's brackets
// Preconditions: HTTP server has been started, receives HTTP ResponseWriter and Http Request
// Postconditions: A JSON list of payouts is written to the response, or 404 if the cohort does not exist
func (s *Server) PayoutsHandler(w http.ResponseWriter, r *http.Request) {
	payouts, err := s.api.GetCohortPayouts(r.PathValue("id"))
	if err != nil {
		writeLookupError(w, err)
		return
	}
	writeJSON(w, payouts)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("failed to encode response:", err)
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, api.ErrCohortNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	log.Println("lookup failed:", err)
	w.WriteHeader(http.StatusInternalServerError)
}
