/* queries.go
 * Contains read-only queries over cohorts, brackets and player liveness
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"brackets-bot/api/logic"
	"brackets-bot/api/shared"
)

// GetCohortBrackets returns every bracket belonging to a cohort
func (a *API) GetCohortBrackets(cohortID string) ([]shared.Bracket, error) {
	if _, err := a.GetCohort(cohortID); err != nil {
		return nil, err
	}
	return a.Store.GetCohortBrackets(cohortID)
}

// IsPlayerLive reports whether a player can still win at least one of the
// cohort's brackets. A player who appears in none of the brackets is live,
// which keeps liveness checks safe to run for spectators and late entrants
func (a *API) IsPlayerLive(cohortID string, playerID string) (bool, error) {
	brackets, err := a.GetCohortBrackets(cohortID)
	if err != nil {
		return false, err
	}
	return logic.IsPlayerLiveInCohort(playerID, brackets), nil
}

// IsScoreRelevant reports whether recording the given game for the player can
// still affect any bracket in the cohort. Game one is always relevant
func (a *API) IsScoreRelevant(cohortID string, playerID string, gameNumber int) (bool, error) {
	if gameNumber < 1 || gameNumber > shared.NumRounds {
		return false, fmt.Errorf("%w: got %d", ErrInvalidGameNumber, gameNumber)
	}
	brackets, err := a.GetCohortBrackets(cohortID)
	if err != nil {
		return false, err
	}
	return logic.IsScoreRelevant(playerID, gameNumber, brackets), nil
}

// GetCohortOverview loads a cohort together with its brackets and payouts
func (a *API) GetCohortOverview(cohortID string) (CohortOverview, error) {
	cohort, err := a.GetCohort(cohortID)
	if err != nil {
		return CohortOverview{}, err
	}

	overview := CohortOverview{Cohort: cohort}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		overview.Brackets, err = a.Store.GetCohortBrackets(cohortID)
		return err
	})
	g.Go(func() error {
		var err error
		overview.Payouts, err = a.Store.GetCohortPayouts(cohortID)
		return err
	})
	if err := g.Wait(); err != nil {
		return CohortOverview{}, err
	}
	return overview, nil
}

// GetCohortOverviews loads every cohort with its brackets and payouts,
// fetching the per-cohort data concurrently
func (a *API) GetCohortOverviews() ([]CohortOverview, error) {
	cohorts, err := a.Store.GetCohorts()
	if err != nil {
		return nil, err
	}

	overviews := make([]CohortOverview, len(cohorts))
	var g errgroup.Group
	for i, cohort := range cohorts {
		g.Go(func() error {
			overview, err := a.GetCohortOverview(cohort.ID)
			if err != nil {
				return err
			}
			overviews[i] = overview
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overviews, nil
}
