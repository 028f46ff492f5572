/* payouts.go
 * Contains bracket settlement and payout lookup methods
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"brackets-bot/api/shared"
)

// settleBracket records the payout set for a completed bracket exactly once.
// The existence check plus deterministic payout ids make settlement idempotent
// no matter how many resyncs observe the same completed bracket. Returns a
// Completion when this call performed the settlement, nil when it was already done
func (a *API) settleBracket(cohort shared.Cohort, bracket shared.Bracket) (*shared.Completion, error) {
	exists, err := a.Store.PayoutsExistForBracket(bracket.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, nil
	}

	winner := bracket.Structure.Winner
	if winner == nil {
		return nil, fmt.Errorf("bracket %s marked complete but has no winner", bracket.ID)
	}

	final := bracket.Structure.FinalMatch()
	if !final.HasBothPlayers() {
		return nil, fmt.Errorf("bracket %s marked complete but final match is missing players", bracket.ID)
	}
	second := *final.Player1
	if second.ID == winner.ID {
		second = *final.Player2
	}

	date := time.Now().Format("2006-01-02")
	payouts := []shared.Payout{
		{
			ID:         bracket.ID + "_first",
			CohortID:   cohort.ID,
			CohortName: cohort.Name,
			BracketID:  bracket.ID,
			PlayerID:   winner.ID,
			PlayerName: winner.Name,
			Amount:     a.Payouts.First,
			Position:   shared.PositionFirst,
			Date:       date,
		},
		{
			ID:         bracket.ID + "_second",
			CohortID:   cohort.ID,
			CohortName: cohort.Name,
			BracketID:  bracket.ID,
			PlayerID:   second.ID,
			PlayerName: second.Name,
			Amount:     a.Payouts.Second,
			Position:   shared.PositionSecond,
			Date:       date,
		},
		{
			ID:         bracket.ID + "_operator",
			CohortID:   cohort.ID,
			CohortName: cohort.Name,
			BracketID:  bracket.ID,
			PlayerName: "Operator",
			Amount:     a.Payouts.Operator,
			Position:   shared.PositionOperator,
			Date:       date,
			IsOperator: true,
		},
	}

	if err := a.Store.InsertPayouts(payouts); err != nil {
		return nil, err
	}

	a.log.WithFields(logrus.Fields{
		"bracket": bracket.ID,
		"winner":  winner.Name,
		"second":  second.Name,
	}).Info("settled bracket")

	return &shared.Completion{
		CohortID:      cohort.ID,
		BracketID:     bracket.ID,
		BracketNumber: bracket.BracketNumber,
		Winner:        *winner,
	}, nil
}

// GetBracketPayouts returns the payouts recorded for one settled bracket,
// empty when the bracket has not been settled yet
func (a *API) GetBracketPayouts(bracketID string) ([]shared.Payout, error) {
	if _, err := a.Store.GetBracket(bracketID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("bracket not found: %s", bracketID)
		}
		return nil, err
	}
	return a.Store.GetBracketPayouts(bracketID)
}

// GetCohortPayouts returns every payout recorded for a cohort's brackets
func (a *API) GetCohortPayouts(cohortID string) ([]shared.Payout, error) {
	if _, err := a.GetCohort(cohortID); err != nil {
		return nil, err
	}
	return a.Store.GetCohortPayouts(cohortID)
}

// GetPlayerPayouts returns every payout a player has earned across all cohorts
func (a *API) GetPlayerPayouts(playerID string) ([]shared.Payout, error) {
	if _, err := a.GetPlayer(playerID); err != nil {
		return nil, err
	}
	return a.Store.GetPlayerPayouts(playerID)
}
