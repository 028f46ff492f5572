/* reconcile.go
 * Contains the score recording entrypoint and the reconciliation driver that
 * cascades winners through a cohort's brackets whenever new scores arrive
 * Authors: Zachary Bower
 */

package api

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"brackets-bot/api/logic"
	"brackets-bot/api/shared"
)

// A full sweep advances at most seven matches per bracket, so eight passes
// guarantees one quiescent pass when the data is consistent. Hitting the cap
// means the stored structure is feeding winners in a cycle
const maxReconcilePasses = 8

type scoreKey struct {
	playerID   string
	gameNumber int
}

// RecordScore stores a player's score for one game of a cohort and runs
// reconciliation so any matches the score completes are resolved immediately.
// It receives the cohort id, player id, game number (1 to 3) and raw score.
// Submitting a score twice overwrites the earlier value and re-reconciles.
// It returns a ResyncResult describing the cascade, or an error if it occurs.
func (a *API) RecordScore(cohortID string, playerID string, gameNumber int, score int) (ResyncResult, error) {
	if gameNumber < 1 || gameNumber > shared.NumRounds {
		return ResyncResult{}, fmt.Errorf("%w: got %d", ErrInvalidGameNumber, gameNumber)
	}
	if score < 0 || score > shared.MaxScore {
		return ResyncResult{}, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, score)
	}

	cohort, err := a.GetCohort(cohortID)
	if err != nil {
		return ResyncResult{}, err
	}
	// Scores are accepted for complete cohorts too. Late submissions for
	// already-eliminated players are harmless because reconciliation only
	// looks at scores that can still resolve a match
	if cohort.Status == shared.CohortNotDeployed {
		return ResyncResult{}, fmt.Errorf("%w: %s is %s", ErrCohortNotActive, cohortID, cohort.Status)
	}

	if _, err := a.GetPlayer(playerID); err != nil {
		return ResyncResult{}, err
	}

	err = a.Store.UpsertGame(shared.Game{
		CohortID:   cohortID,
		PlayerID:   playerID,
		GameNumber: gameNumber,
		Score:      score,
	})
	if err != nil {
		return ResyncResult{}, err
	}

	a.log.WithFields(logrus.Fields{
		"cohort": cohortID,
		"player": playerID,
		"game":   gameNumber,
		"score":  score,
	}).Info("recorded score")

	return a.reconcileCohort(cohort)
}

// ResyncCohort re-runs reconciliation across all of a cohort's brackets
// without recording a new score. Useful after manual data repair, and always
// safe to call because every step it performs is idempotent.
func (a *API) ResyncCohort(cohortID string) (ResyncResult, error) {
	cohort, err := a.GetCohort(cohortID)
	if err != nil {
		return ResyncResult{}, err
	}
	return a.reconcileCohort(cohort)
}

// reconcileCohort sweeps every bracket in the cohort, advancing all matches
// whose both sides have scores, settling brackets that complete, and promoting
// the cohort to complete once every bracket has a winner
func (a *API) reconcileCohort(cohort shared.Cohort) (ResyncResult, error) {
	brackets, err := a.Store.GetCohortBrackets(cohort.ID)
	if err != nil {
		return ResyncResult{}, err
	}
	games, err := a.Store.GetCohortGames(cohort.ID)
	if err != nil {
		return ResyncResult{}, err
	}

	scores := make(map[scoreKey]int, len(games))
	for _, g := range games {
		scores[scoreKey{playerID: g.PlayerID, gameNumber: g.GameNumber}] = g.Score
	}

	result := ResyncResult{}
	allComplete := len(brackets) > 0
	var failed int
	for _, bracket := range brackets {
		reconciled, advancements, err := a.reconcileBracket(bracket, scores, cohort.Type)
		if err != nil {
			// One corrupt bracket should not block the rest of the cohort
			a.log.WithFields(logrus.Fields{"bracket": bracket.ID}).WithError(err).Error("bracket reconciliation failed")
			failed++
			allComplete = false
			continue
		}
		if advancements > 0 {
			result.BracketsUpdated++
		}

		if reconciled.Structure.Completed {
			completion, err := a.settleBracket(cohort, reconciled)
			if err != nil {
				a.log.WithFields(logrus.Fields{"bracket": bracket.ID}).WithError(err).Error("bracket settlement failed")
				failed++
				allComplete = false
				continue
			}
			if completion != nil {
				result.Completions = append(result.Completions, *completion)
			}
		} else {
			allComplete = false
		}
	}

	if allComplete && cohort.Status == shared.CohortActive {
		if err := a.Store.UpdateCohortStatus(cohort.ID, shared.CohortComplete); err != nil {
			return result, err
		}
		a.log.WithFields(logrus.Fields{"cohort": cohort.ID}).Info("cohort complete")
		for i := range result.Completions {
			result.Completions[i].CohortComplete = true
		}
	}

	if failed > 0 {
		return result, fmt.Errorf("%d of %d brackets failed to reconcile", failed, len(brackets))
	}
	return result, nil
}

// reconcileBracket advances every resolvable match in one bracket. Each
// advancement is persisted before the scan restarts from round one, so a crash
// mid-cascade leaves the stored structure valid and a later resync finishes
// the job. Returns the final bracket state and the number of advancements made
func (a *API) reconcileBracket(bracket shared.Bracket, scores map[scoreKey]int, cohortType shared.CohortType) (shared.Bracket, int, error) {
	advancements := 0
	for pass := 0; pass < maxReconcilePasses; pass++ {
		// Re-read so each pass works from what was actually persisted
		current, err := a.Store.GetBracket(bracket.ID)
		if err != nil {
			return shared.Bracket{}, advancements, err
		}
		// A malformed shape must fail here, inside the per-bracket isolation,
		// rather than panic out of the whole cohort sweep
		if err := logic.ValidateStructure(current.Structure); err != nil {
			return shared.Bracket{}, advancements, fmt.Errorf("bracket %s has malformed structure: %w", current.ID, err)
		}

		roundIndex, matchIndex, winner, found := a.nextAdvancement(current, scores, cohortType)
		if !found {
			return current, advancements, nil
		}

		updated, swapped := logic.AdvanceWinner(current.Structure, roundIndex, matchIndex, winner)
		if swapped {
			a.log.WithFields(logrus.Fields{
				"bracket": current.ID,
				"round":   roundIndex,
				"match":   matchIndex,
			}).Warn("corrected winner slot to avoid self-pairing")
		}

		if err := a.Store.UpdateBracketStructure(current.ID, updated); err != nil {
			return shared.Bracket{}, advancements, err
		}
		advancements++
	}
	return shared.Bracket{}, advancements, fmt.Errorf("%w: bracket %s", ErrReconcileStalled, bracket.ID)
}

// nextAdvancement finds the first incomplete match whose both players have a
// recorded score for that round's game, and computes its winner
func (a *API) nextAdvancement(bracket shared.Bracket, scores map[scoreKey]int, cohortType shared.CohortType) (int, int, shared.Player, bool) {
	for r, round := range bracket.Structure.Rounds {
		gameNumber := r + 1
		for m, match := range round {
			if match.Completed || !match.HasBothPlayers() {
				continue
			}
			s1, ok1 := scores[scoreKey{playerID: match.Player1.ID, gameNumber: gameNumber}]
			s2, ok2 := scores[scoreKey{playerID: match.Player2.ID, gameNumber: gameNumber}]
			if !ok1 || !ok2 {
				continue
			}
			winner := logic.PickWinner(match, s1, s2, cohortType)
			return r, m, winner, true
		}
	}
	return 0, 0, shared.Player{}, false
}
