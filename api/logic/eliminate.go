/* eliminate.go
 * Contains the derived elimination and score-relevance queries. These are
 * advisory helpers for entry surfaces; the reconciliation driver re-derives
 * eligibility from the bracket structures directly and never depends on them
 * Authors: Zachary Bower
 */

package logic

import "brackets-bot/api/shared"

// IsPlayerEliminated reports whether any completed match in the bracket
// involving the player was won by someone else
func IsPlayerEliminated(bracket shared.Bracket, playerID string) bool {
	for _, round := range bracket.Structure.Rounds {
		for _, m := range round {
			if !m.Completed || m.Winner == nil {
				continue
			}
			involved := (m.Player1 != nil && m.Player1.ID == playerID) ||
				(m.Player2 != nil && m.Player2.ID == playerID)
			if involved && m.Winner.ID != playerID {
				return true
			}
		}
	}
	return false
}

// IsPlayerLiveInCohort reports whether the player can still win something in
// the cohort. A player in zero brackets is vacuously live (viewing surfaces
// may query before assignment has run)
func IsPlayerLiveInCohort(playerID string, brackets []shared.Bracket) bool {
	entered := false
	for _, b := range brackets {
		if !b.ContainsPlayer(playerID) {
			continue
		}
		entered = true
		if !IsPlayerEliminated(b, playerID) {
			return true
		}
	}
	return !entered
}

// IsScoreRelevant reports whether entering a score for the given game number
// is still meaningful for the player. Game 1 is always relevant; game N is
// relevant if at least one of the player's brackets still has them alive
// going into round N. Like the liveness check, a player in zero brackets is
// vacuously relevant
func IsScoreRelevant(playerID string, gameNumber int, brackets []shared.Bracket) bool {
	if gameNumber <= 1 {
		return true
	}
	entered := false
	for _, b := range brackets {
		if !b.ContainsPlayer(playerID) {
			continue
		}
		entered = true
		if aliveEnteringRound(b, playerID, gameNumber) {
			return true
		}
	}
	return !entered
}

// aliveEnteringRound reports whether the player has not lost any completed
// match in the rounds before the given one
func aliveEnteringRound(bracket shared.Bracket, playerID string, round int) bool {
	for ri := 0; ri < round-1 && ri < len(bracket.Structure.Rounds); ri++ {
		for _, m := range bracket.Structure.Rounds[ri] {
			if !m.Completed || m.Winner == nil {
				continue
			}
			involved := (m.Player1 != nil && m.Player1.ID == playerID) ||
				(m.Player2 != nil && m.Player2.ID == playerID)
			if involved && m.Winner.ID != playerID {
				return false
			}
		}
	}
	return true
}
