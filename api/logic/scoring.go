/* scoring.go
 * Contains the scoring and comparison logic shared by every advancement path,
 * so the handicap and tie-break rules live in exactly one place
 * Authors: Zachary Bower
 */

package logic

import "brackets-bot/api/shared"

// TotalScore returns the score used for match comparison: the raw score plus
// the player's handicap for Handicap cohorts, the raw score alone for Scratch
func TotalScore(score, handicap int, cohortType shared.CohortType) int {
	if cohortType == shared.CohortHandicap {
		return score + handicap
	}
	return score
}

// PickWinner decides the winner of a match given both players' raw scores.
// An exact tie on total score resolves to the player in slot 1. That is an
// intentional deterministic tie-break, not a placeholder.
// Both player slots must be populated; the reconciliation driver guarantees
// this before calling
func PickWinner(match shared.Match, score1, score2 int, cohortType shared.CohortType) shared.Player {
	total1 := TotalScore(score1, match.Player1.Handicap, cohortType)
	total2 := TotalScore(score2, match.Player2.Handicap, cohortType)
	if total2 > total1 {
		return *match.Player2
	}
	return *match.Player1
}
