/* advance.go
 * Contains the progression engine: seeds a completed match's winner into the
 * correct next-round slot, or records the bracket champion
 * Authors: Zachary Bower
 */

package logic

import "brackets-bot/api/shared"

// AdvanceWinner marks the match at (roundIndex, matchIndex) completed with
// the given winner and feeds the winner forward. It operates on a deep clone
// so the caller's structure is never aliased.
//
// The feed slot is determined by parity: an even match index feeds Player1 of
// the next match, an odd one feeds Player2. Match index i in round r feeds
// match i/2 in round r+1. On the final round the structure's Winner and
// Completed fields are set instead; that state is absorbing.
//
// The returned bool reports whether the self-pairing guard fired: if the
// opposite slot of the target match already held a player with the winner's
// id, the occupant is swapped into the other slot before the winner is
// seeded. A correctly built tree never triggers this; callers should treat it
// as a signal of a pairing bug elsewhere
func AdvanceWinner(structure shared.BracketStructure, roundIndex, matchIndex int, winner shared.Player) (shared.BracketStructure, bool) {
	updated := structure.Clone()
	swapped := false

	w := winner
	match := &updated.Rounds[roundIndex][matchIndex]
	match.Completed = true
	match.Winner = &w

	if roundIndex < len(updated.Rounds)-1 {
		next := &updated.Rounds[roundIndex+1][matchIndex/2]
		fed := winner
		if matchIndex%2 == 0 {
			if next.Player2 != nil && next.Player2.ID == winner.ID {
				next.Player2 = next.Player1
				next.Player1 = &fed
				swapped = true
			} else {
				next.Player1 = &fed
			}
		} else {
			if next.Player1 != nil && next.Player1.ID == winner.ID {
				next.Player1 = next.Player2
				next.Player2 = &fed
				swapped = true
			} else {
				next.Player2 = &fed
			}
		}
	} else {
		champion := winner
		updated.Winner = &champion
		updated.Completed = true
	}

	return updated, swapped
}
