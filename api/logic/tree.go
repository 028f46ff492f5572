/* tree.go
 * Contains the elimination tree builder: 8 players -> 4 matches -> 2 -> 1
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"

	"brackets-bot/api/shared"
)

// BuildStructure constructs the 3-round elimination tree for one bracket.
// The 8 players are shuffled, round 1 pairs consecutive players into 4
// matches, and rounds 2 and 3 are pre-allocated with both slots TBD. The
// assigner guarantees the players are distinct; this only checks the count
func BuildStructure(players []shared.Player) (shared.BracketStructure, error) {
	if len(players) != shared.BracketSize {
		return shared.BracketStructure{}, fmt.Errorf("bracket requires exactly %d players, got %d", shared.BracketSize, len(players))
	}

	shuffled := Shuffle(players)

	round1 := make([]shared.Match, 0, shared.BracketSize/2)
	for i := 0; i < len(shuffled); i += 2 {
		p1 := shuffled[i]
		p2 := shuffled[i+1]
		round1 = append(round1, shared.Match{Player1: &p1, Player2: &p2})
	}

	return shared.BracketStructure{
		Rounds: [][]shared.Match{
			round1,
			make([]shared.Match, 2),
			make([]shared.Match, 1),
		},
	}, nil
}

// ValidateStructure checks that a structure has the 4/2/1 round shape that
// progression relies on. Structures written by older or external tools can
// carry short or empty later rounds; advancing through one of those would
// index out of range, so callers must reject it before advancing
func ValidateStructure(structure shared.BracketStructure) error {
	if len(structure.Rounds) != shared.NumRounds {
		return fmt.Errorf("structure has %d rounds, want %d", len(structure.Rounds), shared.NumRounds)
	}
	want := shared.BracketSize / 2
	for i, round := range structure.Rounds {
		if len(round) != want {
			return fmt.Errorf("round %d has %d matches, want %d", i+1, len(round), want)
		}
		want /= 2
	}
	return nil
}
