/* advance_test.go
 * Contains unit tests for advance.go
 * Authors: Zachary Bower
 */

package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brackets-bot/api/shared"
)

// TestAdvanceWinner_FeedsCorrectSlot tests the parity rule: even match
// indexes feed Player1 of the next match, odd indexes feed Player2
func TestAdvanceWinner_FeedsCorrectSlot(t *testing.T) {
	structure, err := BuildStructure(eightPlayers())
	require.NoError(t, err)

	w0 := *structure.Rounds[0][0].Player1
	updated, swapped := AdvanceWinner(structure, 0, 0, w0)
	assert.False(t, swapped)
	assert.True(t, updated.Rounds[0][0].Completed)
	require.NotNil(t, updated.Rounds[0][0].Winner)
	assert.Equal(t, w0.ID, updated.Rounds[0][0].Winner.ID)
	require.NotNil(t, updated.Rounds[1][0].Player1)
	assert.Equal(t, w0.ID, updated.Rounds[1][0].Player1.ID)
	assert.Nil(t, updated.Rounds[1][0].Player2)

	w1 := *updated.Rounds[0][1].Player2
	updated, swapped = AdvanceWinner(updated, 0, 1, w1)
	assert.False(t, swapped)
	require.NotNil(t, updated.Rounds[1][0].Player2)
	assert.Equal(t, w1.ID, updated.Rounds[1][0].Player2.ID)

	w2 := *updated.Rounds[0][2].Player1
	updated, _ = AdvanceWinner(updated, 0, 2, w2)
	require.NotNil(t, updated.Rounds[1][1].Player1)
	assert.Equal(t, w2.ID, updated.Rounds[1][1].Player1.ID)

	w3 := *updated.Rounds[0][3].Player1
	updated, _ = AdvanceWinner(updated, 0, 3, w3)
	require.NotNil(t, updated.Rounds[1][1].Player2)
	assert.Equal(t, w3.ID, updated.Rounds[1][1].Player2.ID)
}

// TestAdvanceWinner_DoesNotMutateInput tests the deep-clone contract
func TestAdvanceWinner_DoesNotMutateInput(t *testing.T) {
	structure, err := BuildStructure(eightPlayers())
	require.NoError(t, err)

	winner := *structure.Rounds[0][0].Player1
	_, _ = AdvanceWinner(structure, 0, 0, winner)

	assert.False(t, structure.Rounds[0][0].Completed)
	assert.Nil(t, structure.Rounds[0][0].Winner)
	assert.Nil(t, structure.Rounds[1][0].Player1)
}

// TestAdvanceWinner_FinalRound tests that resolving the round-3 match sets
// the champion and completes the bracket
func TestAdvanceWinner_FinalRound(t *testing.T) {
	structure, err := BuildStructure(eightPlayers())
	require.NoError(t, err)

	finalist1 := *structure.Rounds[0][0].Player1
	finalist2 := *structure.Rounds[0][2].Player2
	structure.Rounds[2][0] = shared.Match{Player1: &finalist1, Player2: &finalist2}

	updated, swapped := AdvanceWinner(structure, 2, 0, finalist2)

	assert.False(t, swapped)
	assert.True(t, updated.Completed)
	require.NotNil(t, updated.Winner)
	assert.Equal(t, finalist2.ID, updated.Winner.ID)
	assert.True(t, updated.Rounds[2][0].Completed)
}

// TestAdvanceWinner_SelfPairingGuard tests the defensive slot swap: seeding a
// winner into a match whose other slot already holds the same id swaps the
// occupant out instead of pairing the player against themselves
func TestAdvanceWinner_SelfPairingGuard(t *testing.T) {
	players := eightPlayers()
	structure, err := BuildStructure(players)
	require.NoError(t, err)

	// Corrupt the tree: the winner of match 0 already occupies the slot that
	// match 0 does not feed
	dup := *structure.Rounds[0][0].Player1
	other := players[7]
	structure.Rounds[1][0].Player2 = &dup
	structure.Rounds[1][0].Player1 = &other

	updated, swapped := AdvanceWinner(structure, 0, 0, dup)

	assert.True(t, swapped)
	next := updated.Rounds[1][0]
	require.True(t, next.HasBothPlayers())
	assert.NotEqual(t, next.Player1.ID, next.Player2.ID)
	assert.Equal(t, dup.ID, next.Player1.ID)
	assert.Equal(t, other.ID, next.Player2.ID)
}

// TestAdvanceWinner_FullBracket tests that driving all seven matches in a
// scrambled order produces a consistent champion path
func TestAdvanceWinner_FullBracket(t *testing.T) {
	structure, err := BuildStructure(eightPlayers())
	require.NoError(t, err)

	// Round 1 in scrambled match order; always take the slot-1 player
	for _, mi := range []int{2, 0, 3, 1} {
		structure, _ = AdvanceWinner(structure, 0, mi, *structure.Rounds[0][mi].Player1)
	}
	for _, m := range structure.Rounds[1] {
		assert.True(t, m.HasBothPlayers())
	}

	for _, mi := range []int{1, 0} {
		structure, _ = AdvanceWinner(structure, 1, mi, *structure.Rounds[1][mi].Player2)
	}
	require.True(t, structure.Rounds[2][0].HasBothPlayers())

	champion := *structure.Rounds[2][0].Player1
	structure, _ = AdvanceWinner(structure, 2, 0, champion)

	require.True(t, structure.Completed)
	require.NotNil(t, structure.Winner)
	assert.Equal(t, champion.ID, structure.Winner.ID)

	// The champion must have won a match in every round
	for ri, round := range structure.Rounds {
		won := false
		for _, m := range round {
			if m.Completed && m.Winner != nil && m.Winner.ID == champion.ID {
				won = true
			}
		}
		assert.Truef(t, won, "champion missing from round %d", ri+1)
	}
}
