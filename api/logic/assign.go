/* assign.go
 * Contains the bracket assigner: partitions a pool of player entries into
 * disjoint groups of exactly 8 distinct players
 * Authors: Zachary Bower
 */

package logic

import (
	"math/rand/v2"

	"brackets-bot/api/shared"
)

// Assignment is the result of partitioning entries into bracket groups.
// EntriesRequested vs EntriesPlaced lets the caller report how many tickets
// could not be placed; dropped entries are accepted behaviour for skewed
// entry distributions, not an error
type Assignment struct {
	Groups           [][]shared.Player
	EntriesRequested int
	EntriesPlaced    int
}

// AchievableGroupCount computes how many full groups of 8 can really be
// filled. A naive floor(total/8) overcounts when a few players hold many
// duplicate tickets: each player can occupy at most one slot per group, so
// only min(count, groups) of their tickets are usable. Shrink until the count
// stabilises; usable entries are monotone in the group count so this
// converges in a handful of iterations
func AchievableGroupCount(entries []shared.PlayerEntry) int {
	total := 0
	for _, e := range entries {
		total += e.Count
	}
	count := total / shared.BracketSize
	for count > 0 {
		usable := 0
		for _, e := range entries {
			usable += min(e.Count, count)
		}
		next := usable / shared.BracketSize
		if next >= count {
			break
		}
		count = next
	}
	return count
}

// AssignGroups partitions the entries into disjoint groups of exactly 8
// distinct players. Each player's first ticket is queued ahead of all repeat
// tickets so breadth of unique-player coverage beats depth for any single
// player. Every entry is placed into a uniformly random group that still has
// room and does not already contain the player; entries with no valid group
// are dropped. Groups that do not fill to 8 are discarded. Membership of the
// returned groups is final; their order is shuffled once more so seeding
// inside the tree builder starts from a random order
func AssignGroups(entries []shared.PlayerEntry) Assignment {
	requested := 0
	for _, e := range entries {
		requested += e.Count
	}
	result := Assignment{EntriesRequested: requested}

	groupCount := AchievableGroupCount(entries)
	if groupCount == 0 {
		return result
	}

	var primaries, secondaries []shared.Player
	for _, e := range entries {
		if e.Count < 1 {
			continue
		}
		primaries = append(primaries, e.Player)
		for i := 1; i < e.Count; i++ {
			secondaries = append(secondaries, e.Player)
		}
	}
	queue := append(Shuffle(primaries), Shuffle(secondaries)...)

	groups := make([][]shared.Player, groupCount)
	members := make([]map[string]bool, groupCount)
	for i := range members {
		members[i] = make(map[string]bool, shared.BracketSize)
	}

	for _, p := range queue {
		var candidates []int
		for gi := range groups {
			if len(groups[gi]) < shared.BracketSize && !members[gi][p.ID] {
				candidates = append(candidates, gi)
			}
		}
		if len(candidates) == 0 {
			// Dead ticket: every open group already holds this player
			continue
		}
		gi := candidates[rand.IntN(len(candidates))]
		groups[gi] = append(groups[gi], p)
		members[gi][p.ID] = true
	}

	for _, group := range groups {
		if len(group) != shared.BracketSize {
			continue
		}
		result.Groups = append(result.Groups, Shuffle(group))
		result.EntriesPlaced += shared.BracketSize
	}
	return result
}
