/* names.go
 * Contains fuzzy player name resolution for operator-facing input
 * Authors: Zachary Bower
 */

package logic

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"brackets-bot/api/shared"
)

// ResolvePlayerName matches free-form operator input against the roster.
// Matching is case insensitive with fuzzy ranking; an exact (lowercased)
// match always wins over a fuzzy one. Returns an error when nothing matches
func ResolvePlayerName(input string, players []shared.Player) (shared.Player, error) {
	lookup := make(map[string]shared.Player, len(players))
	lowered := make([]string, 0, len(players))
	for _, p := range players {
		lower := strings.ToLower(p.Name)
		lookup[lower] = p
		lowered = append(lowered, lower)
	}

	target := strings.ToLower(strings.TrimSpace(input))
	if p, ok := lookup[target]; ok {
		return p, nil
	}

	results := fuzzy.RankFind(target, lowered)
	if len(results) == 0 {
		return shared.Player{}, fmt.Errorf("no player matching %q", input)
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	return lookup[best.Target], nil
}
