/* shuffle.go
 * Contains the randomization primitive used by bracket assignment and seeding
 * Authors: Zachary Bower
 */

package logic

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items using Fisher-Yates.
// The input slice is not mutated. The permutation is deliberately unseeded;
// tournament fairness needs unpredictability, not reproducibility
func Shuffle[T any](items []T) []T {
	shuffled := make([]T, len(items))
	copy(shuffled, items)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.IntN(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
