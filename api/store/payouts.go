/* payouts.go
 * Contains the methods for interacting with the payouts collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"brackets-bot/api/shared"
)

// PayoutsExistForBracket reports whether a bracket has already been settled.
// Settlement is all-or-nothing so any payout row for the bracket means done
// Preconditions: Receives a string containing the bracket id
// Postconditions: Returns true if at least one payout exists for the bracket, or an error if it occurs
func (s *Store) PayoutsExistForBracket(bracketID string) (bool, error) {
	count, err := s.Collections.Payouts.CountDocuments(context.TODO(), bson.M{"bracketid": bracketID})
	if err != nil {
		return false, fmt.Errorf("error counting payouts: %w", err)
	}
	return count > 0, nil
}

// InsertPayouts stores the full payout set for a settled bracket in one write
// Preconditions: Receives a non-empty slice of payouts with ids already set
// Postconditions: All payouts are persisted, or an error is returned
func (s *Store) InsertPayouts(payouts []shared.Payout) error {
	docs := make([]interface{}, len(payouts))
	for i, p := range payouts {
		docs[i] = p
	}
	_, err := s.Collections.Payouts.InsertMany(context.TODO(), docs)
	if err != nil {
		return fmt.Errorf("failed to insert payouts: %w", err)
	}
	return nil
}

// GetBracketPayouts returns the payouts recorded for a single bracket
// Preconditions: Receives a string containing the bracket id
// Postconditions: Returns the bracket's payouts (possibly empty), or an error if it occurs
func (s *Store) GetBracketPayouts(bracketID string) ([]shared.Payout, error) {
	return s.findPayouts(bson.M{"bracketid": bracketID})
}

// GetCohortPayouts returns every payout recorded across a cohort's brackets
// Preconditions: Receives a string containing the cohort id
// Postconditions: Returns the cohort's payouts (possibly empty), or an error if it occurs
func (s *Store) GetCohortPayouts(cohortID string) ([]shared.Payout, error) {
	return s.findPayouts(bson.M{"cohortid": cohortID})
}

// GetPlayerPayouts returns every payout a player has earned across all cohorts
// Preconditions: Receives a string containing the player id
// Postconditions: Returns the player's payouts (possibly empty), or an error if it occurs
func (s *Store) GetPlayerPayouts(playerID string) ([]shared.Payout, error) {
	return s.findPayouts(bson.M{"playerid": playerID})
}

func (s *Store) findPayouts(filter bson.M) ([]shared.Payout, error) {
	cursor, err := s.Collections.Payouts.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching payouts from db: %w", err)
	}
	defer cursor.Close(context.TODO())

	var payouts []shared.Payout
	if err := cursor.All(context.TODO(), &payouts); err != nil {
		return nil, fmt.Errorf("error decoding payouts: %w", err)
	}
	return payouts, nil
}
