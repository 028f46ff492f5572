/* cohorts.go
 * Contains the methods for interacting with the cohorts collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"brackets-bot/api/shared"
)

// InsertCohort stores a new cohort document
// Preconditions: Receives a Cohort with id, status and created timestamp already set
// Postconditions: Cohort is persisted, or an error is returned
func (s *Store) InsertCohort(cohort shared.Cohort) error {
	_, err := s.Collections.Cohorts.InsertOne(context.TODO(), cohort)
	if err != nil {
		return fmt.Errorf("failed to insert cohort %q: %w", cohort.Name, err)
	}
	return nil
}

// GetCohort does a DB lookup for a single cohort by id
// Preconditions: Receives a string containing the cohort id
// Postconditions: Returns the cohort, mongo.ErrNoDocuments if absent, or another error if it occurs
func (s *Store) GetCohort(cohortID string) (shared.Cohort, error) {
	var cohort shared.Cohort
	err := s.Collections.Cohorts.FindOne(context.TODO(), bson.M{"_id": cohortID}).Decode(&cohort)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Cohort{}, err
		}
		return shared.Cohort{}, fmt.Errorf("error fetching cohort from db: %w", err)
	}
	return cohort, nil
}

// GetCohorts returns every cohort
// Preconditions: none
// Postconditions: Returns all cohorts, or an error if it occurs
func (s *Store) GetCohorts() ([]shared.Cohort, error) {
	cursor, err := s.Collections.Cohorts.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching cohorts from db: %w", err)
	}
	defer cursor.Close(context.TODO())

	var cohorts []shared.Cohort
	if err := cursor.All(context.TODO(), &cohorts); err != nil {
		return nil, fmt.Errorf("error decoding cohorts: %w", err)
	}
	return cohorts, nil
}

// UpdateCohortStatus sets the cohort's status field. Status only ever moves
// forward (not_deployed -> active -> complete); callers enforce the ordering
// Preconditions: Receives the cohort id and the new status
// Postconditions: Status is updated, or an error is returned
func (s *Store) UpdateCohortStatus(cohortID string, status shared.CohortStatus) error {
	res, err := s.Collections.Cohorts.UpdateOne(
		context.TODO(),
		bson.M{"_id": cohortID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update cohort status: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// StageEntry records that a player wants count tickets in this cohort ahead
// of deployment. Re-staging overwrites the player's previous count
// Preconditions: Receives cohort id, player id and a ticket count >= 1
// Postconditions: The cohort's staged entry fields are updated, or an error is returned
func (s *Store) StageEntry(cohortID string, playerID string, count int) error {
	res, err := s.Collections.Cohorts.UpdateOne(
		context.TODO(),
		bson.M{"_id": cohortID},
		bson.M{
			"$addToSet": bson.M{"selecteduserids": playerID},
			"$set":      bson.M{"userbracketcounts." + playerID: count},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to stage entry for player %s: %w", playerID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
