/* brackets.go
 * Contains the methods for interacting with the brackets collection
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

// InsertBrackets stores every bracket produced by a deployment in one write
// Preconditions: Receives a non-empty slice of brackets with ids already set
// Postconditions: All brackets are persisted, or an error is returned
func (s *Store) InsertBrackets(brackets []shared.Bracket) error {
	docs := make([]interface{}, len(brackets))
	for i, b := range brackets {
		docs[i] = b
	}
	_, err := s.Collections.Brackets.InsertMany(context.TODO(), docs)
	if err != nil {
		return fmt.Errorf("failed to insert brackets: %w", err)
	}
	return nil
}

// GetBracket does a DB lookup for a single bracket by id
// Preconditions: Receives a string containing the bracket id
// Postconditions: Returns the bracket, mongo.ErrNoDocuments if absent, or another error if it occurs
func (s *Store) GetBracket(bracketID string) (shared.Bracket, error) {
	var bracket shared.Bracket
	err := s.Collections.Brackets.FindOne(context.TODO(), bson.M{"_id": bracketID}).Decode(&bracket)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Bracket{}, err
		}
		return shared.Bracket{}, fmt.Errorf("error fetching bracket from db: %w", err)
	}
	return bracket, nil
}

// GetCohortBrackets returns every bracket belonging to a cohort
// Preconditions: Receives a string containing the cohort id
// Postconditions: Returns the cohort's brackets (possibly empty), or an error if it occurs
func (s *Store) GetCohortBrackets(cohortID string) ([]shared.Bracket, error) {
	cursor, err := s.Collections.Brackets.Find(context.TODO(), bson.M{"cohortid": cohortID})
	if err != nil {
		return nil, fmt.Errorf("error fetching brackets from db: %w", err)
	}
	defer cursor.Close(context.TODO())

	var brackets []shared.Bracket
	if err := cursor.All(context.TODO(), &brackets); err != nil {
		return nil, fmt.Errorf("error decoding brackets: %w", err)
	}
	return brackets, nil
}

// UpdateBracketStructure replaces a bracket's stored structure after an advancement
// Preconditions: Receives the bracket id and the new structure
// Postconditions: The structure field is replaced, or an error is returned
func (s *Store) UpdateBracketStructure(bracketID string, structure shared.BracketStructure) error {
	res, err := s.Collections.Brackets.UpdateOne(
		context.TODO(),
		bson.M{"_id": bracketID},
		bson.M{"$set": bson.M{"structure": structure}},
	)
	if err != nil {
		return fmt.Errorf("failed to update bracket structure: %w", err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
