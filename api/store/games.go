/* games.go
 * Contains the methods for interacting with the games collection
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brackets-bot/api/shared"
)

// UpsertGame records a score for (cohort, player, game number). A second
// submission for the same key overwrites the previous score rather than
// creating a duplicate document
// Preconditions: Receives a Game with cohort id, player id, game number and score set
// Postconditions: The score is stored, or an error is returned
func (s *Store) UpsertGame(game shared.Game) error {
	filter := bson.M{
		"cohortid":   game.CohortID,
		"playerid":   game.PlayerID,
		"gamenumber": game.GameNumber,
	}
	update := bson.M{
		"$set": bson.M{"score": game.Score},
		"$setOnInsert": bson.M{
			"_id":       xid.New().String(),
			"createdat": time.Now(),
		},
	}
	_, err := s.Collections.Games.UpdateOne(context.TODO(), filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to upsert game score: %w", err)
	}
	return nil
}

// GetGame does a DB lookup for one player's score in one game of a cohort
// Preconditions: Receives the cohort id, player id and game number
// Postconditions: Returns the game, mongo.ErrNoDocuments if absent, or another error if it occurs
func (s *Store) GetGame(cohortID string, playerID string, gameNumber int) (shared.Game, error) {
	filter := bson.M{
		"cohortid":   cohortID,
		"playerid":   playerID,
		"gamenumber": gameNumber,
	}
	var game shared.Game
	err := s.Collections.Games.FindOne(context.TODO(), filter).Decode(&game)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Game{}, err
		}
		return shared.Game{}, fmt.Errorf("error fetching game from db: %w", err)
	}
	return game, nil
}

// GetCohortGames returns every recorded score for a cohort
// Preconditions: Receives a string containing the cohort id
// Postconditions: Returns the cohort's games (possibly empty), or an error if it occurs
func (s *Store) GetCohortGames(cohortID string) ([]shared.Game, error) {
	cursor, err := s.Collections.Games.Find(context.TODO(), bson.M{"cohortid": cohortID})
	if err != nil {
		return nil, fmt.Errorf("error fetching games from db: %w", err)
	}
	defer cursor.Close(context.TODO())

	var games []shared.Game
	if err := cursor.All(context.TODO(), &games); err != nil {
		return nil, fmt.Errorf("error decoding games: %w", err)
	}
	return games, nil
}
