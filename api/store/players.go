/* players.go
 * Contains the methods for interacting with the players collection
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

// InsertPlayer stores a new player document
// Preconditions: Receives a Player with its id already assigned; duplicate name checks happen in the api layer
// Postconditions: Player is persisted, or an error is returned
func (s *Store) InsertPlayer(player shared.Player) error {
	_, err := s.Collections.Players.InsertOne(context.TODO(), player)
	if err != nil {
		return fmt.Errorf("failed to insert player %q: %w", player.Name, err)
	}
	return nil
}

// GetPlayer does a DB lookup for a single player by id
// Preconditions: Receives a string containing the player id
// Postconditions: Returns the player, mongo.ErrNoDocuments if absent, or another error if it occurs
func (s *Store) GetPlayer(playerID string) (shared.Player, error) {
	var player shared.Player
	err := s.Collections.Players.FindOne(context.TODO(), bson.M{"_id": playerID}).Decode(&player)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Player{}, err
		}
		return shared.Player{}, fmt.Errorf("error fetching player from db: %w", err)
	}
	return player, nil
}

// GetPlayers returns every registered player
// Preconditions: none
// Postconditions: Returns the full roster, or an error if it occurs
func (s *Store) GetPlayers() ([]shared.Player, error) {
	cursor, err := s.Collections.Players.Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching players from db: %w", err)
	}
	defer cursor.Close(context.TODO())

	var players []shared.Player
	if err := cursor.All(context.TODO(), &players); err != nil {
		return nil, fmt.Errorf("error decoding players: %w", err)
	}
	return players, nil
}
