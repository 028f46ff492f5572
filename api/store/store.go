/* store.go
 * Contains the Store struct and NewStore function. The methods for this package were split into five files:
 * players, cohorts, brackets, games and payouts. Each of these files contain methods for interacting with that
 * part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Players  *mongo.Collection
		Cohorts  *mongo.Collection
		Brackets *mongo.Collection
		Games    *mongo.Collection
		Payouts  *mongo.Collection
	}
}

// NewStore initialises the db connection and binds the collection handles
// Preconditions: Receives strings containing dbName and mongoURI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}

	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Players = db.Collection("players")
	s.Collections.Cohorts = db.Collection("cohorts")
	s.Collections.Brackets = db.Collection("brackets")
	s.Collections.Games = db.Collection("games")
	s.Collections.Payouts = db.Collection("payouts")

	return s, nil
}
