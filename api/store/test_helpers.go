/* test_helpers.go
 * Contains test helper functions for store package tests
 * Authors: Zachary Bower
 */

package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brackets-bot/api/shared"
)

// CreateTestStore creates a Store connected to a test database.
// Returns the store and a cleanup function.
func CreateTestStore(mongoURI string) (*Store, func(), error) {
	store, err := NewStore("test_brackets", mongoURI)
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		if store.Client != nil {
			// Drop test database
			store.Database.Drop(context.TODO())
			// Disconnect client
			store.Client.Disconnect(context.TODO())
		}
	}

	return store, cleanup, nil
}

// CreateTestClient creates a test MongoDB client.
func CreateTestClient(mongoURI string) (*mongo.Client, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	return client, nil
}

// CreateSamplePlayers creates sample Player data for testing.
func CreateSamplePlayers() []shared.Player {
	return []shared.Player{
		{ID: "p1", Name: "Alice Walker", Average: 180, Handicap: 18},
		{ID: "p2", Name: "Bob Stone", Average: 165, Handicap: 31},
		{ID: "p3", Name: "Carol Reyes", Average: 201, Handicap: 0},
	}
}

// CreateSampleCohort creates a staged sample Cohort for testing.
func CreateSampleCohort() shared.Cohort {
	return shared.Cohort{
		ID:                "c1",
		Name:              "Friday Night League",
		Type:              shared.CohortHandicap,
		Status:            shared.CohortNotDeployed,
		SelectedUserIDs:   []string{"p1", "p2"},
		UserBracketCounts: map[string]int{"p1": 2, "p2": 1},
		CreatedAt:         time.Now(),
	}
}
