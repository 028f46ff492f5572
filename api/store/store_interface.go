/* store_interface.go
 * Contains the Store interface for dependency injection and testing
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"brackets-bot/api/shared"
)

// Interface defines the methods that Store implements.
// This allows for mocking in tests.
type Interface interface {
	// Players
	InsertPlayer(player shared.Player) error
	GetPlayer(playerID string) (shared.Player, error)
	GetPlayers() ([]shared.Player, error)

	// Cohorts
	InsertCohort(cohort shared.Cohort) error
	GetCohort(cohortID string) (shared.Cohort, error)
	GetCohorts() ([]shared.Cohort, error)
	UpdateCohortStatus(cohortID string, status shared.CohortStatus) error
	StageEntry(cohortID string, playerID string, count int) error

	// Brackets
	InsertBrackets(brackets []shared.Bracket) error
	GetBracket(bracketID string) (shared.Bracket, error)
	GetCohortBrackets(cohortID string) ([]shared.Bracket, error)
	UpdateBracketStructure(bracketID string, structure shared.BracketStructure) error

	// Games
	UpsertGame(game shared.Game) error
	GetGame(cohortID string, playerID string, gameNumber int) (shared.Game, error)
	GetCohortGames(cohortID string) ([]shared.Game, error)

	// Payouts
	PayoutsExistForBracket(bracketID string) (bool, error)
	InsertPayouts(payouts []shared.Payout) error
	GetBracketPayouts(bracketID string) ([]shared.Payout, error)
	GetCohortPayouts(cohortID string) ([]shared.Payout, error)
	GetPlayerPayouts(playerID string) ([]shared.Payout, error)

	// Getter methods for accessing fields
	GetDatabase() interface{ Name() string }
	GetClient() interface{ Disconnect(context.Context) error }
}

// Ensure Store implements Interface
var _ Interface = (*Store)(nil)

// GetDatabase returns the database instance
func (s *Store) GetDatabase() interface{ Name() string } {
	return s.Database
}

// GetClient returns the MongoDB client
func (s *Store) GetClient() interface{ Disconnect(context.Context) error } {
	return s.Client
}
