/* test_mocks.go
 * Contains mock structures and helpers for testing the API package
 * Authors: Zachary Bower
 */

package api

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"brackets-bot/api/shared"
)

// MockStore implements the store Interface for testing
type MockStore struct {
	// Storage for mock data
	Players  map[string]shared.Player
	Cohorts  map[string]shared.Cohort
	Brackets map[string]shared.Bracket
	Games    map[string]shared.Game
	Payouts  map[string]shared.Payout

	// Error injection for testing error paths
	InsertPlayerError           error
	GetPlayerError              error
	GetPlayersError             error
	InsertCohortError           error
	GetCohortError              error
	GetCohortsError             error
	UpdateCohortStatusError     error
	StageEntryError             error
	InsertBracketsError         error
	GetBracketError             error
	GetCohortBracketsError      error
	UpdateBracketStructureError error
	UpsertGameError             error
	GetGameError                error
	GetCohortGamesError         error
	PayoutsExistError           error
	InsertPayoutsError          error
	GetBracketPayoutsError      error
	GetCohortPayoutsError       error
	GetPlayerPayoutsError       error

	// DropBracketWrites makes UpdateBracketStructure report success without
	// applying the write, to simulate a store whose writes do not take effect
	DropBracketWrites bool
}

// NewMockStore creates a new MockStore with empty storage
func NewMockStore() *MockStore {
	return &MockStore{
		Players:  make(map[string]shared.Player),
		Cohorts:  make(map[string]shared.Cohort),
		Brackets: make(map[string]shared.Bracket),
		Games:    make(map[string]shared.Game),
		Payouts:  make(map[string]shared.Payout),
	}
}

// NewTestAPI creates an API backed by the given MockStore
func NewTestAPI(m *MockStore) *API {
	return &API{
		Store:   m,
		Payouts: DefaultPayoutTable,
		log:     logrus.WithField("component", "api_test"),
	}
}

func gameKey(cohortID string, playerID string, gameNumber int) string {
	return fmt.Sprintf("%s|%s|%d", cohortID, playerID, gameNumber)
}

// InsertPlayer mock implementation
func (m *MockStore) InsertPlayer(player shared.Player) error {
	if m.InsertPlayerError != nil {
		return m.InsertPlayerError
	}
	m.Players[player.ID] = player
	return nil
}

// GetPlayer mock implementation
func (m *MockStore) GetPlayer(playerID string) (shared.Player, error) {
	if m.GetPlayerError != nil {
		return shared.Player{}, m.GetPlayerError
	}
	player, ok := m.Players[playerID]
	if !ok {
		return shared.Player{}, mongo.ErrNoDocuments
	}
	return player, nil
}

// GetPlayers mock implementation
func (m *MockStore) GetPlayers() ([]shared.Player, error) {
	if m.GetPlayersError != nil {
		return nil, m.GetPlayersError
	}
	players := make([]shared.Player, 0, len(m.Players))
	for _, p := range m.Players {
		players = append(players, p)
	}
	return players, nil
}

// InsertCohort mock implementation
func (m *MockStore) InsertCohort(cohort shared.Cohort) error {
	if m.InsertCohortError != nil {
		return m.InsertCohortError
	}
	m.Cohorts[cohort.ID] = cohort
	return nil
}

// GetCohort mock implementation
func (m *MockStore) GetCohort(cohortID string) (shared.Cohort, error) {
	if m.GetCohortError != nil {
		return shared.Cohort{}, m.GetCohortError
	}
	cohort, ok := m.Cohorts[cohortID]
	if !ok {
		return shared.Cohort{}, mongo.ErrNoDocuments
	}
	return cohort, nil
}

// GetCohorts mock implementation
func (m *MockStore) GetCohorts() ([]shared.Cohort, error) {
	if m.GetCohortsError != nil {
		return nil, m.GetCohortsError
	}
	cohorts := make([]shared.Cohort, 0, len(m.Cohorts))
	for _, c := range m.Cohorts {
		cohorts = append(cohorts, c)
	}
	return cohorts, nil
}

// UpdateCohortStatus mock implementation
func (m *MockStore) UpdateCohortStatus(cohortID string, status shared.CohortStatus) error {
	if m.UpdateCohortStatusError != nil {
		return m.UpdateCohortStatusError
	}
	cohort, ok := m.Cohorts[cohortID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	cohort.Status = status
	m.Cohorts[cohortID] = cohort
	return nil
}

// StageEntry mock implementation
func (m *MockStore) StageEntry(cohortID string, playerID string, count int) error {
	if m.StageEntryError != nil {
		return m.StageEntryError
	}
	cohort, ok := m.Cohorts[cohortID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	found := false
	for _, id := range cohort.SelectedUserIDs {
		if id == playerID {
			found = true
			break
		}
	}
	if !found {
		cohort.SelectedUserIDs = append(cohort.SelectedUserIDs, playerID)
	}
	if cohort.UserBracketCounts == nil {
		cohort.UserBracketCounts = make(map[string]int)
	}
	cohort.UserBracketCounts[playerID] = count
	m.Cohorts[cohortID] = cohort
	return nil
}

// InsertBrackets mock implementation
func (m *MockStore) InsertBrackets(brackets []shared.Bracket) error {
	if m.InsertBracketsError != nil {
		return m.InsertBracketsError
	}
	for _, b := range brackets {
		m.Brackets[b.ID] = b
	}
	return nil
}

// GetBracket mock implementation
func (m *MockStore) GetBracket(bracketID string) (shared.Bracket, error) {
	if m.GetBracketError != nil {
		return shared.Bracket{}, m.GetBracketError
	}
	bracket, ok := m.Brackets[bracketID]
	if !ok {
		return shared.Bracket{}, mongo.ErrNoDocuments
	}
	return bracket, nil
}

// GetCohortBrackets mock implementation
func (m *MockStore) GetCohortBrackets(cohortID string) ([]shared.Bracket, error) {
	if m.GetCohortBracketsError != nil {
		return nil, m.GetCohortBracketsError
	}
	var brackets []shared.Bracket
	for _, b := range m.Brackets {
		if b.CohortID == cohortID {
			brackets = append(brackets, b)
		}
	}
	return brackets, nil
}

// UpdateBracketStructure mock implementation
func (m *MockStore) UpdateBracketStructure(bracketID string, structure shared.BracketStructure) error {
	if m.UpdateBracketStructureError != nil {
		return m.UpdateBracketStructureError
	}
	if m.DropBracketWrites {
		return nil
	}
	bracket, ok := m.Brackets[bracketID]
	if !ok {
		return mongo.ErrNoDocuments
	}
	bracket.Structure = structure
	m.Brackets[bracketID] = bracket
	return nil
}

// UpsertGame mock implementation
func (m *MockStore) UpsertGame(game shared.Game) error {
	if m.UpsertGameError != nil {
		return m.UpsertGameError
	}
	key := gameKey(game.CohortID, game.PlayerID, game.GameNumber)
	existing, ok := m.Games[key]
	if ok {
		existing.Score = game.Score
		m.Games[key] = existing
		return nil
	}
	if game.ID == "" {
		game.ID = key
	}
	m.Games[key] = game
	return nil
}

// GetGame mock implementation
func (m *MockStore) GetGame(cohortID string, playerID string, gameNumber int) (shared.Game, error) {
	if m.GetGameError != nil {
		return shared.Game{}, m.GetGameError
	}
	game, ok := m.Games[gameKey(cohortID, playerID, gameNumber)]
	if !ok {
		return shared.Game{}, mongo.ErrNoDocuments
	}
	return game, nil
}

// GetCohortGames mock implementation
func (m *MockStore) GetCohortGames(cohortID string) ([]shared.Game, error) {
	if m.GetCohortGamesError != nil {
		return nil, m.GetCohortGamesError
	}
	var games []shared.Game
	for _, g := range m.Games {
		if g.CohortID == cohortID {
			games = append(games, g)
		}
	}
	return games, nil
}

// PayoutsExistForBracket mock implementation
func (m *MockStore) PayoutsExistForBracket(bracketID string) (bool, error) {
	if m.PayoutsExistError != nil {
		return false, m.PayoutsExistError
	}
	for _, p := range m.Payouts {
		if p.BracketID == bracketID {
			return true, nil
		}
	}
	return false, nil
}

// InsertPayouts mock implementation
func (m *MockStore) InsertPayouts(payouts []shared.Payout) error {
	if m.InsertPayoutsError != nil {
		return m.InsertPayoutsError
	}
	for _, p := range payouts {
		m.Payouts[p.ID] = p
	}
	return nil
}

// GetBracketPayouts mock implementation
func (m *MockStore) GetBracketPayouts(bracketID string) ([]shared.Payout, error) {
	if m.GetBracketPayoutsError != nil {
		return nil, m.GetBracketPayoutsError
	}
	var payouts []shared.Payout
	for _, p := range m.Payouts {
		if p.BracketID == bracketID {
			payouts = append(payouts, p)
		}
	}
	return payouts, nil
}

// GetCohortPayouts mock implementation
func (m *MockStore) GetCohortPayouts(cohortID string) ([]shared.Payout, error) {
	if m.GetCohortPayoutsError != nil {
		return nil, m.GetCohortPayoutsError
	}
	var payouts []shared.Payout
	for _, p := range m.Payouts {
		if p.CohortID == cohortID {
			payouts = append(payouts, p)
		}
	}
	return payouts, nil
}

// GetPlayerPayouts mock implementation
func (m *MockStore) GetPlayerPayouts(playerID string) ([]shared.Payout, error) {
	if m.GetPlayerPayoutsError != nil {
		return nil, m.GetPlayerPayoutsError
	}
	var payouts []shared.Payout
	for _, p := range m.Payouts {
		if p.PlayerID == playerID {
			payouts = append(payouts, p)
		}
	}
	return payouts, nil
}

// GetDatabase mock implementation
func (m *MockStore) GetDatabase() interface{ Name() string } {
	return &mockDatabase{name: "test_db"}
}

// GetClient mock implementation
func (m *MockStore) GetClient() interface{ Disconnect(context.Context) error } {
	return nil
}

// mockDatabase implements the minimal Database interface needed for tests
type mockDatabase struct {
	name string
}

func (m *mockDatabase) Name() string {
	return m.name
}
