/* api.go
 * This file contains the public methods for interacting with this package. For consistent results, functions should
 * only be called from this file, not the sub packages for logic and store. For details about functionality see `api.md`
 * Authors: Zachary Bower
 */

package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/xid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"brackets-bot/api/logic"
	"brackets-bot/api/shared"
	"brackets-bot/api/store"
)

// Sentinel errors returned by the api package. Callers should match with errors.Is
var (
	ErrPlayerNotFound        = errors.New("player not found")
	ErrDuplicatePlayerName   = errors.New("a player with that name already exists")
	ErrCohortNotFound        = errors.New("cohort not found")
	ErrCohortNotStaged       = errors.New("cohort has no staged entries")
	ErrCohortAlreadyDeployed = errors.New("cohort has already been deployed")
	ErrCohortNotActive       = errors.New("cohort is not active")
	ErrNotEnoughEntries      = errors.New("not enough entries to form a bracket")
	ErrInvalidGameNumber     = errors.New("game number must be between 1 and 3")
	ErrScoreOutOfRange       = errors.New("score must be between 0 and 300")
	ErrReconcileStalled      = errors.New("bracket reconciliation did not converge")
)

// API provides methods for interacting with the brackets bot data layer
type API struct {
	Store   store.Interface
	Payouts PayoutTable
	log     *logrus.Entry
}

// NewAPI creates a new API instance with the provided configuration
func NewAPI(dbName string, mongoURI string) (*API, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName is required")
	}

	s, err := store.NewStore(dbName, mongoURI)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &API{
		Store:   s,
		Payouts: DefaultPayoutTable,
		log:     logrus.WithField("component", "api"),
	}, nil
}

// AddPlayer registers a new player in the house roster.
// It receives the player's display name, bowling average and handicap.
// Names are unique case-insensitively so that fuzzy lookup stays unambiguous.
// It returns the created player, or an error if it occurs.
func (a *API) AddPlayer(name string, average int, handicap int) (shared.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.Player{}, fmt.Errorf("player name cannot be empty")
	}
	if average < 0 || handicap < 0 {
		return shared.Player{}, fmt.Errorf("average and handicap cannot be negative")
	}

	existing, err := a.Store.GetPlayers()
	if err != nil {
		return shared.Player{}, err
	}
	for _, p := range existing {
		if strings.EqualFold(p.Name, name) {
			return shared.Player{}, fmt.Errorf("%w: %s", ErrDuplicatePlayerName, p.Name)
		}
	}

	player := shared.Player{
		ID:       xid.New().String(),
		Name:     name,
		Average:  average,
		Handicap: handicap,
	}
	if err := a.Store.InsertPlayer(player); err != nil {
		return shared.Player{}, err
	}

	a.log.WithFields(logrus.Fields{"player": player.Name, "id": player.ID}).Info("registered player")
	return player, nil
}

// ResolvePlayer finds a registered player from free-form name input.
// Exact matches win, otherwise the closest fuzzy match is used.
// It returns the matched player, or ErrPlayerNotFound if nothing is close enough.
func (a *API) ResolvePlayer(input string) (shared.Player, error) {
	players, err := a.Store.GetPlayers()
	if err != nil {
		return shared.Player{}, err
	}
	player, err := logic.ResolvePlayerName(input, players)
	if err != nil {
		return shared.Player{}, fmt.Errorf("%w: %q", ErrPlayerNotFound, input)
	}
	return player, nil
}

// GetPlayer fetches a player by id
func (a *API) GetPlayer(playerID string) (shared.Player, error) {
	player, err := a.Store.GetPlayer(playerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Player{}, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
		}
		return shared.Player{}, err
	}
	return player, nil
}

// CreateCohort creates a new named tournament in the not_deployed state.
// It receives the cohort name and type (Scratch or Handicap).
// It returns the created cohort, or an error if it occurs.
func (a *API) CreateCohort(name string, cohortType shared.CohortType) (shared.Cohort, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.Cohort{}, fmt.Errorf("cohort name cannot be empty")
	}
	if cohortType != shared.CohortScratch && cohortType != shared.CohortHandicap {
		return shared.Cohort{}, fmt.Errorf("unknown cohort type: %s", cohortType)
	}

	existing, err := a.Store.GetCohorts()
	if err != nil {
		return shared.Cohort{}, err
	}
	for _, c := range existing {
		if strings.EqualFold(c.Name, name) {
			return shared.Cohort{}, fmt.Errorf("a cohort named %q already exists", c.Name)
		}
	}

	cohort := shared.Cohort{
		ID:                xid.New().String(),
		Name:              name,
		Type:              cohortType,
		Status:            shared.CohortNotDeployed,
		SelectedUserIDs:   []string{},
		UserBracketCounts: map[string]int{},
		CreatedAt:         time.Now(),
	}
	if err := a.Store.InsertCohort(cohort); err != nil {
		return shared.Cohort{}, err
	}

	a.log.WithFields(logrus.Fields{"cohort": cohort.Name, "type": cohort.Type}).Info("created cohort")
	return cohort, nil
}

// GetCohort fetches a cohort by id, mapping a missing document to ErrCohortNotFound
func (a *API) GetCohort(cohortID string) (shared.Cohort, error) {
	cohort, err := a.Store.GetCohort(cohortID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Cohort{}, fmt.Errorf("%w: %s", ErrCohortNotFound, cohortID)
		}
		return shared.Cohort{}, err
	}
	return cohort, nil
}

// EnterPlayer stages a player's ticket count for a cohort ahead of deployment.
// It receives the cohort id, player id and the number of brackets the player wants to enter.
// Entries can only be staged while the cohort is not_deployed.
func (a *API) EnterPlayer(cohortID string, playerID string, count int) error {
	if count < 1 {
		return fmt.Errorf("entry count must be at least 1, got %d", count)
	}

	cohort, err := a.GetCohort(cohortID)
	if err != nil {
		return err
	}
	if cohort.Status != shared.CohortNotDeployed {
		return fmt.Errorf("%w: %s", ErrCohortAlreadyDeployed, cohortID)
	}

	if _, err := a.GetPlayer(playerID); err != nil {
		return err
	}

	if err := a.Store.StageEntry(cohortID, playerID, count); err != nil {
		return err
	}

	a.log.WithFields(logrus.Fields{"cohort": cohortID, "player": playerID, "count": count}).Info("staged entry")
	return nil
}

// DeployCohort turns a staged cohort into live brackets.
// It assigns the staged entries into groups of eight, builds an elimination
// structure for each group, persists the brackets and marks the cohort active.
// It returns a DeployResult describing what was produced, or an error if it occurs.
func (a *API) DeployCohort(cohortID string) (DeployResult, error) {
	cohort, err := a.GetCohort(cohortID)
	if err != nil {
		return DeployResult{}, err
	}
	if cohort.Status != shared.CohortNotDeployed {
		return DeployResult{}, fmt.Errorf("%w: %s", ErrCohortAlreadyDeployed, cohortID)
	}
	if len(cohort.SelectedUserIDs) == 0 {
		return DeployResult{}, fmt.Errorf("%w: %s", ErrCohortNotStaged, cohortID)
	}

	entries, err := a.stagedEntries(cohort)
	if err != nil {
		return DeployResult{}, err
	}

	assignment := logic.AssignGroups(entries)
	if len(assignment.Groups) == 0 {
		return DeployResult{}, fmt.Errorf("%w: %d entries staged", ErrNotEnoughEntries, assignment.EntriesRequested)
	}

	brackets := make([]shared.Bracket, 0, len(assignment.Groups))
	for i, group := range assignment.Groups {
		structure, err := logic.BuildStructure(group)
		if err != nil {
			return DeployResult{}, fmt.Errorf("failed to build bracket %d: %w", i+1, err)
		}
		brackets = append(brackets, shared.Bracket{
			ID:            fmt.Sprintf("%s_bracket_%d", cohortID, i+1),
			CohortID:      cohortID,
			BracketNumber: i + 1,
			Players:       group,
			Structure:     structure,
			CreatedAt:     time.Now(),
		})
	}

	if err := a.Store.InsertBrackets(brackets); err != nil {
		return DeployResult{}, err
	}
	if err := a.Store.UpdateCohortStatus(cohortID, shared.CohortActive); err != nil {
		return DeployResult{}, err
	}

	a.log.WithFields(logrus.Fields{
		"cohort":    cohortID,
		"brackets":  len(brackets),
		"requested": assignment.EntriesRequested,
		"placed":    assignment.EntriesPlaced,
	}).Info("deployed cohort")

	return DeployResult{
		CohortID:         cohortID,
		BracketCount:     len(brackets),
		EntriesRequested: assignment.EntriesRequested,
		EntriesPlaced:    assignment.EntriesPlaced,
	}, nil
}

// stagedEntries resolves a cohort's staged user ids and counts into player entries
func (a *API) stagedEntries(cohort shared.Cohort) ([]shared.PlayerEntry, error) {
	entries := make([]shared.PlayerEntry, 0, len(cohort.SelectedUserIDs))
	for _, userID := range cohort.SelectedUserIDs {
		player, err := a.GetPlayer(userID)
		if err != nil {
			return nil, fmt.Errorf("staged player %s: %w", userID, err)
		}
		count := cohort.UserBracketCounts[userID]
		if count < 1 {
			count = 1
		}
		entries = append(entries, shared.PlayerEntry{Player: player, Count: count})
	}
	return entries, nil
}
