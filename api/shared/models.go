/* models.go
 * This file contains the structs and constants that are shared between sub packages
 * Authors: Zachary Bower
 */

package shared

import "time"

// BracketSize is the number of distinct players in one bracket
const BracketSize = 8

// NumRounds is the number of elimination rounds per bracket (8 -> 4 -> 2 -> 1)
const NumRounds = 3

// MaxScore is the highest score a bowler can roll in one game
const MaxScore = 300

type CohortType string

const (
	CohortScratch  CohortType = "Scratch"
	CohortHandicap CohortType = "Handicap"
)

type CohortStatus string

const (
	CohortNotDeployed CohortStatus = "not_deployed"
	CohortActive      CohortStatus = "active"
	CohortComplete    CohortStatus = "complete"
)

// Player is a registered bowler. Average and Handicap are rating attributes
// used only for score adjustment, never for seeding or pairing
type Player struct {
	ID       string `bson:"_id,omitempty"`
	Name     string `bson:"name,omitempty"`
	Average  int    `bson:"average,omitempty"`
	Handicap int    `bson:"handicap,omitempty"`
}

// PlayerEntry is a player plus the number of bracket tickets they purchased
type PlayerEntry struct {
	Player Player
	Count  int
}

// Match is one head-to-head game. Player slots are nil while the feeding
// matches are unresolved ("TBD"). Once Completed is true the winner is one of
// the two players and never changes
type Match struct {
	Player1   *Player `bson:"player1,omitempty"`
	Player2   *Player `bson:"player2,omitempty"`
	Winner    *Player `bson:"winner,omitempty"`
	Completed bool    `bson:"completed"`
}

// HasBothPlayers reports whether the match is ready to be scored
func (m Match) HasBothPlayers() bool {
	return m.Player1 != nil && m.Player2 != nil
}

// BracketStructure is the 3-round elimination tree for one bracket.
// Rounds holds 4, 2 and 1 matches respectively. Winner and Completed are set
// only when the final match resolves
type BracketStructure struct {
	Rounds    [][]Match `bson:"rounds"`
	Winner    *Player   `bson:"winner,omitempty"`
	Completed bool      `bson:"completed"`
}

// Clone returns a deep copy of the structure so progression never aliases the
// caller's copy
func (s BracketStructure) Clone() BracketStructure {
	out := BracketStructure{
		Completed: s.Completed,
		Rounds:    make([][]Match, len(s.Rounds)),
	}
	if s.Winner != nil {
		w := *s.Winner
		out.Winner = &w
	}
	for ri, round := range s.Rounds {
		out.Rounds[ri] = make([]Match, len(round))
		for mi, m := range round {
			copied := Match{Completed: m.Completed}
			if m.Player1 != nil {
				p := *m.Player1
				copied.Player1 = &p
			}
			if m.Player2 != nil {
				p := *m.Player2
				copied.Player2 = &p
			}
			if m.Winner != nil {
				p := *m.Winner
				copied.Winner = &p
			}
			out.Rounds[ri][mi] = copied
		}
	}
	return out
}

// FinalMatch returns the single match of the last round
func (s BracketStructure) FinalMatch() Match {
	if len(s.Rounds) == 0 || len(s.Rounds[len(s.Rounds)-1]) == 0 {
		return Match{}
	}
	return s.Rounds[len(s.Rounds)-1][0]
}

// Bracket is one self-contained 8-player single elimination instance
type Bracket struct {
	ID            string           `bson:"_id,omitempty"`
	CohortID      string           `bson:"cohortid,omitempty"`
	BracketNumber int              `bson:"bracketnumber,omitempty"`
	Players       []Player         `bson:"players,omitempty"`
	Structure     BracketStructure `bson:"structure"`
	CreatedAt     time.Time        `bson:"createdat,omitempty"`
}

// ContainsPlayer reports whether the player holds a slot in this bracket
func (b Bracket) ContainsPlayer(playerID string) bool {
	for _, p := range b.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Game is one recorded score for a (cohort, player, game number) triple.
// GameNumber 1..3 corresponds to rounds 1..3. Later writes overwrite
type Game struct {
	ID         string    `bson:"_id,omitempty"`
	CohortID   string    `bson:"cohortid,omitempty"`
	PlayerID   string    `bson:"playerid,omitempty"`
	GameNumber int       `bson:"gamenumber,omitempty"`
	Score      int       `bson:"score"`
	CreatedAt  time.Time `bson:"createdat,omitempty"`
}

// Payout positions. Operator uses 0 so that player positions sort first
const (
	PositionOperator = 0
	PositionFirst    = 1
	PositionSecond   = 2
)

// Payout is a derived record created exactly once per completed bracket
type Payout struct {
	ID         string `bson:"_id,omitempty"`
	CohortID   string `bson:"cohortid,omitempty"`
	CohortName string `bson:"cohortname,omitempty"`
	BracketID  string `bson:"bracketid,omitempty"`
	PlayerID   string `bson:"playerid,omitempty"`
	PlayerName string `bson:"playername,omitempty"`
	Amount     int    `bson:"amount"`
	Position   int    `bson:"position"`
	Date       string `bson:"date,omitempty"`
	IsOperator bool   `bson:"isoperator,omitempty"`
}

// Cohort is a named tournament event. SelectedUserIDs and UserBracketCounts
// stage entries ahead of deployment; once deployed the brackets collection is
// authoritative
type Cohort struct {
	ID                string         `bson:"_id,omitempty"`
	Name              string         `bson:"name,omitempty"`
	Type              CohortType     `bson:"type,omitempty"`
	Status            CohortStatus   `bson:"status,omitempty"`
	SelectedUserIDs   []string       `bson:"selecteduserids,omitempty"`
	UserBracketCounts map[string]int `bson:"userbracketcounts,omitempty"`
	CreatedAt         time.Time      `bson:"createdat,omitempty"`
}

// Completion describes a bracket reaching its terminal state during
// reconciliation. CohortComplete is set when this completion was the one that
// finished the whole cohort
type Completion struct {
	CohortID       string
	BracketID      string
	BracketNumber  int
	Winner         Player
	CohortComplete bool
}
