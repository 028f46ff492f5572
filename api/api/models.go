/* models.go
 * Contains the result and configuration types returned by the api package
 * Authors: Zachary Bower
 */

package api

import "brackets-bot/api/shared"

// PayoutTable holds the fixed prize amounts paid per completed bracket
type PayoutTable struct {
	First    int
	Second   int
	Operator int
}

// DefaultPayoutTable is the house payout scheme
var DefaultPayoutTable = PayoutTable{First: 25, Second: 10, Operator: 5}

// DeployResult summarises what a cohort deployment produced
type DeployResult struct {
	CohortID         string
	BracketCount     int
	EntriesRequested int
	EntriesPlaced    int
}

// ResyncResult summarises the work done by one reconciliation sweep
type ResyncResult struct {
	BracketsUpdated int
	Completions     []shared.Completion
}

// CohortOverview bundles everything a caller needs to display one cohort
type CohortOverview struct {
	Cohort   shared.Cohort
	Brackets []shared.Bracket
	Payouts  []shared.Payout
}
