/* payouts_test.go
 * Contains unit tests for payouts.go
 * Authors: Zachary Bower
 */

package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"brackets-bot/api/shared"
)

func TestPayoutsExistForBracket(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns true when payouts exist", func(mt *mtest.T) {
		store := newMtestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.payouts", mtest.FirstBatch, bson.D{
			{Key: "n", Value: 3},
		}))

		exists, err := store.PayoutsExistForBracket("c1_bracket_1")
		assert.NoError(t, err)
		assert.True(t, exists)
	})

	mt.Run("returns false when bracket not settled", func(mt *mtest.T) {
		store := newMtestStore(mt)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.payouts", mtest.FirstBatch, bson.D{
			{Key: "n", Value: 0},
		}))

		exists, err := store.PayoutsExistForBracket("c1_bracket_2")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestInsertPayouts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully inserts payout set", func(mt *mtest.T) {
		store := newMtestStore(mt)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		payouts := []shared.Payout{
			{ID: "c1_bracket_1_first", BracketID: "c1_bracket_1", PlayerID: "p1", Amount: 25, Position: shared.PositionFirst},
			{ID: "c1_bracket_1_second", BracketID: "c1_bracket_1", PlayerID: "p2", Amount: 10, Position: shared.PositionSecond},
			{ID: "c1_bracket_1_operator", BracketID: "c1_bracket_1", Amount: 5, Position: shared.PositionOperator, IsOperator: true},
		}
		err := store.InsertPayouts(payouts)
		assert.NoError(t, err)
	})
}

func TestGetPlayerPayouts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns payouts for player", func(mt *mtest.T) {
		store := newMtestStore(mt)
		first := mtest.CreateCursorResponse(1, "test.payouts", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: "c1_bracket_1_first"},
			{Key: "playerid", Value: "p1"},
			{Key: "amount", Value: 25},
		})
		killCursors := mtest.CreateCursorResponse(0, "test.payouts", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		payouts, err := store.GetPlayerPayouts("p1")
		assert.NoError(t, err)
		assert.Len(t, payouts, 1)
		assert.Equal(t, 25, payouts[0].Amount)
	})
}
