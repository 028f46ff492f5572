/* handlers_test.go
 * Contains unit tests for handlers.go using MockDiscordSession
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brackets-bot/api/api"
	"brackets-bot/api/shared"
)

func newMessage(content string) *discordgo.MessageCreate {
	return &discordgo.MessageCreate{
		Message: &discordgo.Message{
			Content:   content,
			ChannelID: "test_channel",
			Author:    &discordgo.User{ID: "user1", Username: "tester"},
		},
	}
}

// setupBot builds a bot over a deployed eight player cohort backed by mocks
func setupBot(t *testing.T) (*Bot, *MockDiscordSession, *api.API, []shared.Player) {
	t.Helper()
	a := api.NewTestAPI(api.NewMockStore())

	names := []string{
		"Alice Walker", "Bob Stone", "Carol Reyes", "Dan Brooks",
		"Erin Fox", "Frank Hale", "Grace Kim", "Henry Cole",
	}
	players := make([]shared.Player, len(names))
	for i, name := range names {
		p, err := a.AddPlayer(name, 150+i, i)
		require.NoError(t, err)
		players[i] = p
	}

	cohort, err := a.CreateCohort("Test League", shared.CohortScratch)
	require.NoError(t, err)
	for _, p := range players {
		require.NoError(t, a.EnterPlayer(cohort.ID, p.ID, 1))
	}
	_, err = a.DeployCohort(cohort.ID)
	require.NoError(t, err)

	b, err := NewBot("test_token", cohort.ID, a)
	require.NoError(t, err)
	return b, NewMockDiscordSession(), a, players
}

func TestNewBot_Validation(t *testing.T) {
	_, err := NewBot("", "cohort", nil)
	assert.Error(t, err)

	_, err = NewBot("token", "", nil)
	assert.Error(t, err)

	b, err := NewBot("token", "cohort", nil)
	require.NoError(t, err)
	assert.Equal(t, "cohort", b.CohortID)
}

func TestNewMessageHandler_IgnoresOwnMessages(t *testing.T) {
	b, session, _, _ := setupBot(t)

	msg := newMessage("$help")
	msg.Author.ID = "bot_id"
	b.newMessageHandler(session, msg, "bot_id")
	assert.Empty(t, session.SentMessages)
}

func TestHelpHandler(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$help"), "bot_id")
	require.Len(t, session.SentMessages, 1)
	assert.Contains(t, session.GetLastMessage().Content, "$score")
	assert.Contains(t, session.GetLastMessage().Content, "$brackets")
}

func TestScoreHandler_RecordsScore(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 201"), "bot_id")
	require.NotEmpty(t, session.SentMessages)
	assert.Contains(t, session.GetLastMessage().Content, "Recorded 201 for Alice Walker in game 1")
}

func TestScoreHandler_OverwriteMentionsPrevious(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 120"), "bot_id")
	assert.NotContains(t, session.GetLastMessage().Content, "replaces")

	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 250"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "Recorded 250 for Alice Walker in game 1 (replaces 120)")

	// Re-submitting the identical score is not called an overwrite
	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 250"), "bot_id")
	assert.NotContains(t, session.GetLastMessage().Content, "replaces")
}

func TestScoreHandler_BadArgs(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$score \"Alice Walker\""), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "Usage")

	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" one 200"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "not a valid game number")

	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 lots"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "not a valid score")
}

func TestScoreHandler_UnknownPlayer(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$score \"Zz Zz\" 1 200"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "No registered player matches")
}

func TestScoreHandler_ScoreOutOfRange(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 1 301"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "between 0 and 300")

	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$score \"Alice Walker\" 4 200"), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "between 1 and 3")
}

func TestScoreHandler_AnnouncesCompletion(t *testing.T) {
	b, session, a, players := setupBot(t)

	// Drive every score through the bot so the completing call is one of ours
	for game := 1; game <= 3; game++ {
		for i, p := range players {
			msg := fmt.Sprintf("$score \"%s\" %d %d", p.Name, game, 100+i*10)
			b.newMessageHandler(session, newMessage(msg), "bot_id")
		}
	}

	brackets, err := a.GetCohortBrackets(b.CohortID)
	require.NoError(t, err)
	require.True(t, brackets[0].Structure.Completed)

	var announced bool
	for _, msg := range session.SentMessages {
		if strings.Contains(msg.Content, "is complete! Winner") {
			announced = true
		}
	}
	assert.True(t, announced)
}

func TestResyncHandler(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$resync"), "bot_id")
	require.NotEmpty(t, session.SentMessages)
	assert.Contains(t, session.GetLastMessage().Content, "Resync complete")
}

func TestBracketsHandler(t *testing.T) {
	b, session, _, _ := setupBot(t)

	b.newMessageHandler(session, newMessage("$brackets"), "bot_id")
	require.Len(t, session.SentMessages, 1)
	content := session.GetLastMessage().Content
	assert.Contains(t, content, "Bracket 1")
	assert.Contains(t, content, "Quarterfinals")
	assert.Contains(t, content, "Final")
	assert.Contains(t, content, "TBD")
}

func TestPayoutsHandler(t *testing.T) {
	b, session, a, players := setupBot(t)

	b.newMessageHandler(session, newMessage("$payouts \"Alice Walker\""), "bot_id")
	assert.Contains(t, session.GetLastMessage().Content, "has not won any payouts yet")

	// Complete the bracket so payouts exist
	for game := 1; game <= 3; game++ {
		for i, p := range players {
			_, err := a.RecordScore(b.CohortID, p.ID, game, 100+i*10)
			require.NoError(t, err)
		}
	}
	brackets, err := a.GetCohortBrackets(b.CohortID)
	require.NoError(t, err)
	winner := brackets[0].Structure.Winner
	require.NotNil(t, winner)

	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$payouts \""+winner.Name+"\""), "bot_id")
	content := session.GetLastMessage().Content
	assert.Contains(t, content, "Payouts for "+winner.Name)
	assert.Contains(t, content, "$25")
	assert.Contains(t, content, "Total: $25")
}

func TestStatusHandler(t *testing.T) {
	b, session, a, players := setupBot(t)

	b.newMessageHandler(session, newMessage("$status"), "bot_id")
	content := session.GetLastMessage().Content
	assert.Contains(t, content, "Test League")
	assert.Contains(t, content, "Status: active")
	assert.Contains(t, content, "Brackets complete: 0 of 1")

	for game := 1; game <= 3; game++ {
		for i, p := range players {
			_, err := a.RecordScore(b.CohortID, p.ID, game, 100+i*10)
			require.NoError(t, err)
		}
	}

	session.ClearMessages()
	b.newMessageHandler(session, newMessage("$status"), "bot_id")
	content = session.GetLastMessage().Content
	assert.Contains(t, content, "Status: complete")
	assert.Contains(t, content, "Brackets complete: 1 of 1")
	assert.Contains(t, content, "Total paid out: $40")
}
