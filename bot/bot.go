/* bot.go
 * Contains the Bot struct and testable message dispatch. Requires a discord bot token, the id of the cohort the
 * channel is running, and ApiPtr, all of which are passed in from main.go
 * Authors: Zachary Bower
 */

package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"

	"brackets-bot/api/api"
)

type Bot struct {
	BotToken string
	CohortID string
	APIPtr   *api.API

	// Completion announcements are rate limited so a bulk resync does not
	// flood the channel
	announceLimiter *rate.Limiter
}

func NewBot(botToken string, cohortID string, apiPtr *api.API) (*Bot, error) {
	if botToken == "" {
		return nil, fmt.Errorf("botToken is required but none was provided")
	}
	if cohortID == "" {
		return nil, fmt.Errorf("cohortID is required but none was provided")
	}

	return &Bot{
		BotToken:        botToken,
		CohortID:        cohortID,
		APIPtr:          apiPtr,
		announceLimiter: rate.NewLimiter(rate.Limit(1), 5),
	}, nil
}

// newMessageHandler dispatches an incoming message to the matching command handler
func (b *Bot) newMessageHandler(session DiscordSession, message *discordgo.MessageCreate, botUserID string) {
	// To prevent bot from responding to its own message, if the message author id matches the bot's then just return
	if message.Author.ID == botUserID {
		return
	}

	switch {
	case startsWith(message.Content, "$help"):
		b.helpHandler(session, message)

	case startsWith(message.Content, "$score"):
		b.scoreHandler(session, message)

	case startsWith(message.Content, "$resync"):
		b.resyncHandler(session, message)

	case startsWith(message.Content, "$brackets"):
		b.bracketsHandler(session, message)

	case startsWith(message.Content, "$payouts"):
		b.payoutsHandler(session, message)

	case startsWith(message.Content, "$status"):
		b.statusHandler(session, message)
	}
}

func startsWith(content string, prefix string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), prefix)
}
