/* handlers.go
 * Contains testable handler methods that accept DiscordSession interface
 * Authors: Zachary Bower
 */

package bot

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/go-andiamo/splitter"

	"brackets-bot/api/api"
	"brackets-bot/api/shared"
)

// helpHandler handles the $help command with a DiscordSession interface
func (b *Bot) helpHandler(session DiscordSession, message *discordgo.MessageCreate) {
	var res strings.Builder
	res.WriteString("Brackets Bot v1.0\n")
	res.WriteString("`$score \"Player Name\" game score`: records a player's score for one game (game is 1 to 3, score is 0 to 300)\n")
	res.WriteString("Fuzzy matching is used on player names, however you should try and have a close match for the best results. Names that contain two or more words need to be encased in \" (e.g. \"Alice Walker\")\n")
	res.WriteString("`$brackets`: shows every bracket in this cohort with the current state of each match\n")
	res.WriteString("`$payouts \"Player Name\"`: shows the payouts a player has earned across all cohorts\n")
	res.WriteString("`$status`: shows the cohort's status and how many of its brackets are complete\n")
	res.WriteString("`$resync`: re-runs reconciliation across the cohort's brackets. Safe to run at any time\n")
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// scoreHandler processes the user input for the `$score` command, records the score and reports
// any brackets the score completed
// Preconditions: Receives the session and the discordgo message
// Postconditions: Score is recorded and reconciliation runs, else an error message is sent to the discord channel
func (b *Bot) scoreHandler(session DiscordSession, message *discordgo.MessageCreate) {
	// we use splitter here instead of go's built in splitter because now we can have player names that
	// contain spaces e.g. "Alice Walker" recognised as one name not two
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)
	if len(args) != 4 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $score \"Player Name\" game score")
		return
	}

	name := strings.Trim(args[1], "\"“”")
	game, err := strconv.Atoi(args[2])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("'%s' is not a valid game number", args[2]))
		return
	}
	score, err := strconv.Atoi(args[3])
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("'%s' is not a valid score", args[3]))
		return
	}

	player, err := b.APIPtr.ResolvePlayer(name)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No registered player matches '%s'", name))
		return
	}

	relevant := true
	var prior *shared.Game
	if game >= 1 && game <= shared.NumRounds {
		relevant, err = b.APIPtr.IsScoreRelevant(b.CohortID, player.ID, game)
		if err != nil {
			relevant = true
		}
		if g, err := b.APIPtr.Store.GetGame(b.CohortID, player.ID, game); err == nil {
			prior = &g
		}
	}

	result, err := b.APIPtr.RecordScore(b.CohortID, player.ID, game, score)
	if err != nil {
		switch {
		case errors.Is(err, api.ErrInvalidGameNumber):
			session.ChannelMessageSend(message.ChannelID, "Game number must be between 1 and 3")
		case errors.Is(err, api.ErrScoreOutOfRange):
			session.ChannelMessageSend(message.ChannelID, "Score must be between 0 and 300")
		case errors.Is(err, api.ErrCohortNotActive):
			session.ChannelMessageSend(message.ChannelID, "This cohort has not been deployed yet")
		default:
			log.Println(err)
			session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occured recording %s's score", player.Name))
		}
		return
	}

	res := fmt.Sprintf("Recorded %d for %s in game %d", score, player.Name, game)
	if prior != nil && prior.Score != score {
		res += fmt.Sprintf(" (replaces %d)", prior.Score)
	}
	if !relevant {
		res += " (note: this score cannot affect any bracket)"
	}
	session.ChannelMessageSend(message.ChannelID, res)
	b.announceCompletions(session, message.ChannelID, result.Completions)
}

// resyncHandler handles the $resync command with a DiscordSession interface
func (b *Bot) resyncHandler(session DiscordSession, message *discordgo.MessageCreate) {
	result, err := b.APIPtr.ResyncCohort(b.CohortID)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured during resync")
		return
	}

	session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("Resync complete, %d bracket(s) updated", result.BracketsUpdated))
	b.announceCompletions(session, message.ChannelID, result.Completions)
}

// bracketsHandler renders every bracket in the cohort with the state of each match
// Preconditions: Receives the session and the discordgo message
// Postconditions: Bracket trees are sent to the discord channel, else an error message is sent
func (b *Bot) bracketsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	overview, err := b.APIPtr.GetCohortOverview(b.CohortID)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the brackets")
		return
	}
	if len(overview.Brackets) == 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s has no brackets yet. Deploy the cohort first", overview.Cohort.Name))
		return
	}

	for _, bracket := range overview.Brackets {
		session.ChannelMessageSend(message.ChannelID, formatBracket(bracket))
	}
}

// payoutsHandler handles the $payouts command with a DiscordSession interface
func (b *Bot) payoutsHandler(session DiscordSession, message *discordgo.MessageCreate) {
	spaceSplitter, _ := splitter.NewSplitter(' ', splitter.DoubleQuotes, splitter.LeftRightDoubleDoubleQuotes)
	args, _ := spaceSplitter.Split(message.Content)
	if len(args) != 2 {
		session.ChannelMessageSend(message.ChannelID, "Usage: $payouts \"Player Name\"")
		return
	}

	name := strings.Trim(args[1], "\"“”")
	player, err := b.APIPtr.ResolvePlayer(name)
	if err != nil {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("No registered player matches '%s'", name))
		return
	}

	payouts, err := b.APIPtr.GetPlayerPayouts(player.ID)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("An error occured getting %s's payouts", player.Name))
		return
	}
	if len(payouts) == 0 {
		session.ChannelMessageSend(message.ChannelID, fmt.Sprintf("%s has not won any payouts yet", player.Name))
		return
	}

	var res strings.Builder
	total := 0
	res.WriteString(fmt.Sprintf("Payouts for %s:\n", player.Name))
	for _, p := range payouts {
		res.WriteString(fmt.Sprintf("- $%d for %s in %s (%s)\n", p.Amount, positionLabel(p.Position), p.CohortName, p.Date))
		total += p.Amount
	}
	res.WriteString(fmt.Sprintf("Total: $%d", total))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// statusHandler handles the $status command with a DiscordSession interface
func (b *Bot) statusHandler(session DiscordSession, message *discordgo.MessageCreate) {
	overview, err := b.APIPtr.GetCohortOverview(b.CohortID)
	if err != nil {
		log.Println(err)
		session.ChannelMessageSend(message.ChannelID, "An error occured getting the cohort status")
		return
	}

	complete := 0
	for _, bracket := range overview.Brackets {
		if bracket.Structure.Completed {
			complete++
		}
	}
	paid := 0
	for _, p := range overview.Payouts {
		paid += p.Amount
	}

	var res strings.Builder
	res.WriteString(fmt.Sprintf("%s (%s)\n", overview.Cohort.Name, overview.Cohort.Type))
	res.WriteString(fmt.Sprintf("Status: %s\n", overview.Cohort.Status))
	res.WriteString(fmt.Sprintf("Brackets complete: %d of %d\n", complete, len(overview.Brackets)))
	res.WriteString(fmt.Sprintf("Total paid out: $%d", paid))
	session.ChannelMessageSend(message.ChannelID, res.String())
}

// announceCompletions posts one message per newly completed bracket, subject to the rate limiter
func (b *Bot) announceCompletions(session DiscordSession, channelID string, completions []shared.Completion) {
	for _, c := range completions {
		if !b.announceLimiter.Allow() {
			log.Printf("announcement for bracket %s dropped by rate limiter", c.BracketID)
			continue
		}
		res := fmt.Sprintf("Bracket %d is complete! Winner: %s", c.BracketNumber, c.Winner.Name)
		if c.CohortComplete {
			res += "\nAll brackets are done, the cohort is now complete"
		}
		session.ChannelMessageSend(channelID, res)
	}
}

// formatBracket renders one bracket's rounds and matches as a text block
func formatBracket(bracket shared.Bracket) string {
	var res strings.Builder
	res.WriteString(fmt.Sprintf("**Bracket %d**\n", bracket.BracketNumber))
	for r, round := range bracket.Structure.Rounds {
		res.WriteString(roundLabel(r) + ":\n")
		for _, match := range round {
			res.WriteString(fmt.Sprintf("- %s vs %s", slotName(match.Player1), slotName(match.Player2)))
			if match.Completed && match.Winner != nil {
				res.WriteString(fmt.Sprintf(" -> %s", match.Winner.Name))
			}
			res.WriteString("\n")
		}
	}
	if bracket.Structure.Completed && bracket.Structure.Winner != nil {
		res.WriteString(fmt.Sprintf("Champion: %s\n", bracket.Structure.Winner.Name))
	}
	return res.String()
}

func roundLabel(roundIndex int) string {
	switch roundIndex {
	case 0:
		return "Quarterfinals"
	case 1:
		return "Semifinals"
	case 2:
		return "Final"
	default:
		return fmt.Sprintf("Round %d", roundIndex+1)
	}
}

func slotName(player *shared.Player) string {
	if player == nil {
		return "TBD"
	}
	return player.Name
}

func positionLabel(position int) string {
	switch position {
	case shared.PositionFirst:
		return "first place"
	case shared.PositionSecond:
		return "second place"
	case shared.PositionOperator:
		return "operator share"
	default:
		return fmt.Sprintf("position %d", position)
	}
}
