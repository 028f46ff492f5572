/* main.go
 * The "main" method for running the bot. For details about the bot see `readme.md`
 * Usage: go run main.go -db="<db name>" -cohort="<cohort id>"
 * Authors: Zachary Bower
 */

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"brackets-bot/api/api"
	"brackets-bot/bot"
	"brackets-bot/web"
)

func main() {
	err := godotenv.Load()

	// Flags
	dbPtr := flag.String("db", "brackets", "Name of the mongo database to use")
	cohortPtr := flag.String("cohort", "", "Id of the cohort this bot instance is running")
	addrPtr := flag.String("addr", ":8080", "Listen address for the read-only HTTP server")
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")

	flag.Parse()

	if err != nil {
		log.Fatal("Error loading .env file")
	}

	useTestBot, err := convertStrToBool(*testPtr)
	if err != nil {
		log.Fatal("Invalid \"test\" flag. Should be true or false")
	}
	var discordToken string
	if useTestBot {
		discordToken = os.Getenv("DISCORD_BETA_TOKEN")
	} else {
		discordToken = os.Getenv("DISCORD_PROD_TOKEN")
	}

	apiPtr, err := api.NewAPI(*dbPtr, os.Getenv("MONGO_URI"))
	if err != nil {
		log.Fatalf("failed to initialize API: %v", err)
	}
	defer func() {
		if client := apiPtr.Store.GetClient(); client != nil {
			if err = client.Disconnect(context.TODO()); err != nil {
				panic(err)
			}
		}
	}()

	// Read-only HTTP surface runs alongside the bot
	go func() {
		if err := web.Start(web.Config{Addr: *addrPtr, API: apiPtr}); err != nil {
			log.Printf("web server stopped: %v", err)
		}
	}()

	// Init bot and run for the selected cohort
	b, err := bot.NewBot(discordToken, *cohortPtr, apiPtr)
	if err != nil {
		log.Fatalf("failed to initialize bot: %v", err)
	}
	if err := b.Run(); err != nil {
		log.Fatalf("bot stopped with error: %v", err)
	}
}
