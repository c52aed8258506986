// Command transparency queries the Transparency Data and Influence Explorer APIs.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func init() {
	// A missing .env is fine; the environment may already carry the settings.
	_ = godotenv.Load(".env")
}

func main() {
	log := newLogger(os.Stderr, os.Getenv("LOG_LEVEL"))

	root := &cobra.Command{
		Use:           "transparency",
		Short:         "Query the Transparency Data and Influence Explorer APIs",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a := &app{log: log, getenv: os.Getenv}
	root.AddCommand(resourcesSubcommand())
	root.AddCommand(querySubcommand(a))
	root.AddCommand(storedSubcommand(a))
	root.AddCommand(entitySubcommand(a))
	root.AddCommand(aggregateSubcommand(a))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		log.Fatal().Err(err).Msg("Command failed")
	}
}
