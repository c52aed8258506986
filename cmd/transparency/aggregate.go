package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SanteonNL/transparencydata/client"
)

func aggregateFlags(cmd *cobra.Command, opts *client.AggregateOptions) {
	flags := cmd.Flags()
	flags.StringVar(&opts.Cycle, "cycle", client.DefaultCycle, "Election cycle, -1 for career totals")
	flags.IntVar(&opts.Limit, "limit", 0, "Maximum number of results")
}

func aggregateSubcommand(a *app) *cobra.Command {
	opts := client.AggregateOptions{}
	cmd := &cobra.Command{
		Use:   "aggregate <kind> <method> <entity-id>",
		Short: "Fetch an aggregate of a politician, individual or organization",
		Long:  "Fetch an aggregate. Kinds and methods:\n" + aggregateUsage(),
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ie, err := a.explorer()
			if err != nil {
				return err
			}
			data, err := ie.Aggregate(cmd.Context(), args[0], args[1], args[2], opts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data)
		},
	}
	aggregateFlags(cmd, &opts)
	return cmd
}

func aggregateUsage() string {
	var b strings.Builder
	for _, kind := range client.AggregateKinds() {
		fmt.Fprintf(&b, "  %s: %s\n", kind, strings.Join(client.AggregateMethods(kind), ", "))
	}
	return b.String()
}
